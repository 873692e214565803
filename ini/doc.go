// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini reads, edits and writes INI files.
See https://en.wikipedia.org/wiki/INI_file.

A Store holds sections, and each section holds properties. Section names are
kept as written. Property keys are normalized with
lineformat.NormalizeSectionKey, so "log level" and "LogLevel" name the same
property. Sections and keys are always listed in ascending order.

Syntax

An INI file is UTF-8 text. Properties are written one per line as a key and
value separated by the first equals sign ('='):

	key=value

Properties are grouped into sections. A section is started by writing its
name in square brackets on its own line and ends at the next section name or
the end of file:

	[section]
	key1=value1
	key2=value2

Anything after the closing bracket of a section line is ignored. Repeating a
section name continues the earlier section.

Properties encountered before a section name are permitted. They are
considered part of the global section, identified by the empty string ("").
The global section is only created when such a property is seen.

Whitespace at the beginning and end of lines, around section names and around
property values is ignored. A value surrounded by double quotes has one layer
of quotes removed; escape sequences are not interpreted. Lines starting with
the comment delimiter ('#' by default) and blank lines are skipped, as are
lines that are neither section names nor properties. If a key appears more than
once in a section, the last value wins. A property line whose key is empty
after normalization is an error. Lines may be up to lineformat.MaxLineSize
bytes long.

When written back, the global section comes first without a header, values
containing a space are quoted and comments are not preserved. Store methods
only accept section names and keys that survive this round trip (see
lineformat.IsValidSection and lineformat.IsValidKey): AddItem and AddSection
panic on anything else, and EditSection and EditKey ignore it.

Files

A File binds a Store to a path. Unlike env.File, Save creates the file if it
does not exist.
*/
package ini
