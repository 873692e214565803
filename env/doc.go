// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package env reads, edits and writes .env files.

A Store holds an ordered set of properties. Keys are normalized with
lineformat.NormalizeFlatKey, so "my key", "MY_KEY" and "_my_key_" all name the
same property, and iteration is always in ascending key order regardless of
the order properties were added or appeared in the file.

Syntax

A .env file is UTF-8 text with one property per line:

	KEY=value

Only the first equals sign separates key from value, so values may contain
further equals signs. Whitespace at the beginning and end of lines and around
the value is ignored. A value surrounded by double quotes has one layer of
quotes removed; no escape sequences are interpreted.

Blank lines and lines that begin with the comment delimiter ('#' by default)
are skipped. Lines without an equals sign are ignored, as are lines whose key
is empty after normalization (such as "=value"). If a key appears more than
once, the last value wins. Lines may be up to lineformat.MaxLineSize bytes
long.

When written back, values containing a space are quoted and comments are not
preserved. Store methods only accept keys that survive this round trip (see
lineformat.IsValidKey): AddItem panics on any other key, and EditKey ignores
it.

Files

A File binds a Store to a path. Load replaces the store's contents from disk
and Save writes them back, but Save never creates a missing .env file: it
reports false instead.
*/
package env
