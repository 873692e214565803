// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package lineformat provides the line-level rules shared by the env and ini
// packages: key normalization, value quoting and property splitting.
package lineformat

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLineSize is the longest line, in bytes, that NewScanner accepts.
const MaxLineSize = 16 << 20

// NormalizeFlatKey returns the canonical form of a .env key: spaces become
// underscores, leading and trailing underscores are trimmed and the result is
// uppercased.
//
//	NormalizeFlatKey(" my key ") == "MY_KEY"
func NormalizeFlatKey(key string) string {
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.Trim(key, "_")
	return strings.ToUpper(key)
}

// NormalizeSectionKey returns the canonical form of a key inside an INI
// section. The key is split on spaces, the first character of each word is
// uppercased and the words are joined without a separator. The rest of each
// word is left as-is, so "MY key" becomes "MYKey". Empty words produced by
// repeated spaces are dropped.
//
//	NormalizeSectionKey("my key") == "MyKey"
func NormalizeSectionKey(key string) string {
	sb := new(strings.Builder)
	sb.Grow(len(key))
	for _, word := range strings.Split(key, " ") {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(first))
		sb.WriteString(word[size:])
	}
	return strings.TrimSpace(sb.String())
}

// FormatValue returns value as it should be written after the '=' of a
// property line. Values containing a space are wrapped in double quotes.
func FormatValue(value string) string {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}
	return strings.TrimSpace(value)
}

// Unquote strips one layer of double quotes from v if it both begins and ends
// with one. Escape sequences are not interpreted.
func Unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// SplitProperty splits a trimmed "key=value" line at its first equals sign.
// The key is returned untouched for the caller to normalize. The value is
// trimmed and unquoted. ok is false if line has no equals sign.
func SplitProperty(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return "", "", false
	}
	return line[:i], Unquote(strings.TrimSpace(line[i+1:])), true
}

// IsComment reports whether the trimmed line starts with delim. An empty
// delimiter disables comments.
func IsComment(line, delim string) bool {
	return delim != "" && strings.HasPrefix(line, delim)
}

// IsValidKey reports whether a normalized key can be written as a property
// line and read back unchanged. A valid key is non-empty, has no surrounding
// whitespace, does not contain '=' or a line break, and does not start with a
// character that marks a comment or section header ('#', ';', '[').
func IsValidKey(key string) bool {
	if key == "" || strings.TrimSpace(key) != key {
		return false
	}
	switch key[0] {
	case '#', ';', '[':
		return false
	}
	return !strings.ContainsAny(key, "=\r\n")
}

// IsValidSection reports whether a section name can be written as a header
// line and read back unchanged: it must have no surrounding whitespace and no
// ']' or line break. The empty string names the global section and is valid.
func IsValidSection(name string) bool {
	if name == "" {
		return true
	}
	if strings.TrimSpace(name) != name {
		return false
	}
	return !strings.ContainsAny(name, "]\r\n")
}

// NewScanner returns a line scanner over r that accepts lines up to
// MaxLineSize bytes.
func NewScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return s
}
