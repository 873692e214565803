// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package lineformat

import (
	"strings"
	"testing"
)

func TestNormalizeFlatKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"KEY", "KEY"},
		{"key", "KEY"},
		{" my key ", "MY_KEY"},
		{"my  key", "MY__KEY"},
		{"__foo_bar__", "FOO_BAR"},
		{"Mixed Case", "MIXED_CASE"},
		{"a.b-c", "A.B-C"},
	}
	for _, test := range tests {
		if got := NormalizeFlatKey(test.key); got != test.want {
			t.Errorf("NormalizeFlatKey(%q) = %q; want %q", test.key, got, test.want)
		}
	}
}

func TestNormalizeSectionKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{" ", ""},
		{"my key", "MyKey"},
		{"MY key", "MYKey"},
		{"my", "My"},
		{"MY", "MY"},
		{"already CamelCase", "AlreadyCamelCase"},
		{"double  space", "DoubleSpace"},
		{" leading", "Leading"},
		{"trailing ", "Trailing"},
		{"émile zola", "ÉmileZola"},
		{"tab\tinside", "Tab\tinside"},
	}
	for _, test := range tests {
		if got := NormalizeSectionKey(test.key); got != test.want {
			t.Errorf("NormalizeSectionKey(%q) = %q; want %q", test.key, got, test.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", ""},
		{"ab", "ab"},
		{"a b", `"a b"`},
		{" padded", `" padded"`},
		{"\tab\t", "ab"},
		{"x=y", "x=y"},
	}
	for _, test := range tests {
		if got := FormatValue(test.value); got != test.want {
			t.Errorf("FormatValue(%q) = %q; want %q", test.value, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", ""},
		{`"`, `"`},
		{`""`, ""},
		{`"a b"`, "a b"},
		{`""a""`, `"a"`},
		{`"open`, `"open`},
		{`close"`, `close"`},
		{`a "b" c`, `a "b" c`},
	}
	for _, test := range tests {
		if got := Unquote(test.value); got != test.want {
			t.Errorf("Unquote(%q) = %q; want %q", test.value, got, test.want)
		}
	}
}

func TestSplitProperty(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{line: "KEY", wantOK: false},
		{line: "KEY=1", wantKey: "KEY", wantValue: "1", wantOK: true},
		{line: "KEY = 1", wantKey: "KEY ", wantValue: "1", wantOK: true},
		{line: "KEY=", wantKey: "KEY", wantValue: "", wantOK: true},
		{line: "=value", wantKey: "", wantValue: "value", wantOK: true},
		{line: "URL=a=b", wantKey: "URL", wantValue: "a=b", wantOK: true},
		{line: `KEY="a b"`, wantKey: "KEY", wantValue: "a b", wantOK: true},
		{line: "KEY=a b", wantKey: "KEY", wantValue: "a b", wantOK: true},
	}
	for _, test := range tests {
		key, value, ok := SplitProperty(test.line)
		if key != test.wantKey || value != test.wantValue || ok != test.wantOK {
			t.Errorf("SplitProperty(%q) = %q, %q, %t; want %q, %q, %t",
				test.line, key, value, ok, test.wantKey, test.wantValue, test.wantOK)
		}
	}
}

func TestIsComment(t *testing.T) {
	tests := []struct {
		line  string
		delim string
		want  bool
	}{
		{"# comment", "#", true},
		{"KEY=1", "#", false},
		{"; comment", ";", true},
		{"// comment", "//", true},
		{"/ not", "//", false},
		{"# comment", "", false},
	}
	for _, test := range tests {
		if got := IsComment(test.line, test.delim); got != test.want {
			t.Errorf("IsComment(%q, %q) = %t; want %t", test.line, test.delim, got, test.want)
		}
	}
}

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"KEY", true},
		{"MyKey", true},
		{"X#Y", true},
		{"SEMI;COLON", true},
		{"A=B", false},
		{"#X", false},
		{";X", false},
		{"[X", false},
		{"X]", true},
		{"A\nB", false},
		{"A\rB", false},
		{"\tX", false},
		{"X ", false},
	}
	for _, test := range tests {
		if got := IsValidKey(test.key); got != test.want {
			t.Errorf("IsValidKey(%q) = %t; want %t", test.key, got, test.want)
		}
	}
}

func TestIsValidSection(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", true},
		{"server", true},
		{"my section", true},
		{"a[b", true},
		{"a]b", false},
		{" pad ", false},
		{"pad ", false},
		{"a\nb", false},
	}
	for _, test := range tests {
		if got := IsValidSection(test.name); got != test.want {
			t.Errorf("IsValidSection(%q) = %t; want %t", test.name, got, test.want)
		}
	}
}

func TestNewScannerLongLine(t *testing.T) {
	long := strings.Repeat("v", 1<<20)
	s := NewScanner(strings.NewReader("K=" + long + "\nNEXT=1\n"))
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "K="+long || lines[1] != "NEXT=1" {
		t.Errorf("scanned %d lines; want the long line followed by \"NEXT=1\"", len(lines))
	}
}
