// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yourbase/confx/binding"
	"github.com/yourbase/confx/lineformat"
)

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// CommentDelimiter is the prefix of comment lines. The empty string
	// disables comments. Passing nil options to Parse uses "#".
	CommentDelimiter string
}

func (opts *ParseOptions) commentDelimiter() string {
	if opts == nil {
		return binding.DefaultCommentDelimiter
	}
	return opts.CommentDelimiter
}

// Parse parses an INI file. Nil options use the default comment delimiter.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader, opts *ParseOptions) (*Store, error) {
	delim := opts.commentDelimiter()
	s := lineformat.NewScanner(r)
	store := &Store{sections: make(map[string]section)}
	currSection := ""
	lineno := 1
	for ; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || lineformat.IsComment(line, delim) {
			continue
		}
		if name, ok := sectionName(line); ok {
			currSection = name
			store.addSection(name)
			continue
		}
		rawKey, value, ok := lineformat.SplitProperty(line)
		if !ok {
			continue
		}
		key := lineformat.NormalizeSectionKey(strings.TrimSpace(rawKey))
		if key == "" {
			return store, fmt.Errorf("parse ini file: line %d: missing key", lineno)
		}
		store.addSection(currSection)[key] = value
	}
	if err := s.Err(); err != nil {
		return store, fmt.Errorf("parse ini file: line %d: %w", lineno, err)
	}
	return store, nil
}

// sectionName returns the trimmed text between the first '[' and the first
// ']' of a section header line.
func sectionName(line string) (string, bool) {
	if !strings.HasPrefix(line, "[") {
		return "", false
	}
	end := strings.IndexByte(line, ']')
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(line[1:end]), true
}

// MarshalText serializes s in INI format. Properties in the global section are
// written first, outside any section header. An empty global section is not
// written.
func (s *Store) MarshalText() ([]byte, error) {
	return s.appendText(nil), nil
}

func (s *Store) appendText(buf []byte) []byte {
	for _, name := range s.Sections() {
		if name != "" {
			buf = append(buf, '[')
			buf = append(buf, strings.TrimSpace(name)...)
			buf = append(buf, "]\n"...)
		}
		for _, k := range s.sections[name].keys() {
			buf = append(buf, lineformat.NormalizeSectionKey(k)...)
			buf = append(buf, '=')
			buf = append(buf, lineformat.FormatValue(s.sections[name][k])...)
			buf = append(buf, '\n')
		}
	}
	return buf
}

// UnmarshalText parses the INI data with default options, replacing any
// sections in s.
func (s *Store) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data), nil)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
