// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package env

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

// Parse parses a .env file. Nil options use the default comment delimiter.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader, opts *ParseOptions) (*Store, error) {
	delim := opts.commentDelimiter()
	s := lineformat.NewScanner(r)
	store := &Store{props: make(map[string]string)}
	lineno := 1
	for ; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || lineformat.IsComment(line, delim) {
			continue
		}
		rawKey, value, ok := lineformat.SplitProperty(line)
		if !ok {
			continue
		}
		key := lineformat.NormalizeFlatKey(strings.TrimSpace(rawKey))
		if key == "" {
			// "=value" has nothing to attach to.
			continue
		}
		store.props[key] = value
	}
	if err := s.Err(); err != nil {
		return store, fmt.Errorf("parse env file: line %d: %w", lineno, err)
	}
	return store, nil
}

// MarshalText serializes s as a .env file, one "KEY=value" line per property
// in key order.
func (s *Store) MarshalText() ([]byte, error) {
	return s.appendText(nil), nil
}

func (s *Store) appendText(buf []byte) []byte {
	for _, k := range s.Keys() {
		buf = append(buf, lineformat.NormalizeFlatKey(k)...)
		buf = append(buf, '=')
		buf = append(buf, lineformat.FormatValue(s.props[k])...)
		buf = append(buf, '\n')
	}
	return buf
}

// UnmarshalText parses the .env data with default options, replacing all
// properties in s.
func (s *Store) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data), nil)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
