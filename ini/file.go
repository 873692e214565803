// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"context"

	"github.com/yourbase/confx/binding"
	"github.com/yourbase/confx/textfile"
	"zombiezen.com/go/log"
)

// Extension is appended to File paths that do not already end with it.
const Extension = ".ini"

// A File is a Store bound to an INI file.
type File struct {
	*binding.Binding

	// Data is the store that Load fills and Save writes.
	Data *Store
}

// An Option configures a File in Open.
type Option func(*File)

// WithCommentDelimiter sets the comment prefix. The empty string disables
// comments.
func WithCommentDelimiter(delim string) Option {
	return func(f *File) { f.SetCommentDelimiter(delim) }
}

// WithCapacity sets the capacity hint used to size the write buffer.
func WithCapacity(n int) Option {
	return func(f *File) { f.SetCapacity(n) }
}

// WithFS sets the filesystem used for I/O. The default is textfile.OS.
func WithFS(fsys textfile.FS) Option {
	return func(f *File) { f.SetFS(fsys) }
}

// Open returns a File for path with an empty store. ".ini" is appended to
// path if missing. Open does not touch the filesystem.
func Open(path string, opts ...Option) *File {
	f := &File{
		Binding: binding.New(Extension, path),
		Data:    new(Store),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load replaces f.Data with the sections in the file and returns it. A missing
// file is not an error: f.Data is returned unchanged. If the file cannot be
// read or parsed, f.Data is also left unchanged.
func (f *File) Load(ctx context.Context) (*Store, error) {
	data, ok, err := f.Read(ctx)
	if err != nil || !ok {
		return f.Data, err
	}
	parsed, err := Parse(bytes.NewReader(data), &ParseOptions{
		CommentDelimiter: f.CommentDelimiter(),
	})
	if err != nil {
		return f.Data, err
	}
	if f.Data == nil {
		f.Data = parsed
	} else {
		*f.Data = *parsed
	}
	log.Debugf(ctx, "Loaded %d sections from %s", len(f.Data.sections), f.Path())
	return f.Data, nil
}

// Save writes f.Data to the file, creating it if necessary. The returned bool
// is true whenever the error is nil.
func (f *File) Save(ctx context.Context) (bool, error) {
	return f.Write(ctx, true, f.Data.appendText)
}
