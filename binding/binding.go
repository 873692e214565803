// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package binding holds the file-level settings shared by env.File and
// ini.File: the path with its enforced extension, the comment delimiter, the
// capacity hint and the filesystem used for I/O.
package binding

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourbase/confx/textfile"
	"zombiezen.com/go/log"
)

// Defaults for new bindings.
const (
	DefaultCapacity         = 1024
	DefaultCommentDelimiter = "#"
)

// A Binding ties a store to a file on an FS. The zero value is not usable;
// create one with New.
type Binding struct {
	ext              string
	path             string
	capacity         int
	commentDelimiter string
	fsys             textfile.FS
}

// New returns a binding for files with the given extension (including the
// leading dot). The path is set with SetPath.
func New(ext, path string) *Binding {
	b := &Binding{
		ext:              ext,
		capacity:         DefaultCapacity,
		commentDelimiter: DefaultCommentDelimiter,
		fsys:             textfile.OS{},
	}
	return b.SetPath(path)
}

// Path returns the path of the file, extension included.
func (b *Binding) Path() string {
	return b.path
}

// SetPath sets the file path, appending the binding's extension if path does
// not already end with it.
func (b *Binding) SetPath(path string) *Binding {
	if !strings.HasSuffix(path, b.ext) {
		path += b.ext
	}
	b.path = path
	return b
}

// Capacity returns the suggested initial size of the serialized file.
func (b *Binding) Capacity() int {
	return b.capacity
}

// SetCapacity sets the capacity hint. Non-positive values restore
// DefaultCapacity.
func (b *Binding) SetCapacity(n int) *Binding {
	if n <= 0 {
		n = DefaultCapacity
	}
	b.capacity = n
	return b
}

// CommentDelimiter returns the prefix that marks a comment line.
func (b *Binding) CommentDelimiter() string {
	return b.commentDelimiter
}

// SetCommentDelimiter sets the comment prefix. The empty string disables
// comments, so every non-blank line is parsed.
func (b *Binding) SetCommentDelimiter(delim string) *Binding {
	b.commentDelimiter = delim
	return b
}

// FS returns the filesystem the binding reads and writes.
func (b *Binding) FS() textfile.FS {
	return b.fsys
}

// SetFS replaces the filesystem. A nil fsys restores textfile.OS.
func (b *Binding) SetFS(fsys textfile.FS) *Binding {
	if fsys == nil {
		fsys = textfile.OS{}
	}
	b.fsys = fsys
	return b
}

// Read returns the contents of the bound file. If the file does not exist,
// Read returns ok == false and a nil error.
func (b *Binding) Read(ctx context.Context) (_ []byte, ok bool, err error) {
	exists, err := b.fsys.Exists(b.path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", b.path, err)
	}
	if !exists {
		log.Infof(ctx, "%s does not exist; nothing to load", b.path)
		return nil, false, nil
	}
	data, err := b.fsys.ReadFile(b.path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", b.path, err)
	}
	log.Debugf(ctx, "Read %d bytes from %s", len(data), b.path)
	return data, true, nil
}

// Write replaces the contents of the bound file with the output of marshal.
// If the file does not exist, Write creates it when create is true and
// otherwise returns false without writing.
func (b *Binding) Write(ctx context.Context, create bool, marshal func(buf []byte) []byte) (bool, error) {
	exists, err := b.fsys.Exists(b.path)
	if err != nil {
		return false, fmt.Errorf("write %s: %w", b.path, err)
	}
	if !exists {
		if !create {
			log.Warnf(ctx, "Not saving %s: file does not exist", b.path)
			return false, nil
		}
		if err := b.fsys.Create(b.path); err != nil {
			return false, fmt.Errorf("write %s: %w", b.path, err)
		}
		log.Debugf(ctx, "Created %s", b.path)
	}
	data := marshal(make([]byte, 0, b.capacity))
	if err := b.fsys.WriteFile(b.path, data); err != nil {
		return false, fmt.Errorf("write %s: %w", b.path, err)
	}
	log.Debugf(ctx, "Wrote %d bytes to %s", len(data), b.path)
	return true, nil
}
