// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package textfile abstracts the small set of whole-file operations that the
// env and ini bindings perform, so that callers can substitute an in-memory
// filesystem.
package textfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// FS reads and writes whole text files.
type FS interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the contents of an existing or new file at path.
	WriteFile(path string, data []byte) error
	// Exists reports whether a regular file exists at path.
	Exists(path string) (bool, error)
	// Create creates an empty file at path if one does not already exist.
	Create(path string) error
}

// OS is an FS backed by the operating system.
type OS struct{}

// ReadFile calls os.ReadFile.
func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile truncates and writes the file, creating it with mode 0666
// (before umask) if necessary.
func (OS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o666)
}

// Exists reports whether path names an existing file. Directories report an
// error.
func (OS) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// Create creates an empty file at path. An existing file is left untouched.
func (OS) Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return err
	}
	return f.Close()
}

// Map is an in-memory FS keyed by path. The zero value is not usable; use
// make(Map) or a composite literal.
type Map map[string][]byte

// ReadFile returns a copy of the stored contents or an error wrapping
// fs.ErrNotExist.
func (m Map) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data at path.
func (m Map) WriteFile(path string, data []byte) error {
	m[path] = append([]byte{}, data...)
	return nil
}

// Exists reports whether path has been written or created.
func (m Map) Exists(path string) (bool, error) {
	_, ok := m[path]
	return ok, nil
}

// Create stores an empty file at path if none exists.
func (m Map) Create(path string) error {
	if _, ok := m[path]; !ok {
		m[path] = []byte{}
	}
	return nil
}

// Paths returns the stored paths in sorted order.
func (m Map) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
