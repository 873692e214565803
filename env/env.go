// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package env

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yourbase/confx/lineformat"
	"gopkg.in/yaml.v3"
)

// ErrKeyNotFound is returned (wrapped) by lookups of keys not in a Store.
var ErrKeyNotFound = errors.New("key not found")

// A Store is a set of .env properties ordered by key. The zero value is an
// empty store. Stores are not safe for concurrent mutation.
type Store struct {
	props map[string]string
}

// Len returns the number of properties in s.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Keys returns the normalized keys in ascending order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the value of the property with the given key. The key is
// normalized before lookup. If there is no such property, Value returns an
// error wrapping ErrKeyNotFound.
func (s *Store) Value(key string) (string, error) {
	k := lineformat.NormalizeFlatKey(key)
	if s != nil {
		if v, ok := s.props[k]; ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("env: %q: %w", k, ErrKeyNotFound)
}

// EditKey renames the property key to newKey, keeping its value. It does
// nothing if key does not exist, newKey already does, or newKey is not a
// valid key (see lineformat.IsValidKey).
func (s *Store) EditKey(key, newKey string) *Store {
	k := lineformat.NormalizeFlatKey(key)
	newK := lineformat.NormalizeFlatKey(newKey)
	v, ok := s.props[k]
	if !ok || !lineformat.IsValidKey(newK) {
		return s
	}
	if _, taken := s.props[newK]; taken {
		return s
	}
	s.props[newK] = v
	delete(s.props, k)
	return s
}

// EditValue replaces the value of an existing property. It does nothing if
// there is no property with the given key.
func (s *Store) EditValue(key, value string) *Store {
	k := lineformat.NormalizeFlatKey(key)
	if v, ok := s.props[k]; ok && v != value {
		s.props[k] = value
	}
	return s
}

// RemoveKey deletes the property with the given key, if present.
func (s *Store) RemoveKey(key string) *Store {
	delete(s.props, lineformat.NormalizeFlatKey(key))
	return s
}

// RemoveKeys deletes each of the given keys that is present.
func (s *Store) RemoveKeys(keys ...string) *Store {
	for _, key := range keys {
		s.RemoveKey(key)
	}
	return s
}

// AddItem sets the property key to value, creating it if needed. Pass the
// empty string for a property without a value. AddItem panics if the
// normalized key is not valid according to lineformat.IsValidKey.
func (s *Store) AddItem(key, value string) *Store {
	k := lineformat.NormalizeFlatKey(key)
	if !lineformat.IsValidKey(k) {
		panic(fmt.Sprintf("env: AddItem with invalid key %q", key))
	}
	if s.props == nil {
		s.props = make(map[string]string)
	}
	s.props[k] = value
	return s
}

// Environ returns the properties as "KEY=value" strings in key order, the form
// used by os.Environ and exec.Cmd.Env. Values are not quoted.
func (s *Store) Environ() []string {
	keys := s.Keys()
	environ := make([]string, 0, len(keys))
	for _, k := range keys {
		environ = append(environ, k+"="+s.props[k])
	}
	return environ
}

// toMap returns a copy of the properties. The result is never nil, so an
// empty store serializes as an empty object rather than null.
func (s *Store) toMap() map[string]string {
	m := make(map[string]string, s.Len())
	if s != nil {
		for k, v := range s.props {
			m[k] = v
		}
	}
	return m
}

// ToJSON returns the properties as a JSON object with keys in ascending order.
// If indented is true, the object is pretty-printed with two-space indents.
func (s *Store) ToJSON(indented bool) (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if indented {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s.toMap()); err != nil {
		return "", fmt.Errorf("env: marshal json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ToYAML returns the properties as a flat YAML mapping with keys in ascending
// order.
func (s *Store) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(s.toMap())
	if err != nil {
		return nil, fmt.Errorf("env: marshal yaml: %w", err)
	}
	return data, nil
}

// ToTOML returns the properties as a TOML document of string keys.
func (s *Store) ToTOML() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(s.toMap()); err != nil {
		return nil, fmt.Errorf("env: marshal toml: %w", err)
	}
	return buf.Bytes(), nil
}
