// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

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

// Lookup errors. Errors returned by Store methods wrap one of these.
var (
	ErrSectionNotFound = errors.New("section not found")
	ErrKeyNotFound     = errors.New("key not found")
)

// A Store is a set of INI sections ordered by name, each holding properties
// ordered by key. The zero value is an empty store. Stores are not safe for
// concurrent mutation.
type Store struct {
	sections map[string]section
}

// section maps normalized keys to values.
type section map[string]string

func (sect section) keys() []string {
	keys := make([]string, 0, len(sect))
	for k := range sect {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sections returns the section names in ascending order. The global section
// is included (as "") if it exists.
func (s *Store) Sections() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasSection reports whether s has a section with the given name.
func (s *Store) HasSection(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.sections[name]
	return ok
}

func (s *Store) section(name string) (section, error) {
	if s != nil {
		if sect, ok := s.sections[name]; ok {
			return sect, nil
		}
	}
	return nil, fmt.Errorf("ini: [%s]: %w", name, ErrSectionNotFound)
}

// Keys returns the normalized keys of the named section in ascending order.
// If the section does not exist, Keys returns an error wrapping
// ErrSectionNotFound.
func (s *Store) Keys(sectionName string) ([]string, error) {
	sect, err := s.section(sectionName)
	if err != nil {
		return nil, err
	}
	return sect.keys(), nil
}

// Value returns the value of a property. The key is normalized before lookup.
// The error wraps ErrSectionNotFound or ErrKeyNotFound.
func (s *Store) Value(sectionName, key string) (string, error) {
	sect, err := s.section(sectionName)
	if err != nil {
		return "", err
	}
	k := lineformat.NormalizeSectionKey(key)
	v, ok := sect[k]
	if !ok {
		return "", fmt.Errorf("ini: [%s] %q: %w", sectionName, k, ErrKeyNotFound)
	}
	return v, nil
}

// EditSection renames a section, keeping its properties. It does nothing if
// sectionName does not exist, newName already does, or newName is not a valid
// section name (see lineformat.IsValidSection).
func (s *Store) EditSection(sectionName, newName string) *Store {
	sect, ok := s.sections[sectionName]
	if !ok || !lineformat.IsValidSection(newName) {
		return s
	}
	if _, taken := s.sections[newName]; taken {
		return s
	}
	s.sections[newName] = sect
	delete(s.sections, sectionName)
	return s
}

// EditKey renames a property within a section, keeping its value. It does
// nothing if key does not exist in the section, newKey already does, or newKey
// is not a valid key (see lineformat.IsValidKey). Unlike
// the other edit methods, EditKey returns an error wrapping ErrSectionNotFound
// if the section itself does not exist.
func (s *Store) EditKey(sectionName, key, newKey string) (*Store, error) {
	if !s.HasSection(sectionName) {
		return s, fmt.Errorf("ini: rename %q in [%s]: %w", key, sectionName, ErrSectionNotFound)
	}
	sect := s.sections[sectionName]
	k := lineformat.NormalizeSectionKey(key)
	newK := lineformat.NormalizeSectionKey(newKey)
	v, ok := sect[k]
	if !ok || !lineformat.IsValidKey(newK) {
		return s, nil
	}
	if _, taken := sect[newK]; taken {
		return s, nil
	}
	sect[newK] = v
	delete(sect, k)
	return s, nil
}

// EditValue replaces the value of an existing property. It does nothing if the
// section or key does not exist.
func (s *Store) EditValue(sectionName, key, value string) *Store {
	sect, ok := s.sections[sectionName]
	if !ok {
		return s
	}
	k := lineformat.NormalizeSectionKey(key)
	if v, ok := sect[k]; ok && v != value {
		sect[k] = value
	}
	return s
}

// RemoveSection deletes a section and all of its properties, if present.
func (s *Store) RemoveSection(sectionName string) *Store {
	delete(s.sections, sectionName)
	return s
}

// RemoveSections deletes each of the named sections that is present.
func (s *Store) RemoveSections(sectionNames ...string) *Store {
	for _, name := range sectionNames {
		s.RemoveSection(name)
	}
	return s
}

// RemoveKey deletes a property from a section if both exist. The section is
// kept even if it becomes empty.
func (s *Store) RemoveKey(sectionName, key string) *Store {
	if sect, ok := s.sections[sectionName]; ok {
		delete(sect, lineformat.NormalizeSectionKey(key))
	}
	return s
}

// RemoveKeys deletes each of the given keys from a section.
func (s *Store) RemoveKeys(sectionName string, keys ...string) *Store {
	for _, key := range keys {
		s.RemoveKey(sectionName, key)
	}
	return s
}

// AddSection creates an empty section if it does not already exist. It panics
// if lineformat.IsValidSection(sectionName) reports false.
func (s *Store) AddSection(sectionName string) *Store {
	if !lineformat.IsValidSection(sectionName) {
		panic(fmt.Sprintf("ini: AddSection with invalid section %q", sectionName))
	}
	s.addSection(sectionName)
	return s
}

func (s *Store) addSection(name string) section {
	if s.sections == nil {
		s.sections = make(map[string]section)
	}
	sect, ok := s.sections[name]
	if !ok {
		sect = make(section)
		s.sections[name] = sect
	}
	return sect
}

// AddItem sets a property, creating the section and key as needed. Pass the
// empty string for a property without a value. AddItem panics if the section
// name or the normalized key is not valid according to
// lineformat.IsValidSection and lineformat.IsValidKey.
func (s *Store) AddItem(sectionName, key, value string) *Store {
	if !lineformat.IsValidSection(sectionName) {
		panic(fmt.Sprintf("ini: AddItem with invalid section %q", sectionName))
	}
	k := lineformat.NormalizeSectionKey(key)
	if !lineformat.IsValidKey(k) {
		panic(fmt.Sprintf("ini: AddItem with invalid key %q", key))
	}
	s.addSection(sectionName)[k] = value
	return s
}

// toMap returns a deep copy of the sections. The result is never nil.
func (s *Store) toMap() map[string]map[string]string {
	m := make(map[string]map[string]string)
	if s == nil {
		return m
	}
	for name, sect := range s.sections {
		props := make(map[string]string, len(sect))
		for k, v := range sect {
			props[k] = v
		}
		m[name] = props
	}
	return m
}

// ToJSON returns the store as a JSON object of section objects, with sections
// and keys in ascending order. If indented is true, the object is
// pretty-printed with two-space indents.
func (s *Store) ToJSON(indented bool) (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if indented {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s.toMap()); err != nil {
		return "", fmt.Errorf("ini: marshal json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ToYAML returns the store as a YAML mapping of section mappings.
func (s *Store) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(s.toMap())
	if err != nil {
		return nil, fmt.Errorf("ini: marshal yaml: %w", err)
	}
	return data, nil
}

// ToTOML returns the store as a TOML document. Properties of the global
// section become top-level keys and every other section becomes a table.
// ToTOML returns an error if a global key has the same name as a section.
func (s *Store) ToTOML() ([]byte, error) {
	m := s.toMap()
	doc := make(map[string]interface{}, len(m))
	for name, props := range m {
		if name != "" {
			doc[name] = props
		}
	}
	for k, v := range m[""] {
		if _, dup := doc[k]; dup {
			return nil, fmt.Errorf("ini: marshal toml: global key %q collides with section [%s]", k, k)
		}
		doc[k] = v
	}
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("ini: marshal toml: %w", err)
	}
	return buf.Bytes(), nil
}
