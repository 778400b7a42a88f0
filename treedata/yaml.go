// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treedata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlElement is the YAML form of one element.
type yamlElement struct {
	Type       string            `yaml:"type"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Content    string            `yaml:"content,omitempty"`
	Children   []*TreeData       `yaml:"children,omitempty"`
}

// MarshalYAML implements [yaml.Marshaler].
func (t *TreeData) MarshalYAML() (any, error) {
	el := &yamlElement{Type: t.Type, Content: t.Content, Children: t.Children}
	if t.NumAttributes() > 0 {
		el.Attributes = make(map[string]string, t.NumAttributes())
		for _, kv := range t.Attributes.Order {
			el.Attributes[kv.Key] = kv.Value
		}
	}
	return el, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Attributes are added
// in alphabetical order.
func (t *TreeData) UnmarshalYAML(value *yaml.Node) error {
	var el yamlElement
	if err := value.Decode(&el); err != nil {
		return err
	}
	if el.Type == "" {
		return fmt.Errorf("%w: element without type at line %d", ErrParse, value.Line)
	}
	for i, c := range el.Children {
		if c == nil {
			return fmt.Errorf("%w: empty child %d of %q at line %d", ErrParse, i, el.Type, value.Line)
		}
	}
	*t = TreeData{Type: el.Type, Content: el.Content, Children: el.Children}
	for _, name := range slices.Sorted(maps.Keys(el.Attributes)) {
		t.SetAttribute(name, el.Attributes[name])
	}
	return nil
}

// WriteYAML writes the tree as a YAML document, indenting each level
// by [DefaultIndentWidth] spaces.
func WriteYAML(w io.Writer, t *TreeData) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(DefaultIndentWidth)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// YAMLString returns the tree as a YAML document string.
func YAMLString(t *TreeData) string {
	var b bytes.Buffer
	WriteYAML(&b, t)
	return b.String()
}

// ParseYAML parses a YAML document written by [WriteYAML].
func ParseYAML(r io.Reader) (*TreeData, error) {
	t := &TreeData{}
	if err := yaml.NewDecoder(r).Decode(t); err != nil {
		if errors.Is(err, ErrParse) {
			return nil, err
		}
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return t, nil
}

// ParseYAMLString parses a YAML document string like [ParseYAML].
func ParseYAMLString(s string) (*TreeData, error) {
	return ParseYAML(strings.NewReader(s))
}
