// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treedata provides [TreeData], a generic attributed tree that
// is the intermediate form between session items and their persistent
// XML or YAML representation. It knows nothing about items or models.
package treedata

import (
	"errors"
	"slices"

	"cogentcore.org/mvvm/base/ordmap"
)

// ErrParse indicates malformed XML or YAML input.
var ErrParse = errors.New("treedata: parse error")

// TreeData is one element of an attributed tree: an element type,
// string attributes with unique names, string content, and ordered
// child elements. It is a plain value with no back references.
type TreeData struct {

	// Type is the element type name.
	Type string

	// Attributes are the attributes, in the order they were added.
	Attributes ordmap.Map[string, string]

	// Content is the text content.
	Content string

	// Children are the child elements, in order.
	Children []*TreeData
}

// New returns a new element of the given type.
func New(typ string) *TreeData {
	return &TreeData{Type: typ}
}

// AddChild appends the given child and returns it.
func (t *TreeData) AddChild(child *TreeData) *TreeData {
	t.Children = append(t.Children, child)
	return child
}

// NumChildren returns the number of children.
func (t *TreeData) NumChildren() int {
	return len(t.Children)
}

// AddAttribute adds the attribute if there is none with that name, and
// returns whether it was added. Existing values are never overwritten.
func (t *TreeData) AddAttribute(name, value string) bool {
	if t.HasAttribute(name) {
		return false
	}
	t.Attributes.Add(name, value)
	return true
}

// SetAttribute sets the attribute, replacing any existing value.
func (t *TreeData) SetAttribute(name, value string) {
	t.Attributes.Add(name, value)
}

// HasAttribute returns whether there is an attribute with the given name.
func (t *TreeData) HasAttribute(name string) bool {
	return t.Attributes.Has(name)
}

// Attribute returns the value of the given attribute, or "".
func (t *TreeData) Attribute(name string) string {
	return t.Attributes.ValueByKey(name)
}

// NumAttributes returns the number of attributes.
func (t *TreeData) NumAttributes() int {
	return t.Attributes.Len()
}

// AttributeNames returns the attribute names, in the order they were added.
func (t *TreeData) AttributeNames() []string {
	return t.Attributes.Keys()
}

// HasAttributeSet returns whether the element has exactly the
// given attribute names, in any order.
func (t *TreeData) HasAttributeSet(names ...string) bool {
	if t.NumAttributes() != len(names) {
		return false
	}
	for _, name := range names {
		if !t.HasAttribute(name) {
			return false
		}
	}
	return true
}

// SetContent sets the text content.
func (t *TreeData) SetContent(content string) {
	t.Content = content
}

// Equal returns whether both trees have the same type, content,
// attributes (in any order) and equal children in the same order.
func (t *TreeData) Equal(o *TreeData) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Type != o.Type || t.Content != o.Content || len(t.Children) != len(o.Children) {
		return false
	}
	if t.NumAttributes() != o.NumAttributes() {
		return false
	}
	for _, kv := range t.Attributes.Order {
		v, ok := o.Attributes.ValueByKeyTry(kv.Key)
		if !ok || v != kv.Value {
			return false
		}
	}
	return slices.EqualFunc(t.Children, o.Children, func(a, b *TreeData) bool { return a.Equal(b) })
}

// Clone returns a deep copy of the tree.
func (t *TreeData) Clone() *TreeData {
	cp := &TreeData{Type: t.Type, Content: t.Content}
	for _, kv := range t.Attributes.Order {
		cp.Attributes.Add(kv.Key, kv.Value)
	}
	if len(t.Children) > 0 {
		cp.Children = make([]*TreeData, len(t.Children))
		for i, c := range t.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return cp
}

// String returns the tree as an XML fragment.
func (t *TreeData) String() string {
	return ElementXMLString(t)
}
