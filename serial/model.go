// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"

	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/treedata"
)

// IsModelConvertible returns whether the element is a Model element with
// exactly the attribute type whose children are all Item elements.
func IsModelConvertible(t *treedata.TreeData) bool {
	if t == nil || t.Type != ModelType || !t.HasAttributeSet("type") {
		return false
	}
	for _, child := range t.Children {
		if !IsItemConvertible(child) {
			return false
		}
	}
	return true
}

// ModelToTree encodes the model: its type and its top items.
func (c *Converter) ModelToTree(m *session.Model) *treedata.TreeData {
	t := treedata.New(ModelType)
	t.SetAttribute("type", m.ModelType())
	for _, item := range m.TopItems() {
		t.AddChild(c.ItemToTree(item))
	}
	return t
}

// PopulateModel replaces the content of the model by the items of the
// element, using [session.Model.Clear] so that the model itself keeps
// its identity. The type of the element must equal the model type.
// Loading is not atomic: if an item fails to decode, the items decoded
// before it stay in the model.
func (c *Converter) PopulateModel(t *treedata.TreeData, m *session.Model) error {
	if !IsModelConvertible(t) {
		return fmt.Errorf("%w: %v is not a Model", ErrNotConvertible, elementName(t))
	}
	if typ := t.Attribute("type"); typ != m.ModelType() {
		return fmt.Errorf("%w: can not load a %q model into a %q model", session.ErrTypeMismatch, typ, m.ModelType())
	}
	return m.Clear(func(root session.Item) error {
		for _, e := range t.Children {
			item, err := c.toItem(e, m)
			if err != nil {
				return err
			}
			if c.Mode == Copy {
				if err := c.regenerate(item); err != nil {
					return err
				}
			}
			if _, err := m.Insert(item, root); err != nil {
				return err
			}
		}
		return nil
	})
}

// CopyItem returns a deep copy of the item with new identifiers for
// the whole subtree, created with the given catalogue (nil for the
// catalogue of the model of the item).
func CopyItem(item session.Item, c *session.Catalogue) (session.Item, error) {
	if c == nil {
		c = (&Converter{}).catalogue(item.AsItem().Model())
	}
	conv := NewConverter(c, Copy)
	return conv.ToItem(conv.ItemToTree(item))
}

// InsertCopy inserts a copy of the item (see [CopyItem]) into the model
// under the parent (nil for the root) at the optional position, and
// returns the copy.
func InsertCopy(m *session.Model, item, parent session.Item, ti ...session.TagIndex) (session.Item, error) {
	cp, err := CopyItem(item, m.Catalogue())
	if err != nil {
		return nil, err
	}
	return m.Insert(cp, parent, ti...)
}
