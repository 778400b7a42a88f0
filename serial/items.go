// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"

	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/treedata"
)

// IsItemContainerConvertible returns whether the element is an
// ItemContainer element without attributes whose first child is a
// TagInfo element and whose other children are Item elements.
func IsItemContainerConvertible(t *treedata.TreeData) bool {
	if t == nil || t.Type != ItemContainerType || t.NumAttributes() != 0 || t.NumChildren() < 1 {
		return false
	}
	if !IsTagInfoConvertible(t.Children[0]) {
		return false
	}
	for _, child := range t.Children[1:] {
		if !IsItemConvertible(child) {
			return false
		}
	}
	return true
}

// ItemContainerToTree encodes the container: its tag, then its items.
func (c *Converter) ItemContainerToTree(ic *session.ItemContainer) *treedata.TreeData {
	t := treedata.New(ItemContainerType)
	t.AddChild(TagInfoToTree(ic.TagInfo()))
	for _, item := range ic.Items() {
		t.AddChild(c.ItemToTree(item))
	}
	return t
}

// PopulateItemContainer fills the given tag of the parent from the
// element. The tag of the element must equal the tag of the parent.
// Existing children are populated in place as long as their model
// types match the elements in order; the remaining existing children
// are taken out and the remaining elements are decoded and appended.
func (c *Converter) PopulateItemContainer(t *treedata.TreeData, parent session.Item, tag string) error {
	if !IsItemContainerConvertible(t) {
		return fmt.Errorf("%w: %v is not an ItemContainer", ErrNotConvertible, elementName(t))
	}
	info, err := TreeToTagInfo(t.Children[0])
	if err != nil {
		return err
	}
	p := parent.AsItem()
	ic, err := p.TaggedItems().Container(tag)
	if err != nil {
		return err
	}
	if !ic.TagInfo().Equal(info) {
		return fmt.Errorf("%w: saved %v does not match %v of %v", session.ErrTypeMismatch, info, ic.TagInfo(), p)
	}
	elems := t.Children[1:]
	existing := ic.Items()
	n := 0
	for n < len(elems) && n < len(existing) && existing[n].AsItem().ModelType() == elems[n].Attribute("model") {
		n++
	}
	for i := len(existing) - 1; i >= n; i-- {
		p.TakeItem(session.TagIndex{Tag: info.Name, Index: i})
	}
	for i := range n {
		if err := c.PopulateItem(elems[i], existing[i]); err != nil {
			return err
		}
	}
	for _, e := range elems[n:] {
		item, err := c.toItem(e, p.Model())
		if err != nil {
			return err
		}
		if _, err := p.InsertItem(item, session.TagIndexAppend(info.Name)); err != nil {
			return err
		}
	}
	return nil
}

// IsTaggedItemsConvertible returns whether the element is a TaggedItems
// element with exactly the attribute defaultTag whose children are all
// ItemContainer elements.
func IsTaggedItemsConvertible(t *treedata.TreeData) bool {
	if t == nil || t.Type != TaggedItemsType || !t.HasAttributeSet("defaultTag") {
		return false
	}
	for _, child := range t.Children {
		if !IsItemContainerConvertible(child) {
			return false
		}
	}
	return true
}

// TaggedItemsToTree encodes the tags of the item, one ItemContainer
// element per tag in registration order.
func (c *Converter) TaggedItemsToTree(tags *session.TaggedItems) *treedata.TreeData {
	t := treedata.New(TaggedItemsType)
	t.SetAttribute("defaultTag", tags.DefaultTag())
	for _, ic := range tags.Containers() {
		t.AddChild(c.ItemContainerToTree(ic))
	}
	return t
}

// PopulateTaggedItems fills the tags of the item from the element.
// Tags of the element that the item already has must have an equal
// [session.TagInfo]; missing tags are registered. The default tag
// is set from the element.
func (c *Converter) PopulateTaggedItems(t *treedata.TreeData, item session.Item) error {
	if !IsTaggedItemsConvertible(t) {
		return fmt.Errorf("%w: %v is not a TaggedItems", ErrNotConvertible, elementName(t))
	}
	ib := item.AsItem()
	for _, ct := range t.Children {
		info, err := TreeToTagInfo(ct.Children[0])
		if err != nil {
			return err
		}
		if !ib.IsTag(info.Name) {
			if err := ib.RegisterTag(info, false); err != nil {
				return err
			}
		}
		if err := c.PopulateItemContainer(ct, item, info.Name); err != nil {
			return err
		}
	}
	return ib.TaggedItems().SetDefaultTag(t.Attribute("defaultTag"))
}

// IsItemConvertible returns whether the element is an Item element with
// exactly the attribute model and the two children TaggedItems and
// ItemData, in that order.
func IsItemConvertible(t *treedata.TreeData) bool {
	if t == nil || t.Type != ItemType || !t.HasAttributeSet("model") || t.NumChildren() != 2 {
		return false
	}
	tags, data := t.Children[0], t.Children[1]
	return tags != nil && tags.Type == TaggedItemsType && data != nil && data.Type == ItemDataType
}

// ItemToTree encodes the item with its whole subtree.
func (c *Converter) ItemToTree(item session.Item) *treedata.TreeData {
	ib := item.AsItem()
	t := treedata.New(ItemType)
	t.SetAttribute("model", ib.ModelType())
	t.AddChild(c.TaggedItemsToTree(ib.TaggedItems()))
	t.AddChild(c.ItemDataToTree(ib.ItemData()))
	return t
}

// ToItem decodes a new item with its whole subtree, creating it with
// the catalogue of the converter. In [Copy] mode the decoded items get
// new identifiers once the subtree is complete.
func (c *Converter) ToItem(t *treedata.TreeData) (session.Item, error) {
	item, err := c.toItem(t, nil)
	if err != nil {
		return nil, err
	}
	if c.Mode == Copy {
		if err := c.regenerate(item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// toItem creates the item of the element with the catalogue for
// the given model and populates it.
func (c *Converter) toItem(t *treedata.TreeData, m *session.Model) (session.Item, error) {
	if !IsItemConvertible(t) {
		return nil, fmt.Errorf("%w: %v is not an Item", ErrNotConvertible, elementName(t))
	}
	item, err := c.catalogue(m).Create(t.Attribute("model"))
	if err != nil {
		return nil, err
	}
	if err := c.PopulateItem(t, item); err != nil {
		return nil, err
	}
	return item, nil
}

// PopulateItem fills the existing item from the element: its data
// (including the identifier) and its tags. The model type of the
// element must equal that of the item.
func (c *Converter) PopulateItem(t *treedata.TreeData, item session.Item) error {
	if !IsItemConvertible(t) {
		return fmt.Errorf("%w: %v is not an Item", ErrNotConvertible, elementName(t))
	}
	ib := item.AsItem()
	if model := t.Attribute("model"); model != ib.ModelType() {
		return fmt.Errorf("%w: can not load %q data into %v", session.ErrTypeMismatch, model, ib)
	}
	data, err := TreeToItemData(t.Children[1])
	if err != nil {
		return err
	}
	if err := ib.SetItemData(data); err != nil {
		return err
	}
	return c.PopulateTaggedItems(t.Children[0], item)
}

// regenerate gives the item and its subtree new identifiers, which
// must be distinct.
func (c *Converter) regenerate(item session.Item) error {
	gen := c.generator()
	seen := map[string]bool{}
	var err error
	item.AsItem().WalkDown(func(k session.Item) bool {
		if err != nil {
			return session.Break
		}
		id := gen.Generate()
		if seen[id] {
			err = fmt.Errorf("%w: identifier %q generated twice", session.ErrInvalidOperand, id)
			return session.Break
		}
		seen[id] = true
		_, err = k.AsItem().SetData(id, session.IdentifierRole)
		return err == nil
	})
	return err
}
