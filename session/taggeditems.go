// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"slices"

	"cogentcore.org/mvvm/base/keylist"
)

// TaggedItems is the ordered set of tagged containers of one item.
// At most one of the tags is the default tag, which is used when
// a child is addressed with an empty tag name.
//
// The flat view of all children concatenates the containers in tag
// registration order; [TaggedItems.FlatIndex] and [TaggedItems.TagIndexAt]
// translate between flat indexes and [TagIndex] values.
type TaggedItems struct {
	containers keylist.List[string, *ItemContainer]
	defaultTag string
}

// NewTaggedItems returns an empty set of tags.
func NewTaggedItems() *TaggedItems {
	return &TaggedItems{}
}

// RegisterTag adds a new empty container for the given tag, optionally
// making it the default tag. The name must be non-empty and unused.
func (t *TaggedItems) RegisterTag(tag TagInfo, setAsDefault bool) error {
	if tag.Name == "" {
		return fmt.Errorf("%w: empty tag name", ErrDuplicateTag)
	}
	if t.IsTag(tag.Name) {
		return fmt.Errorf("%w: tag %q is already registered", ErrDuplicateTag, tag.Name)
	}
	if err := tag.Validate(); err != nil {
		return err
	}
	if err := t.containers.Add(tag.Name, NewItemContainer(tag)); err != nil {
		return err
	}
	if setAsDefault {
		t.defaultTag = tag.Name
	}
	return nil
}

// IsTag returns whether a tag with the given name is registered.
func (t *TaggedItems) IsTag(name string) bool {
	return t.containers.IndexByKey(name) >= 0
}

// DefaultTag returns the default tag name, or "" if there is none.
func (t *TaggedItems) DefaultTag() string {
	return t.defaultTag
}

// SetDefaultTag makes the given registered tag the default;
// an empty name clears the default.
func (t *TaggedItems) SetDefaultTag(name string) error {
	if name != "" && !t.IsTag(name) {
		return fmt.Errorf("%w: %q", ErrNoSuchTag, name)
	}
	t.defaultTag = name
	return nil
}

// Container returns the container of the given tag; an empty name
// resolves to the default tag.
func (t *TaggedItems) Container(tag string) (*ItemContainer, error) {
	name := tag
	if name == "" {
		name = t.defaultTag
		if name == "" {
			return nil, fmt.Errorf("%w: empty tag and no default tag", ErrNoSuchTag)
		}
	}
	c, ok := t.containers.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchTag, name)
	}
	return c, nil
}

// Containers returns the containers in registration order.
func (t *TaggedItems) Containers() []*ItemContainer {
	return slices.Clone(t.containers.Values)
}

// Tags returns the tag names in registration order.
func (t *TaggedItems) Tags() []string {
	return slices.Clone(t.containers.Keys)
}

// Len returns the number of registered tags.
func (t *TaggedItems) Len() int {
	return t.containers.Len()
}

// ItemCount returns the number of children in the given tag,
// or 0 if the tag does not exist.
func (t *TaggedItems) ItemCount(tag string) int {
	c, err := t.Container(tag)
	if err != nil {
		return 0
	}
	return c.Count()
}

// CanInsert returns whether the item can be inserted at the given position.
func (t *TaggedItems) CanInsert(item Item, ti TagIndex) bool {
	c, err := t.Container(ti.Tag)
	return err == nil && c.CanInsert(item, ti.Index)
}

// Insert inserts the item at the given position, returning false if
// that is not possible.
func (t *TaggedItems) Insert(item Item, ti TagIndex) bool {
	c, err := t.Container(ti.Tag)
	return err == nil && c.Insert(item, ti.Index)
}

// CanTake returns whether there is a child at the given position.
func (t *TaggedItems) CanTake(ti TagIndex) bool {
	c, err := t.Container(ti.Tag)
	return err == nil && c.CanTake(ti.Index)
}

// Take removes and returns the child at the given position, or nil.
func (t *TaggedItems) Take(ti TagIndex) Item {
	c, err := t.Container(ti.Tag)
	if err != nil {
		return nil
	}
	return c.Take(ti.Index)
}

// ItemAt returns the child at the given position, or nil.
func (t *TaggedItems) ItemAt(ti TagIndex) Item {
	c, err := t.Container(ti.Tag)
	if err != nil {
		return nil
	}
	return c.ItemAt(ti.Index)
}

// Items returns the children of the given tag.
func (t *TaggedItems) Items(tag string) []Item {
	c, err := t.Container(tag)
	if err != nil {
		return nil
	}
	return c.Items()
}

// AllItems returns the children of all tags, in flat order.
func (t *TaggedItems) AllItems() []Item {
	var res []Item
	for _, c := range t.containers.Values {
		res = append(res, c.items...)
	}
	return res
}

// NumItems returns the number of children of all tags.
func (t *TaggedItems) NumItems() int {
	n := 0
	for _, c := range t.containers.Values {
		n += c.Count()
	}
	return n
}

// TagIndexOf returns the position of the given child, with an
// empty tag and index -1 if it is not a child.
func (t *TaggedItems) TagIndexOf(item Item) TagIndex {
	for _, c := range t.containers.Values {
		if idx := c.IndexOf(item); idx >= 0 {
			return TagIndex{Tag: c.Name(), Index: idx}
		}
	}
	return TagIndex{Index: -1}
}

// FlatIndex returns the flat index of the given position, or -1 if
// there is no child there.
func (t *TaggedItems) FlatIndex(ti TagIndex) int {
	c, err := t.Container(ti.Tag)
	if err != nil || !c.CanTake(ti.Index) {
		return -1
	}
	offset := 0
	for _, oc := range t.containers.Values {
		if oc == c {
			return offset + ti.Index
		}
		offset += oc.Count()
	}
	return -1
}

// TagIndexAt returns the position of the child at the given flat
// index, with an empty tag and index -1 if it is out of range.
func (t *TaggedItems) TagIndexAt(flat int) TagIndex {
	if flat < 0 {
		return TagIndex{Index: -1}
	}
	for _, c := range t.containers.Values {
		if flat < c.Count() {
			return TagIndex{Tag: c.Name(), Index: flat}
		}
		flat -= c.Count()
	}
	return TagIndex{Index: -1}
}
