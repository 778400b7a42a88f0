// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"slices"

	"cogentcore.org/mvvm/base/slicesx"
)

// ItemContainer is the ordered list of children held by one tag.
// Its count stays within the tag limits on insertion, and every
// child has a model type the tag accepts.
//
// Taking does not check the minimum, so callers that need to keep
// a tag populated must do so themselves.
type ItemContainer struct {
	tag   TagInfo
	items []Item
}

// NewItemContainer returns an empty container for the given tag.
func NewItemContainer(tag TagInfo) *ItemContainer {
	return &ItemContainer{tag: tag.Clone()}
}

// Name returns the tag name.
func (c *ItemContainer) Name() string {
	return c.tag.Name
}

// TagInfo returns a copy of the tag description.
func (c *ItemContainer) TagInfo() TagInfo {
	return c.tag.Clone()
}

// Count returns the number of children.
func (c *ItemContainer) Count() int {
	return len(c.items)
}

// IsEmpty returns whether there are no children.
func (c *ItemContainer) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the children, in order.
func (c *ItemContainer) Items() []Item {
	return slices.Clone(c.items)
}

// MaximumReached returns whether no more children fit.
func (c *ItemContainer) MaximumReached() bool {
	return c.tag.MaximumReached(len(c.items))
}

// MinimumReached returns whether the count equals the tag minimum.
func (c *ItemContainer) MinimumReached() bool {
	return len(c.items) == c.tag.Min
}

// CanInsert returns whether the item can be inserted at the given index.
// An index of -1 (or the current count) appends.
func (c *ItemContainer) CanInsert(item Item, index int) bool {
	if item == nil || item.AsItem() == nil {
		return false
	}
	if index == -1 {
		index = len(c.items)
	}
	if index < 0 || index > len(c.items) {
		return false
	}
	if c.MaximumReached() || !c.tag.IsValidChild(item.AsItem().ModelType()) {
		return false
	}
	return c.IndexOf(item) < 0
}

// Insert inserts the item at the given index, returning false if
// [ItemContainer.CanInsert] does not allow it.
func (c *ItemContainer) Insert(item Item, index int) bool {
	if !c.CanInsert(item, index) {
		return false
	}
	if index == -1 {
		index = len(c.items)
	}
	c.items = slices.Insert(c.items, index, item)
	return true
}

// CanTake returns whether there is a child at the given index.
func (c *ItemContainer) CanTake(index int) bool {
	return index >= 0 && index < len(c.items)
}

// Take removes and returns the child at the given index,
// or nil if there is none.
func (c *ItemContainer) Take(index int) Item {
	if !c.CanTake(index) {
		return nil
	}
	item := c.items[index]
	c.items = slices.Delete(c.items, index, index+1)
	return item
}

// IndexOf returns the index of the given child, or -1.
// The optional startIndex speeds up the search when the
// position is roughly known.
func (c *ItemContainer) IndexOf(item Item, startIndex ...int) int {
	if item == nil {
		return -1
	}
	target := item.AsItem()
	return slicesx.Search(c.items, func(e Item) bool { return e.AsItem() == target }, startIndex...)
}

// ItemAt returns the child at the given index, or nil.
func (c *ItemContainer) ItemAt(index int) Item {
	if index < 0 || index >= len(c.items) {
		return nil
	}
	return c.items[index]
}
