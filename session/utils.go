// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

// IndexOfChild returns the flat index of the child in the parent,
// or -1 if it is not a child.
func IndexOfChild(parent, child Item) int {
	if parent == nil || child == nil {
		return -1
	}
	tags := parent.AsItem().tags
	return tags.FlatIndex(tags.TagIndexOf(child))
}

// IsItemAncestor returns whether candidate is a strict ancestor of item.
func IsItemAncestor(item, candidate Item) bool {
	if item == nil || candidate == nil {
		return false
	}
	target := candidate.AsItem()
	for p := item.AsItem().parent; p != nil; p = p.AsItem().parent {
		if p.AsItem() == target {
			return true
		}
	}
	return false
}

// HasTag returns whether the item has a tag with the given name.
func HasTag(item Item, tag string) bool {
	return item != nil && item.AsItem().IsTag(tag)
}

// CopyNumber returns the position of the item among the children of
// its parent that share its model type, or -1 if it has no parent or is
// the only one of its type.
func CopyNumber(item Item) int {
	ib := item.AsItem()
	if ib.parent == nil {
		return -1
	}
	count, result := 0, -1
	for _, sib := range ib.parent.AsItem().Children() {
		if sib.AsItem() == ib {
			result = count
		}
		if sib.AsItem().ModelType() == ib.ModelType() {
			count++
		}
	}
	if count > 1 {
		return result
	}
	return -1
}

// FindNextSibling returns the next item in the same tag, or nil.
func FindNextSibling(item Item) Item {
	ib := item.AsItem()
	if ib.parent == nil {
		return nil
	}
	return ib.parent.AsItem().ItemAt(ib.TagIndex().Next())
}

// FindPreviousSibling returns the previous item in the same tag, or nil.
func FindPreviousSibling(item Item) Item {
	ib := item.AsItem()
	if ib.parent == nil {
		return nil
	}
	ti := ib.TagIndex()
	if ti.Index <= 0 {
		return nil
	}
	return ib.parent.AsItem().ItemAt(ti.Prev())
}

// FindNextItemToSelect returns the item to select when the given item
// goes away: its next sibling, else its previous sibling, else its parent.
func FindNextItemToSelect(item Item) Item {
	if next := FindNextSibling(item); next != nil {
		return next
	}
	if prev := FindPreviousSibling(item); prev != nil {
		return prev
	}
	return item.AsItem().parent
}

// TopLevelItems returns the children of the item that are not in
// single property tags.
func TopLevelItems(item Item) []Item {
	return childrenBy(item, false)
}

// SinglePropertyItems returns the children of the item that are in
// single property tags.
func SinglePropertyItems(item Item) []Item {
	return childrenBy(item, true)
}

func childrenBy(item Item, singleProperty bool) []Item {
	var res []Item
	for _, c := range item.AsItem().tags.Containers() {
		if c.tag.IsSinglePropertyTag() == singleProperty {
			res = append(res, c.Items()...)
		}
	}
	return res
}
