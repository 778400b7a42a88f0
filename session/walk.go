// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the item and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished.
func (it *ItemBase) WalkUp(fun func(item Item) bool) bool {
	cur := it.this
	for cur != nil {
		if !fun(cur) {
			return false
		}
		cur = cur.AsItem().parent
	}
	return true
}

// WalkDown calls the given function on the item and all of its
// descendants, depth-first in flat child order. It stops walking the
// current branch if the function returns [Break] and keeps walking if
// it returns [Continue].
func (it *ItemBase) WalkDown(fun func(item Item) bool) {
	if it.this == nil || !fun(it.this) {
		return
	}
	for _, child := range it.tags.AllItems() {
		child.AsItem().WalkDown(fun)
	}
}

// Next returns the next item in depth-first order, or nil if this is
// the last item.
func Next(item Item) Item {
	if item.AsItem().HasChildren() {
		return item.AsItem().Child(0)
	}
	return NextSibling(item)
}

// NextSibling returns the next sibling of the item in flat order, or
// the next sibling of the closest ancestor that has one, or nil.
func NextSibling(item Item) Item {
	ib := item.AsItem()
	if ib.parent == nil {
		return nil
	}
	idx := IndexOfChild(ib.parent, item)
	if idx >= 0 && idx < ib.parent.AsItem().NumChildren()-1 {
		return ib.parent.AsItem().Child(idx + 1)
	}
	return NextSibling(ib.parent)
}

// Previous returns the previous item in depth-first order, or nil if
// this is the root.
func Previous(item Item) Item {
	ib := item.AsItem()
	if ib.parent == nil {
		return nil
	}
	idx := IndexOfChild(ib.parent, item)
	if idx > 0 {
		return lastChild(ib.parent.AsItem().Child(idx - 1))
	}
	return ib.parent
}

// Last returns the last item of the subtree in depth-first order.
func Last(item Item) Item {
	return lastChild(item)
}

// lastChild returns the deepest last descendant of the item,
// or the item itself if it has no children.
func lastChild(item Item) Item {
	ib := item.AsItem()
	if ib.HasChildren() {
		return lastChild(ib.Child(ib.NumChildren() - 1))
	}
	return item
}
