// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "fmt"

// ItemPool is a two-way index between identifiers and the items
// currently attached to a model. Several models may share one pool.
// It does not own the items.
type ItemPool struct {
	items map[string]Item
	keys  map[*ItemBase]string
}

// NewItemPool returns an empty pool.
func NewItemPool() *ItemPool {
	return &ItemPool{items: map[string]Item{}, keys: map[*ItemBase]string{}}
}

// Register adds the item under the given key. It fails if the key is
// used by another item or the item is already registered under
// another key.
func (p *ItemPool) Register(item Item, key string) error {
	ib := item.AsItem()
	if other, ok := p.items[key]; ok && other.AsItem() != ib {
		return fmt.Errorf("session.ItemPool: key %q is already used by %v", key, other.AsItem())
	}
	if old, ok := p.keys[ib]; ok && old != key {
		return fmt.Errorf("session.ItemPool: %v is already registered as %q", ib, old)
	}
	p.items[key] = item
	p.keys[ib] = key
	return nil
}

// Unregister removes the item. It fails if the item is not registered.
func (p *ItemPool) Unregister(item Item) error {
	ib := item.AsItem()
	key, ok := p.keys[ib]
	if !ok {
		return fmt.Errorf("%w: %v is not in the item pool", ErrNotFound, ib)
	}
	delete(p.keys, ib)
	delete(p.items, key)
	return nil
}

// ItemForKey returns the item with the given key, or nil.
func (p *ItemPool) ItemForKey(key string) Item {
	return p.items[key]
}

// KeyForItem returns the key of the given item, or "".
func (p *ItemPool) KeyForItem(item Item) string {
	if item == nil {
		return ""
	}
	return p.keys[item.AsItem()]
}

// Len returns the number of registered items.
func (p *ItemPool) Len() int {
	return len(p.items)
}
