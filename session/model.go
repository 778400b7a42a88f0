// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"reflect"

	"cogentcore.org/mvvm/base/errors"
	"cogentcore.org/mvvm/base/uid"
	"cogentcore.org/mvvm/variant"
)

// RootTag is the default tag of the model root.
const RootTag = "rootTag"

// Model owns a tree of items under a root item, indexes the attached
// items by identifier in an [ItemPool], and reports changes through
// its [ModelMapper]. All mutations go through the items or the model
// and keep the pool in step with the tree.
type Model struct {
	modelType string
	root      Item
	pool      *ItemPool
	catalogue *Catalogue
	mapper    *ModelMapper

	// gen makes the identifiers of items created by the model;
	// nil uses [uid.Default].
	gen uid.Generator
}

// ModelOption configures a [Model] in [NewModel].
type ModelOption func(m *Model)

// WithPool makes the model use the given pool, which may be shared
// with other models.
func WithPool(pool *ItemPool) ModelOption {
	return func(m *Model) { m.pool = pool }
}

// WithCatalogue makes the model create items with the given catalogue
// instead of [StandardCatalogue].
func WithCatalogue(c *Catalogue) ModelOption {
	return func(m *Model) { m.catalogue = c }
}

// WithGenerator makes the model assign identifiers from the given
// generator to the items it creates.
func WithGenerator(g uid.Generator) ModelOption {
	return func(m *Model) { m.gen = g }
}

// NewModel returns a new model of the given type with an empty root.
func NewModel(modelType string, opts ...ModelOption) *Model {
	m := &Model{modelType: modelType}
	for _, opt := range opts {
		opt(m)
	}
	if m.pool == nil {
		m.pool = NewItemPool()
	}
	if m.catalogue == nil {
		m.catalogue = StandardCatalogue()
	}
	m.mapper = newModelMapper(m)
	m.root = m.newRoot()
	return m
}

// newRoot makes a root item attached to the model.
func (m *Model) newRoot() Item {
	root := NewItem(RootItemType)
	m.assignIdentifiers(root)
	errors.Must(root.RegisterTag(UniversalTag(RootTag), true))
	root.model = m
	errors.Must(m.pool.Register(root, root.Identifier()))
	return root
}

// assignIdentifiers gives the item and its subtree identifiers from
// the model generator, if it has one.
func (m *Model) assignIdentifiers(item Item) {
	if m.gen == nil {
		return
	}
	item.AsItem().WalkDown(func(k Item) bool {
		k.AsItem().data.SetData(variant.FromString(m.gen.Generate()), IdentifierRole)
		return Continue
	})
}

func (m *Model) String() string {
	return m.modelType
}

// ModelType returns the declared type of the model.
func (m *Model) ModelType() string {
	return m.modelType
}

// RootItem returns the root item.
func (m *Model) RootItem() Item {
	return m.root
}

// Pool returns the identifier pool.
func (m *Model) Pool() *ItemPool {
	return m.pool
}

// Catalogue returns the item factory of the model.
func (m *Model) Catalogue() *Catalogue {
	return m.catalogue
}

// Mapper returns the change notifier of the model.
func (m *Model) Mapper() *ModelMapper {
	return m.mapper
}

// TopItems returns the children of the root.
func (m *Model) TopItems() []Item {
	return m.root.AsItem().Children()
}

// TopItem returns the first child of the root of type T, or the zero
// value and false.
func TopItem[T Item](m *Model) (T, bool) {
	for _, item := range m.TopItems() {
		if t, ok := item.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// FindItem returns the item with the given identifier, or nil.
func (m *Model) FindItem(id string) Item {
	return m.pool.ItemForKey(id)
}

// Contains returns whether the item belongs to this model.
func (m *Model) Contains(item Item) bool {
	return item != nil && item.AsItem().model == m
}

// Data returns the value of the given role of the item.
func (m *Model) Data(item Item, role Role) variant.Variant {
	return item.AsItem().Data(role)
}

// SetData sets the value of the given role of the item and returns
// whether the data changed.
func (m *Model) SetData(item Item, value any, role Role) (bool, error) {
	if !m.Contains(item) {
		return false, fmt.Errorf("%w: %v is not in model %v", ErrNotFound, item.AsItem(), m)
	}
	return item.AsItem().SetData(value, role)
}

// resolveParent returns the root for a nil parent, and checks that
// the parent belongs to the model.
func (m *Model) resolveParent(parent Item) (Item, error) {
	if parent == nil {
		return m.root, nil
	}
	if !m.Contains(parent) {
		return nil, fmt.Errorf("%w: parent %v is not in model %v", ErrNotFound, parent.AsItem(), m)
	}
	return parent, nil
}

func optTagIndex(ti []TagIndex) TagIndex {
	if len(ti) > 0 {
		return ti[0]
	}
	return TagIndex{Index: -1}
}

// InsertNewItem creates an item of the given model type and inserts it
// under the parent (nil for the root) at the optional position, which
// defaults to appending to the default tag.
func (m *Model) InsertNewItem(modelType string, parent Item, ti ...TagIndex) (Item, error) {
	item, err := m.catalogue.Create(modelType)
	if err != nil {
		return nil, err
	}
	m.assignIdentifiers(item)
	return m.Insert(item, parent, ti...)
}

// InsertItem creates an item of type T, which must be registered in the
// catalogue of the model, and inserts it like [Model.InsertNewItem].
func InsertItem[T Item](m *Model, parent Item, ti ...TagIndex) (T, error) {
	var zero T
	name, ok := m.catalogue.typeNames[reflect.TypeFor[T]()]
	if !ok {
		return zero, fmt.Errorf("%w: %v is not in the catalogue", ErrUnknownItemType, reflect.TypeFor[T]())
	}
	item, err := m.InsertNewItem(name, parent, ti...)
	if err != nil {
		return zero, err
	}
	return item.(T), nil
}

// Insert inserts the given item under the parent (nil for the root)
// at the optional position, which defaults to appending to the
// default tag.
func (m *Model) Insert(item Item, parent Item, ti ...TagIndex) (Item, error) {
	parent, err := m.resolveParent(parent)
	if err != nil {
		return nil, err
	}
	return parent.AsItem().InsertItem(item, optTagIndex(ti))
}

// TakeItem takes the child at the given position out of the parent
// (nil for the root) and returns it.
func (m *Model) TakeItem(parent Item, ti TagIndex) (Item, error) {
	parent, err := m.resolveParent(parent)
	if err != nil {
		return nil, err
	}
	item := parent.AsItem().TakeItem(ti)
	if item == nil {
		return nil, fmt.Errorf("%w: no item at %v in %v", ErrNotFound, ti, parent.AsItem())
	}
	return item, nil
}

// RemoveItem takes the item out of the model and discards it.
func (m *Model) RemoveItem(item Item) error {
	if !m.Contains(item) || item.AsItem().parent == nil {
		return fmt.Errorf("%w: %v can not be removed from model %v", ErrNotFound, item, m)
	}
	ib := item.AsItem()
	_, err := m.TakeItem(ib.parent, ib.TagIndex())
	return err
}

// MoveItem moves the item to the given position of the new parent
// (nil for the root). Within the same tag, the item ends up at the
// given index, and an index of -1 or the tag count moves it to the
// end. Moving an item to its own position does nothing. If the item
// can not be inserted at its new position, it is put back where it was.
func (m *Model) MoveItem(item, newParent Item, ti TagIndex) error {
	if newParent == nil {
		newParent = m.root
	}
	if err := m.ValidateItemMove(item, newParent, ti); err != nil {
		return err
	}
	ib := item.AsItem()
	np := newParent.AsItem()
	from := ib.TagIndex()
	c, _ := np.tags.Container(ti.Tag)
	to := TagIndex{Tag: c.Name(), Index: ti.Index}
	if ib.parent.AsItem() == np && from.Tag == to.Tag {
		if to.Index == -1 || to.Index >= c.Count() {
			to.Index = c.Count() - 1
		}
		if to.Index == from.Index {
			return nil
		}
	}
	op := ib.parent.AsItem()
	taken := op.TakeItem(from)
	if _, err := np.InsertItem(taken, to); err != nil {
		errors.Log1(op.InsertItem(taken, from))
		return err
	}
	return nil
}

// ValidateItemMove returns an error wrapping [ErrInvalidMove] if the item
// can not be moved to the given position of the new parent.
func (m *Model) ValidateItemMove(item, newParent Item, ti TagIndex) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidMove, fmt.Sprintf(format, args...))
	}
	if item == nil || newParent == nil {
		return invalid("nil item or parent")
	}
	ib := item.AsItem()
	np := newParent.AsItem()
	if ib.model == nil || np.model == nil {
		return invalid("%v or %v is not in a model", ib, np)
	}
	if ib.model != np.model || ib.model != m {
		return invalid("%v and %v are not both in model %v", ib, np, m)
	}
	if ib.parent == nil {
		return invalid("the root can not be moved")
	}
	from := ib.TagIndex()
	if ib.parent.AsItem().IsSinglePropertyTag(from.Tag) {
		return invalid("%v is a property item", ib)
	}
	c, err := np.tags.Container(ti.Tag)
	if err != nil {
		return invalid("%v", err)
	}
	if c.tag.IsSinglePropertyTag() {
		return invalid("tag %q of %v is a property tag", c.Name(), np)
	}
	if np == ib || IsItemAncestor(newParent, item) {
		return invalid("%v can not be moved into itself", ib)
	}
	if !c.tag.IsValidChild(ib.modelType) {
		return invalid("tag %q of %v does not take %q items", c.Name(), np, ib.modelType)
	}
	if ti.Index < -1 || ti.Index > c.Count() {
		return invalid("index %d out of range in tag %q of %v", ti.Index, c.Name(), np)
	}
	sameTag := ib.parent.AsItem() == np && from.Tag == c.Name()
	if !sameTag && c.MaximumReached() {
		return invalid("tag %q of %v is full", c.Name(), np)
	}
	return nil
}

// Clear replaces the root by a new empty one, discarding all items, and
// then calls rebuild (if non-nil) with the new root to populate it.
// The replacement is reported by the model mapper before and after.
// Items inserted by rebuild before it fails stay in the model.
func (m *Model) Clear(rebuild func(root Item) error) error {
	m.mapper.emitModelAboutToReset()
	m.root.AsItem().setModel(nil)
	m.root = m.newRoot()
	var err error
	if rebuild != nil {
		err = rebuild(m.root)
	}
	m.mapper.emitModelReset()
	return err
}

// checkIdentifiers returns an error if an identifier of the subtree is
// already used in the pool or within the subtree.
func (m *Model) checkIdentifiers(item Item) error {
	seen := map[string]bool{}
	var err error
	item.AsItem().WalkDown(func(k Item) bool {
		id := k.AsItem().Identifier()
		if seen[id] || m.pool.ItemForKey(id) != nil {
			err = fmt.Errorf("%w: identifier %q of %v is already in use", ErrInvalidOperand, id, k.AsItem())
			return Break
		}
		seen[id] = true
		return Continue
	})
	return err
}
