// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session provides the typed item tree of the model layer:
// items ([Item], [ItemBase]) with role-ordered data ([ItemData]) and
// named child slots ([TagInfo], [ItemContainer], [TaggedItems]), and
// the [Model] that owns a tree of items, indexes them by identifier
// and notifies views of changes.
package session

import (
	"fmt"

	"cogentcore.org/mvvm/base/errors"
	"cogentcore.org/mvvm/base/uid"
	"cogentcore.org/mvvm/bitflag"
	"cogentcore.org/mvvm/variant"
)

// Item is an interface that all session items satisfy. The core
// functionality of an item is defined on [ItemBase], and all
// higher-level item types must embed it and initialize it with
// [ItemBase.InitItem]. All values that implement Item are pointers.
type Item interface {

	// AsItem returns the [ItemBase] of this Item.
	AsItem() *ItemBase
}

// ItemBase implements the [Item] interface and provides the core
// functionality of session items: typed data by role, tagged children,
// and back references to the parent and the model.
//
// The parent and model back references are set when the item is
// inserted into a parent, and cleared when it is taken out. The model
// reference of a subtree always matches the model of its parent.
type ItemBase struct {

	// this is the item as its true underlying type.
	this Item

	// modelType is the persistent type name of the item.
	modelType string

	data *ItemData

	tags *TaggedItems

	parent Item

	model *Model
}

// NewItem returns a new plain item of the given model type.
func NewItem(modelType string) *ItemBase {
	it := &ItemBase{}
	it.InitItem(it, modelType)
	return it
}

// InitItem initializes the item with its true underlying value and its
// model type. It assigns a new identifier and sets the display name to
// the model type. It does nothing if the item is already initialized.
func (it *ItemBase) InitItem(this Item, modelType string) {
	if it.this != nil {
		return
	}
	it.this = this
	it.modelType = modelType
	it.data = NewItemData()
	it.tags = NewTaggedItems()
	it.data.SetData(variant.FromString(uid.New()), IdentifierRole)
	it.data.SetData(variant.FromString(modelType), DisplayRole)
}

// AsItem returns the [ItemBase] for this Item.
func (it *ItemBase) AsItem() *ItemBase {
	return it
}

// This returns the item as its true underlying type.
func (it *ItemBase) This() Item {
	return it.this
}

// ModelType returns the persistent type name of the item.
func (it *ItemBase) ModelType() string {
	return it.modelType
}

// Identifier returns the persistent unique identifier of the item.
func (it *ItemBase) Identifier() string {
	return it.data.Data(IdentifierRole).Text()
}

// DisplayName returns the display name of the item.
func (it *ItemBase) DisplayName() string {
	return it.data.Data(DisplayRole).Text()
}

// SetDisplayName sets the display name of the item.
func (it *ItemBase) SetDisplayName(name string) error {
	_, err := it.SetData(name, DisplayRole)
	return err
}

// String returns the model type and the identifier of the item.
func (it *ItemBase) String() string {
	if it == nil || it.this == nil {
		return "nil"
	}
	return it.modelType + "(" + it.Identifier() + ")"
}

// Path returns the display names from the root down to this item,
// separated by /.
func (it *ItemBase) Path() string {
	if it.parent != nil {
		return it.parent.AsItem().Path() + "/" + it.DisplayName()
	}
	return "/" + it.DisplayName()
}

// Data:

// Data returns the value of the given role, undefined if it has no data.
func (it *ItemBase) Data(role Role) variant.Variant {
	return it.data.Data(role)
}

// HasData returns whether the given role has data.
func (it *ItemBase) HasData(role Role) bool {
	return it.data.HasData(role)
}

// Roles returns the roles with data, in insertion order.
func (it *ItemBase) Roles() []Role {
	return it.data.Roles()
}

// ItemData returns a copy of the data of the item.
func (it *ItemBase) ItemData() *ItemData {
	return it.data.Clone()
}

// SetData sets the value of the given role from a Go value (see
// [variant.New]) and returns whether the data changed. A nil value
// removes the role. Writing a kind other than the stored kind fails
// with [ErrTypeMismatch]. Changes are reported to the model mapper.
func (it *ItemBase) SetData(value any, role Role) (bool, error) {
	v, err := variant.New(value)
	if err != nil {
		return false, err
	}
	if role == IdentifierRole {
		return it.setIdentifier(v)
	}
	changed, err := it.data.SetData(v, role)
	if err != nil || !changed {
		return changed, err
	}
	it.notifyDataChanged(role)
	return true, nil
}

// setIdentifier replaces the identifier, keeping the model pool in sync.
func (it *ItemBase) setIdentifier(v variant.Variant) (bool, error) {
	if v.Kind() != variant.String || v.Text() == "" {
		return false, fmt.Errorf("%w: identifier must be a non-empty string, not %v", ErrInvalidOperand, v)
	}
	id := v.Text()
	old := it.Identifier()
	if id == old {
		return false, nil
	}
	if it.model != nil {
		if other := it.model.pool.ItemForKey(id); other != nil {
			return false, fmt.Errorf("%w: identifier %q is already used by %v", ErrInvalidOperand, id, other.AsItem())
		}
		errors.Log(it.model.pool.Unregister(it.this))
	}
	it.data.SetData(v, IdentifierRole)
	if it.model != nil {
		errors.Log(it.model.pool.Register(it.this, id))
	}
	it.notifyDataChanged(IdentifierRole)
	return true, nil
}

// SetItemData replaces all data of the item with a copy of the given
// data, which must hold an identifier. Every role whose value changed
// is reported to the model mapper.
func (it *ItemBase) SetItemData(d *ItemData) error {
	id := d.Data(IdentifierRole)
	if id.Kind() != variant.String || id.Text() == "" {
		return fmt.Errorf("%w: item data has no identifier", ErrInvalidOperand)
	}
	if it.model != nil && id.Text() != it.Identifier() {
		if other := it.model.pool.ItemForKey(id.Text()); other != nil {
			return fmt.Errorf("%w: identifier %q is already used by %v", ErrInvalidOperand, id.Text(), other.AsItem())
		}
	}
	old := it.data
	if _, err := it.setIdentifier(id); err != nil {
		return err
	}
	it.data = d.Clone()
	if it.model == nil {
		return nil
	}
	var changed []Role
	for _, role := range old.Roles() {
		if role != IdentifierRole && !old.Data(role).Equal(it.data.Data(role)) {
			changed = append(changed, role)
		}
	}
	for _, role := range it.data.Roles() {
		if role != IdentifierRole && !old.HasData(role) {
			changed = append(changed, role)
		}
	}
	for _, role := range changed {
		it.notifyDataChanged(role)
	}
	return nil
}

func (it *ItemBase) notifyDataChanged(role Role) {
	if it.model != nil {
		it.model.mapper.emitDataChanged(it.this, role)
	}
}

// Data returns the value of the given role of the item as type T,
// or the zero value of T if the role holds another type.
func Data[T any](item Item, role Role) T {
	v, _ := item.AsItem().Data(role).Value().(T)
	return v
}

// Property returns the main value of the single child of the given
// tag as type T, or the zero value of T.
func Property[T any](item Item, tag string) T {
	v, _ := item.AsItem().Property(tag).Value().(T)
	return v
}

// Property returns the main value of the single child of the given tag,
// or an undefined value if the tag is empty or does not exist.
func (it *ItemBase) Property(tag string) variant.Variant {
	child := it.tags.ItemAt(TagIndex{Tag: tag})
	if child == nil {
		return variant.Variant{}
	}
	return child.AsItem().Data(DataRole)
}

// SetProperty sets the main value of the single child of the given tag.
func (it *ItemBase) SetProperty(tag string, value any) error {
	child := it.tags.ItemAt(TagIndex{Tag: tag})
	if child == nil {
		return fmt.Errorf("%w: no property %q in %v", ErrNoSuchTag, tag, it)
	}
	_, err := child.AsItem().SetData(value, DataRole)
	return err
}

// Appearance:

func (it *ItemBase) appearance() int64 {
	if !it.HasData(AppearanceRole) {
		return DefaultAppearance
	}
	return int64(it.Data(AppearanceRole).Int())
}

func (it *ItemBase) setAppearance(flag Appearance, on bool) error {
	bits := it.appearance()
	bitflag.SetState(&bits, on, int(flag))
	_, err := it.SetData(int(bits), AppearanceRole)
	return err
}

// IsEditable returns whether the value can be changed from a view.
func (it *ItemBase) IsEditable() bool {
	return bitflag.Has(it.appearance(), int(Editable))
}

// SetEditable sets whether the value can be changed from a view.
func (it *ItemBase) SetEditable(on bool) error {
	return it.setAppearance(Editable, on)
}

// IsEnabled returns whether the item is active in views.
func (it *ItemBase) IsEnabled() bool {
	return bitflag.Has(it.appearance(), int(Enabled))
}

// SetEnabled sets whether the item is active in views.
func (it *ItemBase) SetEnabled(on bool) error {
	return it.setAppearance(Enabled, on)
}

// IsVisible returns whether the item is shown in views.
func (it *ItemBase) IsVisible() bool {
	return bitflag.Has(it.appearance(), int(Visible))
}

// SetVisible sets whether the item is shown in views.
func (it *ItemBase) SetVisible(on bool) error {
	return it.setAppearance(Visible, on)
}

// ToolTip returns the tooltip text.
func (it *ItemBase) ToolTip() string {
	return it.Data(TooltipRole).Text()
}

// SetToolTip sets the tooltip text.
func (it *ItemBase) SetToolTip(tip string) error {
	_, err := it.SetData(tip, TooltipRole)
	return err
}

// EditorType returns the name of the editor for the main value.
func (it *ItemBase) EditorType() string {
	return it.Data(EditorTypeRole).Text()
}

// SetEditorType sets the name of the editor for the main value.
func (it *ItemBase) SetEditorType(editor string) error {
	_, err := it.SetData(editor, EditorTypeRole)
	return err
}

// Parents and model:

// Parent returns the parent item, or nil.
func (it *ItemBase) Parent() Item {
	return it.parent
}

// Model returns the model the item belongs to, or nil.
func (it *ItemBase) Model() *Model {
	return it.model
}

// TagIndex returns the position of the item in its parent, with an
// empty tag and index -1 if it has no parent.
func (it *ItemBase) TagIndex() TagIndex {
	if it.parent == nil {
		return TagIndex{Index: -1}
	}
	return it.parent.AsItem().tags.TagIndexOf(it.this)
}

// setModel sets the model of the item and its whole subtree,
// moving their identifiers from the old model pool to the new one.
func (it *ItemBase) setModel(m *Model) {
	if it.model != nil {
		errors.Log(it.model.pool.Unregister(it.this))
	}
	it.model = m
	if m != nil {
		errors.Log(m.pool.Register(it.this, it.Identifier()))
	}
	for _, child := range it.tags.AllItems() {
		child.AsItem().setModel(m)
	}
}

// Tags:

// TaggedItems returns the tags of the item.
func (it *ItemBase) TaggedItems() *TaggedItems {
	return it.tags
}

// RegisterTag registers a new tag, optionally as the default tag.
func (it *ItemBase) RegisterTag(tag TagInfo, setAsDefault bool) error {
	return it.tags.RegisterTag(tag, setAsDefault)
}

// IsTag returns whether the item has a tag with the given name.
func (it *ItemBase) IsTag(name string) bool {
	return it.tags.IsTag(name)
}

// Children:

// Children returns all children, in flat order.
func (it *ItemBase) Children() []Item {
	return it.tags.AllItems()
}

// HasChildren returns whether the item has any children.
func (it *ItemBase) HasChildren() bool {
	return it.tags.NumItems() > 0
}

// NumChildren returns the number of children in all tags.
func (it *ItemBase) NumChildren() int {
	return it.tags.NumItems()
}

// Child returns the child at the given flat index, or nil.
func (it *ItemBase) Child(i int) Item {
	return it.tags.ItemAt(it.tags.TagIndexAt(i))
}

// ItemCount returns the number of children in the given tag.
func (it *ItemBase) ItemCount(tag string) int {
	return it.tags.ItemCount(tag)
}

// ItemAt returns the child at the given position, or nil.
func (it *ItemBase) ItemAt(ti TagIndex) Item {
	return it.tags.ItemAt(ti)
}

// Items returns the children of the given tag.
func (it *ItemBase) Items(tag string) []Item {
	return it.tags.Items(tag)
}

// TagIndexOf returns the position of the given child, with an
// empty tag and index -1 if it is not a child.
func (it *ItemBase) TagIndexOf(child Item) TagIndex {
	return it.tags.TagIndexOf(child)
}

// InsertItem inserts the given item at the given position and returns it.
// The item must be initialized and have neither a parent nor a model,
// and must not be this item or one of its ancestors. If this item belongs
// to a model, the inserted subtree is registered in the model pool and
// the insertion is reported to the model mapper. Nothing is changed on
// failure.
func (it *ItemBase) InsertItem(child Item, ti TagIndex) (Item, error) {
	if child == nil || child.AsItem() == nil || child.AsItem().this == nil {
		return nil, fmt.Errorf("%w: nil or uninitialized item", ErrInvalidOperand)
	}
	c := child.AsItem()
	if c.parent != nil || c.model != nil {
		return nil, fmt.Errorf("%w: %v already has a parent or a model", ErrInvalidOperand, c)
	}
	if c == it || IsItemAncestor(it.this, c.this) {
		return nil, fmt.Errorf("%w: can not insert %v into itself", ErrInvalidOperand, c)
	}
	if it.model != nil {
		if err := it.model.checkIdentifiers(c.this); err != nil {
			return nil, err
		}
	}
	container, err := it.tags.Container(ti.Tag)
	if err != nil {
		return nil, err
	}
	index := ti.Index
	if index == -1 {
		index = container.Count()
	}
	if !container.Insert(c.this, index) {
		return nil, fmt.Errorf("%w: tag %v of %v can not take %v at %d", ErrSlotRejected, container.tag, it, c, ti.Index)
	}
	c.parent = it.this
	if it.model != nil {
		c.setModel(it.model)
		it.model.mapper.emitItemInserted(it.this, TagIndex{Tag: container.Name(), Index: index})
	}
	return c.this, nil
}

// TakeItem removes the child at the given position and returns it,
// or returns nil if there is no child there. The returned subtree has
// no parent and no model, and is unregistered from the model pool.
func (it *ItemBase) TakeItem(ti TagIndex) Item {
	container, err := it.tags.Container(ti.Tag)
	if err != nil || !container.CanTake(ti.Index) {
		return nil
	}
	at := TagIndex{Tag: container.Name(), Index: ti.Index}
	if it.model != nil {
		it.model.mapper.emitAboutToRemoveItem(it.this, at)
	}
	child := container.Take(ti.Index)
	c := child.AsItem()
	if c.model != nil {
		c.setModel(nil)
	}
	c.parent = nil
	if it.model != nil {
		it.model.mapper.emitItemRemoved(it.this, at)
	}
	return child
}

// IsSinglePropertyTag returns whether the given tag of the item
// holds exactly one child.
func (it *ItemBase) IsSinglePropertyTag(tag string) bool {
	c, err := it.tags.Container(tag)
	return err == nil && c.tag.IsSinglePropertyTag()
}
