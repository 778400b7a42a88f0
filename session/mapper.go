// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "fmt"

// ModelMapper reports the changes of one [Model] to subscribed clients.
// Every subscription is keyed by a client value, and
// [ModelMapper.Unsubscribe] removes all subscriptions of a client.
type ModelMapper struct {
	model *Model
	sig   Signal

	// active is false while notifications are suspended.
	active bool
}

func newModelMapper(m *Model) *ModelMapper {
	return &ModelMapper{model: m, active: true}
}

// SetActive sets whether notifications are delivered.
func (mm *ModelMapper) SetActive(on bool) {
	mm.active = on
}

// OnDataChange calls fun with the item and role whenever data changes.
func (mm *ModelMapper) OnDataChange(client any, fun func(item Item, role Role)) {
	mm.sig.Connect(client, func(e *Event) {
		if e.Type == DataChanged {
			fun(e.Item, e.Role)
		}
	})
}

// OnItemInserted calls fun with the parent and position of each inserted item.
func (mm *ModelMapper) OnItemInserted(client any, fun func(parent Item, ti TagIndex)) {
	mm.connectChild(client, ItemInserted, fun)
}

// OnAboutToRemoveItem calls fun with the parent and position of each
// item about to be taken out, while it is still in place.
func (mm *ModelMapper) OnAboutToRemoveItem(client any, fun func(parent Item, ti TagIndex)) {
	mm.connectChild(client, AboutToRemoveItem, fun)
}

// OnItemRemoved calls fun with the parent and former position of each
// item taken out.
func (mm *ModelMapper) OnItemRemoved(client any, fun func(parent Item, ti TagIndex)) {
	mm.connectChild(client, ItemRemoved, fun)
}

// OnModelAboutToReset calls fun before the model root is replaced.
func (mm *ModelMapper) OnModelAboutToReset(client any, fun func(m *Model)) {
	mm.connectModel(client, ModelAboutToReset, fun)
}

// OnModelReset calls fun after the model root is replaced.
func (mm *ModelMapper) OnModelReset(client any, fun func(m *Model)) {
	mm.connectModel(client, ModelReset, fun)
}

// Unsubscribe removes all subscriptions of the given client.
func (mm *ModelMapper) Unsubscribe(client any) {
	mm.sig.Disconnect(client)
}

func (mm *ModelMapper) connectChild(client any, typ SignalTypes, fun func(parent Item, ti TagIndex)) {
	mm.sig.Connect(client, func(e *Event) {
		if e.Type == typ {
			fun(e.Item, e.TagIndex)
		}
	})
}

func (mm *ModelMapper) connectModel(client any, typ SignalTypes, fun func(m *Model)) {
	mm.sig.Connect(client, func(e *Event) {
		if e.Type == typ {
			fun(e.Model)
		}
	})
}

func (mm *ModelMapper) emit(e *Event) {
	if !mm.active {
		return
	}
	e.Model = mm.model
	mm.sig.Emit(e)
}

func (mm *ModelMapper) emitDataChanged(item Item, role Role) {
	mm.emit(&Event{Type: DataChanged, Item: item, Role: role})
}

func (mm *ModelMapper) emitItemInserted(parent Item, ti TagIndex) {
	mm.emit(&Event{Type: ItemInserted, Item: parent, TagIndex: ti})
}

func (mm *ModelMapper) emitAboutToRemoveItem(parent Item, ti TagIndex) {
	mm.emit(&Event{Type: AboutToRemoveItem, Item: parent, TagIndex: ti})
}

func (mm *ModelMapper) emitItemRemoved(parent Item, ti TagIndex) {
	mm.emit(&Event{Type: ItemRemoved, Item: parent, TagIndex: ti})
}

func (mm *ModelMapper) emitModelAboutToReset() {
	mm.emit(&Event{Type: ModelAboutToReset})
}

func (mm *ModelMapper) emitModelReset() {
	mm.emit(&Event{Type: ModelReset})
}

// ItemMapper reports the changes of one item to subscribed clients.
// It listens to the model mapper and closes itself when the item
// leaves the model or the model is reset.
type ItemMapper struct {
	item  Item
	model *Model
	sig   Signal
}

// NewItemMapper returns a mapper for the given item, which must
// belong to a model.
func NewItemMapper(item Item) (*ItemMapper, error) {
	if item == nil || item.AsItem().Model() == nil {
		return nil, fmt.Errorf("%w: item mapper needs an item in a model", ErrInvalidOperand)
	}
	im := &ItemMapper{item: item, model: item.AsItem().Model()}
	im.model.mapper.sig.Connect(im, im.dispatch)
	return im, nil
}

// Item returns the mapped item.
func (im *ItemMapper) Item() Item {
	return im.item
}

// IsClosed returns whether the mapper no longer reports changes.
func (im *ItemMapper) IsClosed() bool {
	return im.model == nil
}

// Close stops all reports of this mapper.
func (im *ItemMapper) Close() {
	if im.model == nil {
		return
	}
	im.model.mapper.Unsubscribe(im)
	im.model = nil
	im.sig.DisconnectAll()
}

// dispatch forwards the model events that concern the mapped item.
func (im *ItemMapper) dispatch(e *Event) {
	if e.Item == nil {
		if e.Type == ModelAboutToReset || e.Type == ModelReset {
			im.Close()
		}
		return
	}
	switch e.Type {
	case DataChanged:
		if e.Item.AsItem() == im.item.AsItem() || isChildOf(e.Item, im.item) {
			im.sig.Emit(e)
		}
		return
	}
	if e.Item.AsItem() == im.item.AsItem() {
		im.sig.Emit(e)
	}
	if e.Type == ItemRemoved && im.item.AsItem().Model() != im.model {
		im.Close()
	}
}

// OnDataChange calls fun with the role whenever data of the item changes.
func (im *ItemMapper) OnDataChange(client any, fun func(item Item, role Role)) {
	im.sig.Connect(client, func(e *Event) {
		if e.Type == DataChanged && e.Item.AsItem() == im.item.AsItem() {
			fun(e.Item, e.Role)
		}
	})
}

// OnPropertyChange calls fun with the tag of a direct child whose
// main value ([DataRole]) changed.
func (im *ItemMapper) OnPropertyChange(client any, fun func(item Item, tag string)) {
	im.sig.Connect(client, func(e *Event) {
		if e.Type == DataChanged && e.Role == DataRole && isChildOf(e.Item, im.item) {
			fun(im.item, e.Item.AsItem().TagIndex().Tag)
		}
	})
}

// OnItemInserted calls fun with the position of each child inserted
// into the item.
func (im *ItemMapper) OnItemInserted(client any, fun func(item Item, ti TagIndex)) {
	im.connectChild(client, ItemInserted, fun)
}

// OnAboutToRemoveItem calls fun with the position of each child about
// to be taken out of the item.
func (im *ItemMapper) OnAboutToRemoveItem(client any, fun func(item Item, ti TagIndex)) {
	im.connectChild(client, AboutToRemoveItem, fun)
}

// OnItemRemoved calls fun with the former position of each child
// taken out of the item.
func (im *ItemMapper) OnItemRemoved(client any, fun func(item Item, ti TagIndex)) {
	im.connectChild(client, ItemRemoved, fun)
}

// Unsubscribe removes all subscriptions of the given client.
func (im *ItemMapper) Unsubscribe(client any) {
	im.sig.Disconnect(client)
}

func (im *ItemMapper) connectChild(client any, typ SignalTypes, fun func(item Item, ti TagIndex)) {
	im.sig.Connect(client, func(e *Event) {
		if e.Type == typ {
			fun(e.Item, e.TagIndex)
		}
	})
}

func isChildOf(child, parent Item) bool {
	p := child.AsItem().Parent()
	return p != nil && p.AsItem() == parent.AsItem()
}
