// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/mvvm/base/uid"
)

// checkPool asserts that every item of the model can be found by identifier.
func checkPool(t *testing.T, m *Model) {
	t.Helper()
	n := 0
	m.RootItem().AsItem().WalkDown(func(item Item) bool {
		assert.Equal(t, item, m.FindItem(item.AsItem().Identifier()))
		assert.Equal(t, m, item.AsItem().Model())
		n++
		return Continue
	})
	assert.Equal(t, n, m.Pool().Len())
}

func TestNewModel(t *testing.T) {
	m := NewModel("TestModel")
	assert.Equal(t, "TestModel", m.ModelType())
	root := m.RootItem().AsItem()
	assert.Equal(t, RootItemType, root.ModelType())
	assert.Equal(t, RootTag, root.TaggedItems().DefaultTag())
	assert.Equal(t, m, root.Model())
	assert.Empty(t, m.TopItems())
	checkPool(t, m)
}

func TestModelInsertNewItem(t *testing.T) {
	m := NewModel("TestModel")
	item, err := m.InsertNewItem(VectorItemType, nil)
	require.NoError(t, err)
	assert.Equal(t, m.RootItem(), item.AsItem().Parent())
	assert.Equal(t, 5, m.Pool().Len())
	checkPool(t, m)

	_, err = m.InsertNewItem("Vektor", nil)
	assert.ErrorIs(t, err, ErrUnknownItemType)
	assert.ErrorContains(t, err, `did you mean "Vector"`)

	c, err := InsertItem[*ContainerItem](m, nil, TagIndexPrepend(""))
	require.NoError(t, err)
	assert.Equal(t, []Item{c, item}, m.TopItems())

	v, err := InsertItem[*VectorItem](m, c)
	require.NoError(t, err)
	assert.Equal(t, c, v.Parent())
	top, ok := TopItem[*VectorItem](m)
	assert.True(t, ok)
	assert.Equal(t, item, top)
	checkPool(t, m)

	_, err = InsertItem[*ContainerItem](m, NewItem(SessionItemType))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestModelGenerator(t *testing.T) {
	m := NewModel("TestModel", WithGenerator(&uid.Sequence{Prefix: "id"}))
	assert.Equal(t, "id0", m.RootItem().AsItem().Identifier())
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)
	assert.Equal(t, "id1", v.Identifier())
	assert.Equal(t, v, m.FindItem("id1"))
	assert.NotNil(t, m.FindItem("id4"))
}

func TestModelRemoveItem(t *testing.T) {
	m := NewModel("TestModel")
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)
	id := v.Identifier()
	x := v.ItemAt(TagIndex{Tag: XTag})
	xid := x.AsItem().Identifier()

	require.NoError(t, m.RemoveItem(v))
	assert.Nil(t, m.FindItem(id))
	assert.Nil(t, m.FindItem(xid))
	assert.Nil(t, v.Model())
	assert.Nil(t, x.AsItem().Model())
	assert.Equal(t, 1, m.Pool().Len())

	assert.ErrorIs(t, m.RemoveItem(v), ErrNotFound)
	assert.ErrorIs(t, m.RemoveItem(m.RootItem()), ErrNotFound)
}

func TestModelTakeItem(t *testing.T) {
	m := NewModel("TestModel")
	c, err := InsertItem[*ContainerItem](m, nil)
	require.NoError(t, err)
	_, err = InsertItem[*VectorItem](m, c)
	require.NoError(t, err)

	_, err = m.TakeItem(nil, TagIndex{Index: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	taken, err := m.TakeItem(nil, TagIndex{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, c, taken)
	c.WalkDown(func(item Item) bool {
		assert.Nil(t, item.AsItem().Model())
		return Continue
	})
	assert.Equal(t, 1, m.Pool().Len())

	// the taken subtree can go back in
	_, err = m.Insert(c, nil)
	require.NoError(t, err)
	checkPool(t, m)
}

func TestModelIdentifiers(t *testing.T) {
	m := NewModel("TestModel")
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)

	clash := NewItem(SessionItemType)
	_, err = clash.SetData(v.Identifier(), IdentifierRole)
	require.NoError(t, err)
	_, err = m.Insert(clash, nil)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	assert.Nil(t, clash.Model())

	old := v.Identifier()
	_, err = v.SetData("vec", IdentifierRole)
	require.NoError(t, err)
	assert.Equal(t, v, m.FindItem("vec"))
	assert.Nil(t, m.FindItem(old))

	_, err = v.SetData(m.RootItem().AsItem().Identifier(), IdentifierRole)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	assert.Equal(t, "vec", v.Identifier())
	checkPool(t, m)
}

func TestModelSharedPool(t *testing.T) {
	pool := NewItemPool()
	m1 := NewModel("A", WithPool(pool))
	m2 := NewModel("B", WithPool(pool))
	v, err := InsertItem[*VectorItem](m1, nil)
	require.NoError(t, err)
	assert.Equal(t, v, m2.FindItem(v.Identifier()))
	assert.Equal(t, 6, pool.Len())
}

func newMoveModel(t *testing.T) (*Model, []Item) {
	m := NewModel("TestModel")
	var items []Item
	for range 4 {
		item, err := m.InsertNewItem(SessionItemType, nil)
		require.NoError(t, err)
		items = append(items, item)
	}
	return m, items
}

func TestModelMoveItem(t *testing.T) {
	m, it := newMoveModel(t)
	a, b, c, d := it[0], it[1], it[2], it[3]

	require.NoError(t, m.MoveItem(a, nil, TagIndex{Index: 2}))
	assert.Equal(t, []Item{b, c, a, d}, m.TopItems())

	require.NoError(t, m.MoveItem(a, nil, TagIndex{Index: 2}))
	assert.Equal(t, []Item{b, c, a, d}, m.TopItems(), "same index is a no-op")

	require.NoError(t, m.MoveItem(b, nil, TagIndex{Index: -1}))
	assert.Equal(t, []Item{c, a, d, b}, m.TopItems())

	require.NoError(t, m.MoveItem(b, nil, TagIndex{Index: 4}))
	assert.Equal(t, []Item{c, a, d, b}, m.TopItems())

	require.NoError(t, m.MoveItem(d, nil, TagIndex{Index: 0}))
	assert.Equal(t, []Item{d, c, a, b}, m.TopItems())
	checkPool(t, m)
}

func TestModelMoveToOtherParent(t *testing.T) {
	m := NewModel("TestModel")
	c1, err := InsertItem[*ContainerItem](m, nil)
	require.NoError(t, err)
	c2, err := InsertItem[*ContainerItem](m, nil)
	require.NoError(t, err)
	v, err := InsertItem[*VectorItem](m, c1)
	require.NoError(t, err)

	require.NoError(t, m.MoveItem(v, c2, TagIndex{Index: 0}))
	assert.Equal(t, c2, v.Parent())
	assert.True(t, c1.IsEmpty())
	assert.Equal(t, 1, c2.Size())
	checkPool(t, m)

	require.NoError(t, m.MoveItem(c1, c2, TagIndex{Index: -1}))
	assert.Equal(t, []Item{c2}, m.TopItems())
	assert.ErrorIs(t, m.MoveItem(c2, c1, TagIndex{Index: -1}), ErrInvalidMove, "into own descendant")
	assert.ErrorIs(t, m.MoveItem(c2, c2, TagIndex{Index: -1}), ErrInvalidMove, "into itself")
}

func TestModelValidateItemMove(t *testing.T) {
	m := NewModel("TestModel")
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)
	c, err := InsertItem[*ContainerItem](m, nil)
	require.NoError(t, err)
	x := v.ItemAt(TagIndex{Tag: XTag})
	other := NewModel("TestModel")
	oc, err := InsertItem[*ContainerItem](other, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		item   Item
		parent Item
		ti     TagIndex
	}{
		{"nil item", nil, c, TagIndex{Index: -1}},
		{"no model", NewItem(SessionItemType), c, TagIndex{Index: -1}},
		{"other model", v, oc, TagIndex{Index: -1}},
		{"root", m.RootItem(), c, TagIndex{Index: -1}},
		{"property item", x, c, TagIndex{Index: -1}},
		{"into property tag", c, v, TagIndex{Tag: YTag, Index: 0}},
		{"unknown tag", v, c, TagIndexAppend("zz")},
		{"index range", v, c, TagIndex{Index: 2}},
		{"negative index", v, c, TagIndex{Index: -2}},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, m.ValidateItemMove(tt.item, tt.parent, tt.ti), ErrInvalidMove, tt.name)
	}
	assert.NoError(t, m.ValidateItemMove(v, c, TagIndex{Index: 0}))
}

func TestModelMoveRestrictedTag(t *testing.T) {
	m := NewModel("TestModel")
	parent, err := m.InsertNewItem(SessionItemType, nil)
	require.NoError(t, err)
	require.NoError(t, parent.AsItem().RegisterTag(NewTagInfo("one", 0, 1, VectorItemType), true))
	_, err = InsertItem[*VectorItem](m, parent)
	require.NoError(t, err)
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)
	p, err := InsertItem[*PropertyItem](m, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, m.MoveItem(v, parent, TagIndex{Index: -1}), ErrInvalidMove, "full")
	assert.ErrorIs(t, m.MoveItem(p, parent, TagIndex{Index: -1}), ErrInvalidMove, "type")
	assert.Equal(t, m.RootItem(), v.Parent())
}

func TestModelMoveRestoresOnFailure(t *testing.T) {
	m := NewModel("TestModel")
	a, err := m.InsertNewItem(SessionItemType, nil)
	require.NoError(t, err)
	parent, err := m.InsertNewItem(SessionItemType, nil)
	require.NoError(t, err)
	require.NoError(t, parent.AsItem().RegisterTag(NewTagInfo("slot", 0, 1), true))
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)

	// fill the destination while the item is out of the tree
	filled := false
	m.Mapper().OnItemRemoved(t, func(Item, TagIndex) {
		if filled {
			return
		}
		filled = true
		_, err := m.Insert(NewItem(SessionItemType), parent)
		require.NoError(t, err)
	})

	assert.ErrorIs(t, m.MoveItem(v, parent, TagIndex{Index: -1}), ErrSlotRejected)
	assert.True(t, filled)
	assert.Equal(t, []Item{a, parent, v}, m.TopItems())
	assert.Equal(t, m.RootItem(), v.Parent())
	assert.Equal(t, v, m.FindItem(v.Identifier()))
	assert.Equal(t, 1, parent.AsItem().ItemCount("slot"))
	checkPool(t, m)
}

func TestModelClear(t *testing.T) {
	m := NewModel("TestModel")
	v, err := InsertItem[*VectorItem](m, nil)
	require.NoError(t, err)
	oldRoot := m.RootItem()

	require.NoError(t, m.Clear(nil))
	assert.NotSame(t, oldRoot, m.RootItem())
	assert.Nil(t, oldRoot.AsItem().Model())
	assert.Nil(t, v.Model())
	assert.Nil(t, m.FindItem(v.Identifier()))
	assert.Empty(t, m.TopItems())
	checkPool(t, m)

	err = m.Clear(func(root Item) error {
		_, err := InsertItem[*ContainerItem](m, root)
		return err
	})
	require.NoError(t, err)
	assert.Len(t, m.TopItems(), 1)
	checkPool(t, m)
}

func TestModelSetData(t *testing.T) {
	m := NewModel("TestModel")
	p, err := InsertItem[*PropertyItem](m, nil)
	require.NoError(t, err)
	changed, err := m.SetData(p, 1.5, DataRole)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1.5, m.Data(p, DataRole).Double())
	_, err = m.SetData(NewPropertyItem(), 1.5, DataRole)
	assert.ErrorIs(t, err, ErrNotFound)
}
