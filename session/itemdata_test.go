// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/mvvm/variant"
)

func TestItemDataSetData(t *testing.T) {
	d := NewItemData()
	assert.False(t, d.Data(DataRole).IsValid())

	changed, err := d.SetData(variant.FromDouble(42), DataRole)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, d.HasData(DataRole))

	changed, err = d.SetData(variant.FromDouble(42), DataRole)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = d.SetData(variant.FromDouble(43), DataRole)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 43.0, d.Data(DataRole).Double())
}

func TestItemDataTypeMismatch(t *testing.T) {
	d := NewItemData()
	_, err := d.SetData(variant.FromDouble(1), DataRole)
	require.NoError(t, err)

	for _, v := range []variant.Variant{variant.FromString("a"), variant.FromInt(1), variant.FromBool(true), variant.FromDoubles([]float64{1})} {
		changed, err := d.SetData(v, DataRole)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.False(t, changed)
		assert.Equal(t, 1.0, d.Data(DataRole).Double())
	}
}

func TestItemDataRemove(t *testing.T) {
	d := NewItemData()
	changed, err := d.SetData(variant.Variant{}, DataRole)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = d.SetData(variant.FromString("abc"), DisplayRole)
	require.NoError(t, err)
	changed, err = d.SetData(variant.Variant{}, DisplayRole)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, d.HasData(DisplayRole))

	// a removed role may take a new kind
	changed, err = d.SetData(variant.FromInt(3), DisplayRole)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestItemDataRoles(t *testing.T) {
	d := NewItemData()
	for _, role := range []Role{TooltipRole, IdentifierRole, DataRole} {
		_, err := d.SetData(variant.FromString(role.String()), role)
		require.NoError(t, err)
	}
	assert.Equal(t, []Role{TooltipRole, IdentifierRole, DataRole}, d.Roles())

	_, err := d.SetData(variant.FromString("new"), TooltipRole)
	require.NoError(t, err)
	assert.Equal(t, []Role{TooltipRole, IdentifierRole, DataRole}, d.Roles())

	cp := d.Clone()
	assert.True(t, d.Equal(cp))
	_, err = cp.SetData(variant.FromString("other"), DataRole)
	require.NoError(t, err)
	assert.False(t, d.Equal(cp))
	assert.Equal(t, "Data", d.Data(DataRole).Text())
}
