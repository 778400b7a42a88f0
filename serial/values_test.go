// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/treedata"
	"cogentcore.org/mvvm/variant"
)

func TestTagInfoRoundTrip(t *testing.T) {
	for _, tag := range []session.TagInfo{
		session.NewTagInfo("Width", 0, 1),
		session.UniversalTag("items", "A", "B"),
		session.PropertyTag("X", session.PropertyItemType),
	} {
		td := TagInfoToTree(tag)
		assert.True(t, IsTagInfoConvertible(td))
		back, err := TreeToTagInfo(td)
		require.NoError(t, err)
		assert.True(t, tag.Equal(back), "%v != %v", tag, back)
	}

	back, err := TreeToTagInfo(TagInfoToTree(session.NewTagInfo("Width", 0, 1)))
	require.NoError(t, err)
	assert.Equal(t, "Width", back.Name)
	assert.Equal(t, 0, back.Min)
	assert.Equal(t, 1, back.Max)
	assert.Empty(t, back.ModelTypes)
}

func TestTagInfoParse(t *testing.T) {
	td, err := treedata.ParseXMLElementString(`<TagInfo min="0" max="-1" name="Width">SegmentItem, PulseItem</TagInfo>`)
	require.NoError(t, err)
	tag, err := TreeToTagInfo(td)
	require.NoError(t, err)
	assert.Equal(t, []string{"SegmentItem", "PulseItem"}, tag.ModelTypes)
	assert.Equal(t, -1, tag.Max)
}

func TestTagInfoNotConvertible(t *testing.T) {
	for _, s := range []string{
		`<TagInfo min="0" max="-1">A</TagInfo>`,
		`<TagInfo min="0" max="-1" name="W" extra="1">A</TagInfo>`,
		`<Tag min="0" max="-1" name="W">A</Tag>`,
		`<TagInfo min="x" max="-1" name="W">A</TagInfo>`,
	} {
		td, err := treedata.ParseXMLElementString(s)
		require.NoError(t, err)
		_, err = TreeToTagInfo(td)
		assert.ErrorIs(t, err, ErrNotConvertible, s)
	}
}

func TestVariantToTree(t *testing.T) {
	c := &Converter{}
	td := c.VariantToTree(variant.FromDouble(0), session.IdentifierRole)
	assert.Equal(t, `<Variant role="0" type="double">0.0</Variant>`, treedata.ElementXMLString(td))

	td = c.VariantToTree(variant.FromBool(true), session.AppearanceRole)
	assert.Equal(t, `<Variant role="3" type="bool">true</Variant>`, treedata.ElementXMLString(td))

	c.Precision = 3
	td = c.VariantToTree(variant.FromDouble(1.23456), session.DataRole)
	assert.Equal(t, "1.23", td.Content)
}

func TestVariantRoundTrip(t *testing.T) {
	combo := variant.ComboFrom("a1", "a2", "a3")
	require.NoError(t, combo.SetSelected(0, 2))
	values := []variant.Variant{
		{},
		variant.FromBool(false),
		variant.FromInt(-42),
		variant.FromDouble(0.1),
		variant.FromDouble(1e-20),
		variant.FromString("  spaced  "),
		variant.FromString(""),
		variant.FromDoubles([]float64{1, 2.5, -3}),
		variant.FromDoubles(nil),
		variant.FromCombo(combo),
	}
	c := &Converter{}
	for _, v := range values {
		td := c.VariantToTree(v, session.DataRole)
		xml := treedata.ElementXMLString(td)
		parsed, err := treedata.ParseXMLElementString(xml)
		require.NoError(t, err)
		back, role, err := TreeToVariant(parsed)
		require.NoError(t, err, xml)
		assert.Equal(t, session.DataRole, role)
		assert.True(t, v.Equal(back), "%v != %v", v, back)
	}
}

func TestTreeToVariantErrors(t *testing.T) {
	tests := []struct {
		xml string
		err error
	}{
		{`<Variant role="1" type="complex">1</Variant>`, variant.ErrUnknownType},
		{`<Variant role="1" type="double">1.0 2</Variant>`, variant.ErrParse},
		{`<Variant role="1" type="vector_double">,1,2</Variant>`, variant.ErrParse},
		{`<Variant role="1" type="vector_double">1,a</Variant>`, variant.ErrParse},
		{`<Variant role="x" type="int">1</Variant>`, ErrNotConvertible},
		{`<Variant type="int">1</Variant>`, ErrNotConvertible},
	}
	for _, tt := range tests {
		td, err := treedata.ParseXMLElementString(tt.xml)
		require.NoError(t, err)
		_, _, err = TreeToVariant(td)
		assert.ErrorIs(t, err, tt.err, tt.xml)
	}
}

func TestItemDataRoundTrip(t *testing.T) {
	d := session.NewItemData()
	for _, e := range []struct {
		v    variant.Variant
		role session.Role
	}{
		{variant.FromString("tip"), session.TooltipRole},
		{variant.FromString("id"), session.IdentifierRole},
		{variant.FromDouble(42), session.DataRole},
	} {
		_, err := d.SetData(e.v, e.role)
		require.NoError(t, err)
	}
	c := &Converter{}
	td := c.ItemDataToTree(d)
	assert.True(t, IsItemDataConvertible(td))
	back, err := TreeToItemData(td)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
	assert.Equal(t, []session.Role{session.TooltipRole, session.IdentifierRole, session.DataRole}, back.Roles())

	td.AddChild(c.VariantToTree(variant.FromDouble(1), session.DataRole))
	_, err = TreeToItemData(td)
	assert.ErrorIs(t, err, ErrNotConvertible)

	td.SetAttribute("extra", "1")
	assert.False(t, IsItemDataConvertible(td))
}
