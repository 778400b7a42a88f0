// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/treedata"
	"cogentcore.org/mvvm/variant"
)

// IsTagInfoConvertible returns whether the element is a TagInfo element
// with exactly the attributes min, max and name.
func IsTagInfoConvertible(t *treedata.TreeData) bool {
	return t != nil && t.Type == TagInfoType && t.HasAttributeSet("min", "max", "name")
}

// TagInfoToTree encodes the tag. The content is the comma separated
// list of accepted model types.
func TagInfoToTree(tag session.TagInfo) *treedata.TreeData {
	t := treedata.New(TagInfoType)
	t.SetAttribute("name", tag.Name)
	t.SetAttribute("min", strconv.Itoa(tag.Min))
	t.SetAttribute("max", strconv.Itoa(tag.Max))
	t.SetContent(strings.Join(tag.ModelTypes, ","))
	return t
}

// TreeToTagInfo decodes a tag. Model type names are trimmed of
// surrounding whitespace.
func TreeToTagInfo(t *treedata.TreeData) (session.TagInfo, error) {
	if !IsTagInfoConvertible(t) {
		return session.TagInfo{}, fmt.Errorf("%w: %v is not a TagInfo", ErrNotConvertible, elementName(t))
	}
	lo, err := strconv.Atoi(strings.TrimSpace(t.Attribute("min")))
	if err != nil {
		return session.TagInfo{}, fmt.Errorf("%w: TagInfo min: %v", ErrNotConvertible, err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(t.Attribute("max")))
	if err != nil {
		return session.TagInfo{}, fmt.Errorf("%w: TagInfo max: %v", ErrNotConvertible, err)
	}
	var types []string
	for _, name := range strings.Split(t.Content, ",") {
		if name = strings.TrimSpace(name); name != "" {
			types = append(types, name)
		}
	}
	return session.NewTagInfo(t.Attribute("name"), lo, hi, types...), nil
}

// IsVariantConvertible returns whether the element is a Variant element
// with exactly the attributes role and type.
func IsVariantConvertible(t *treedata.TreeData) bool {
	return t != nil && t.Type == VariantType && t.HasAttributeSet("role", "type")
}

// VariantToTree encodes the value of the given role.
func (c *Converter) VariantToTree(v variant.Variant, role session.Role) *treedata.TreeData {
	t := treedata.New(VariantType)
	t.SetAttribute("role", strconv.Itoa(int(role)))
	t.SetAttribute("type", v.TypeName())
	t.SetContent(variant.Encode(v, c.precision()))
	return t
}

// TreeToVariant decodes a value and its role.
func TreeToVariant(t *treedata.TreeData) (variant.Variant, session.Role, error) {
	if !IsVariantConvertible(t) {
		return variant.Variant{}, 0, fmt.Errorf("%w: %v is not a Variant", ErrNotConvertible, elementName(t))
	}
	role, err := strconv.Atoi(strings.TrimSpace(t.Attribute("role")))
	if err != nil {
		return variant.Variant{}, 0, fmt.Errorf("%w: Variant role: %v", ErrNotConvertible, err)
	}
	v, err := variant.Decode(t.Attribute("type"), t.Content)
	if err != nil {
		return variant.Variant{}, 0, err
	}
	return v, session.Role(role), nil
}

// IsItemDataConvertible returns whether the element is an ItemData
// element without attributes whose children are all Variant elements.
func IsItemDataConvertible(t *treedata.TreeData) bool {
	if t == nil || t.Type != ItemDataType || t.NumAttributes() != 0 {
		return false
	}
	for _, child := range t.Children {
		if !IsVariantConvertible(child) {
			return false
		}
	}
	return true
}

// ItemDataToTree encodes the data, one Variant element per role in
// role order.
func (c *Converter) ItemDataToTree(d *session.ItemData) *treedata.TreeData {
	t := treedata.New(ItemDataType)
	for _, role := range d.Roles() {
		t.AddChild(c.VariantToTree(d.Data(role), role))
	}
	return t
}

// TreeToItemData decodes item data. A role may appear only once.
func TreeToItemData(t *treedata.TreeData) (*session.ItemData, error) {
	if !IsItemDataConvertible(t) {
		return nil, fmt.Errorf("%w: %v is not an ItemData", ErrNotConvertible, elementName(t))
	}
	d := session.NewItemData()
	for _, child := range t.Children {
		v, role, err := TreeToVariant(child)
		if err != nil {
			return nil, err
		}
		if d.HasData(role) {
			return nil, fmt.Errorf("%w: role %v appears twice in ItemData", ErrNotConvertible, role)
		}
		if _, err := d.SetData(v, role); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// elementName returns the element type for messages.
func elementName(t *treedata.TreeData) string {
	if t == nil {
		return "nil element"
	}
	return "<" + t.Type + ">"
}
