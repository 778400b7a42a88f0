// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"

	"cogentcore.org/mvvm/base/errors"
	"cogentcore.org/mvvm/variant"
)

// Model types of the standard items.
const (
	SessionItemType   = "SessionItem"
	RootItemType      = "RootItem"
	PropertyItemType  = "Property"
	CompoundItemType  = "Compound"
	VectorItemType    = "Vector"
	ContainerItemType = "Container"
)

// Property tags of [VectorItem].
const (
	XTag = "X"
	YTag = "Y"
	ZTag = "Z"
)

// ItemsTag is the default tag of [ContainerItem].
const ItemsTag = "items"

// PropertyItem is a leaf item carrying one value in its [DataRole].
type PropertyItem struct {
	ItemBase
}

// NewPropertyItem returns a new [PropertyItem].
func NewPropertyItem() *PropertyItem {
	p := &PropertyItem{}
	p.InitItem(p, PropertyItemType)
	return p
}

// Value returns the value of the property.
func (p *PropertyItem) Value() variant.Variant {
	return p.Data(DataRole)
}

// SetValue sets the value of the property.
func (p *PropertyItem) SetValue(value any) error {
	_, err := p.SetData(value, DataRole)
	return err
}

// CompoundItem is an item made of named properties.
type CompoundItem struct {
	ItemBase
}

// NewCompoundItem returns a new [CompoundItem].
func NewCompoundItem() *CompoundItem {
	c := &CompoundItem{}
	c.InitCompound(c, CompoundItemType)
	return c
}

// InitCompound initializes an item type that embeds [CompoundItem].
func (c *CompoundItem) InitCompound(this Item, modelType string) {
	c.InitItem(this, modelType)
}

// AddProperty registers a single property tag with the given name and
// inserts a [PropertyItem] holding the given value, with the name as
// its display name.
func (c *CompoundItem) AddProperty(name string, value any) (*PropertyItem, error) {
	if err := c.RegisterTag(PropertyTag(name, PropertyItemType), false); err != nil {
		return nil, err
	}
	p := NewPropertyItem()
	if err := p.SetDisplayName(name); err != nil {
		return nil, err
	}
	if err := p.SetValue(value); err != nil {
		return nil, err
	}
	if _, err := c.InsertItem(p, TagIndex{Tag: name}); err != nil {
		return nil, err
	}
	return p, nil
}

// VectorItem is a compound item with the double properties X, Y and Z.
type VectorItem struct {
	CompoundItem
}

// NewVectorItem returns a new [VectorItem] at the origin.
func NewVectorItem() *VectorItem {
	v := &VectorItem{}
	v.InitCompound(v, VectorItemType)
	for _, tag := range []string{XTag, YTag, ZTag} {
		errors.Must1(v.AddProperty(tag, 0.0))
	}
	return v
}

// X returns the x coordinate.
func (v *VectorItem) X() float64 { return Property[float64](v, XTag) }

// Y returns the y coordinate.
func (v *VectorItem) Y() float64 { return Property[float64](v, YTag) }

// Z returns the z coordinate.
func (v *VectorItem) Z() float64 { return Property[float64](v, ZTag) }

// SetX sets the x coordinate.
func (v *VectorItem) SetX(x float64) error { return v.SetProperty(XTag, x) }

// SetY sets the y coordinate.
func (v *VectorItem) SetY(y float64) error { return v.SetProperty(YTag, y) }

// SetZ sets the z coordinate.
func (v *VectorItem) SetZ(z float64) error { return v.SetProperty(ZTag, z) }

// Label returns the coordinates as "(x, y, z)".
func (v *VectorItem) Label() string {
	return fmt.Sprintf("(%s, %s, %s)",
		variant.FormatDouble(v.X(), variant.DefaultPrecision),
		variant.FormatDouble(v.Y(), variant.DefaultPrecision),
		variant.FormatDouble(v.Z(), variant.DefaultPrecision))
}

// ContainerItem holds any number of items of any type under its
// default tag [ItemsTag].
type ContainerItem struct {
	ItemBase
}

// NewContainerItem returns a new empty [ContainerItem].
func NewContainerItem() *ContainerItem {
	c := &ContainerItem{}
	c.InitItem(c, ContainerItemType)
	errors.Must(c.RegisterTag(UniversalTag(ItemsTag), true))
	return c
}

// IsEmpty returns whether the container has no items.
func (c *ContainerItem) IsEmpty() bool {
	return c.ItemCount(ItemsTag) == 0
}

// Size returns the number of items.
func (c *ContainerItem) Size() int {
	return c.ItemCount(ItemsTag)
}
