// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serial converts session values, items and models to and from
// [treedata.TreeData]. Each element kind has an IsXConvertible predicate
// that checks the element type, the exact attribute set and the child
// layout, a function encoding the value, and a function decoding it.
// Decoding always checks convertibility first and fails with
// [ErrNotConvertible] on a shape mismatch.
//
// Items and models are decoded in place where possible, so that the
// identity of existing objects such as a model survives loading.
package serial

import (
	"errors"

	"cogentcore.org/mvvm/base/uid"
	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/variant"
)

// ErrNotConvertible indicates an element whose type, attributes or
// children do not have the shape expected by a decoder.
var ErrNotConvertible = errors.New("serial: element is not convertible")

// Element types.
const (
	TagInfoType       = "TagInfo"
	VariantType       = "Variant"
	ItemDataType      = "ItemData"
	ItemContainerType = "ItemContainer"
	TaggedItemsType   = "TaggedItems"
	ItemType          = "Item"
	ModelType         = "Model"
)

// Modes are the ways decoded items get their identifiers.
type Modes int32

const (
	// Clone keeps the saved identifiers, so decoded items have the
	// identity of the items that were saved.
	Clone Modes = iota

	// Copy gives every decoded item a new identifier.
	Copy
)

// Converter encodes and decodes items and models. The zero value
// decodes with the catalogue of the target model (or the standard
// catalogue), keeps identifiers and writes doubles with
// [variant.DefaultPrecision] significant digits.
type Converter struct {

	// Catalogue creates decoded items; nil uses the catalogue of the
	// target model, or [session.StandardCatalogue] without a model.
	Catalogue *session.Catalogue

	// Precision is the number of significant digits of encoded doubles;
	// 0 uses [variant.DefaultPrecision].
	Precision int

	// Mode determines the identifiers of decoded items.
	Mode Modes

	// Generator makes the identifiers in [Copy] mode; nil uses [uid.Default].
	Generator uid.Generator
}

// NewConverter returns a converter creating items with the given
// catalogue in the given mode.
func NewConverter(c *session.Catalogue, mode Modes) *Converter {
	return &Converter{Catalogue: c, Mode: mode}
}

func (c *Converter) precision() int {
	if c.Precision == 0 {
		return variant.DefaultPrecision
	}
	return c.Precision
}

func (c *Converter) catalogue(m *session.Model) *session.Catalogue {
	switch {
	case c.Catalogue != nil:
		return c.Catalogue
	case m != nil:
		return m.Catalogue()
	}
	return session.StandardCatalogue()
}

func (c *Converter) generator() uid.Generator {
	if c.Generator != nil {
		return c.Generator
	}
	return uid.Default()
}
