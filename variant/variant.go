// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variant provides the type-tagged value stored in each data
// role of a session item. A [Variant] holds one value of a closed set of
// kinds, compares by value, and has a stable string encoding used by
// the serialization layer.
package variant

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrParse indicates that a string could not be decoded into a value of the
	// requested kind.
	ErrParse = errors.New("variant: parse error")

	// ErrUnknownType indicates a type name that does not name any [Kind].
	ErrUnknownType = errors.New("variant: unknown variant type")

	// ErrInvalidValue indicates a Go value that can not be stored in a [Variant],
	// or a combo selection outside of the combo values.
	ErrInvalidValue = errors.New("variant: invalid value")
)

// Kind is the kind of value held by a [Variant].
type Kind int32

const (
	// Undefined is the kind of the zero [Variant]; it means "no value".
	Undefined Kind = iota

	// Bool is a bool value.
	Bool

	// Int is an int value.
	Int

	// Double is a float64 value.
	Double

	// String is a string value.
	String

	// DoubleVector is a []float64 value.
	DoubleVector

	// Combo is a [ComboProperty] value.
	Combo

	// KindsN is the number of kinds.
	KindsN
)

// kindNames are the persistent type names of each kind.
var kindNames = [KindsN]string{"undefined", "bool", "int", "double", "string", "vector_double", "ComboProperty"}

// String returns the persistent type name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// KindByName returns the kind with the given persistent type name.
func KindByName(name string) (Kind, error) {
	if i := slices.Index(kindNames[:], name); i >= 0 {
		return Kind(i), nil
	}
	return Undefined, fmt.Errorf("%w %q", ErrUnknownType, name)
}

// Variant is a type-tagged value. The zero value is [Undefined].
// Variants are values: slices held by them are copied on the way in and out.
type Variant struct {
	kind  Kind
	value any
}

// New returns a [Variant] holding the given Go value. Supported values are
// nil, bool, int (and the sized integer types), float64, float32, string,
// []float64, [ComboProperty] and [Variant] itself.
func New(v any) (Variant, error) {
	switch x := v.(type) {
	case nil:
		return Variant{}, nil
	case Variant:
		return x, nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(x), nil
	case int8:
		return FromInt(int(x)), nil
	case int16:
		return FromInt(int(x)), nil
	case int32:
		return FromInt(int(x)), nil
	case int64:
		return FromInt(int(x)), nil
	case float64:
		return FromDouble(x), nil
	case float32:
		return FromDouble(float64(x)), nil
	case string:
		return FromString(x), nil
	case []float64:
		return FromDoubles(x), nil
	case ComboProperty:
		return FromCombo(x), nil
	case *ComboProperty:
		return FromCombo(*x), nil
	}
	return Variant{}, fmt.Errorf("%w: unsupported Go type %T", ErrInvalidValue, v)
}

// Must is like [New], but panics on an unsupported value.
func Must(v any) Variant {
	vr, err := New(v)
	if err != nil {
		panic(err)
	}
	return vr
}

// FromBool returns a [Bool] variant.
func FromBool(b bool) Variant { return Variant{kind: Bool, value: b} }

// FromInt returns an [Int] variant.
func FromInt(i int) Variant { return Variant{kind: Int, value: i} }

// FromDouble returns a [Double] variant.
func FromDouble(f float64) Variant { return Variant{kind: Double, value: f} }

// FromString returns a [String] variant.
func FromString(s string) Variant { return Variant{kind: String, value: s} }

// FromDoubles returns a [DoubleVector] variant holding a copy of v.
func FromDoubles(v []float64) Variant {
	return Variant{kind: DoubleVector, value: slices.Clone(v)}
}

// FromCombo returns a [Combo] variant holding a copy of c.
func FromCombo(c ComboProperty) Variant {
	return Variant{kind: Combo, value: c.clone()}
}

// Kind returns the kind of the value.
func (v Variant) Kind() Kind { return v.kind }

// TypeName returns the persistent type name of the value kind.
func (v Variant) TypeName() string { return v.kind.String() }

// IsValid returns whether the variant holds a value.
func (v Variant) IsValid() bool { return v.kind != Undefined }

// Value returns the held Go value, or nil for [Undefined].
func (v Variant) Value() any {
	switch v.kind {
	case DoubleVector:
		return v.Doubles()
	case Combo:
		return v.Combo()
	}
	return v.value
}

// Bool returns the bool value, or false for other kinds.
func (v Variant) Bool() bool {
	b, _ := v.value.(bool)
	return b
}

// Int returns the int value, or 0 for other kinds.
func (v Variant) Int() int {
	i, _ := v.value.(int)
	return i
}

// Double returns the float64 value, or 0 for other kinds.
func (v Variant) Double() float64 {
	f, _ := v.value.(float64)
	return f
}

// Text returns the string value, or "" for other kinds.
func (v Variant) Text() string {
	s, _ := v.value.(string)
	return s
}

// Doubles returns a copy of the []float64 value, or nil for other kinds.
func (v Variant) Doubles() []float64 {
	d, _ := v.value.([]float64)
	return slices.Clone(d)
}

// Combo returns a copy of the [ComboProperty] value, or the zero
// combo for other kinds.
func (v Variant) Combo() ComboProperty {
	c, _ := v.value.(ComboProperty)
	return c.clone()
}

// Equal returns whether both variants have the same kind and value.
func (v Variant) Equal(o Variant) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Undefined:
		return true
	case DoubleVector:
		return slices.Equal(v.value.([]float64), o.value.([]float64))
	case Combo:
		return v.value.(ComboProperty).Equal(o.value.(ComboProperty))
	}
	return v.value == o.value
}

// Compatible returns whether a value of kind next may be written over a
// stored value of kind prev: either one is [Undefined] or they are the same.
func Compatible(prev, next Kind) bool {
	return prev == Undefined || next == Undefined || prev == next
}

// String returns a readable form of the variant, like double(0.5).
func (v Variant) String() string {
	if v.kind == Undefined {
		return "undefined"
	}
	return v.kind.String() + "(" + fmt.Sprint(v.Value()) + ")"
}
