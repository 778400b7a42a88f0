// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"

	"cogentcore.org/mvvm/base/ordmap"
	"cogentcore.org/mvvm/variant"
)

// ItemData is the role-ordered data of one item: at most one
// [variant.Variant] per [Role], in the order the roles were first set.
// Once a role holds a value of some kind, later writes must be of the
// same kind or undefined, which removes the role.
type ItemData struct {
	values ordmap.Map[Role, variant.Variant]
}

// NewItemData returns new empty data.
func NewItemData() *ItemData {
	return &ItemData{}
}

// Data returns the value of the given role, or an undefined
// value if the role has no data.
func (d *ItemData) Data(role Role) variant.Variant {
	return d.values.ValueByKey(role)
}

// HasData returns whether the given role has data.
func (d *ItemData) HasData(role Role) bool {
	return d.values.Has(role)
}

// SetData sets the value of the given role and returns whether the data
// changed. An undefined value removes the role. A value of a kind other
// than the stored one fails with [ErrTypeMismatch], leaving data as is.
func (d *ItemData) SetData(value variant.Variant, role Role) (bool, error) {
	if !value.IsValid() {
		return d.values.DeleteKey(role), nil
	}
	prev, ok := d.values.ValueByKeyTry(role)
	if !ok {
		d.values.Add(role, value)
		return true, nil
	}
	if !variant.Compatible(prev.Kind(), value.Kind()) {
		return false, fmt.Errorf("%w: role %v holds %s, can not set %s", ErrTypeMismatch, role, prev.TypeName(), value.TypeName())
	}
	if prev.Equal(value) {
		return false, nil
	}
	d.values.Add(role, value)
	return true, nil
}

// Roles returns the roles with data, in insertion order.
func (d *ItemData) Roles() []Role {
	return d.values.Keys()
}

// Len returns the number of roles with data.
func (d *ItemData) Len() int {
	return d.values.Len()
}

// Clone returns an independent copy of the data.
func (d *ItemData) Clone() *ItemData {
	return &ItemData{values: *d.values.Clone()}
}

// Equal returns whether both have the same roles in the same
// order, with equal values.
func (d *ItemData) Equal(o *ItemData) bool {
	if d.Len() != o.Len() {
		return false
	}
	for i, kv := range d.values.Order {
		okv := o.values.Order[i]
		if kv.Key != okv.Key || !kv.Value.Equal(okv.Value) {
			return false
		}
	}
	return true
}

// String returns a readable form of the data.
func (d *ItemData) String() string {
	return d.values.String()
}
