// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		in   any
		kind Kind
	}{
		{nil, Undefined},
		{true, Bool},
		{42, Int},
		{int64(7), Int},
		{1.5, Double},
		{float32(2), Double},
		{"abc", String},
		{[]float64{1, 2}, DoubleVector},
		{ComboFrom("a", "b"), Combo},
	}
	for _, tt := range tests {
		v, err := New(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, v.Kind(), "%v", tt.in)
	}

	_, err := New(struct{}{})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Panics(t, func() { Must(map[string]int{}) })
}

func TestAccessors(t *testing.T) {
	assert.True(t, FromBool(true).Bool())
	assert.Equal(t, 3, FromInt(3).Int())
	assert.Equal(t, 0.25, FromDouble(0.25).Double())
	assert.Equal(t, "x", FromString("x").Text())
	assert.Equal(t, "", FromInt(3).Text())
	assert.Nil(t, Variant{}.Value())
	assert.False(t, Variant{}.IsValid())
	assert.Equal(t, "double", FromDouble(1).TypeName())
	assert.Equal(t, "double(0.5)", FromDouble(0.5).String())
}

func TestDoublesAreCopied(t *testing.T) {
	src := []float64{1, 2, 3}
	v := FromDoubles(src)
	src[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, v.Doubles())
	out := v.Doubles()
	out[1] = 100
	assert.Equal(t, []float64{1, 2, 3}, v.Doubles())
}

func TestEqual(t *testing.T) {
	assert.True(t, Variant{}.Equal(Variant{}))
	assert.True(t, FromInt(1).Equal(FromInt(1)))
	assert.False(t, FromInt(1).Equal(FromInt(2)))
	assert.False(t, FromInt(1).Equal(FromDouble(1)))
	assert.True(t, FromDoubles([]float64{1, 2}).Equal(FromDoubles([]float64{1, 2})))
	assert.False(t, FromDoubles([]float64{1, 2}).Equal(FromDoubles([]float64{1})))
	assert.True(t, FromCombo(ComboFrom("a", "b")).Equal(FromCombo(ComboFrom("a", "b"))))
	assert.False(t, FromCombo(ComboFrom("a", "b")).Equal(FromCombo(ComboFrom("a", "c"))))
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible(Undefined, Int))
	assert.True(t, Compatible(Int, Undefined))
	assert.True(t, Compatible(Int, Int))
	assert.False(t, Compatible(Int, Double))
}

func TestKindByName(t *testing.T) {
	for k := Undefined; k < KindsN; k++ {
		got, err := KindByName(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := KindByName("QColor")
	assert.True(t, errors.Is(err, ErrUnknownType))
}
