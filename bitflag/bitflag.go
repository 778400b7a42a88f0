// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bitflag provides simple bit flag setting, checking, and clearing
// methods that take bit position args as ints (from const int enum iota's)
// and do the bit shifting from there.
package bitflag

// Mask makes a mask for checking multiple different flags
func Mask(flags ...int) int64 {
	var mask int64
	for _, f := range flags {
		mask |= 1 << uint32(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags
func Set(bits *int64, flags ...int) {
	*bits |= Mask(flags...)
}

// Clear clears bit value(s) for ordinal bit position flags
func Clear(bits *int64, flags ...int) {
	*bits &^= Mask(flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off) for
// ordinal bit position flags
func SetState(bits *int64, state bool, flags ...int) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Has checks if given bit value is set for ordinal bit position flag
func Has(bits int64, flag int) bool {
	return bits&(1<<uint32(flag)) != 0
}

// HasAll checks if all the given bits are set
func HasAll(bits int64, flags ...int) bool {
	mask := Mask(flags...)
	return bits&mask == mask
}

// HasAny checks if any of the given bits are set
func HasAny(bits int64, flags ...int) bool {
	return bits&Mask(flags...) != 0
}
