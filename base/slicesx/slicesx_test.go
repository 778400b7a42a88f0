// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5}
	for i := range s {
		for st := -1; st <= len(s); st++ {
			assert.Equal(t, i, Search(s, func(e int) bool { return e == i }, st))
		}
	}
	assert.Equal(t, -1, Search(s, func(e int) bool { return e == 9 }))
	assert.Equal(t, -1, Search([]int{}, func(e int) bool { return true }))
}
