// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/mvvm/base/errors"
)

// TagInfo describes one named child slot of an item: the model types
// it accepts and its arity limits.
type TagInfo struct {

	// Name is the tag name, unique within the item.
	Name string

	// Min is the minimum number of children.
	Min int

	// Max is the maximum number of children, or -1 for no limit.
	Max int

	// ModelTypes are the accepted child model types; empty accepts any type.
	ModelTypes []string
}

// NewTagInfo returns a new [TagInfo].
func NewTagInfo(name string, min, max int, modelTypes ...string) TagInfo {
	return TagInfo{Name: name, Min: min, Max: max, ModelTypes: modelTypes}
}

// UniversalTag returns a tag for any number of children of the given
// model types (any type if none are given).
func UniversalTag(name string, modelTypes ...string) TagInfo {
	return NewTagInfo(name, 0, -1, modelTypes...)
}

// PropertyTag returns a tag holding exactly one child of the given type.
func PropertyTag(name, modelType string) TagInfo {
	return NewTagInfo(name, 1, 1, modelType)
}

// Validate returns an error if the arity limits are inconsistent.
func (t TagInfo) Validate() error {
	if t.Min < 0 || (t.Max >= 0 && t.Max < t.Min) || t.Max < -1 {
		return fmt.Errorf("%w: tag %q has invalid arity [%d, %d]", ErrInvalidOperand, t.Name, t.Min, t.Max)
	}
	return nil
}

// IsSinglePropertyTag returns whether the tag holds exactly one child.
func (t TagInfo) IsSinglePropertyTag() bool {
	return t.Min == 1 && t.Max == 1
}

// IsValidChild returns whether a child of the given model type is accepted.
func (t TagInfo) IsValidChild(modelType string) bool {
	return len(t.ModelTypes) == 0 || slices.Contains(t.ModelTypes, modelType)
}

// MaximumReached returns whether count children fill the tag.
func (t TagInfo) MaximumReached(count int) bool {
	return t.Max != -1 && count >= t.Max
}

// Equal returns whether both tags have the same name, limits and model types.
func (t TagInfo) Equal(o TagInfo) bool {
	return t.Name == o.Name && t.Min == o.Min && t.Max == o.Max && slices.Equal(t.ModelTypes, o.ModelTypes)
}

// Clone returns a deep copy of the tag.
func (t TagInfo) Clone() TagInfo {
	var cp TagInfo
	errors.Log(copier.CopyWithOption(&cp, &t, copier.Option{DeepCopy: true}))
	if len(cp.ModelTypes) == 0 {
		cp.ModelTypes = nil
	}
	return cp
}

func (t TagInfo) String() string {
	return "TagInfo(" + t.Name + ", " + strconv.Itoa(t.Min) + ", " + strconv.Itoa(t.Max) + ", [" + strings.Join(t.ModelTypes, ", ") + "])"
}

// TagIndex addresses a child by tag name and index within the tag.
// An empty Tag means the default tag; an Index of -1 means append.
type TagIndex struct {
	Tag   string
	Index int
}

// TagIndexAppend returns the index for appending to the given tag.
func TagIndexAppend(tag string) TagIndex {
	return TagIndex{Tag: tag, Index: -1}
}

// TagIndexPrepend returns the index for prepending to the given tag.
func TagIndexPrepend(tag string) TagIndex {
	return TagIndex{Tag: tag, Index: 0}
}

// Next returns the index after this one in the same tag.
func (ti TagIndex) Next() TagIndex {
	return TagIndex{Tag: ti.Tag, Index: ti.Index + 1}
}

// Prev returns the index before this one in the same tag.
func (ti TagIndex) Prev() TagIndex {
	return TagIndex{Tag: ti.Tag, Index: ti.Index - 1}
}

func (ti TagIndex) String() string {
	return ti.Tag + "[" + strconv.Itoa(ti.Index) + "]"
}
