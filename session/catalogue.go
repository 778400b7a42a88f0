// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/mvvm/base/errors"
	"cogentcore.org/mvvm/base/keylist"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Catalogue maps model types to item constructors. It is the factory
// used to create items by model type name during decoding and by
// [Model.InsertNewItem].
type Catalogue struct {
	ctors *keylist.List[string, func() Item]

	// typeNames maps the Go type of each registered item to its model type.
	typeNames map[reflect.Type]string
}

// NewCatalogue returns an empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{ctors: keylist.New[string, func() Item](), typeNames: map[reflect.Type]string{}}
}

// StandardCatalogue returns a catalogue with the standard items.
func StandardCatalogue() *Catalogue {
	c := NewCatalogue()
	errors.Must(c.Add(SessionItemType, func() Item { return NewItem(SessionItemType) }))
	errors.Must(RegisterItem(c, NewPropertyItem))
	errors.Must(RegisterItem(c, NewCompoundItem))
	errors.Must(RegisterItem(c, NewVectorItem))
	errors.Must(RegisterItem(c, NewContainerItem))
	return c
}

// RegisterItem registers the given constructor under the model type of
// the items it makes. It fails if that model type is already registered.
func RegisterItem[T Item](c *Catalogue, ctor func() T) error {
	item := ctor()
	return c.Add(item.AsItem().ModelType(), func() Item { return ctor() })
}

// Add registers the given constructor under the given model type.
// It fails if the model type is already registered.
func (c *Catalogue) Add(modelType string, ctor func() Item) error {
	if err := c.ctors.Add(modelType, ctor); err != nil {
		return fmt.Errorf("session.Catalogue: model type %q is already registered", modelType)
	}
	if typ := reflect.TypeOf(ctor()); c.typeNames[typ] == "" {
		c.typeNames[typ] = modelType
	}
	return nil
}

// Contains returns whether the given model type is registered.
func (c *Catalogue) Contains(modelType string) bool {
	return c.ctors.IndexByKey(modelType) >= 0
}

// ModelTypes returns the registered model types, in registration order.
func (c *Catalogue) ModelTypes() []string {
	return slices.Clone(c.ctors.Keys)
}

// Len returns the number of registered model types.
func (c *Catalogue) Len() int {
	return c.ctors.Len()
}

// Create returns a new item of the given model type.
func (c *Catalogue) Create(modelType string) (Item, error) {
	ctor, ok := c.ctors.AtTry(modelType)
	if !ok {
		if s := c.suggest(modelType); s != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownItemType, modelType, s)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, modelType)
	}
	return ctor(), nil
}

// ModelTypeOf returns the model type registered for the Go type of the
// given item, and whether there is one.
func (c *Catalogue) ModelTypeOf(item Item) (string, bool) {
	name, ok := c.typeNames[reflect.TypeOf(item)]
	return name, ok
}

// Merge adds all model types of the other catalogue, failing on the
// first one that is already registered.
func (c *Catalogue) Merge(other *Catalogue) error {
	for i, name := range other.ctors.Keys {
		if err := c.Add(name, other.ctors.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

// suggest returns the registered model type closest to the given
// name, or "" if none is similar enough.
func (c *Catalogue) suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bestScore := "", 0.5
	for _, key := range c.ctors.Keys {
		if score := strutil.Similarity(name, key, lev); score >= bestScore {
			best, bestScore = key, score
		}
	}
	return best
}
