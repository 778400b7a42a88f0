// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "errors"

// Structural errors
var (
	// ErrInvalidOperand indicates a nil item, or an item that already has a
	// parent or a model, passed to an insert operation.
	ErrInvalidOperand = errors.New("session: invalid operand")

	// ErrSlotRejected indicates that a container refused an item because of
	// its type, its arity limit or an out of range index.
	ErrSlotRejected = errors.New("session: item rejected by container")

	// ErrInvalidMove indicates a move that violates a structural precondition.
	ErrInvalidMove = errors.New("session: invalid move")

	// ErrNotFound indicates an item, identifier or index that does not exist.
	ErrNotFound = errors.New("session: not found")
)

// Tag errors
var (
	// ErrNoSuchTag indicates a tag name that is not registered, or an empty
	// tag name without a default tag.
	ErrNoSuchTag = errors.New("session: no such tag")

	// ErrDuplicateTag indicates registration of an existing or empty tag name.
	ErrDuplicateTag = errors.New("session: duplicate tag")
)

// Type errors
var (
	// ErrTypeMismatch indicates a value of a different kind written to a typed
	// data role, or data of one model type loaded into another.
	ErrTypeMismatch = errors.New("session: type mismatch")

	// ErrUnknownItemType indicates a model type with no registered constructor.
	ErrUnknownItemType = errors.New("session: unknown item type")
)
