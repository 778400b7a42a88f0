// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uid provides generators of persistent unique identifiers
// for session items. The process-wide [Default] generator produces
// ULIDs; tests can install a deterministic [Sequence] with [SetDefault].
package uid

import (
	"crypto/rand"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces identifiers that are unique within a process lifetime.
type Generator interface {
	Generate() string
}

// ULID generates lexically sortable identifiers with monotonic entropy,
// so identifiers generated within the same millisecond still increase.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULID returns a new [ULID] generator.
func NewULID() *ULID {
	return &ULID{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Generate implements [Generator].
func (g *ULID) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// Sequence generates Prefix followed by an incrementing counter.
// It is intended for tests that need predictable identifiers.
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// Generate implements [Generator].
func (s *Sequence) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.Prefix + strconv.Itoa(s.next)
	s.next++
	return id
}

var (
	defaultMu  sync.RWMutex
	defaultGen Generator = NewULID()
)

// Default returns the process-wide generator.
func Default() Generator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGen
}

// SetDefault installs g as the process-wide generator and returns
// the previous one, so callers can restore it.
func SetDefault(g Generator) Generator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultGen
	defaultGen = g
	return prev
}

// New returns a new identifier from the process-wide generator.
func New() string {
	return Default().Generate()
}
