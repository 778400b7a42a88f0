// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "slices"

// SignalTypes are the kinds of changes a [Model] reports.
type SignalTypes int32

const (
	// DataChanged indicates that one data role of an item changed.
	DataChanged SignalTypes = iota

	// ItemInserted indicates that a child was inserted into an item.
	ItemInserted

	// AboutToRemoveItem indicates that a child is about to be taken
	// out of an item. The child is still in place.
	AboutToRemoveItem

	// ItemRemoved indicates that a child was taken out of an item.
	ItemRemoved

	// ModelAboutToReset indicates that the model root is about to be replaced.
	ModelAboutToReset

	// ModelReset indicates that the model root was replaced.
	ModelReset
)

var signalNames = [...]string{"DataChanged", "ItemInserted", "AboutToRemoveItem", "ItemRemoved", "ModelAboutToReset", "ModelReset"}

func (s SignalTypes) String() string {
	if s < 0 || int(s) >= len(signalNames) {
		return "SignalTypes(?)"
	}
	return signalNames[s]
}

// Event is one change report. Item is the changed item for
// [DataChanged] and the parent for the insert and remove kinds.
type Event struct {
	Type     SignalTypes
	Item     Item
	Role     Role
	TagIndex TagIndex
	Model    *Model
}

// connection is one receiver function of a client.
type connection struct {
	client  any
	fun     func(e *Event)
	removed bool
}

// Signal delivers events to connected receivers, in connection order.
// A client may connect any number of functions and disconnects all
// of them at once. A function disconnected while an event is being
// delivered does not receive that event.
type Signal struct {
	cons []*connection
}

// Connect attaches the given receiver function for the given client,
// which must be non-nil and comparable.
func (s *Signal) Connect(client any, fun func(e *Event)) {
	if client == nil || fun == nil {
		return
	}
	s.cons = append(s.cons, &connection{client: client, fun: fun})
}

// Disconnect removes all receiver functions of the given client.
func (s *Signal) Disconnect(client any) {
	s.cons = slices.DeleteFunc(s.cons, func(c *connection) bool {
		if c.client == client {
			c.removed = true
			return true
		}
		return false
	})
}

// DisconnectAll removes all connections.
func (s *Signal) DisconnectAll() {
	for _, c := range s.cons {
		c.removed = true
	}
	s.cons = nil
}

// Len returns the number of connections.
func (s *Signal) Len() int {
	return len(s.cons)
}

// Emit sends the event to all receivers connected when it starts.
func (s *Signal) Emit(e *Event) {
	for _, c := range slices.Clone(s.cons) {
		if !c.removed {
			c.fun(e)
		}
	}
}
