// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "strconv"

// Role identifies one data slot of an item.
type Role int

const (
	// IdentifierRole holds the persistent unique identifier of the item.
	IdentifierRole Role = iota

	// DataRole holds the main value of the item.
	DataRole

	// DisplayRole holds the display name of the item.
	DisplayRole

	// AppearanceRole holds the [Appearance] flags of the item.
	AppearanceRole

	// LimitsRole holds the limits of the main value.
	LimitsRole

	// TooltipRole holds the tooltip text.
	TooltipRole

	// EditorTypeRole holds the name of the editor to use for the main value.
	EditorTypeRole
)

var roleNames = [...]string{"Identifier", "Data", "Display", "Appearance", "Limits", "Tooltip", "EditorType"}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// Appearance is an ordinal bit position in the [AppearanceRole] flags.
type Appearance int

const (
	// Editable means the value can be changed from a view.
	Editable Appearance = iota

	// Enabled means the item is active in views.
	Enabled

	// Visible means the item is shown in views.
	Visible
)

// DefaultAppearance is the flag set of an item without [AppearanceRole] data.
const DefaultAppearance = 1<<Editable | 1<<Enabled | 1<<Visible
