// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// comboValueSep separates the values of an encoded combo.
	comboValueSep = ";"

	// comboSelectionSep separates the values from the selected indices.
	comboSelectionSep = "|"

	// comboEmptyValue encodes a list made of one empty value.
	comboEmptyValue = `\e`
)

// comboEscaper escapes the separators inside encoded values.
var comboEscaper = strings.NewReplacer(`\`, `\\`, comboValueSep, `\;`, comboSelectionSep, `\|`)

// ComboProperty is a list of string values with a selection, used for
// properties that take one (or several) values out of a fixed set.
type ComboProperty struct {
	values   []string
	selected []int
}

// ComboFrom returns a combo with the given values and the first one selected.
func ComboFrom(values ...string) ComboProperty {
	c := ComboProperty{values: slices.Clone(values)}
	if len(values) > 0 {
		c.selected = []int{0}
	}
	return c
}

// ComboFromValue returns a combo with the given values and current selected.
func ComboFromValue(values []string, current string) (ComboProperty, error) {
	c := ComboFrom(values...)
	return c, c.SetValue(current)
}

func (c ComboProperty) clone() ComboProperty {
	return ComboProperty{values: slices.Clone(c.values), selected: slices.Clone(c.selected)}
}

// Values returns a copy of the list of values.
func (c ComboProperty) Values() []string {
	return slices.Clone(c.values)
}

// SetValues replaces the list of values. The current value stays
// selected if it is still present, otherwise the first value is.
func (c *ComboProperty) SetValues(values []string) {
	current := c.Value()
	c.values = slices.Clone(values)
	c.selected = nil
	if i := slices.Index(c.values, current); i >= 0 {
		c.selected = []int{i}
	} else if len(c.values) > 0 {
		c.selected = []int{0}
	}
}

// Value returns the value at [ComboProperty.CurrentIndex], or "" if
// nothing is selected.
func (c ComboProperty) Value() string {
	i := c.CurrentIndex()
	if i < 0 {
		return ""
	}
	return c.values[i]
}

// SetValue selects the given value. It fails if the value is not one
// of the combo values.
func (c *ComboProperty) SetValue(value string) error {
	i := slices.Index(c.values, value)
	if i < 0 {
		return fmt.Errorf("%w: combo has no value %q (values %v)", ErrInvalidValue, value, c.values)
	}
	c.selected = []int{i}
	return nil
}

// CurrentIndex returns the first selected index, or -1.
func (c ComboProperty) CurrentIndex() int {
	if len(c.selected) == 0 {
		return -1
	}
	return c.selected[0]
}

// SetCurrentIndex selects the value at the given index only.
func (c *ComboProperty) SetCurrentIndex(index int) error {
	return c.SetSelected(index)
}

// Selected returns a copy of the selected indices, in ascending order.
func (c ComboProperty) Selected() []int {
	return slices.Clone(c.selected)
}

// SetSelected replaces the selection with the given indices.
func (c *ComboProperty) SetSelected(indices ...int) error {
	for _, i := range indices {
		if i < 0 || i >= len(c.values) {
			return fmt.Errorf("%w: combo index %d out of range [0, %d)", ErrInvalidValue, i, len(c.values))
		}
	}
	sel := slices.Clone(indices)
	slices.Sort(sel)
	c.selected = slices.Compact(sel)
	return nil
}

// Label returns the text shown for the selection: the selected value,
// "None" when nothing is selected or "Multiple" for several selections.
func (c ComboProperty) Label() string {
	switch len(c.selected) {
	case 0:
		return "None"
	case 1:
		return c.Value()
	}
	return "Multiple"
}

// Equal returns whether both combos have the same values and selection.
func (c ComboProperty) Equal(o ComboProperty) bool {
	return slices.Equal(c.values, o.values) && slices.Equal(c.selected, o.selected)
}

// String returns the encoded form of the combo; see [ParseCombo].
func (c ComboProperty) String() string {
	var b strings.Builder
	if len(c.values) == 1 && c.values[0] == "" {
		b.WriteString(comboEmptyValue)
	}
	for i, v := range c.values {
		if i > 0 {
			b.WriteString(comboValueSep)
		}
		b.WriteString(comboEscaper.Replace(v))
	}
	b.WriteString(comboSelectionSep)
	for i, s := range c.selected {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

// ParseCombo decodes a combo encoded as values joined by ";",
// followed by "|" and the comma separated selected indices.
// Inside values, a backslash escapes a backslash and both separators,
// and `\e` stands for nothing, so that a list made of one empty value
// encodes as `\e|` while a list without values encodes as "|".
func ParseCombo(s string) (ComboProperty, error) {
	var c ComboProperty
	var values []string
	var cur strings.Builder
	at := -1
	for i := 0; i < len(s) && at < 0; i++ {
		switch ch := s[i]; ch {
		case '\\':
			if i+1 >= len(s) {
				return c, fmt.Errorf("%w: combo %q ends with an escape", ErrParse, s)
			}
			i++
			switch s[i] {
			case '\\', ';', '|':
				cur.WriteByte(s[i])
			case 'e':
			default:
				return c, fmt.Errorf("%w: combo %q has an invalid escape \\%c", ErrParse, s, s[i])
			}
		case ';':
			values = append(values, cur.String())
			cur.Reset()
		case '|':
			at = i
			if i > 0 || len(values) > 0 {
				values = append(values, cur.String())
			}
		default:
			cur.WriteByte(ch)
		}
	}
	if at < 0 {
		return c, fmt.Errorf("%w: combo %q has no selection separator", ErrParse, s)
	}
	c.values = values
	var sel []int
	if sels := strings.TrimSpace(s[at+1:]); sels != "" {
		for _, f := range strings.Split(sels, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return c, fmt.Errorf("%w: combo selection %q: %v", ErrParse, f, err)
			}
			sel = append(sel, i)
		}
	}
	if err := c.SetSelected(sel...); err != nil {
		return c, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return c, nil
}
