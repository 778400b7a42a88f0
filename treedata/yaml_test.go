// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteYAML(t *testing.T) {
	td := New("Model")
	td.SetAttribute("type", "SampleModel")
	v := td.AddChild(New("Variant"))
	v.SetAttribute("type", "double")
	v.SetAttribute("role", "1")
	v.SetContent("0.5")
	want := `type: Model
attributes:
  type: SampleModel
children:
  - type: Variant
    attributes:
      role: "1"
      type: double
    content: "0.5"
`
	assert.Equal(t, want, YAMLString(td))
}

func TestYAMLRoundTrip(t *testing.T) {
	td := testTree()
	td.AddChild(New("Empty"))
	back, err := ParseYAMLString(YAMLString(td))
	require.NoError(t, err)
	assert.True(t, td.Equal(back), "%v\n%v", td, back)
	assert.Equal(t, " a <b> & \"c\" ", back.Children[0].Children[0].Content)
}

func TestParseYAMLSortsAttributes(t *testing.T) {
	td, err := ParseYAMLString("type: TagInfo\nattributes: {name: Width, min: \"0\", max: \"-1\"}\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"max", "min", "name"}, td.AttributeNames())
	assert.Equal(t, "-1", td.Attribute("max"))
}

func TestParseYAMLErrors(t *testing.T) {
	for _, s := range []string{"", "attributes: {a: b}\n", "type: [1, 2]\n", "type: A\nchildren:\n  - content: x\n", "type: Item\nchildren: [~, ~]\n"} {
		_, err := ParseYAMLString(s)
		assert.ErrorIs(t, err, ErrParse, s)
	}
}
