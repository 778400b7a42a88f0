// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treedata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *TreeData {
	root := New("Document")
	root.SetAttribute("version", "1.0.0")
	model := root.AddChild(New("Model"))
	model.SetAttribute("type", "SampleModel")
	v := model.AddChild(New("Variant"))
	v.SetAttribute("type", "string")
	v.SetAttribute("role", "2")
	v.SetContent(" a <b> & \"c\" ")
	model.AddChild(New("ItemData"))
	return root
}

func TestWriteXML(t *testing.T) {
	want := `<?xml version="1.0" encoding="UTF-8"?>
<Document version="1.0.0">
  <Model type="SampleModel">
    <Variant role="2" type="string"> a &lt;b&gt; &amp; &#34;c&#34; </Variant>
    <ItemData/>
  </Model>
</Document>
`
	assert.Equal(t, want, XMLString(testTree()))
}

func TestElementXMLString(t *testing.T) {
	v := New("Variant")
	v.SetAttribute("type", "double")
	v.SetAttribute("role", "0")
	v.SetContent("0.0")
	assert.Equal(t, `<Variant role="0" type="double">0.0</Variant>`, ElementXMLString(v))
	assert.Equal(t, `<Variant role="0" type="double">0.0</Variant>`, v.String())
}

func TestXMLRoundTrip(t *testing.T) {
	td := testTree()
	back, err := ParseXMLDataString(XMLString(td))
	require.NoError(t, err)
	assert.True(t, td.Equal(back), "%v\n%v", td, back)
	assert.Equal(t, " a <b> & \"c\" ", back.Children[0].Children[0].Content)

	multi := New("Variant")
	multi.SetContent("line1\nline2\t")
	back, err = ParseXMLElementString(ElementXMLString(multi))
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\t", back.Content)
}

func TestXMLFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tree.xml")
	td := testTree()
	require.NoError(t, WriteXMLFile(filename, td))
	back, err := ParseXMLDataFile(filename)
	require.NoError(t, err)
	assert.True(t, td.Equal(back))

	_, err = ParseXMLDataFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestParseXMLElementString(t *testing.T) {
	td, err := ParseXMLElementString(`<TagInfo min="0" max="-1" name="Width">SegmentItem, PulseItem</TagInfo>`)
	require.NoError(t, err)
	assert.Equal(t, "TagInfo", td.Type)
	assert.Equal(t, []string{"min", "max", "name"}, td.AttributeNames())
	assert.Equal(t, "SegmentItem, PulseItem", td.Content)

	td, err = ParseXMLElementString("<A>\n  text\n  <B/>\n</A>")
	require.NoError(t, err)
	assert.Equal(t, "text", td.Content)
	assert.Len(t, td.Children, 1)

	td, err = ParseXMLElementString("<A>  </A>")
	require.NoError(t, err)
	assert.Equal(t, "  ", td.Content)
}

func TestParseXMLDataString(t *testing.T) {
	td, err := ParseXMLDataString(`<?xml version="1.0" encoding="UTF-8"?>
<root a="1"><Model/><Model/></root>`)
	require.NoError(t, err)
	assert.Equal(t, "root", td.Type)
	assert.Equal(t, "1", td.Attribute("a"))
	assert.Len(t, td.Children, 2)
}

func TestParseXMLErrors(t *testing.T) {
	bad := []string{
		``,
		`<A>`,
		`<A></B>`,
		`<A/><B/>`,
		`text<A/>`,
	}
	for _, s := range bad {
		_, err := ParseXMLElementString(s)
		assert.ErrorIs(t, err, ErrParse, s)
	}
	_, err := ParseXMLDataString(`<A/>`)
	assert.ErrorIs(t, err, ErrParse, "declaration is required")
}
