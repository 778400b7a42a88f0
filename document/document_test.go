// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/treedata"
)

func testModels(t *testing.T) (*session.Model, *session.Model, string) {
	sample := session.NewModel("SampleModel")
	v, err := session.InsertItem[*session.VectorItem](sample, nil)
	require.NoError(t, err)
	require.NoError(t, v.SetY(2.5))
	material := session.NewModel("MaterialModel")
	c, err := session.InsertItem[*session.CompoundItem](material, nil)
	require.NoError(t, err)
	_, err = c.AddProperty("density", 7.9)
	require.NoError(t, err)
	return sample, material, v.Identifier()
}

func TestSaveLoad(t *testing.T) {
	for _, ext := range []string{".xml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			sample, material, id := testModels(t)
			fn := filepath.Join(t.TempDir(), "project"+ext)
			require.NoError(t, New(sample, material).Save(fn))

			s2 := session.NewModel("SampleModel")
			m2 := session.NewModel("MaterialModel")
			require.NoError(t, New(s2, m2).Load(fn))
			v := s2.FindItem(id)
			require.NotNil(t, v)
			assert.Equal(t, 2.5, v.(*session.VectorItem).Y())
			c, ok := session.TopItem[*session.CompoundItem](m2)
			require.True(t, ok)
			assert.Equal(t, 7.9, session.Property[float64](c, "density"))
		})
	}
}

func TestWriteFormat(t *testing.T) {
	sample, _, _ := testModels(t)
	d := New(sample)
	var b bytes.Buffer
	require.NoError(t, d.Write(&b, XML))
	s := b.String()
	assert.True(t, strings.HasPrefix(s, treedata.Declaration+"\n<Document version=\"1.0.0\">\n  <Model type=\"SampleModel\">"), s)

	d.Options.IndentWidth = 4
	b.Reset()
	require.NoError(t, d.Write(&b, XML))
	assert.Contains(t, b.String(), "\n    <Model type=\"SampleModel\">")

	assert.ErrorIs(t, d.Write(&b, "json"), ErrFormat)
}

func TestLoadWrongOrder(t *testing.T) {
	sample, material, _ := testModels(t)
	var b bytes.Buffer
	require.NoError(t, New(sample, material).Write(&b, XML))

	d := New(session.NewModel("MaterialModel"), session.NewModel("SampleModel"))
	assert.ErrorIs(t, d.Read(&b, XML), session.ErrTypeMismatch)
}

func TestLoadModelCount(t *testing.T) {
	sample, material, _ := testModels(t)
	var b bytes.Buffer
	require.NoError(t, New(sample, material).Write(&b, XML))
	assert.ErrorIs(t, New(session.NewModel("SampleModel")).Read(&b, XML), ErrModelCount)
}

func TestVersion(t *testing.T) {
	sample, _, _ := testModels(t)
	d := New(sample)
	td := d.ToTree()

	td.SetAttribute("version", "1.4.2")
	assert.NoError(t, d.FromTree(td))

	td.SetAttribute("version", "2.0.0")
	assert.ErrorIs(t, d.FromTree(td), ErrVersion)

	td.SetAttribute("version", "latest")
	assert.ErrorIs(t, d.FromTree(td), ErrVersion)

	td = treedata.New(DocumentType)
	td.AddChild(d.converter().ModelToTree(sample))
	assert.NoError(t, d.FromTree(td))
}

func TestLoadErrors(t *testing.T) {
	d := New(session.NewModel("SampleModel"))
	dir := t.TempDir()
	assert.Error(t, d.Load(filepath.Join(dir, "missing.xml")))

	fn := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(fn, []byte("<Document><Model"), 0o666))
	assert.ErrorIs(t, d.Load(fn), treedata.ErrParse)
}

func TestReadYAMLEmptyChildren(t *testing.T) {
	doc := `type: Document
children:
  - type: Model
    attributes: {type: SampleModel}
    children:
      - type: Item
        attributes: {model: Vector}
        children: [~, ~]
`
	d := New(session.NewModel("SampleModel"))
	assert.ErrorIs(t, d.Read(strings.NewReader(doc), YAML), treedata.ErrParse)
}

func TestOptions(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "options.toml")
	opts := DefaultOptions()
	assert.Equal(t, 12, opts.Precision)
	assert.Equal(t, 2, opts.IndentWidth)

	opts.Format = YAML
	opts.Precision = 6
	require.NoError(t, SaveOptions(opts, fn))
	back, err := LoadOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, opts, back)

	require.NoError(t, os.WriteFile(fn, []byte("format = \"xml\"\n"), 0o666))
	back, err = LoadOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, 12, back.Precision)
	assert.Equal(t, XML, back.Format)

	assert.Equal(t, XML, (&Options{}).format("a.xml"))
	assert.Equal(t, YAML, (&Options{}).format("a.YML"))
	assert.Equal(t, YAML, (&Options{Format: "YAML"}).format("a.xml"))
}
