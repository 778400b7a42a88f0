// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document saves and loads an ordered list of models as one file.
//
// The file holds a Document element with a version attribute and one
// Model element per model, in order. Loading requires the same models
// in the same order as when the document was saved: each model is
// populated in place from its element.
package document

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/mvvm/base/errors"
	"cogentcore.org/mvvm/serial"
	"cogentcore.org/mvvm/session"
	"cogentcore.org/mvvm/treedata"
)

// Version is the format version written to new documents.
const Version = "1.0.0"

// DocumentType is the type of the top element of a document.
const DocumentType = "Document"

// compatible is the range of format versions that can be loaded.
var compatible = errors.Must1(semver.NewConstraint("^1"))

var (
	// ErrModelCount is returned when a document does not have one
	// Model element per model.
	ErrModelCount = errors.New("document: wrong number of models")

	// ErrVersion is returned when a document has an unsupported version.
	ErrVersion = errors.New("document: unsupported version")

	// ErrFormat is returned for an unknown file format.
	ErrFormat = errors.New("document: unknown format")
)

// Document is an ordered list of models stored as one file.
type Document struct {

	// Models are the models of the document, in file order.
	Models []*session.Model

	// Options configure writing.
	Options Options
}

// New returns a new document for the given models with default options.
func New(models ...*session.Model) *Document {
	return &Document{Models: models, Options: DefaultOptions()}
}

func (d *Document) converter() *serial.Converter {
	return &serial.Converter{Precision: d.Options.Precision}
}

// ToTree returns the element tree of the document.
func (d *Document) ToTree() *treedata.TreeData {
	t := treedata.New(DocumentType)
	t.SetAttribute("version", Version)
	c := d.converter()
	for _, m := range d.Models {
		t.AddChild(c.ModelToTree(m))
	}
	return t
}

// FromTree populates the models of the document from the given element
// tree, in order. A missing version attribute is accepted.
func (d *Document) FromTree(t *treedata.TreeData) error {
	if t == nil || t.Type != DocumentType {
		return fmt.Errorf("%w: top element is not a %s", serial.ErrNotConvertible, DocumentType)
	}
	if t.HasAttribute("version") {
		if err := checkVersion(t.Attribute("version")); err != nil {
			return err
		}
	}
	if n := t.NumChildren(); n != len(d.Models) {
		return fmt.Errorf("%w: file has %d, document has %d", ErrModelCount, n, len(d.Models))
	}
	c := d.converter()
	for i, m := range d.Models {
		if err := c.PopulateModel(t.Children[i], m); err != nil {
			return fmt.Errorf("model %d (%s): %w", i, m.ModelType(), err)
		}
	}
	return nil
}

func checkVersion(s string) error {
	v, err := semver.NewVersion(s)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrVersion, s, err)
	}
	if !compatible.Check(v) {
		return fmt.Errorf("%w: %s", ErrVersion, v)
	}
	return nil
}

// Write writes the document to the given writer in the given format.
func (d *Document) Write(w io.Writer, format string) error {
	t := d.ToTree()
	switch format {
	case XML, "":
		return treedata.WriteXMLIndent(w, t, d.Options.IndentWidth)
	case YAML:
		return treedata.WriteYAML(w, t)
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// Read populates the models of the document from the given reader in
// the given format.
func (d *Document) Read(r io.Reader, format string) error {
	var t *treedata.TreeData
	var err error
	switch format {
	case XML, "":
		t, err = treedata.ParseXMLData(r)
	case YAML:
		t, err = treedata.ParseYAML(r)
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return err
	}
	return d.FromTree(t)
}

// Save writes the document to the given file. A leading ~ in the path
// is expanded to the home directory.
func (d *Document) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if errors.Log(err) != nil {
		return err
	}
	fp, err := os.Create(fn)
	if errors.Log(err) != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := d.Write(bw, d.Options.format(fn)); errors.Log(err) != nil {
		return err
	}
	if err := bw.Flush(); errors.Log(err) != nil {
		return err
	}
	slog.Info("document.Save", "path", fn, "models", len(d.Models))
	return nil
}

// Load populates the models of the document from the given file.
// Loading is not atomic: on error, the models populated so far keep
// their new content.
func (d *Document) Load(filename string) error {
	fn, err := homedir.Expand(filename)
	if errors.Log(err) != nil {
		return err
	}
	fp, err := os.Open(fn)
	if errors.Log(err) != nil {
		return err
	}
	defer fp.Close()
	if err := d.Read(bufio.NewReader(fp), d.Options.format(fn)); errors.Log(err) != nil {
		return err
	}
	slog.Info("document.Load", "path", fn, "models", len(d.Models))
	return nil
}
