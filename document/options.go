// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/mvvm/base/iox/tomlx"
	"cogentcore.org/mvvm/treedata"
	"cogentcore.org/mvvm/variant"
)

// Formats are the file formats of a document.
const (
	// XML is the default format.
	XML = "xml"

	// YAML stores the same element tree as YAML.
	YAML = "yaml"
)

// Options configure how documents are written.
type Options struct {

	// Precision is the number of significant digits of double values.
	Precision int `toml:"precision"`

	// IndentWidth is the number of spaces per nesting level of XML output.
	IndentWidth int `toml:"indent_width"`

	// Format is XML or YAML. Empty picks the format from the extension
	// of the file, with .yaml and .yml files using YAML.
	Format string `toml:"format"`
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Precision: variant.DefaultPrecision, IndentWidth: treedata.DefaultIndentWidth}
}

// LoadOptions reads options from the given TOML file. Fields missing
// from the file keep their default value.
func LoadOptions(filename string) (Options, error) {
	opts := DefaultOptions()
	fn, err := homedir.Expand(filename)
	if err != nil {
		return opts, err
	}
	err = tomlx.Open(&opts, fn)
	return opts, err
}

// SaveOptions writes the options to the given TOML file.
func SaveOptions(opts Options, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	return tomlx.Save(&opts, fn)
}

// format returns the format to use for the given file name.
func (o *Options) format(filename string) string {
	if o.Format != "" {
		return strings.ToLower(o.Format)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return XML
}
