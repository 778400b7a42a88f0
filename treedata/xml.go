// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treedata

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"cogentcore.org/mvvm/base/indent"
)

// Declaration is the header written at the top of XML documents.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// DefaultIndentWidth is the number of spaces per nesting level in XML output.
const DefaultIndentWidth = 2

// WriteXML writes the tree as an XML document with the standard
// declaration, using [DefaultIndentWidth].
func WriteXML(w io.Writer, t *TreeData) error {
	return WriteXMLIndent(w, t, DefaultIndentWidth)
}

// WriteXMLIndent writes the tree as an XML document with the standard
// declaration, indenting each level by width spaces. Attributes are
// written in alphabetical order, elements without children or content
// are self-closing, and child elements go on their own lines.
func WriteXMLIndent(w io.Writer, t *TreeData, width int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Declaration)
	bw.WriteByte('\n')
	writeElement(bw, t, 0, width)
	return bw.Flush()
}

// XMLString returns the tree as an XML document string.
func XMLString(t *TreeData) string {
	var b bytes.Buffer
	WriteXML(&b, t)
	return b.String()
}

// ElementXMLString returns the tree as an XML fragment without the
// declaration and without a trailing newline.
func ElementXMLString(t *TreeData) string {
	var b bytes.Buffer
	bw := bufio.NewWriter(&b)
	writeElement(bw, t, 0, DefaultIndentWidth)
	bw.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// WriteXMLFile writes the tree as an XML document to the named file.
func WriteXMLFile(filename string, t *TreeData) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = WriteXML(f, t)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeElement(w *bufio.Writer, t *TreeData, depth, width int) {
	ind := indent.Spaces(depth, width)
	w.WriteString(ind)
	w.WriteByte('<')
	w.WriteString(t.Type)
	names := t.AttributeNames()
	slices.Sort(names)
	for _, name := range names {
		w.WriteByte(' ')
		w.WriteString(name)
		w.WriteString(`="`)
		xml.EscapeText(w, []byte(t.Attribute(name)))
		w.WriteByte('"')
	}
	switch {
	case len(t.Children) == 0 && t.Content == "":
		w.WriteString("/>\n")
		return
	case len(t.Children) == 0:
		w.WriteByte('>')
		xml.EscapeText(w, []byte(t.Content))
	default:
		w.WriteByte('>')
		xml.EscapeText(w, []byte(t.Content))
		w.WriteByte('\n')
		for _, c := range t.Children {
			writeElement(w, c, depth+1, width)
		}
		w.WriteString(ind)
	}
	w.WriteString("</")
	w.WriteString(t.Type)
	w.WriteString(">\n")
}

// ParseXMLDataString parses an XML document with a declaration and
// exactly one top-level element, and returns that element.
func ParseXMLDataString(s string) (*TreeData, error) {
	return ParseXMLData(strings.NewReader(s))
}

// ParseXMLDataFile parses the named XML document file like
// [ParseXMLDataString].
func ParseXMLDataFile(filename string) (*TreeData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseXMLData(bufio.NewReader(f))
}

// ParseXMLData parses an XML document from the reader like
// [ParseXMLDataString].
func ParseXMLData(r io.Reader) (*TreeData, error) {
	return parseXML(r, true)
}

// ParseXMLElementString parses a single XML element, which does not
// need a declaration.
func ParseXMLElementString(s string) (*TreeData, error) {
	return parseXML(strings.NewReader(s), false)
}

// parseXML decodes one top-level element. The content of an element
// with children is trimmed of the surrounding layout whitespace; leaf
// content is kept verbatim.
func parseXML(r io.Reader, needDeclaration bool) (*TreeData, error) {
	d := xml.NewDecoder(r)
	var root *TreeData
	var stack []*TreeData
	var texts []*strings.Builder
	declared := false
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch tok := tok.(type) {
		case xml.ProcInst:
			if tok.Target == "xml" {
				declared = true
			}
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("%w: more than one top-level element", ErrParse)
			}
			el := New(tok.Name.Local)
			for _, a := range tok.Attr {
				name := a.Name.Local
				if a.Name.Space != "" {
					name = a.Name.Space + ":" + name
				}
				el.SetAttribute(name, a.Value)
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(el)
			} else {
				root = el
			}
			stack = append(stack, el)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(tok)) != "" {
					return nil, fmt.Errorf("%w: text outside of the top-level element", ErrParse)
				}
				continue
			}
			texts[len(texts)-1].Write(tok)
		case xml.EndElement:
			el := stack[len(stack)-1]
			content := texts[len(texts)-1].String()
			if len(el.Children) > 0 {
				content = strings.TrimSpace(content)
			}
			el.Content = content
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no element", ErrParse)
	}
	if needDeclaration && !declared {
		return nil, fmt.Errorf("%w: missing XML declaration", ErrParse)
	}
	return root, nil
}
