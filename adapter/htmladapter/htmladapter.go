/*
Package htmladapter creates description documents from HTML parse trees.

Every HTML element becomes an element node of the same name; its
attributes become node properties. Attribute values are typed by their
text: integers, floats, true and false are converted, everything else is
kept as a string. Non-blank text becomes text nodes. <head>, <style> and
<script> content is skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmladapter

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle/syntax"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'uistyle.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.adapter")
}

// FromHTML converts the <body> of an HTML document into a description
// document. The body element becomes the document's root. If the tree
// has no body, h itself is converted.
func FromHTML(h *html.Node) (*syntax.Document, error) {
	if h == nil {
		return nil, syntax.Errorf(syntax.Position{}, "Missing HTML document")
	}
	root := FindElement(atom.Body, h)
	if root == nil {
		root = h
	}
	el := convert(root)
	if el == nil {
		return nil, syntax.Errorf(syntax.Position{}, "HTML node %q is not an element", root.Data)
	}
	return &syntax.Document{Root: el}, nil
}

// FromElement converts an HTML element and its children.
func FromElement(h *html.Node) *syntax.Element {
	return convert(h)
}

func convert(h *html.Node) *syntax.Element {
	if h.Type != html.ElementNode && h.Type != html.DocumentNode {
		return nil
	}
	el := &syntax.Element{Name: h.Data}
	if h.Type == html.DocumentNode {
		el.Name = "document"
	}
	for _, a := range h.Attr {
		el.Properties = append(el.Properties, syntax.Property{
			Key:   a.Key,
			Value: Literal(a.Val),
		})
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			if skipped(ch.DataAtom) {
				continue
			}
			el.Nodes = append(el.Nodes, convert(ch))
		case html.TextNode:
			if text := strings.TrimSpace(ch.Data); text != "" {
				el.Nodes = append(el.Nodes, &syntax.Text{Text: escape(text)})
			}
		default:
			tracer().Debugf("skipping HTML node of type %d", ch.Type)
		}
	}
	return el
}

func skipped(a atom.Atom) bool {
	return a == atom.Head || a == atom.Style || a == atom.Script
}

// escape protects backslashes, as text of description documents is
// unescaped when nodes are built.
func escape(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Literal types an attribute value by its text.
func Literal(s string) syntax.Literal {
	t := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(t, 10, 32); err == nil {
		return syntax.IntLit(int32(i))
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && strings.ContainsAny(t, ".eE") {
		return syntax.FloatLit(f)
	}
	switch t {
	case "true":
		return syntax.BoolLit(true)
	case "false":
		return syntax.BoolLit(false)
	}
	return syntax.StringLit(escape(s))
}

// FindElement finds the first element of type a in document order.
func FindElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := FindElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
