package douceuradapter

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/uistyle/syntax"
	"golang.org/x/net/html"
)

// Parse reads a stylesheet.
func Parse(stylesheet string) (*syntax.StyleDocument, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, err
	}
	return Convert(sheet)
}

// Convert translates a parsed stylesheet into a style document. Rules
// with several selectors are split into one rule per selector.
func Convert(sheet *css.Stylesheet) (*syntax.StyleDocument, error) {
	doc := &syntax.StyleDocument{}
	var important []*syntax.Rule
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule @%s", r.Name)
			continue
		}
		for _, sel := range r.Selectors {
			matchers, err := parseSelector(sel)
			if err != nil {
				return nil, err
			}
			normal, imp, err := declarations(r.Declarations, matchers)
			if err != nil {
				return nil, syntax.Errorf(syntax.Position{}, "%s: %s", sel, err.Error())
			}
			doc.Rules = append(doc.Rules, &syntax.Rule{Matchers: matchers, Styles: normal})
			if len(imp) > 0 {
				important = append(important, &syntax.Rule{Matchers: matchers, Styles: imp})
			}
		}
	}
	doc.Rules = append(doc.Rules, important...)
	return doc, nil
}

func declarations(decls []*css.Declaration, matchers []syntax.Matcher) (normal, important []syntax.Style, err error) {
	bound := make(map[string]bool)
	for _, m := range matchers {
		for _, p := range m.Properties {
			if p.Value.IsVariable() {
				bound[p.Value.Text] = true
			}
		}
	}
	for _, d := range decls {
		e, err := parseValue(d.Value, bound)
		if err != nil {
			return nil, nil, err
		}
		s := syntax.Style{Key: StyleKey(d.Property), Expr: e}
		if d.Important {
			important = append(important, s)
		} else {
			normal = append(normal, s)
		}
	}
	return normal, important, nil
}

// StyleKey maps a CSS property name to a style key.
func StyleKey(property string) string {
	return strings.ReplaceAll(strings.TrimSpace(property), "-", "_")
}

// ExtractStyleElements searches an HTML parse tree for embedded <style>
// elements and returns their contents, in document order.
func ExtractStyleElements(htmldoc *html.Node) []string {
	var sheets []string
	for _, st := range cascadia.QueryAll(htmldoc, styleSelector) {
		var b strings.Builder
		for ch := st.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				b.WriteString(ch.Data)
			}
		}
		sheets = append(sheets, b.String())
	}
	return sheets
}

var styleSelector = cascadia.MustCompile("style")

// FromHTML parses all embedded stylesheets of an HTML document into a
// single style document.
func FromHTML(htmldoc *html.Node) (*syntax.StyleDocument, error) {
	doc := &syntax.StyleDocument{}
	for _, sheet := range ExtractStyleElements(htmldoc) {
		d, err := Parse(sheet)
		if err != nil {
			return nil, err
		}
		doc.Rules = append(doc.Rules, d.Rules...)
	}
	return doc, nil
}
