/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It wraps stylesheets parsed by the douceur CSS parser
(github.com/aymerick/douceur) and extracts embedded <style> elements
from HTML parse trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/kaskade/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur stylesheet into CSSStyles. The stylesheet is managed by
// the wrapper from now on.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	return &CSSStyles{*sheet}
}

// ParseText runs the douceur parser over stylesheet text and wraps the
// result.
func ParseText(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains no rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of the stylesheet. At-rules
// (@media and friends) are not modelled by the engine and are dropped
// here.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule{rule: r})
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selectors returns the comma-separated selectors of the rule.
func (r Rule) Selectors() []string {
	return r.rule.Selectors
}

// Properties returns the property keys of the rule, e.g. "margin-top".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the raw value text for a property key, e.g. "15px".
func (r Rule) Value(key string) string {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a property is marked with "!important".
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits the <head> and <body> of an HTML parse
// tree and collects the content of embedded <style> elements as style
// sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	sheets = append(sheets, extractStyles(findElement(atom.Head, htmldoc))...)
	sheets = append(sheets, extractStyles(findElement(atom.Body, htmldoc))...)
	return sheets
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			break
		}
		sheets = append(sheets, Wrap(sheet))
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
