/*
Package cssom connects stylesheet parsers to the style library.

Overview

The engine does not parse stylesheets itself; it consumes (selector,
declaration) pairs. Interface StyleSheet abstracts away a stylesheet
implementation, so clients may plug in any CSS parser (see package
douceuradapter for one backed by aymerick/douceur). LoadStyleSheet walks
such a sheet and feeds every rule into a kaskade.Library, skipping
malformed rules with a warning so that the rest of the sheet still
loads.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kaskade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("kaskade.cssom")
}

// StyleSheet is an interface to abstract away a stylesheet
// implementation. Clients of the style engine provide a concrete
// implementation, e.g. the douceur-backed one in package douceuradapter.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // is this stylesheet without any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consist of.
//
// See interface StyleSheet.
type Rule interface {
	Selectors() []string     // the comma-separated selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // raw value text for a key, e.g. "15px"
	IsImportant(string) bool // is the property marked "!important"?
}
