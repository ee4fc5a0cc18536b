package cssom

import (
	"github.com/npillmayer/kaskade"
	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/kaskade/style/selector"
)

// LoadStyleSheet feeds every rule of a stylesheet into a style library.
// origin names the stylesheet source (usually a file path) and is
// attached to every stored rule.
//
// Malformed selectors, unknown properties and unparsable values are
// skipped with a warning; the remaining rules still load. Returns the
// number of (selector, body) combinations stored.
func LoadStyleSheet(lib *kaskade.Library, sheet StyleSheet, origin string) int {
	if sheet == nil || sheet.Empty() {
		return 0
	}
	count := 0
	for _, rule := range sheet.Rules() {
		props := ruleBody(lib, rule)
		if props.Len() == 0 {
			continue
		}
		for _, selText := range rule.Selectors() {
			sel, err := selector.Parse(selText)
			if err != nil {
				tracer().Infof("skipping rule with bad selector %q: %v", selText, err)
				continue
			}
			if err := lib.AddRules(sel, props, origin); err != nil {
				tracer().Infof("skipping rule %q: %v", selText, err)
				continue
			}
			count++
		}
	}
	return count
}

// ruleBody parses the declarations of a rule into a property list.
func ruleBody(lib *kaskade.Library, rule Rule) *style.PropertyList {
	props := &style.PropertyList{}
	for _, name := range rule.Properties() {
		def := lib.Property(name)
		if def == nil {
			tracer().Infof("skipping unknown property %q", name)
			continue
		}
		text := rule.Value(name)
		v, err := lib.ParseValueFor(name, text)
		if err != nil {
			tracer().Infof("skipping property %q: value %q does not parse", name, text)
			continue
		}
		if rule.IsImportant(name) {
			// priorities beyond specificity and source order are not
			// modelled; the declaration still loads
			tracer().Debugf("property %q: !important is ignored", name)
		}
		props.Add(def.Key, v)
	}
	return props
}
