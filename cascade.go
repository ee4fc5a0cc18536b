package kaskade

import (
	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/kaskade/style/selector"
)

// AddRules stores a rule body for a selector. Every call creates a new
// rule entry (batch numbers stem from the selector, so later calls win
// ties) and drops the computed-style cache.
func (lib *Library) AddRules(sel *selector.Selector, props *style.PropertyList, origin string) error {
	lib.flushCache()
	rule := lib.insertRule(sel, origin)
	if rule == nil {
		return selector.ErrSyntax
	}
	props.ForEach(func(key int, v style.Value) {
		rule.Properties.Add(key, v.Clone())
	})
	tracer().Debugf("added rule %q (rank %d, batch %d) from %q",
		rule.Selector, rule.Rank, rule.BatchNum, rule.Origin)
	return nil
}

// AddStyleSheet stores the set slots of a declaration as a rule body
// for a selector. origin names the stylesheet source, e.g. a file path.
func (lib *Library) AddStyleSheet(sel *selector.Selector, decl *style.Declaration, origin string) error {
	props := &style.PropertyList{}
	props.AddDeclaration(decl)
	return lib.AddRules(sel, props, origin)
}

// ComputedStyle returns the cascaded declaration for an element
// described by sel. The result is owned by the library's cache and must
// be treated as read-only; it stays valid until the next AddRules call.
func (lib *Library) ComputedStyle(sel *selector.Selector) *style.Declaration {
	if decl, ok := lib.cache[sel.Hash()]; ok {
		return decl
	}
	decl := style.NewDeclaration(lib.PropertyCount())
	for _, rule := range lib.Query(sel) {
		rule.Properties.MergeInto(decl)
	}
	lib.cache[sel.Hash()] = decl
	return decl
}

// ComputedStyleInto computes the cascaded declaration for sel and copies
// it into out, which the caller owns. out is cleared first.
func (lib *Library) ComputedStyleInto(sel *selector.Selector, out *style.Declaration) {
	decl := lib.ComputedStyle(sel)
	out.Clear()
	out.Replace(decl)
}

// flushCache invalidates every cached declaration. Any mutation of the
// rule index makes cached cascade results stale as a whole.
func (lib *Library) flushCache() {
	if len(lib.cache) > 0 {
		lib.cache = make(map[uint32]*style.Declaration)
	}
}

// cacheLen reports the number of cached declarations; used by tests.
func (lib *Library) cacheLen() int {
	return len(lib.cache)
}

// --- Origin interning ------------------------------------------------------

// stringPool de-duplicates origin strings: stylesheet paths repeat for
// every rule of a sheet.
type stringPool struct {
	strings map[string]string
}

func (p *stringPool) intern(s string) string {
	if s == "" {
		return ""
	}
	if p.strings == nil {
		p.strings = make(map[string]string)
	}
	if interned, ok := p.strings[s]; ok {
		return interned
	}
	p.strings[s] = s
	return s
}

func (p *stringPool) drop() {
	p.strings = nil
}
