package kaskade

import (
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/kaskade/style/selector"
	tp "github.com/xlab/treeprint"
)

// Debug output: the rule index and cascade results rendered as trees.
// Output goes to an io.Writer so that tests and interactive sessions can
// capture it; pass nil to print through the package tracer instead.

// formatValue renders a value, resolving keyword identifiers through the
// library.
func (lib *Library) formatValue(v style.Value) string {
	switch v.Type() {
	case style.KeywordValue:
		if name, ok := lib.KeywordName(v.KeywordID()); ok {
			return name
		}
	case style.ArrayValue:
		s := ""
		for i, item := range v.Array() {
			if i > 0 {
				s += " "
			}
			s += lib.formatValue(item)
		}
		return s
	}
	return v.String()
}

// describeRule is the one-line header of a rule in debug dumps.
func (lib *Library) describeRule(rule *Rule) string {
	origin := rule.Origin
	if origin == "" {
		origin = "<none>"
	}
	return fmt.Sprintf("[%s][rank %d, batch %d] %s", origin, rule.Rank, rule.BatchNum, rule.Selector)
}

func (lib *Library) addRuleBody(branch tp.Tree, rule *Rule) {
	rule.Properties.ForEach(func(key int, v style.Value) {
		branch.AddNode(fmt.Sprintf("%s: %s", lib.propertyName(key), lib.formatValue(v)))
	})
}

// PrintRules renders every rule matching sel, in cascade order, followed
// by the merged declaration.
func (lib *Library) PrintRules(sel *selector.Selector, w io.Writer) {
	root := tp.New()
	root.SetValue(fmt.Sprintf("selector(%d) stylesheets", sel.Hash()))
	decl := style.NewDeclaration(lib.PropertyCount())
	for _, rule := range lib.Query(sel) {
		branch := root.AddBranch(lib.describeRule(rule))
		lib.addRuleBody(branch, rule)
		rule.Properties.MergeInto(decl)
	}
	merged := root.AddBranch("computed")
	decl.ForEach(func(key int, v style.Value) {
		merged.AddNode(fmt.Sprintf("%s: %s", lib.propertyName(key), lib.formatValue(v)))
	})
	lib.printTree(root, w)
}

// PrintAll renders the complete rule index, grouped by target node and
// ancestor trail.
func (lib *Library) PrintAll(w io.Writer) {
	root := tp.New()
	root.SetValue("style library")
	if len(lib.groups) == 0 {
		lib.printTree(root, w)
		return
	}
	for _, name := range sortedKeys(lib.groups[0]) {
		group := lib.groups[0][name]
		branch := root.AddBranch(name)
		for _, parentKey := range sortedLinkKeys(group.links) {
			lib.printLink(branch, group.links[parentKey])
		}
	}
	lib.printTree(root, w)
}

// printLink renders a link's rules and recurses through its parents.
func (lib *Library) printLink(branch tp.Tree, link *styleLink) {
	sub := branch.AddBranch(link.trail())
	for _, rule := range link.rules {
		ruleBranch := sub.AddBranch(lib.describeRule(rule))
		lib.addRuleBody(ruleBranch, rule)
	}
	for _, name := range sortedLinkKeys(link.parents) {
		lib.printLink(sub, link.parents[name])
	}
}

func (lib *Library) printTree(root tp.Tree, w io.Writer) {
	if w == nil {
		tracer().Debugf("%s", root.String())
		return
	}
	fmt.Fprintln(w, root.String())
}

func sortedKeys(m map[string]*linkGroup) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedLinkKeys(m map[string]*styleLink) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
