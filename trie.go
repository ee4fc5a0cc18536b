package kaskade

import (
	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/kaskade/style/selector"
)

// The rule index is a multi-level trie: one map per ancestor depth,
// keyed by the fullname of the simple-selector node at that depth, each
// entry holding a group of links. Depth 0 is the rightmost (target)
// position of a selector. A link represents one ancestor trail leading
// to the group's node and carries the rules defined for exactly that
// trail; its parents map continues the trail one depth further. Groups
// own their links; parents holds references into the next depth's
// groups, so the structure is a DAG without ownership cycles.

// Rule is one style rule as stored in the index.
type Rule struct {
	Origin     string // stylesheet source, interned; "" if unknown
	Selector   string // canonical selector text
	Rank       int    // specificity of the selector
	BatchNum   int    // source order, later wins ties
	Properties *style.PropertyList
}

type styleLink struct {
	parentKey string // the ancestor trail this link continues, "*" at depth 0
	group     *linkGroup
	rules     []*Rule
	parents   map[string]*styleLink
}

type linkGroup struct {
	snode *selector.Node
	name  string
	links map[string]*styleLink
}

func newLinkGroup(sn *selector.Node) *linkGroup {
	return &linkGroup{
		snode: sn.Clone(),
		name:  sn.Fullname(),
		links: make(map[string]*styleLink),
	}
}

// groupAt returns the group map for a depth, extending the depth list as
// needed.
func (lib *Library) groupAt(depth int) map[string]*linkGroup {
	for depth >= len(lib.groups) {
		lib.groups = append(lib.groups, make(map[string]*linkGroup))
	}
	return lib.groups[depth]
}

// insertRule walks the selector right-to-left, creating groups and links
// along the ancestor trail, and records a new rule at the deepest link.
func (lib *Library) insertRule(sel *selector.Selector, origin string) *Rule {
	nodes := sel.Nodes()
	if len(nodes) == 0 {
		return nil
	}
	var link *styleLink
	var parents map[string]*styleLink
	trail := "" // fullnames of the visited nodes, leftmost first
	for depth, right := 0, len(nodes)-1; right >= 0; depth, right = depth+1, right-1 {
		sn := nodes[right]
		groups := lib.groupAt(depth)
		group, ok := groups[sn.Fullname()]
		if !ok {
			group = newLinkGroup(sn)
			groups[sn.Fullname()] = group
		}
		parentKey := "*"
		if depth > 0 {
			parentKey = trail
		}
		link, ok = group.links[parentKey]
		if !ok {
			link = &styleLink{
				parentKey: parentKey,
				group:     group,
				parents:   make(map[string]*styleLink),
			}
			group.links[parentKey] = link
		}
		if depth == 0 {
			trail = sn.Fullname()
		} else {
			trail = sn.Fullname() + " " + trail
		}
		if parents != nil {
			if _, ok := parents[sn.Fullname()]; !ok {
				parents[sn.Fullname()] = link
			}
		}
		parents = link.parents
	}
	rule := &Rule{
		Origin:     lib.origins.intern(origin),
		Selector:   trail,
		Rank:       sel.Rank(),
		BatchNum:   sel.BatchNum(),
		Properties: &style.PropertyList{},
	}
	link.rules = append(link.rules, rule)
	return rule
}

// Query collects every rule applying to the element described by sel,
// ordered by specificity and batch number, highest priority first.
func (lib *Library) Query(sel *selector.Selector) []*Rule {
	if sel.Len() == 0 || len(lib.groups) == 0 {
		return nil
	}
	target := sel.Nodes()[sel.Len()-1]
	names, err := target.Expand()
	if err != nil {
		tracer().Errorf("query: %v", err)
	}
	if target.Type() != "*" {
		names = append(names, "*")
	}
	var out []*Rule
	groups := lib.groups[0]
	for _, name := range names {
		group, ok := groups[name]
		if !ok {
			continue
		}
		for _, link := range group.links {
			lib.collectFromLink(link, sel, sel.Len()-1, &out)
		}
	}
	return out
}

// collectFromLink merges the rules of a link into the output and follows
// the link's parents for every ancestor of the query selector. Any
// ancestor in the element's chain may satisfy an ancestor of a stored
// rule, so each remaining depth is probed.
func (lib *Library) collectFromLink(link *styleLink, sel *selector.Selector, i int, out *[]*Rule) {
	for _, rule := range link.rules {
		mergeOrdered(out, rule)
	}
	nodes := sel.Nodes()
	for i--; i >= 0; i-- {
		names, err := nodes[i].Expand()
		if err != nil {
			tracer().Errorf("query: %v", err)
		}
		for _, name := range names {
			if parent, ok := link.parents[name]; ok {
				lib.collectFromLink(parent, sel, i, out)
			}
		}
	}
}

// mergeOrdered inserts a rule keeping the list sorted by rank, then
// batch number, both descending. Equal pairs keep insertion order.
func mergeOrdered(out *[]*Rule, rule *Rule) {
	at := len(*out)
	for i, existing := range *out {
		if rule.Rank > existing.Rank ||
			(rule.Rank == existing.Rank && rule.BatchNum > existing.BatchNum) {
			at = i
			break
		}
	}
	*out = append(*out, nil)
	copy((*out)[at+1:], (*out)[at:])
	(*out)[at] = rule
}

// trail reproduces the ancestor trail of a link for diagnostics: the
// group's own name prefixed to the trail the link continues.
func (link *styleLink) trail() string {
	if link.parentKey == "*" {
		return link.group.name
	}
	return link.group.name + " " + link.parentKey
}
