package selector

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Structural bounds of the selector model.
const (
	MaxDepth   = 32   // simple-selector nodes per compound selector
	MaxNameLen = 1024 // characters of a generated compound name
)

// Errors flagged by the selector parser.
var (
	ErrSyntax   = errors.New("selector syntax error")
	ErrCapacity = errors.New("selector exceeds structural bounds")
)

// Specificity contributions per simple-selector component.
const (
	typeRank   = 1
	classRank  = 10
	pclassRank = 10
	idRank     = 100
)

// Node is a simple selector: an optional element type, an optional id,
// and sorted duplicate-free sets of class names and pseudo-class states.
type Node struct {
	typ      string
	id       string
	classes  []string
	status   []string
	fullname string
	rank     int
}

// Type returns the element type of the node, "" if none, "*" for the
// wildcard.
func (n *Node) Type() string { return n.typ }

// ID returns the id component of the node, "" if none.
func (n *Node) ID() string { return n.id }

// Classes returns the sorted class names. Callers must not modify the
// returned slice.
func (n *Node) Classes() []string { return n.classes }

// Status returns the sorted pseudo-class states. Callers must not modify
// the returned slice.
func (n *Node) Status() []string { return n.status }

// Rank is the specificity contribution of the node: 100 for an id, 10
// per class and per state, 1 for a type.
func (n *Node) Rank() int { return n.rank }

// Fullname is the canonical text form type#id.class…:state… with classes
// and states in sorted order. It determines the node's content uniquely.
func (n *Node) Fullname() string { return n.fullname }

func (n *Node) saveType(name string) int {
	if n.typ != "" {
		return 0
	}
	n.typ = name
	return typeRank
}

func (n *Node) saveID(name string) int {
	if n.id != "" {
		return 0
	}
	n.id = name
	return idRank
}

func (n *Node) addClass(name string) int {
	var added bool
	if n.classes, added = sortedInsert(n.classes, name); added {
		return classRank
	}
	return 0
}

func (n *Node) addStatus(name string) int {
	var added bool
	if n.status, added = sortedInsert(n.status, name); added {
		return pclassRank
	}
	return 0
}

// sortedInsert adds name to a sorted string set, reporting whether it was
// not yet present.
func sortedInsert(set []string, name string) ([]string, bool) {
	at := sort.SearchStrings(set, name)
	if at < len(set) && set[at] == name {
		return set, false
	}
	set = append(set, "")
	copy(set[at+1:], set[at:])
	set[at] = name
	return set, true
}

// update recomputes fullname and rank from the node's components.
func (n *Node) update() {
	var b strings.Builder
	n.rank = 0
	if n.typ != "" {
		b.WriteString(n.typ)
		n.rank += typeRank
	}
	if n.id != "" {
		b.WriteByte('#')
		b.WriteString(n.id)
		n.rank += idRank
	}
	for _, class := range n.classes {
		b.WriteByte('.')
		b.WriteString(class)
		n.rank += classRank
	}
	for _, status := range n.status {
		b.WriteByte(':')
		b.WriteString(status)
		n.rank += pclassRank
	}
	n.fullname = b.String()
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := &Node{
		typ:      n.typ,
		id:       n.id,
		fullname: n.fullname,
		rank:     n.rank,
	}
	c.classes = append(c.classes, n.classes...)
	c.status = append(c.status, n.status...)
	return c
}

// Matches reports whether node n satisfies the request req: req's id and
// type (wildcard aside) have to be equal, req's classes and states have
// to be subsets of n's.
func (n *Node) Matches(req *Node) bool {
	if req.id != "" && req.id != n.id {
		return false
	}
	if req.typ != "" && req.typ != "*" && req.typ != n.typ {
		return false
	}
	return isSubset(req.classes, n.classes) && isSubset(req.status, n.status)
}

func isSubset(sub, super []string) bool {
	for _, s := range sub {
		at := sort.SearchStrings(super, s)
		if at >= len(super) || super[at] != s {
			return false
		}
	}
	return true
}

// --- Compound selectors ----------------------------------------------------

// batchCounter numbers selectors in creation order. The engine is
// cooperatively single-threaded (see the package documentation of
// kaskade); hosts driving it from multiple goroutines have to serialize
// access externally.
var batchCounter int

// Selector is a compound selector: a bounded chain of simple-selector
// nodes in ancestor → target order.
type Selector struct {
	nodes []*Node
	rank  int
	batch int
	hash  uint32
}

// New creates an empty selector and draws the next batch number.
func New() *Selector {
	batchCounter++
	return &Selector{batch: batchCounter}
}

// Nodes returns the node chain in ancestor → target order. Callers must
// not modify the returned slice.
func (s *Selector) Nodes() []*Node { return s.nodes }

// Len returns the number of nodes.
func (s *Selector) Len() int { return len(s.nodes) }

// Rank is the accumulated specificity of all nodes.
func (s *Selector) Rank() int { return s.rank }

// BatchNum returns the creation-order number of the selector. Later
// numbers win ties between rules of equal specificity.
func (s *Selector) BatchNum() int { return s.batch }

// Hash is a DJB-style rolling hash over the concatenated node fullnames.
// It keys the computed-style cache.
func (s *Selector) Hash() uint32 { return s.hash }

// Append adds a node at the target end of the chain, extending rank and
// hash. Flags ErrCapacity when the chain is full.
func (s *Selector) Append(n *Node) error {
	if len(s.nodes) >= MaxDepth {
		tracer().Errorf("selector node list exceeds %d nodes", MaxDepth)
		return ErrCapacity
	}
	s.nodes = append(s.nodes, n)
	s.rank += n.rank
	s.hash = hashInto(s.hash, n.fullname)
	return nil
}

// update recomputes the rolling hash from scratch.
func (s *Selector) update() {
	h := uint32(5381)
	for _, n := range s.nodes {
		h = hashInto(h, n.fullname)
	}
	s.hash = h
}

func hashInto(h uint32, name string) uint32 {
	if h == 0 {
		h = 5381
	}
	for i := 0; i < len(name); i++ {
		h = ((h << 5) + h) + uint32(name[i])
	}
	return h
}

// Clone returns a deep copy of the selector, preserving rank, hash and
// batch number.
func (s *Selector) Clone() *Selector {
	c := &Selector{
		nodes: make([]*Node, len(s.nodes)),
		rank:  s.rank,
		batch: s.batch,
		hash:  s.hash,
	}
	for i, n := range s.nodes {
		c.nodes[i] = n.Clone()
	}
	return c
}

// String returns the canonical text form: node fullnames joined by single
// blanks. Parsing the canonical form yields an equal selector.
func (s *Selector) String() string {
	names := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		names[i] = n.fullname
	}
	return strings.Join(names, " ")
}

// --- Parsing ---------------------------------------------------------------

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || c == '*' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Parse scans a selector string into a compound selector. Nodes are
// separated by whitespace; within a node, tokens are prefixed by '.'
// (class), '#' (id) or ':' (pseudo-class state), with an optional leading
// bare identifier as the element type. Any character outside the
// identifier alphabet aborts the parse.
func Parse(text string) (*Selector, error) {
	s := New()
	var node *Node
	var name []byte
	var marker byte
	saving := false

	commit := func(at int) error {
		if len(name) == 0 {
			return fmt.Errorf("%w: empty component in %q at %d", ErrSyntax, text, at)
		}
		if node == nil {
			node = &Node{}
		}
		var rank int
		token := string(name)
		switch marker {
		case 0:
			rank = node.saveType(token)
		case '#':
			rank = node.saveID(token)
		case '.':
			rank = node.addClass(token)
		case ':':
			rank = node.addStatus(token)
		}
		if rank == 0 && (marker == 0 || marker == '#') {
			return fmt.Errorf("%w: duplicate component in %q at %d", ErrSyntax, text, at)
		}
		name = name[:0]
		return nil
	}

	finishNode := func() error {
		node.update()
		if err := s.Append(node); err != nil {
			return err
		}
		node = nil
		return nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '.' || c == '#' || c == ':':
			if saving {
				if err := commit(i); err != nil {
					return nil, err
				}
			}
			saving = true
			marker = c
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			if !saving {
				continue
			}
			if err := commit(i); err != nil {
				return nil, err
			}
			if err := finishNode(); err != nil {
				return nil, err
			}
			saving = false
		case isIdentChar(c):
			if !saving {
				saving = true
				marker = 0
			}
			name = append(name, c)
		default:
			tracer().Errorf("%s: unknown char %#02x at %d", text, c, i)
			return nil, fmt.Errorf("%w: char %#02x in %q at %d", ErrSyntax, c, text, i)
		}
	}
	if saving {
		if err := commit(len(text)); err != nil {
			return nil, err
		}
		if err := finishNode(); err != nil {
			return nil, err
		}
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w: empty selector %q", ErrSyntax, text)
	}
	if nameLen := len(s.String()); nameLen > MaxNameLen {
		tracer().Errorf("selector name of %d chars exceeds %d", nameLen, MaxNameLen)
		return nil, ErrCapacity
	}
	s.update()
	return s, nil
}
