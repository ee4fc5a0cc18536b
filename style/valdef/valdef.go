package valdef

import (
	"fmt"
	"strings"

	"github.com/npillmayer/kaskade/style"
)

// Sign discriminates the variants of a value-definition node.
type Sign int

const (
	SignKeyword Sign = iota // leaf: a literal identifier
	SignType                // leaf: an <…> data-type reference

	SignJuxtaposition   // group: children in order
	SignDoubleAmpersand // group: all children, any order
	SignDoubleBar       // group: one or more children, any order
	SignSingleBar       // group: exactly one child
	SignBrackets        // group: precedence override, carries repetition
)

func (s Sign) String() string {
	switch s {
	case SignKeyword:
		return "keyword"
	case SignType:
		return "type"
	case SignJuxtaposition:
		return "juxtaposition"
	case SignDoubleAmpersand:
		return "&&"
	case SignDoubleBar:
		return "||"
	case SignSingleBar:
		return "|"
	case SignBrackets:
		return "[]"
	}
	return fmt.Sprintf("Sign(%d)", int(s))
}

// RepeatUnbounded marks an open upper repetition bound ('*' and '+').
const RepeatUnbounded = -1

// ValueParser parses raw value text into a style value. Registered type
// records carry one.
type ValueParser func(text string) (style.Value, error)

// TypeRecord is a registered data type, e.g. <length> or <color>.
type TypeRecord struct {
	Name  string
	Parse ValueParser
}

// ValDef is one node of a compiled value definition.
type ValDef struct {
	Sign     Sign
	Keyword  int    // keyword leaves: registered keyword identifier
	Name     string // keyword leaves: the literal spelling
	Type     *TypeRecord
	Min, Max int // repetition bounds of groups; single occurrence is 1,1
	Children []*ValDef
}

func keywordLeaf(id int, name string) *ValDef {
	return &ValDef{Sign: SignKeyword, Keyword: id, Name: name, Min: 1, Max: 1}
}

func typeLeaf(rec *TypeRecord) *ValDef {
	return &ValDef{Sign: SignType, Type: rec, Min: 1, Max: 1}
}

func group(sign Sign, children ...*ValDef) *ValDef {
	return &ValDef{Sign: sign, Min: 1, Max: 1, Children: children}
}

// Clone returns a deep copy of the definition tree. Alias expansion
// clones so that repetition suffixes applied at the use site never leak
// into the registered tree.
func (vd *ValDef) Clone() *ValDef {
	c := *vd
	if len(vd.Children) > 0 {
		c.Children = make([]*ValDef, len(vd.Children))
		for i, child := range vd.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// String renders the definition in value-definition syntax; used by
// traces and error messages.
func (vd *ValDef) String() string {
	var b strings.Builder
	vd.render(&b)
	return b.String()
}

func (vd *ValDef) render(b *strings.Builder) {
	switch vd.Sign {
	case SignKeyword:
		b.WriteString(vd.Name)
	case SignType:
		b.WriteByte('<')
		b.WriteString(vd.Type.Name)
		b.WriteByte('>')
	default:
		sep := " "
		switch vd.Sign {
		case SignDoubleAmpersand:
			sep = " && "
		case SignDoubleBar:
			sep = " || "
		case SignSingleBar:
			sep = " | "
		}
		b.WriteByte('[')
		for i, child := range vd.Children {
			if i > 0 {
				b.WriteString(sep)
			}
			child.render(b)
		}
		b.WriteByte(']')
	}
	switch {
	case vd.Min == 1 && vd.Max == 1:
	case vd.Min == 0 && vd.Max == 1:
		b.WriteByte('?')
	case vd.Min == 0 && vd.Max == RepeatUnbounded:
		b.WriteByte('*')
	case vd.Min == 1 && vd.Max == RepeatUnbounded:
		b.WriteByte('+')
	default:
		fmt.Fprintf(b, "{%d,%d}", vd.Min, vd.Max)
	}
}
