package valdef

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/kaskade/style"
)

// Value matching walks a compiled definition over the component values
// of a property-value string. Group signs behave per the value-definition
// syntax: juxtaposed children match in order, '&&'-children in any order,
// '||' requires at least one child in any order, '|' exactly one.
// Alternatives are tried in source order and the first interpretation
// consuming the whole input wins.

// candidateCap bounds the interpretations tracked per tree node; grammars
// from the property registry stay far below this.
const candidateCap = 64

// candidate is one partial interpretation: the next unconsumed component
// and the values matched so far.
type candidate struct {
	pos  int
	vals []style.Value
}

// Parse matches text against a compiled definition and returns the value
// it denotes: the single matched value, or an array value if the
// definition consumed several components. Returns the invalid value and
// an error if no interpretation covers the input.
func Parse(def *ValDef, text string) (style.Value, error) {
	comps, err := components(text)
	if err != nil {
		return style.Invalid(), err
	}
	if len(comps) == 0 {
		return style.Invalid(), fmt.Errorf("%w: empty value", ErrSyntax)
	}
	for _, c := range match(def, comps, candidate{}) {
		if c.pos != len(comps) {
			continue
		}
		if len(c.vals) == 1 {
			return c.vals[0], nil
		}
		return style.Array(c.vals), nil
	}
	tracer().Debugf("value %q does not match %s", text, def)
	return style.Invalid(), fmt.Errorf("%w: value %q does not match definition", ErrSyntax, text)
}

// match returns the interpretations of def starting at c, in preference
// order.
func match(def *ValDef, comps []string, c candidate) []candidate {
	repeated := matchOnce
	if def.Min != 1 || def.Max != 1 {
		repeated = matchRepeated
	}
	return repeated(def, comps, c)
}

// matchOnce matches a single occurrence of def.
func matchOnce(def *ValDef, comps []string, c candidate) []candidate {
	switch def.Sign {
	case SignKeyword:
		if c.pos < len(comps) && comps[c.pos] == def.Name {
			return []candidate{extend(c, style.Keyword(def.Keyword))}
		}
		return nil
	case SignType:
		if c.pos >= len(comps) {
			return nil
		}
		v, err := def.Type.Parse(comps[c.pos])
		if err != nil || !v.IsValid() {
			return nil
		}
		return []candidate{extend(c, v)}
	case SignJuxtaposition, SignBrackets:
		return matchSequence(def.Children, comps, c)
	case SignSingleBar:
		var out []candidate
		for _, child := range def.Children {
			out = appendCandidates(out, match(child, comps, c))
		}
		return out
	case SignDoubleAmpersand:
		return matchUnordered(def.Children, comps, c, len(def.Children))
	case SignDoubleBar:
		return matchUnordered(def.Children, comps, c, 1)
	}
	return nil
}

// matchRepeated matches def.Min … def.Max occurrences of def, greedily
// preferring more.
func matchRepeated(def *ValDef, comps []string, c candidate) []candidate {
	front := []candidate{c}
	var byCount [][]candidate // interpretations after exactly k occurrences
	byCount = append(byCount, front)
	for count := 1; def.Max == RepeatUnbounded || count <= def.Max; count++ {
		var next []candidate
		for _, cur := range front {
			for _, m := range matchOnce(def, comps, cur) {
				if m.pos == cur.pos {
					continue // no progress, stop the repetition here
				}
				next = appendCandidates(next, []candidate{m})
			}
		}
		if len(next) == 0 {
			break
		}
		byCount = append(byCount, next)
		front = next
	}
	var out []candidate
	for count := len(byCount) - 1; count >= 0; count-- {
		if count < def.Min {
			break
		}
		out = appendCandidates(out, byCount[count])
	}
	return out
}

// matchSequence folds children over the candidate set in order.
func matchSequence(children []*ValDef, comps []string, c candidate) []candidate {
	front := []candidate{c}
	for _, child := range children {
		var next []candidate
		for _, cur := range front {
			next = appendCandidates(next, match(child, comps, cur))
		}
		if len(next) == 0 {
			return nil
		}
		front = next
	}
	return front
}

// matchUnordered matches children in any order, each at most once,
// requiring at least need of them. With need equal to the number of
// children ('&&') every child whose bounds do not admit zero occurrences
// has to match; optional children may be skipped without counting.
func matchUnordered(children []*ValDef, comps []string, c candidate, need int) []candidate {
	all := need == len(children)
	used := make([]bool, len(children))
	var out []candidate
	var walk func(cur candidate, matched int)
	walk = func(cur candidate, matched int) {
		if len(out) >= candidateCap {
			return
		}
		satisfied := matched >= need
		if satisfied && all {
			for i, child := range children {
				if !used[i] && child.Min > 0 {
					satisfied = false
					break
				}
			}
		}
		if satisfied {
			out = appendCandidates(out, []candidate{cur})
		}
		for i, child := range children {
			if used[i] {
				continue
			}
			used[i] = true
			for _, m := range match(child, comps, cur) {
				if m.pos == cur.pos && child.Min == 0 {
					continue // an empty match is the same as skipping
				}
				walk(m, matched+1)
			}
			used[i] = false
		}
	}
	// optional children do not block the minimum count
	for _, child := range children {
		if child.Min == 0 && need > 1 {
			need--
		}
	}
	walk(c, 0)
	return out
}

func extend(c candidate, v style.Value) candidate {
	vals := make([]style.Value, len(c.vals), len(c.vals)+1)
	copy(vals, c.vals)
	return candidate{pos: c.pos + 1, vals: append(vals, v)}
}

func appendCandidates(out []candidate, more []candidate) []candidate {
	for _, c := range more {
		if len(out) >= candidateCap {
			break
		}
		out = append(out, c)
	}
	return out
}

// --- Component scanning ----------------------------------------------------

// components splits property-value text into component values using the
// CSS tokenizer. Function notation (rgb(…), url(…)) is kept together as
// one component; whitespace and top-level commas separate components.
func components(text string) ([]string, error) {
	s := scanner.New(text)
	var comps []string
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return comps, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: %s", ErrSyntax, tok.Value)
		case scanner.TokenS, scanner.TokenComment:
			// separator
		case scanner.TokenChar:
			if tok.Value == "," {
				continue
			}
			comps = append(comps, tok.Value)
		case scanner.TokenFunction:
			fn, err := scanFunction(s, tok.Value)
			if err != nil {
				return nil, err
			}
			comps = append(comps, fn)
		default:
			comps = append(comps, tok.Value)
		}
	}
}

// scanFunction re-assembles a function token and its arguments up to the
// balancing ')'.
func scanFunction(s *scanner.Scanner, head string) (string, error) {
	var b strings.Builder
	b.WriteString(head)
	depth := 1
	for depth > 0 {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return "", fmt.Errorf("%w: unterminated %q", ErrSyntax, head)
		case scanner.TokenS:
			b.WriteByte(' ')
			continue
		case scanner.TokenFunction:
			depth++
		case scanner.TokenChar:
			if tok.Value == "(" {
				depth++
			} else if tok.Value == ")" {
				depth--
			}
		}
		b.WriteString(tok.Value)
	}
	return b.String(), nil
}
