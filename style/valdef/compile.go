package valdef

import (
	"fmt"
	"strconv"
	"strings"
)

// Token scanning for the value-definition mini-language. Token classes:
// bare identifiers, <…> data-type references, and the signs '|', '||',
// '&&', '[', ']', '?', '*', '+' and '{m,n}'. Juxtaposition is implied by
// adjacency.

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokTypeRef
	tokOpen
	tokClose
	tokBar
	tokBarBar
	tokAmpAmp
	tokRepeat // '?', '*', '+' and '{m,n}', normalized to min/max
)

type token struct {
	kind     tokenKind
	text     string
	min, max int
	pos      int
}

const maxErrorLen = 256

// compileError formats a bounded-length error message carrying the
// offending token.
func compileError(pos int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return fmt.Errorf("%w: %s (at %d)", ErrSyntax, msg, pos)
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// scan tokenizes a definition string.
func scan(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isSpace(c):
			i++
		case c == '[':
			toks = append(toks, token{kind: tokOpen, pos: i})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokClose, pos: i})
			i++
		case c == '|':
			if i+1 < len(input) && input[i+1] == '|' {
				toks = append(toks, token{kind: tokBarBar, pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokBar, pos: i})
				i++
			}
		case c == '&':
			if i+1 >= len(input) || input[i+1] != '&' {
				return nil, compileError(i, "single '&' is not a sign")
			}
			toks = append(toks, token{kind: tokAmpAmp, pos: i})
			i += 2
		case c == '?':
			toks = append(toks, token{kind: tokRepeat, min: 0, max: 1, pos: i})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokRepeat, min: 0, max: RepeatUnbounded, pos: i})
			i++
		case c == '+':
			toks = append(toks, token{kind: tokRepeat, min: 1, max: RepeatUnbounded, pos: i})
			i++
		case c == '{':
			end := strings.IndexByte(input[i:], '}')
			if end < 0 {
				return nil, compileError(i, "unterminated repetition bounds")
			}
			min, max, err := parseBounds(input[i+1 : i+end])
			if err != nil {
				return nil, compileError(i, "bad repetition bounds %q", input[i:i+end+1])
			}
			toks = append(toks, token{kind: tokRepeat, min: min, max: max, pos: i})
			i += end + 1
		case c == '<':
			end := strings.IndexByte(input[i:], '>')
			if end < 0 {
				return nil, compileError(i, "unterminated data-type reference")
			}
			name := input[i+1 : i+end]
			// strip an optional range suffix, as in <integer [1,∞]>
			if at := strings.IndexAny(name, " ["); at >= 0 {
				name = name[:at]
			}
			if name == "" {
				return nil, compileError(i, "empty data-type reference")
			}
			toks = append(toks, token{kind: tokTypeRef, text: name, pos: i})
			i += end + 1
		case isIdentChar(c):
			start := i
			for i < len(input) && isIdentChar(input[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: input[start:i], pos: start})
		default:
			return nil, compileError(i, "unexpected character %q", string(c))
		}
	}
	return toks, nil
}

// parseBounds reads the inside of a '{m,n}' multiplier: "m", "m," or "m,n".
func parseBounds(s string) (int, int, error) {
	parts := strings.SplitN(s, ",", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || min < 0 {
		return 0, 0, fmt.Errorf("bad lower bound")
	}
	if len(parts) == 1 {
		return min, min, nil
	}
	rest := strings.TrimSpace(parts[1])
	if rest == "" {
		return min, RepeatUnbounded, nil
	}
	max, err := strconv.Atoi(rest)
	if err != nil || max < min {
		return 0, 0, fmt.Errorf("bad upper bound")
	}
	return min, max, nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	reg  *Registry
	toks []token
	at   int
}

func (p *parser) peek() (token, bool) {
	if p.at >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.at], true
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.at++
	}
	return tok, ok
}

// Compile translates a value definition into its tree form. Identifiers
// resolve through the alias map first, then through the keyword table;
// <…> references resolve through the type registry, then through the
// alias map. Unresolved names abort the compilation.
func (r *Registry) Compile(definition string) (*ValDef, error) {
	toks, err := scan(definition)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, compileError(0, "empty value definition")
	}
	p := &parser{reg: r, toks: toks}
	tree, err := p.parseSingleBar()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, compileError(tok.pos, "trailing input after definition")
	}
	return tree, nil
}

// parseSingleBar parses '|'-separated alternatives, the loosest binding.
func (p *parser) parseSingleBar() (*ValDef, error) {
	first, err := p.parseDoubleBar()
	if err != nil {
		return nil, err
	}
	children := []*ValDef{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokBar {
			break
		}
		p.at++
		child, err := p.parseDoubleBar()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return first, nil
	}
	return group(SignSingleBar, children...), nil
}

// parseDoubleBar parses '||'-separated options.
func (p *parser) parseDoubleBar() (*ValDef, error) {
	first, err := p.parseDoubleAmpersand()
	if err != nil {
		return nil, err
	}
	children := []*ValDef{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokBarBar {
			break
		}
		p.at++
		child, err := p.parseDoubleAmpersand()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return first, nil
	}
	return group(SignDoubleBar, children...), nil
}

// parseDoubleAmpersand parses '&&'-separated components.
func (p *parser) parseDoubleAmpersand() (*ValDef, error) {
	first, err := p.parseJuxtaposition()
	if err != nil {
		return nil, err
	}
	children := []*ValDef{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokAmpAmp {
			break
		}
		p.at++
		child, err := p.parseJuxtaposition()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return first, nil
	}
	return group(SignDoubleAmpersand, children...), nil
}

// parseJuxtaposition parses adjacent terms, the tightest binding.
func (p *parser) parseJuxtaposition() (*ValDef, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	children := []*ValDef{first}
	for {
		tok, ok := p.peek()
		if !ok || (tok.kind != tokIdent && tok.kind != tokTypeRef && tok.kind != tokOpen) {
			break
		}
		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return first, nil
	}
	return group(SignJuxtaposition, children...), nil
}

// parseTerm parses one identifier, data-type reference or bracket group,
// with a trailing multiplier if present.
func (p *parser) parseTerm() (*ValDef, error) {
	tok, ok := p.next()
	if !ok {
		return nil, compileError(len(p.toks), "definition ends where a term is expected")
	}
	var term *ValDef
	switch tok.kind {
	case tokIdent:
		var err error
		if term, err = p.resolveIdent(tok); err != nil {
			return nil, err
		}
	case tokTypeRef:
		var err error
		if term, err = p.resolveTypeRef(tok); err != nil {
			return nil, err
		}
	case tokOpen:
		inner, err := p.parseSingleBar()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.kind != tokClose {
			return nil, compileError(tok.pos, "unbalanced bracket group")
		}
		term = group(SignBrackets, inner)
	case tokClose:
		return nil, compileError(tok.pos, "unexpected ']'")
	default:
		return nil, compileError(tok.pos, "sign where a term is expected")
	}
	return p.parseSuffix(term)
}

// parseSuffix applies a repetition multiplier to the preceding term.
func (p *parser) parseSuffix(term *ValDef) (*ValDef, error) {
	tok, ok := p.peek()
	if !ok || tok.kind != tokRepeat {
		return term, nil
	}
	p.at++
	if term.Min != 1 || term.Max != 1 {
		return nil, compileError(tok.pos, "multiplier applied twice")
	}
	if term.Sign == SignKeyword || term.Sign == SignType {
		term = group(SignBrackets, term)
	}
	term.Min, term.Max = tok.min, tok.max
	return term, nil
}

// resolveIdent commits a bare identifier: aliases expand in place,
// everything else has to be a registered keyword.
func (p *parser) resolveIdent(tok token) (*ValDef, error) {
	if _, ok := p.reg.aliases[tok.text]; ok {
		return p.reg.resolveAliasTree(tok.text)
	}
	id, ok := p.reg.keywords.KeywordKey(tok.text)
	if !ok {
		tracer().Errorf("value definition names unknown keyword `%s`", tok.text)
		return nil, fmt.Errorf("keyword %q: %w", tok.text, ErrNotFound)
	}
	return keywordLeaf(id, tok.text), nil
}

// resolveTypeRef commits an <…> reference: registered types first, then
// aliases (the built-in <shadow> is an alias, not a type).
func (p *parser) resolveTypeRef(tok token) (*ValDef, error) {
	if rec, ok := p.reg.types[tok.text]; ok {
		return typeLeaf(rec), nil
	}
	if _, ok := p.reg.aliases[tok.text]; ok {
		return p.reg.resolveAliasTree(tok.text)
	}
	tracer().Errorf("value definition names unknown data type <%s>", tok.text)
	return nil, fmt.Errorf("data type <%s>: %w", tok.text, ErrNotFound)
}
