/*
Package css converts computed style values into typeset-ready quantities.

Overview

The style engine stores dimension values the way stylesheets spell them:
a number plus a unit, a percentage, or a keyword such as "auto". Layout
code wants device units. DimenT is an option type bridging the two: it
is either a fixed dimen.DU, a percentage, auto, initial or inherit, and
it is matched instead of inspected.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"errors"
	"math"

	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// ErrNoDimension flags style values that do not denote a dimension.
var ErrNoDimension = errors.New("style value is not a dimension")

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// DimenT is an option type for CSS dimension values.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// Auto creates the dimension value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates the dimension value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates the dimension value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a fixed dimension of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a %-relative dimension.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// unitScale maps stylesheet units to device units. CSS reference pixels
// are 1⁄96 inch, points 1⁄72 inch.
var unitScale = map[string]float64{
	"px":  float64(dimen.PT) * 72.0 / 96.0,
	"pt":  float64(dimen.PT),
	"dp":  float64(dimen.PT) * 72.0 / 96.0,
	"sp":  float64(dimen.PT) * 72.0 / 96.0,
	"em":  float64(dimen.PT) * 12.0, // relative to a nominal 12pt font
	"rem": float64(dimen.PT) * 12.0,
	"mm":  float64(dimen.PT) * 72.0 / 25.4,
	"cm":  float64(dimen.PT) * 72.0 / 2.54,
	"in":  float64(dimen.PT) * 72.0,
}

// FromValue converts a computed style value into a dimension option.
// Lengths and unit values scale into device units, percentages stay
// relative, a plain number 0 becomes a zero fixed dimension, the keywords
// auto, initial and inherit map onto their variants. keywordName resolves
// keyword identifiers, usually (*kaskade.Library).KeywordName. Everything
// else flags ErrNoDimension.
func FromValue(v style.Value, keywordName func(int) (string, bool)) (DimenT, error) {
	switch v.Type() {
	case style.LengthValue, style.UnitValue:
		scale, ok := unitScale[v.UnitString()]
		if !ok {
			return DimenT{}, ErrNoDimension
		}
		return JustDimen(dimen.DU(math.Round(v.Number() * scale))), nil
	case style.PercentageValue:
		return Percentage(percent.FromInt(int(math.Round(v.Number())))), nil
	case style.NumericValue:
		if v.Number() == 0 {
			return JustDimen(0), nil
		}
	case style.KeywordValue:
		if keywordName == nil {
			break
		}
		name, ok := keywordName(v.KeywordID())
		if !ok {
			break
		}
		switch name {
		case "auto":
			return Auto(), nil
		case "initial":
			return Initial(), nil
		case "inherit":
			return Inherit(), nil
		}
	}
	return DimenT{}, ErrNoDimension
}

// ---------------------------------------------------------------------------

// Match starts a match against the variants of a dimension.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches a dimension against its variants.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension has the same variant as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches a fixed dimension, depositing the device units in du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension, depositing the percentage
// in p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns maps the variants of a dimension to result values for
// DimenPattern matching.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match on a dimension.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is an expression-level matcher for dimensions.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the dimension's variant.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With deposits the device units of the dimension in du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const is a convenience for returning x from a pattern arm.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
