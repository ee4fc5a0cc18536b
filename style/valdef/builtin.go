package valdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/kaskade/style"
)

// Built-in data types. The library registers these during startup; hosts
// may add their own types with Registry.RegisterType.

// RegisterBuiltinTypes registers the standard data types <number>,
// <integer>, <length>, <percentage>, <string>, <color> and <image>.
func (r *Registry) RegisterBuiltinTypes() error {
	builtins := []struct {
		name  string
		parse ValueParser
	}{
		{"number", ParseNumber},
		{"integer", ParseInteger},
		{"length", ParseLength},
		{"percentage", ParsePercentage},
		{"string", ParseString},
		{"color", ParseColor},
		{"image", ParseImage},
	}
	for _, b := range builtins {
		if _, err := r.RegisterType(b.name, b.parse); err != nil {
			return err
		}
	}
	return nil
}

// lengthUnits are the unit suffixes accepted for <length> values.
var lengthUnits = map[string]bool{
	"px": true, "pt": true, "dp": true, "sp": true,
	"em": true, "rem": true, "mm": true, "cm": true, "in": true,
}

// splitDimension splits "100px" into its numeric part and unit suffix.
func splitDimension(text string) (float64, string, error) {
	cut := len(text)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			continue
		}
		cut = i
		break
	}
	n, err := strconv.ParseFloat(text[:cut], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q is not a dimension", ErrSyntax, text)
	}
	return n, text[cut:], nil
}

// ParseNumber parses a plain floating point value.
func ParseNumber(text string) (style.Value, error) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return style.Invalid(), fmt.Errorf("%w: %q is not a number", ErrSyntax, text)
	}
	return style.Number(n), nil
}

// ParseInteger parses an integral value.
func ParseInteger(text string) (style.Value, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return style.Invalid(), fmt.Errorf("%w: %q is not an integer", ErrSyntax, text)
	}
	return style.Integer(int32(n)), nil
}

// ParseLength parses a unit-bearing length such as "100px" or "1.5em".
// A bare zero is accepted as 0px.
func ParseLength(text string) (style.Value, error) {
	n, unit, err := splitDimension(text)
	if err != nil {
		return style.Invalid(), err
	}
	if unit == "" {
		if n == 0 {
			return style.Length(0, "px"), nil
		}
		return style.Invalid(), fmt.Errorf("%w: length %q lacks a unit", ErrSyntax, text)
	}
	if !lengthUnits[unit] {
		return style.Invalid(), fmt.Errorf("%w: unknown length unit %q", ErrSyntax, unit)
	}
	return style.Length(n, unit), nil
}

// ParsePercentage parses "50%" style values.
func ParsePercentage(text string) (style.Value, error) {
	n, unit, err := splitDimension(text)
	if err != nil || unit != "%" {
		return style.Invalid(), fmt.Errorf("%w: %q is not a percentage", ErrSyntax, text)
	}
	return style.Percentage(n), nil
}

// ParseString unwraps quoted text; unquoted text passes through.
func ParseString(text string) (style.Value, error) {
	if len(text) >= 2 {
		if (text[0] == '"' && text[len(text)-1] == '"') ||
			(text[0] == '\'' && text[len(text)-1] == '\'') {
			text = text[1 : len(text)-1]
		}
	}
	return style.String(text), nil
}

// ParseImage accepts url(…) notation, quoted paths and bare paths.
func ParseImage(text string) (style.Value, error) {
	if strings.HasPrefix(text, "url(") && strings.HasSuffix(text, ")") {
		text = strings.TrimSpace(text[4 : len(text)-1])
	}
	if len(text) >= 2 {
		if (text[0] == '"' && text[len(text)-1] == '"') ||
			(text[0] == '\'' && text[len(text)-1] == '\'') {
			text = text[1 : len(text)-1]
		}
	}
	if text == "" {
		return style.Invalid(), fmt.Errorf("%w: empty image reference", ErrSyntax)
	}
	return style.Image(text), nil
}

// namedColors is the small set of color names the engine knows besides
// hex and rgb()/rgba() notation.
var namedColors = map[string]style.Color{
	"transparent": {R: 0, G: 0, B: 0, A: 0},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
	"purple":      {R: 128, G: 0, B: 128, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"silver":      {R: 192, G: 192, B: 192, A: 255},
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa hex notation, rgb(…) and
// rgba(…) function notation, and a handful of color names.
func ParseColor(text string) (style.Value, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if c, ok := namedColors[lower]; ok {
		return style.RGBA(c.R, c.G, c.B, c.A), nil
	}
	if strings.HasPrefix(lower, "#") {
		return parseHexColor(lower[1:])
	}
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(lower)
	}
	return style.Invalid(), fmt.Errorf("%w: %q is not a color", ErrSyntax, text)
}

func parseHexColor(hex string) (style.Value, error) {
	nibble := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		}
		return 0, false
	}
	byteAt := func(i int) (uint8, bool) {
		hi, ok1 := nibble(hex[i])
		lo, ok2 := nibble(hex[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	switch len(hex) {
	case 3:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return style.Invalid(), fmt.Errorf("%w: bad hex color #%s", ErrSyntax, hex)
			}
			rgb[i] = n<<4 | n
		}
		return style.RGBA(rgb[0], rgb[1], rgb[2], 255), nil
	case 6, 8:
		var parts [4]uint8
		parts[3] = 255
		for i := 0; i*2 < len(hex); i++ {
			n, ok := byteAt(i * 2)
			if !ok {
				return style.Invalid(), fmt.Errorf("%w: bad hex color #%s", ErrSyntax, hex)
			}
			parts[i] = n
		}
		return style.RGBA(parts[0], parts[1], parts[2], parts[3]), nil
	}
	return style.Invalid(), fmt.Errorf("%w: bad hex color #%s", ErrSyntax, hex)
}

func parseRGBFunc(text string) (style.Value, error) {
	open := strings.IndexByte(text, '(')
	if !strings.HasSuffix(text, ")") {
		return style.Invalid(), fmt.Errorf("%w: unterminated %q", ErrSyntax, text)
	}
	args := strings.Split(text[open+1:len(text)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return style.Invalid(), fmt.Errorf("%w: rgb() wants 3 or 4 arguments", ErrSyntax)
	}
	var parts [4]uint8
	parts[3] = 255
	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		if i == 3 {
			alpha, err := strconv.ParseFloat(arg, 64)
			if err != nil || alpha < 0 || alpha > 1 {
				return style.Invalid(), fmt.Errorf("%w: bad alpha %q", ErrSyntax, arg)
			}
			parts[3] = uint8(alpha*255 + 0.5)
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 || n > 255 {
			return style.Invalid(), fmt.Errorf("%w: bad channel %q", ErrSyntax, arg)
		}
		parts[i] = uint8(n)
	}
	return style.RGBA(parts[0], parts[1], parts[2], parts[3]), nil
}
