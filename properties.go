package kaskade

// Keys of the built-in properties. The key space is dense; host
// properties registered with RegisterProperty continue from
// PropBuiltinMax on.
const (
	PropLeft = iota
	PropRight
	PropTop
	PropBottom
	PropPosition
	PropVisibility
	PropDisplay
	PropZIndex
	PropOpacity
	PropBoxSizing
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropVerticalAlign
	PropBorderTopWidth
	PropBorderTopStyle
	PropBorderTopColor
	PropBorderRightWidth
	PropBorderRightStyle
	PropBorderRightColor
	PropBorderBottomWidth
	PropBorderBottomStyle
	PropBorderBottomColor
	PropBorderLeftWidth
	PropBorderLeftStyle
	PropBorderLeftColor
	PropBorderTopLeftRadius
	PropBorderTopRightRadius
	PropBorderBottomLeftRadius
	PropBorderBottomRightRadius
	PropBackgroundColor
	PropBackgroundImage
	PropBackgroundSize
	PropBackgroundPosition
	PropBoxShadow
	PropFlexBasis
	PropFlexGrow
	PropFlexShrink
	PropFlexDirection
	PropFlexWrap
	PropJustifyContent
	PropAlignContent
	PropAlignItems
	PropColor
	PropFontSize
	PropFontStyle
	PropFontFamily
	PropLineHeight
	PropTextAlign
	PropContent
	PropWhiteSpace
	PropPointerEvents

	// PropBuiltinMax is the first key free for host properties.
	PropBuiltinMax
)

// builtinAliases are the type aliases value definitions of the built-in
// properties rely on.
var builtinAliases = []struct {
	alias      string
	definition string
}{
	{"shadow", "<length>{2,4} && <color>?"},
	{"content-position", "center | start | end | flex-start | flex-end"},
	{"content-distribution", "space-between | space-around | space-evenly | stretch"},
	{"baseline-position", "[ first | last ]? baseline"},
	{"width", "auto | <length> | <percentage>"},
}

func (lib *Library) registerBuiltinAliases() {
	for _, a := range builtinAliases {
		if err := lib.RegisterValueTypeAlias(a.alias, a.definition); err != nil {
			panic(err) // the built-in table carries no duplicates
		}
	}
}

// builtinProperties lists the property inventory of the engine with the
// value-definition syntax and initial value of each entry.
var builtinProperties = []struct {
	key     int
	name    string
	syntax  string
	initial string
}{
	{PropLeft, "left", "<length> | <percentage> | auto", "auto"},
	{PropRight, "right", "<length> | <percentage> | auto", "auto"},
	{PropTop, "top", "<length> | <percentage> | auto", "auto"},
	{PropBottom, "bottom", "<length> | <percentage> | auto", "auto"},
	{PropPosition, "position", "static | relative | absolute", "static"},
	{PropVisibility, "visibility", "visible | hidden", "visible"},
	{PropDisplay, "display", "none | block | inline-block | flex", "block"},
	{PropZIndex, "z-index", "auto | <integer>", "auto"},
	{PropOpacity, "opacity", "<number> | <percentage>", "1"},
	{PropBoxSizing, "box-sizing", "content-box | border-box", "content-box"},
	{PropWidth, "width", "auto | <length> | <percentage>", "auto"},
	{PropHeight, "height", "auto | <length> | <percentage>", "auto"},
	{PropMinWidth, "min-width", "auto | <length> | <percentage>", "auto"},
	{PropMinHeight, "min-height", "auto | <length> | <percentage>", "auto"},
	{PropMaxWidth, "max-width", "auto | <length> | <percentage>", "auto"},
	{PropMaxHeight, "max-height", "auto | <length> | <percentage>", "auto"},
	{PropMarginTop, "margin-top", "<length> | <percentage>", "0"},
	{PropMarginRight, "margin-right", "<length> | <percentage>", "0"},
	{PropMarginBottom, "margin-bottom", "<length> | <percentage>", "0"},
	{PropMarginLeft, "margin-left", "<length> | <percentage>", "0"},
	{PropPaddingTop, "padding-top", "<length> | <percentage>", "0"},
	{PropPaddingRight, "padding-right", "<length> | <percentage>", "0"},
	{PropPaddingBottom, "padding-bottom", "<length> | <percentage>", "0"},
	{PropPaddingLeft, "padding-left", "<length> | <percentage>", "0"},
	{PropVerticalAlign, "vertical-align", "middle | bottom | top", "top"},
	{PropBorderTopWidth, "border-top-width", "<length>", "0"},
	{PropBorderTopStyle, "border-top-style", "none | solid", "none"},
	{PropBorderTopColor, "border-top-color", "<color>", "transparent"},
	{PropBorderRightWidth, "border-right-width", "<length>", "0"},
	{PropBorderRightStyle, "border-right-style", "none | solid", "none"},
	{PropBorderRightColor, "border-right-color", "<color>", "transparent"},
	{PropBorderBottomWidth, "border-bottom-width", "<length>", "0"},
	{PropBorderBottomStyle, "border-bottom-style", "none | solid", "none"},
	{PropBorderBottomColor, "border-bottom-color", "<color>", "transparent"},
	{PropBorderLeftWidth, "border-left-width", "<length>", "0"},
	{PropBorderLeftStyle, "border-left-style", "none | solid", "none"},
	{PropBorderLeftColor, "border-left-color", "<color>", "transparent"},
	{PropBorderTopLeftRadius, "border-top-left-radius", "<length> | <percentage>", "0"},
	{PropBorderTopRightRadius, "border-top-right-radius", "<length> | <percentage>", "0"},
	{PropBorderBottomLeftRadius, "border-bottom-left-radius", "<length> | <percentage>", "0"},
	{PropBorderBottomRightRadius, "border-bottom-right-radius", "<length> | <percentage>", "0"},
	{PropBackgroundColor, "background-color", "<color>", "transparent"},
	{PropBackgroundImage, "background-image", "none | <image>", "none"},
	{PropBackgroundSize, "background-size", "[ <length> | <percentage> | auto ]{1,2} | cover | contain", "auto auto"},
	{PropBackgroundPosition, "background-position",
		"[ [ left | center | right | top | bottom | <length> | <percentage> ] | [ left | center | right | <length> | <percentage> ] [ top | center | bottom | <length> | <percentage> ] ]",
		"0% 0%"},
	{PropBoxShadow, "box-shadow", "none | <shadow>", "none"},
	{PropFlexBasis, "flex-basis", "auto | <width>", "auto"},
	{PropFlexGrow, "flex-grow", "<number>", "0"},
	{PropFlexShrink, "flex-shrink", "<number>", "1"},
	{PropFlexDirection, "flex-direction", "row | column", "row"},
	{PropFlexWrap, "flex-wrap", "nowrap | wrap", "nowrap"},
	{PropJustifyContent, "justify-content", "normal | <baseline-position> | <content-distribution>", "normal"},
	{PropAlignContent, "align-content", "normal | <baseline-position> | <content-distribution>", "normal"},
	{PropAlignItems, "align-items", "normal | stretch", "normal"},
	{PropColor, "color", "<color>", "#000"},
	{PropFontSize, "font-size", "<length> | <percentage>", "16px"},
	{PropFontStyle, "font-style", "normal | italic | oblique", "normal"},
	{PropFontFamily, "font-family", "<string>", ""},
	{PropLineHeight, "line-height", "<number> | <length> | <percentage>", "1.6"},
	{PropTextAlign, "text-align", "left | center | right", "left"},
	{PropContent, "content", "<string>", ""},
	{PropWhiteSpace, "white-space", "normal | nowrap", "normal"},
	{PropPointerEvents, "pointer-events", "auto | none", "auto"},
}

func (lib *Library) registerBuiltinProperties() {
	for _, p := range builtinProperties {
		if err := lib.RegisterPropertyWithKey(p.key, p.name, p.syntax, p.initial); err != nil {
			panic(err) // built-in syntaxes compile against the built-in keyword set
		}
	}
}
