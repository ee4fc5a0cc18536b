package kaskade

// Identifiers of the built-in keywords. Hosts extend the keyword space
// with RegisterKeyword, starting at KeywordBuiltinMax.
const (
	KeywordNone = iota
	KeywordAuto
	KeywordNormal
	KeywordInherit
	KeywordInitial
	KeywordContain
	KeywordCover
	KeywordLeft
	KeywordCenter
	KeywordRight
	KeywordTop
	KeywordTopLeft
	KeywordTopCenter
	KeywordTopRight
	KeywordMiddle
	KeywordCenterLeft
	KeywordCenterCenter
	KeywordCenterRight
	KeywordBottom
	KeywordBottomLeft
	KeywordBottomCenter
	KeywordBottomRight
	KeywordSolid
	KeywordDotted
	KeywordDouble
	KeywordDashed
	KeywordContentBox
	KeywordPaddingBox
	KeywordBorderBox
	KeywordGraphBox
	KeywordStatic
	KeywordRelative
	KeywordAbsolute
	KeywordBlock
	KeywordInlineBlock
	KeywordFlex
	KeywordFlexStart
	KeywordFlexEnd
	KeywordStretch
	KeywordSpaceBetween
	KeywordSpaceAround
	KeywordSpaceEvenly
	KeywordWrap
	KeywordNowrap
	KeywordRow
	KeywordColumn
	KeywordVisible
	KeywordHidden
	KeywordItalic
	KeywordOblique
	KeywordStart
	KeywordEnd
	KeywordBaseline
	KeywordFirst
	KeywordLast

	// KeywordBuiltinMax is the first identifier free for host keywords.
	KeywordBuiltinMax
)

var builtinKeywords = []struct {
	id   int
	name string
}{
	{KeywordNone, "none"},
	{KeywordAuto, "auto"},
	{KeywordNormal, "normal"},
	{KeywordInherit, "inherit"},
	{KeywordInitial, "initial"},
	{KeywordContain, "contain"},
	{KeywordCover, "cover"},
	{KeywordLeft, "left"},
	{KeywordCenter, "center"},
	{KeywordRight, "right"},
	{KeywordTop, "top"},
	{KeywordTopLeft, "top left"},
	{KeywordTopCenter, "top center"},
	{KeywordTopRight, "top right"},
	{KeywordMiddle, "middle"},
	{KeywordCenterLeft, "center left"},
	{KeywordCenterCenter, "center center"},
	{KeywordCenterRight, "center right"},
	{KeywordBottom, "bottom"},
	{KeywordBottomLeft, "bottom left"},
	{KeywordBottomCenter, "bottom center"},
	{KeywordBottomRight, "bottom right"},
	{KeywordSolid, "solid"},
	{KeywordDotted, "dotted"},
	{KeywordDouble, "double"},
	{KeywordDashed, "dashed"},
	{KeywordContentBox, "content-box"},
	{KeywordPaddingBox, "padding-box"},
	{KeywordBorderBox, "border-box"},
	{KeywordGraphBox, "graph-box"},
	{KeywordStatic, "static"},
	{KeywordRelative, "relative"},
	{KeywordAbsolute, "absolute"},
	{KeywordBlock, "block"},
	{KeywordInlineBlock, "inline-block"},
	{KeywordFlex, "flex"},
	{KeywordFlexStart, "flex-start"},
	{KeywordFlexEnd, "flex-end"},
	{KeywordStretch, "stretch"},
	{KeywordSpaceBetween, "space-between"},
	{KeywordSpaceAround, "space-around"},
	{KeywordSpaceEvenly, "space-evenly"},
	{KeywordWrap, "wrap"},
	{KeywordNowrap, "nowrap"},
	{KeywordRow, "row"},
	{KeywordColumn, "column"},
	{KeywordVisible, "visible"},
	{KeywordHidden, "hidden"},
	{KeywordItalic, "italic"},
	{KeywordOblique, "oblique"},
	{KeywordStart, "start"},
	{KeywordEnd, "end"},
	{KeywordBaseline, "baseline"},
	{KeywordFirst, "first"},
	{KeywordLast, "last"},
}

func (lib *Library) registerBuiltinKeywords() {
	for _, kw := range builtinKeywords {
		if err := lib.RegisterKeyword(kw.id, kw.name); err != nil {
			panic(err) // the built-in table carries no duplicates
		}
	}
}
