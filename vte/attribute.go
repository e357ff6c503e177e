package vte

// AttrKind tags which SGR attribute variant is populated. Reset and the
// boolean toggles/cancels carry no payload; Foreground/Background/
// UnderlineColor carry a Color.
type AttrKind int

const (
	AttrReset AttrKind = iota
	AttrBold
	AttrDim
	AttrItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrUndercurl
	AttrDottedUnderline
	AttrDashedUnderline
	AttrCancelUnderline
	AttrBlinkSlow
	AttrBlinkFast
	AttrCancelBlink
	AttrReverse
	AttrCancelReverse
	AttrHidden
	AttrCancelHidden
	AttrStrike
	AttrCancelStrike
	AttrCancelBold
	AttrCancelBoldDim
	AttrCancelItalic
	AttrForeground
	AttrBackground
	AttrUnderlineColor
)

// Attribute is one SGR directive produced by the dispatcher's SGR grammar
// (spec.md §4.3). Foreground/Background always carry a Color;
// UnderlineColor carries one only when HasColor is true (bare "59" clears
// the underline color back to default).
type Attribute struct {
	Kind     AttrKind
	Color    Color
	HasColor bool
}

func attr(kind AttrKind) Attribute { return Attribute{Kind: kind} }

func attrColor(kind AttrKind, c Color) Attribute {
	return Attribute{Kind: kind, Color: c, HasColor: true}
}
