// Package grid is a minimal vte.Handler: it tracks cursor, cell content,
// and SGR/color/charset state in a plain 2-D buffer, the way
// phroun-purfecterm's Buffer does, without that package's scrollback,
// sprites, or GUI concerns (out of scope here).
package grid

import "github.com/coreterm/vte"

// UnderlineStyle distinguishes the SGR underline variants, since the vte
// package surfaces each as its own AttrKind rather than a kind+style pair.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Attrs is the SGR rendering state that applies to a cell when it is
// written: colors, weight/slant, underline style, and the toggle
// attributes (reverse, hidden, strike, blink).
type Attrs struct {
	Bold, Dim, Italic    bool
	Reverse, Hidden      bool
	Strike               bool
	BlinkSlow, BlinkFast bool

	Underline UnderlineStyle

	Foreground, Background vte.Color
	UnderlineColor         vte.Color
	HasUnderlineColor      bool
}

// defaultAttrs is the SGR-reset state: default named foreground/background,
// every toggle off.
func defaultAttrs() Attrs {
	return Attrs{
		Foreground: vte.NamedColorOf(vte.Foreground),
		Background: vte.NamedColorOf(vte.Background),
	}
}

// Apply folds one SGR Attribute into a (copy of) Attrs, per spec.md §4.3's
// SGR table.
func (a Attrs) Apply(attr vte.Attribute) Attrs {
	switch attr.Kind {
	case vte.AttrReset:
		return defaultAttrs()
	case vte.AttrBold:
		a.Bold = true
	case vte.AttrDim:
		a.Dim = true
	case vte.AttrItalic:
		a.Italic = true
	case vte.AttrCancelItalic:
		a.Italic = false
	case vte.AttrCancelBold:
		a.Bold = false
	case vte.AttrCancelBoldDim:
		a.Bold, a.Dim = false, false
	case vte.AttrUnderline:
		a.Underline = UnderlineSingle
	case vte.AttrDoubleUnderline:
		a.Underline = UnderlineDouble
	case vte.AttrUndercurl:
		a.Underline = UnderlineCurly
	case vte.AttrDottedUnderline:
		a.Underline = UnderlineDotted
	case vte.AttrDashedUnderline:
		a.Underline = UnderlineDashed
	case vte.AttrCancelUnderline:
		a.Underline = UnderlineNone
	case vte.AttrBlinkSlow:
		a.BlinkSlow = true
	case vte.AttrBlinkFast:
		a.BlinkFast = true
	case vte.AttrCancelBlink:
		a.BlinkSlow, a.BlinkFast = false, false
	case vte.AttrReverse:
		a.Reverse = true
	case vte.AttrCancelReverse:
		a.Reverse = false
	case vte.AttrHidden:
		a.Hidden = true
	case vte.AttrCancelHidden:
		a.Hidden = false
	case vte.AttrStrike:
		a.Strike = true
	case vte.AttrCancelStrike:
		a.Strike = false
	case vte.AttrForeground:
		a.Foreground = attr.Color
	case vte.AttrBackground:
		a.Background = attr.Color
	case vte.AttrUnderlineColor:
		a.HasUnderlineColor = attr.HasColor
		a.UnderlineColor = attr.Color
	}
	return a
}

// Cell is one character position: a base rune, any combining marks that
// follow it, the display width runewidth assigns it, and the attrs in
// effect when it was written.
type Cell struct {
	Char      rune
	Combining []rune
	Width     int
	Attrs     Attrs
	Hyperlink *vte.Hyperlink
}

func (c Cell) String() string {
	if len(c.Combining) == 0 {
		return string(c.Char)
	}
	return string(c.Char) + string(c.Combining)
}

func blankCell(attrs Attrs) Cell {
	return Cell{Char: ' ', Width: 1, Attrs: attrs}
}
