package vte

// sgrNamed maps the eight base SGR color codes (offset from 30/40/90/100)
// to their NamedColor.
var sgrNamed = [8]NamedColor{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
var sgrBrightNamed = [8]NamedColor{BrightBlack, BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan, BrightWhite}

// attrsFromSGR implements the SGR grammar of spec.md §4.3: one Attribute per
// parameter, in order. A parameter recognized by its first subparameter
// only is still "consumed" as far as subsequent extended-color parameters
// are concerned: 38/48/58 with a single subparameter continue reading
// FOLLOWING whole parameters (';'-separated legacy form), while 38/48/58
// with more than one subparameter read them as colon-separated fields of
// the SAME parameter.
func attrsFromSGR(params *Params) []Attribute {
	attrs := make([]Attribute, 0, params.Len())

	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		first := p.First(0)

		switch {
		case p.Len() == 1:
			if a, ok := sgrSimple(first); ok {
				attrs = append(attrs, a)
				continue
			}
			switch first {
			case 38:
				if c, ok := extendedColor(params, &i); ok {
					attrs = append(attrs, attrColor(AttrForeground, c))
				}
			case 48:
				if c, ok := extendedColor(params, &i); ok {
					attrs = append(attrs, attrColor(AttrBackground, c))
				}
			case 58:
				if c, ok := extendedColor(params, &i); ok {
					attrs = append(attrs, attrColor(AttrUnderlineColor, c))
				}
			default:
				if a, ok := sgrNamedColor(first); ok {
					attrs = append(attrs, a)
				}
			}
		default:
			// first subparam with its own colon-separated subparams, e.g.
			// "4:3" (undercurl) or "38:2:255:0:0" (colon-form truecolor).
			switch first {
			case 4:
				attrs = append(attrs, sgrUnderline(p))
			case 38:
				if c, ok := colonRGB(p); ok {
					attrs = append(attrs, attrColor(AttrForeground, c))
				}
			case 48:
				if c, ok := colonRGB(p); ok {
					attrs = append(attrs, attrColor(AttrBackground, c))
				}
			case 58:
				if c, ok := colonRGB(p); ok {
					attrs = append(attrs, attrColor(AttrUnderlineColor, c))
				}
			}
		}
	}

	return attrs
}

func sgrUnderline(p *Param) Attribute {
	if p.Len() < 2 {
		return attr(AttrUnderline)
	}
	switch p.Get(1) {
	case 0:
		return attr(AttrCancelUnderline)
	case 2:
		return attr(AttrDoubleUnderline)
	case 3:
		return attr(AttrUndercurl)
	case 4:
		return attr(AttrDottedUnderline)
	case 5:
		return attr(AttrDashedUnderline)
	default:
		return attr(AttrUnderline)
	}
}

func sgrSimple(code uint16) (Attribute, bool) {
	switch code {
	case 0:
		return attr(AttrReset), true
	case 1:
		return attr(AttrBold), true
	case 2:
		return attr(AttrDim), true
	case 3:
		return attr(AttrItalic), true
	case 4:
		return attr(AttrUnderline), true
	case 5:
		return attr(AttrBlinkSlow), true
	case 6:
		return attr(AttrBlinkFast), true
	case 7:
		return attr(AttrReverse), true
	case 8:
		return attr(AttrHidden), true
	case 9:
		return attr(AttrStrike), true
	case 21:
		return attr(AttrCancelBold), true
	case 22:
		return attr(AttrCancelBoldDim), true
	case 23:
		return attr(AttrCancelItalic), true
	case 24:
		return attr(AttrCancelUnderline), true
	case 25:
		return attr(AttrCancelBlink), true
	case 27:
		return attr(AttrCancelReverse), true
	case 28:
		return attr(AttrCancelHidden), true
	case 29:
		return attr(AttrCancelStrike), true
	case 39:
		return attrColor(AttrForeground, NamedColorOf(Foreground)), true
	case 49:
		return attrColor(AttrBackground, NamedColorOf(Background)), true
	case 59:
		return attr(AttrUnderlineColor), true
	default:
		return Attribute{}, false
	}
}

func sgrNamedColor(code uint16) (Attribute, bool) {
	switch {
	case code >= 30 && code <= 37:
		return attrColor(AttrForeground, NamedColorOf(sgrNamed[code-30])), true
	case code >= 40 && code <= 47:
		return attrColor(AttrBackground, NamedColorOf(sgrNamed[code-40])), true
	case code >= 90 && code <= 97:
		return attrColor(AttrForeground, NamedColorOf(sgrBrightNamed[code-90])), true
	case code >= 100 && code <= 107:
		return attrColor(AttrBackground, NamedColorOf(sgrBrightNamed[code-100])), true
	default:
		return Attribute{}, false
	}
}

// extendedColor handles the legacy ';'-separated extended-color form: the
// selector (2 or 5) and its operands are each their own whole parameter
// following the 38/48/58 parameter. *i is advanced past every parameter
// consumed.
func extendedColor(params *Params, i *int) (Color, bool) {
	next := func() (uint16, bool) {
		*i++
		if *i >= params.Len() {
			return 0, false
		}
		return params.At(*i).First(0), true
	}
	selector, ok := next()
	if !ok {
		return Color{}, false
	}
	switch selector {
	case 2:
		r, ok := next()
		if !ok {
			return Color{}, false
		}
		g, ok := next()
		if !ok {
			return Color{}, false
		}
		b, ok := next()
		if !ok {
			return Color{}, false
		}
		return SpecColor(Rgb{uint8(r), uint8(g), uint8(b)}), true
	case 5:
		idx, ok := next()
		if !ok {
			return Color{}, false
		}
		return IndexedColor(uint8(idx)), true
	default:
		return Color{}, false
	}
}

// colonRGB handles the colon-form extended color where selector and
// operands are subparameters of the SAME parameter: "38:2:255:0:0" or, with
// the optional empty colorspace-id field, "38:2::255:0:0" (5 subparams).
func colonRGB(p *Param) (Color, bool) {
	rest := make([]uint16, 0, p.Len()-1)
	for i := 1; i < p.Len(); i++ {
		rest = append(rest, p.Get(i))
	}
	if len(rest) == 0 {
		return Color{}, false
	}
	selector := rest[0]
	rgbStart := 1
	if len(rest) > 4 {
		rgbStart = 2
	}
	operands := rest[rgbStart:]
	switch selector {
	case 2:
		if len(operands) < 3 {
			return Color{}, false
		}
		return SpecColor(Rgb{uint8(operands[0]), uint8(operands[1]), uint8(operands[2])}), true
	case 5:
		if len(operands) < 1 {
			return Color{}, false
		}
		return IndexedColor(uint8(operands[0])), true
	default:
		return Color{}, false
	}
}
