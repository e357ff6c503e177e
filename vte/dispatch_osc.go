package vte

import (
	"bytes"
	"strconv"
)

// uriPrefixes lists the schemes OSC 8 accepts for a hyperlink target.
var uriPrefixes = [][]byte{
	[]byte("https://"),
	[]byte("http://"),
	[]byte("file://"),
	[]byte("mailto://"),
	[]byte("ftp://"),
}

// oscDispatch implements spec.md §4.3's OSC dispatch table. Called as the
// exit action of the OscString state, consuming the ';'-separated spans
// accumulated by oscPut into p.oscRaw/p.oscSpans.
func (p *Parser) oscDispatch(h Handler, bellTerminated bool) {
	params := p.oscParams()
	if len(params) == 0 {
		return
	}

	var terminator byte = 0x1b
	if bellTerminated {
		terminator = 0x07
	}

	switch {
	case (string(params[0]) == "0" || string(params[0]) == "2"):
		title := bytes.Join(params[1:], []byte{';'})
		h.SetTitle(string(title), true)

	case string(params[0]) == "4" && len(params) > 1 && (len(params)-1)%2 == 0:
		rest := params[1:]
		for i := 0; i+1 < len(rest); i += 2 {
			index, ok := parseOscNumber(rest[i])
			if !ok {
				continue
			}
			if c, ok := XParseColor(rest[i+1]); ok {
				h.SetColor(int(index), c)
			} else if string(rest[i+1]) == "?" {
				h.DynamicColorSequence(oscPrefix("4", index), int(index), terminator)
			}
		}

	case string(params[0]) == "8" && len(params) == 3 && hasURIPrefix(params[2]):
		id := parseHyperlinkID(params[1])
		h.SetHyperlink(&Hyperlink{ID: id, URI: string(params[2])})

	case isDynamicColorCode(params[0]) && len(params) > 1:
		base, _ := parseOscNumber(params[0])
		dynamicCode := int(base)
		for _, param := range params[1:] {
			offset := dynamicCode - 10
			index := int(Foreground) + offset
			if index > int(Cursor) {
				break
			}
			if c, ok := XParseColor(param); ok {
				h.SetColor(index, c)
			} else if string(param) == "?" {
				h.DynamicColorSequence(strconv.Itoa(dynamicCode), index, terminator)
			}
			dynamicCode++
		}

	case string(params[0]) == "52" && len(params) == 3:
		target := byte('c')
		if len(params[1]) > 0 {
			target = params[1][0]
		}
		if string(params[2]) == "?" {
			h.ClipboardLoad(target, terminator)
		} else {
			h.ClipboardStore(target, params[2])
		}

	case string(params[0]) == "104":
		if len(params) == 1 {
			for i := 0; i < 256; i++ {
				h.ResetColor(i)
			}
			return
		}
		for _, param := range params[1:] {
			if index, ok := parseOscNumber(param); ok {
				h.ResetColor(int(index))
			}
		}

	case string(params[0]) == "110":
		h.ResetColor(int(Foreground))
	case string(params[0]) == "111":
		h.ResetColor(int(Background))
	case string(params[0]) == "112":
		h.ResetColor(int(Cursor))
	}
}

// oscParams splits the raw OSC buffer into its ';'-separated parameters,
// including the trailing one not yet closed by oscPut.
func (p *Parser) oscParams() [][]byte {
	params := make([][]byte, 0, p.oscNumSpans+1)
	for i := 0; i < p.oscNumSpans; i++ {
		span := p.oscSpans[i]
		params = append(params, p.oscRaw[span[0]:span[1]])
	}
	params = append(params, p.oscRaw[p.oscSpanStart:])
	return params
}

func isDynamicColorCode(param []byte) bool {
	s := string(param)
	return s == "10" || s == "11" || s == "12"
}

func hasURIPrefix(uri []byte) bool {
	for _, prefix := range uriPrefixes {
		if bytes.HasPrefix(uri, prefix) {
			return true
		}
	}
	return false
}

// parseHyperlinkID extracts the "id" key from the colon-separated
// key1=value1:key2=value2 link-parameter list of OSC 8.
func parseHyperlinkID(params []byte) string {
	for _, kv := range bytes.Split(params, []byte{':'}) {
		if v, ok := bytes.CutPrefix(kv, []byte("id=")); ok {
			return string(v)
		}
	}
	return ""
}

func oscPrefix(code string, index uint32) string {
	return code + ";" + strconv.FormatUint(uint64(index), 10)
}

// parseOscNumber parses an unsigned decimal OSC parameter, rejecting empty
// input or non-digit bytes (mirrors the original parse_number's all-ASCII-
// digit requirement, without its 8-bit overflow cap since OSC color/clear
// indices exceed 255).
func parseOscNumber(b []byte) (uint32, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var v uint32
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint32(c-'0')
	}
	return v, true
}
