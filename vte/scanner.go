package vte

import (
	"bytes"
	"unicode/utf8"
)

// scanGround consumes the largest prefix of data containing no ESC byte
// while in the Ground state, decoding it as UTF-8 and emitting each
// character through h.Input (or the C0/C1 translation for control
// characters). It returns the number of bytes consumed; the first
// unconsumed byte, if any, is ESC.
//
// This is the Scanner of spec.md §4.1, combined with the UTF-8 reassembly
// of §4.4: a partial codepoint left over from a previous call is topped up
// here before any fresh bytes are scanned.
func (p *Parser) scanGround(h Handler, data []byte) int {
	consumed := 0

	if p.partial.active() {
		r, incomplete, n := p.partial.feed(data)
		consumed += n
		data = data[n:]
		if incomplete {
			return consumed
		}
		p.emitGround(h, r)
	}

	for len(data) > 0 {
		end := bytes.IndexByte(data, 0x1B)
		run := data
		if end >= 0 {
			run = data[:end]
		}
		n := p.decodeGroundRun(h, run)
		consumed += n
		if n < len(run) {
			// decodeGroundRun counts a stashed partial codepoint as
			// consumed, so a short count does not occur; stop if it does.
			return consumed
		}
		data = data[n:]
		if end >= 0 {
			return consumed
		}
	}
	return consumed
}

// decodeGroundRun decodes an ESC-free run of bytes, emitting characters
// through h. If the run ends mid-codepoint, the trailing bytes are stashed
// in p.partial and counted as consumed.
func (p *Parser) decodeGroundRun(h Handler, run []byte) int {
	consumed := 0
	for len(run) > 0 {
		b := run[0]
		if b < 0x80 {
			p.emitGround(h, rune(b))
			run = run[1:]
			consumed++
			continue
		}

		need := leadingByteLength(b)
		if need == 0 {
			// Invalid lead byte: per spec.md §4.1, a one-byte error on a
			// byte <= 0x9F is routed through execute (it's a C1 control
			// standing alone), otherwise emit U+FFFD.
			if b <= 0x9F {
				execC0(h, b)
			} else {
				h.Input(utf8.RuneError)
			}
			run = run[1:]
			consumed++
			continue
		}
		if len(run) < need {
			p.partial.begin(b)
			for i := 1; i < len(run); i++ {
				p.partial.buf[i] = run[i]
			}
			p.partial.len = len(run)
			consumed += len(run)
			return consumed
		}
		r, size := utf8.DecodeRune(run[:need])
		if r == utf8.RuneError && size <= 1 {
			h.Input(utf8.RuneError)
			run = run[1:]
			consumed++
			continue
		}
		p.emitGround(h, r)
		run = run[need:]
		consumed += need
	}
	return consumed
}

func (p *Parser) emitGround(h Handler, r rune) {
	if r < 0x20 || (r >= 0x80 && r <= 0x9F) {
		execC0(h, byte(r))
		return
	}
	p.precedingChar = r
	h.Input(r)
}
