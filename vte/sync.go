package vte

import (
	"bytes"
	"time"
)

const (
	defaultSyncTimeout  = 150 * time.Millisecond
	defaultSyncCapacity = 2 * 1024 * 1024
)

var (
	syncBegin = []byte("\x1b[?2026h")
	syncEnd   = []byte("\x1b[?2026l")
)

// syncWindow implements the synchronized-update (BSU/ESU, DEC private mode
// 2026) buffering of spec.md §4.3: while armed, bytes are appended here
// instead of being fed to the parser; the tail is inspected for the begin
// sequence (re-arm/extend) or the end sequence (flush). Deadline-based, no
// background goroutine: the outer loop polls via Parser.SyncTimeout.
type syncWindow struct {
	buf      []byte
	deadline time.Time
	timeout  time.Duration
	capacity int
}

func (s *syncWindow) armed() bool { return !s.deadline.IsZero() }

func (s *syncWindow) len() int { return len(s.buf) }

func (s *syncWindow) expired() bool {
	return s.armed() && !s.deadline.IsZero() && timeNow().After(s.deadline)
}

// timeNow is a var so tests can freeze time deterministically without the
// parser ever calling time.Now() more than this one seam.
var timeNow = time.Now

func (s *syncWindow) arm() {
	s.deadline = timeNow().Add(s.timeout)
}

// feed appends len(data) or fewer bytes (until a terminator/overflow
// decision is made) to the sync buffer and returns the number consumed.
func (s *syncWindow) feed(p *Parser, h Handler, data []byte) int {
	n := 0
	for n < len(data) {
		s.buf = append(s.buf, data[n])
		n++

		if bytes.HasSuffix(s.buf, syncEnd) {
			// The buffered bytes already end with the CSI sequence that
			// unsets SyncUpdate; replaying them fires that notification
			// through the normal dispatch path, so don't fire it twice.
			s.replay(p, h)
			return n
		}
		if bytes.HasSuffix(s.buf, syncBegin) {
			s.arm()
			continue
		}
		if len(s.buf) >= s.capacity-1 {
			s.flush(p, h)
			return n
		}
	}
	return n
}

// replay feeds the buffered bytes back through the parser with the window
// closed, so replay cannot recurse into sync buffering.
func (s *syncWindow) replay(p *Parser, h Handler) {
	replay := s.buf
	s.buf = nil
	s.deadline = time.Time{}
	p.Advance(h, replay)
}

// flush is replay plus an explicit UnsetPrivateMode notification, for the
// two cases where the buffered bytes don't themselves end with the CSI
// sequence that would otherwise deliver it: capacity overflow and an
// outer-loop-forced stop.
func (s *syncWindow) flush(p *Parser, h Handler) {
	s.replay(p, h)
	h.UnsetPrivateMode(SyncUpdate)
}

// stop force-closes an armed window from the outside (e.g. the outer loop
// observed SyncTimeout() == true).
func (s *syncWindow) stop(p *Parser, h Handler) {
	if !s.armed() {
		return
	}
	s.flush(p, h)
}
