package vte

// Mode is an ANSI mode number set by CSI h / reset by CSI l.
type Mode uint16

// PrivateMode is a DEC private mode number set by CSI ? h / reset by CSI ? l.
type PrivateMode uint16

// SyncUpdate (DEC private mode 2026) is the one private mode with
// built-in, required semantics: the dispatcher intercepts it to arm or
// disarm the synchronized-update window (spec.md §4.3).
const SyncUpdate PrivateMode = 2026
