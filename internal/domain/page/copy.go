package page

import (
	"fmt"
	"time"
)

// CopyRevertAfter is how long a copy button shows its confirmation.
const CopyRevertAfter = 2 * time.Second

// CopiedLabel replaces a copy button's label while confirmation is shown.
const CopiedLabel = "Copied!"

// CopyTarget is a copyable value on the page.
type CopyTarget struct {
	ID    string
	Label string
	Value string
}

// CopyFeedback tracks copy confirmations per target. Each MarkCopied issues a
// token; only the matching Expire clears the confirmation, so a stale timer
// never hides a newer copy.
type CopyFeedback struct {
	window  time.Duration
	seq     uint64
	entries map[string]copyEntry
}

type copyEntry struct {
	token uint64
	at    time.Time
}

// NewCopyFeedback creates a tracker with the given revert window. A
// non-positive window falls back to CopyRevertAfter.
func NewCopyFeedback(window time.Duration) *CopyFeedback {
	if window <= 0 {
		window = CopyRevertAfter
	}
	return &CopyFeedback{window: window, entries: make(map[string]copyEntry)}
}

// Window returns the revert duration.
func (f *CopyFeedback) Window() time.Duration {
	return f.window
}

// MarkCopied records a successful copy and returns the token the revert timer
// must present.
func (f *CopyFeedback) MarkCopied(target string, now time.Time) uint64 {
	f.seq++
	f.entries[target] = copyEntry{token: f.seq, at: now}
	return f.seq
}

// Expire clears the confirmation for target if token is still current.
func (f *CopyFeedback) Expire(target string, token uint64) bool {
	entry, ok := f.entries[target]
	if !ok || entry.token != token {
		return false
	}
	delete(f.entries, target)
	return true
}

// Copied reports whether target is within its confirmation window.
func (f *CopyFeedback) Copied(target string, now time.Time) bool {
	entry, ok := f.entries[target]
	if !ok {
		return false
	}
	return now.Sub(entry.at) < f.window
}

// Label returns CopiedLabel while confirmed and fallback otherwise. An empty
// fallback reads "Copy".
func (f *CopyFeedback) Label(target, fallback string, now time.Time) string {
	if f.Copied(target, now) {
		return CopiedLabel
	}
	if fallback == "" {
		return "Copy"
	}
	return fallback
}

// Copy target IDs for the organisation contact values.
const (
	OrgAddressTargetID = "org.address"
	OrgPhoneTargetID   = "org.phone"
)

// StepTargetID is the copy target ID of a courier step.
func StepTargetID(step int) string {
	return fmt.Sprintf("courier.steps[%d]", step)
}

// AccountTargetID is the copy target ID of a bank account field.
func AccountTargetID(option, account, field int) string {
	return fmt.Sprintf("finance[%d].accounts[%d].fields[%d]", option, account, field)
}
