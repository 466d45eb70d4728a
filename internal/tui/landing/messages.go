package landing

import (
	"time"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
)

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	Target page.CopyTarget
	Err    error
}

// CopyExpiredMsg asks the model to revert a copy button. Token must match the
// copy it was scheduled for.
type CopyExpiredMsg struct {
	TargetID string
	Token    uint64
}

// CounterTickMsg advances the impact counters. Ticks from an animation that
// was restarted by a reload carry a stale Gen and are dropped.
type CounterTickMsg struct {
	At  time.Time
	Gen int
}

// ContentReloadedMsg carries freshly loaded page content. On Err the current
// page stays in place.
type ContentReloadedMsg struct {
	Page *page.Page
	Err  error
}

// ClearStatusMsg dismisses the status line if no newer status replaced it.
type ClearStatusMsg struct {
	Gen int
}
