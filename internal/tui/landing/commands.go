package landing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
)

const (
	counterFPS   = 60
	counterFrame = time.Second / counterFPS
	statusTTL    = 5 * time.Second
)

// copyCmd writes the target value to the clipboard.
func copyCmd(cb ports.Clipboard, target page.CopyTarget) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{Target: target, Err: cb.WriteAll(target.Value)}
	}
}

// copyExpireCmd schedules the revert of a copy button.
func copyExpireCmd(window time.Duration, targetID string, token uint64) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return CopyExpiredMsg{TargetID: targetID, Token: token}
	})
}

// counterTickCmd schedules the next counter frame.
func counterTickCmd(gen int) tea.Cmd {
	return tea.Tick(counterFrame, func(t time.Time) tea.Msg {
		return CounterTickMsg{At: t, Gen: gen}
	})
}

// clearStatusCmd dismisses the status set at generation gen after statusTTL.
func clearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}
