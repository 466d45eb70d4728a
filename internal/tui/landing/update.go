package landing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/pkg/diff"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

		renderer, err := newMarkdownRenderer(m.markdownStyle, m.width)
		if err != nil {
			m.logger.Warn(context.Background(), "markdown renderer unavailable", "error", err)
		} else {
			m.markdown = renderer
		}
		m.resize()
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.lightboxOpen() || !m.lock.ScrollEnabled() {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	// Copy feedback
	case CopyResultMsg:
		if msg.Err != nil {
			m.logger.Warn(context.Background(), "clipboard write failed", "target", msg.Target.ID, "error", msg.Err)
			m.setStatus("Copy failed: " + msg.Err.Error())
			return m, clearStatusCmd(m.statusGen)
		}
		token := m.feedback.MarkCopied(msg.Target.ID, m.now())
		m.logger.Debug(context.Background(), "copied to clipboard", "target", msg.Target.ID)
		m.refreshContent()
		return m, copyExpireCmd(m.feedback.Window(), msg.Target.ID, token)

	case CopyExpiredMsg:
		if m.feedback.Expire(msg.TargetID, msg.Token) {
			m.refreshContent()
		}
		return m, nil

	// Impact counters
	case CounterTickMsg:
		if m.countersDone || msg.Gen != m.counterGen {
			return m, nil
		}
		m.stepCounters(msg.At)
		m.refreshContent()
		if m.countersDone {
			return m, nil
		}
		return m, counterTickCmd(m.counterGen)

	// Content reload
	case ContentReloadedMsg:
		if msg.Err != nil {
			m.logger.Warn(context.Background(), "content reload rejected", "error", msg.Err)
			m.setStatus("Reload failed: " + msg.Err.Error())
			return m, clearStatusCmd(m.statusGen)
		}
		if err := msg.Page.Validate(); err != nil {
			m.setStatus("Reload failed: " + err.Error())
			return m, clearStatusCmd(m.statusGen)
		}
		stats := m.reloadStats(msg.Page)
		if err := m.setPage(msg.Page); err != nil {
			m.setStatus("Reload failed: " + err.Error())
			return m, clearStatusCmd(m.statusGen)
		}
		m.logger.Info(context.Background(), "content reloaded", "gallery", m.ctrl != nil, "changes", stats.String())
		if !stats.Changed() {
			m.setStatus("Content reloaded, no visible changes")
		} else {
			m.setStatus(fmt.Sprintf("Content reloaded (%s lines)", stats))
		}
		return m, tea.Batch(m.Init(), clearStatusCmd(m.statusGen))

	case ClearStatusMsg:
		if msg.Gen == m.statusGen {
			m.setStatus("")
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the open lightbox or the current mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.lightboxOpen() {
		m.router.Dispatch(gallery.Key(msg.String()))
		if !m.ctrl.IsOpen() {
			m.pickCursor = m.ctrl.State().CurrentIndex
		}
		return m, nil
	}

	switch m.mode {
	case ModePick:
		return m.handlePickKeys(msg)
	case ModeMenu:
		return m.handleMenuKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// handleBrowseKeys handles keys while reading the page
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.setMode(ModeHelp)
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.setMode(ModeMenu)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyNext()

	case key.Matches(msg, m.keys.Gallery):
		if m.ctrl == nil {
			return m, nil
		}
		m.pickCursor = m.ctrl.State().CurrentIndex
		m.setMode(ModePick)
		m.scrollTo(AnchorGallery)
		return m, nil

	case key.Matches(msg, m.keys.Thumb):
		m.openThumb(msg)
		return m, nil
	}

	if !m.lock.ScrollEnabled() {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handlePickKeys handles thumbnail selection
func (m Model) handlePickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.ctrl.Len()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Left):
		m.pickCursor = (m.pickCursor - 1 + n) % n
		m.refreshContent()

	case key.Matches(msg, m.keys.Right):
		m.pickCursor = (m.pickCursor + 1) % n
		m.refreshContent()

	case key.Matches(msg, m.keys.Enter):
		m.openLightbox(m.pickCursor)

	case key.Matches(msg, m.keys.Thumb):
		m.openThumb(msg)

	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Gallery):
		m.setMode(ModeBrowse)
	}
	return m, nil
}

// handleMenuKeys handles the contact menu
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Donate):
		m.setMode(ModeBrowse)
		m.scrollTo(AnchorDonations)

	case key.Matches(msg, m.keys.Copy):
		for i, t := range m.targets {
			if t.ID == page.OrgPhoneTargetID {
				m.setMode(ModeBrowse)
				return m, copyCmd(m.clipboard, m.targets[i])
			}
		}

	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Menu):
		m.setMode(ModeBrowse)
	}
	return m, nil
}

// handleHelpKeys handles the help overlay
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Esc):
		m.help.ShowAll = false
		m.setMode(ModeBrowse)
	}
	return m, nil
}

// Helper Methods

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.teardown()
	return m, tea.Quit
}

func (m Model) lightboxOpen() bool {
	return m.ctrl != nil && m.ctrl.IsOpen()
}

func (m *Model) openThumb(msg tea.KeyMsg) {
	if m.ctrl == nil || len(msg.Runes) != 1 {
		return
	}
	m.openLightbox(int(msg.Runes[0] - '1'))
}

func (m *Model) openLightbox(index int) {
	m.ctrl.Open(index)
	m.pickCursor = m.ctrl.State().CurrentIndex
	m.setMode(ModeBrowse)
}

func (m Model) copyNext() (tea.Model, tea.Cmd) {
	if len(m.targets) == 0 {
		m.setStatus("Nothing to copy on this page")
		return m, clearStatusCmd(m.statusGen)
	}
	target := m.targets[m.copyCursor]
	m.copyCursor = (m.copyCursor + 1) % len(m.targets)
	return m, copyCmd(m.clipboard, target)
}

func (m *Model) scrollTo(anchor string) {
	if !m.lock.ScrollEnabled() {
		return
	}
	if line, ok := m.anchors[anchor]; ok {
		m.viewport.SetYOffset(line)
	}
}

func (m *Model) setMode(mode Mode) {
	m.mode = mode
	m.resize()
	m.refreshContent()
}

func (m *Model) setStatus(status string) {
	m.statusGen++
	m.status = status
	m.resize()
}

func (m *Model) stepCounters(at time.Time) {
	elapsed := at.Sub(m.counterStart)
	settled := true
	for i, c := range m.counters {
		target := c.Value(elapsed)
		m.shown[i], m.velocity[i] = m.spring.Update(m.shown[i], m.velocity[i], target)
		if c.Done(elapsed) && math.Abs(m.shown[i]-c.Target) < settleEpsilon(c.Target) {
			m.shown[i] = c.Target
			m.velocity[i] = 0
			continue
		}
		settled = false
	}
	m.countersDone = settled
}

func settleEpsilon(target float64) float64 {
	return math.Max(0.05, math.Abs(target)*0.001)
}

func (m *Model) metricText(i int) string {
	metric := m.page.Metrics[i]
	if m.countersDone {
		return page.FormatMetric(metric.Value, metric.Suffix)
	}
	return m.counters[i].Format(m.shown[i], metric.Suffix)
}

func (m *Model) copyButton(targetID string) string {
	label := m.feedback.Label(targetID, "Copy", m.now())
	if label == page.CopiedLabel {
		return copiedButtonStyle.Render("[" + label + "]")
	}
	if next, ok := m.NextCopyTarget(); ok && next.ID == targetID {
		label = "c: " + label
	}
	return copyButtonStyle.Render("[" + label + "]")
}

// resize fits the viewport between the header and footer.
func (m *Model) resize() {
	h := m.height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderFooter())
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// refreshContent re-lays the page into the viewport.
func (m *Model) refreshContent() {
	selected := -1
	if m.mode == ModePick {
		selected = m.pickCursor
	}
	body := bodyRenderer{
		page:       m.page,
		width:      m.width,
		markdown:   m.markdown,
		copyButton: m.copyButton,
		metricText: m.metricText,
		selected:   selected,
	}.render()
	m.anchors = body.anchors
	m.viewport.SetContent(body.content)
}

// reloadStats compares the plain renderings of the current and incoming page.
func (m Model) reloadStats(next *page.Page) diff.Stats {
	width := m.width
	if width <= 0 {
		width = 80
	}
	before, err := Render(m.page, width)
	if err != nil {
		return diff.Stats{}
	}
	after, err := Render(next, width)
	if err != nil {
		return diff.Stats{}
	}
	return diff.Count(before, after)
}
