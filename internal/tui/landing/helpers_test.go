package landing

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/clipboard"
)

var testStart = time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)

func testCatalog(n int) gallery.Catalog {
	items := make([]gallery.ImageItem, n)
	for i := range items {
		items[i] = gallery.ImageItem{
			Source:  fmt.Sprintf("/images/csr/csr-%d.jpg", i+1),
			AltText: fmt.Sprintf("Mission photo %d", i+1),
		}
	}
	return gallery.MustCatalog(items...)
}

func testPage() *page.Page {
	p := &page.Page{
		Title:   "Relief",
		Urgency: "RIVER LEVELS CRITICAL",
		Org: page.Organisation{
			Name:    "W.I.S Accountancy",
			Phone:   "076 880 2085",
			Address: "Bernards Business Park, Colombo 06",
		},
		Hero: page.Hero{Headline: "Cyclone Ditwah Has Left Sri Lanka", Body: "Families need **dry clothes**."},
		Metrics: []page.Metric{
			{Label: "Displaced Persons", Value: 108000, Suffix: "+"},
			{Label: "River Level", Value: 8.6, Suffix: "m"},
		},
		Donations: []page.DonationOption{
			{Title: "Drop-Off Point", Anchor: "location"},
			{Title: "Send via Uber Eats", Anchor: "courier"},
			{Title: "Financial Aid", Anchor: "finance"},
		},
		Courier: page.Courier{
			Title: "Remote Donation",
			Steps: []page.CourierStep{{Title: "Enter Destination", Copy: "Bernards Business Park"}},
		},
		Gallery: &page.GallerySection{Title: "A Legacy of Care", Catalog: testCatalog(7)},
	}
	for i := 0; i < 12; i++ {
		p.FAQ = append(p.FAQ, page.FAQEntry{
			Question: fmt.Sprintf("Question %d?", i+1),
			Answer:   "We confirm receipt of goods at our office.",
		})
	}
	return p
}

func newTestModel(t *testing.T, p *page.Page, opts Options) (Model, *clipboard.Memory) {
	t.Helper()
	mem := clipboard.NewMemory()
	if opts.Clipboard == nil {
		opts.Clipboard = mem
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "notty"
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return testStart }
	}
	m, err := New(p, opts)
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return updated.(Model), mem
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func newMemoryClipboard() *clipboard.Memory {
	return clipboard.NewMemory()
}
