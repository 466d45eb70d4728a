package landing

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
)

// ErrNoClipboard is returned by New when Options.Clipboard is nil.
var ErrNoClipboard = errors.New("landing: clipboard is required")

// Mode determines what the closed-lightbox page is doing with keys.
type Mode int

const (
	ModeBrowse Mode = iota
	ModePick
	ModeMenu
	ModeHelp
)

// Options configures a Model.
type Options struct {
	Clipboard        ports.Clipboard
	Logger           ports.Logger
	NavigationPolicy gallery.NavigationPolicy
	CopyWindow       time.Duration
	CounterDuration  time.Duration
	// MarkdownStyle is "auto" or a glamour standard style name.
	MarkdownStyle string
	Now           func() time.Time
}

// Model is the landing page. While the lightbox is open the page view is
// replaced by the overlay and every key is routed to the gallery controller.
type Model struct {
	// Core data
	page    *page.Page
	targets []page.CopyTarget

	// Lightbox
	ctrl   *gallery.Controller
	lock   *gallery.CountingScrollLock
	router *gallery.KeyRouter
	policy gallery.NavigationPolicy

	// UI state
	mode       Mode
	pickCursor int
	copyCursor int
	status     string
	statusGen  int
	anchors    map[string]int

	// Components
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	markdown *glamour.TermRenderer

	// Copy feedback
	clipboard ports.Clipboard
	feedback  *page.CopyFeedback

	// Impact counters
	counterDuration time.Duration
	counterStart    time.Time
	counters        []page.Counter
	spring          harmonica.Spring
	shown           []float64
	velocity        []float64
	countersDone    bool
	counterGen      int

	// Dimensions
	width  int
	height int
	ready  bool

	// Configuration
	logger        ports.Logger
	markdownStyle string
	now           func() time.Time
}

// New builds the landing model for p.
func New(p *page.Page, opts Options) (Model, error) {
	if err := p.Validate(); err != nil {
		return Model{}, err
	}
	if opts.Clipboard == nil {
		return Model{}, ErrNoClipboard
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNoOpLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "auto"
	}

	m := Model{
		lock:            gallery.NewCountingScrollLock(),
		router:          gallery.NewKeyRouter(),
		policy:          opts.NavigationPolicy,
		viewport:        viewport.New(0, 0),
		help:            help.New(),
		keys:            defaultKeyMap(),
		clipboard:       opts.Clipboard,
		feedback:        page.NewCopyFeedback(opts.CopyWindow),
		counterDuration: opts.CounterDuration,
		spring:          harmonica.NewSpring(harmonica.FPS(counterFPS), 6.0, 1.0),
		logger:          opts.Logger.With("component", "landing"),
		markdownStyle:   opts.MarkdownStyle,
		now:             opts.Now,
		width:           80,
		height:          24,
	}
	if err := m.setPage(p); err != nil {
		return Model{}, err
	}
	m.resize()
	return m, nil
}

// Init starts the counter animation when the page enables it.
func (m Model) Init() tea.Cmd {
	if m.countersDone {
		return nil
	}
	return counterTickCmd(m.counterGen)
}

// setPage swaps in new content. Any open lightbox is torn down first so the
// scroll lock and key subscription are never leaked across reloads.
func (m *Model) setPage(p *page.Page) error {
	var ctrl *gallery.Controller
	if p.HasGallery() {
		c, err := gallery.NewController(p.Gallery.Catalog, m.lock, m.router,
			gallery.WithNavigationPolicy(m.policy),
			gallery.WithObserver(lightboxObserver(m.logger)),
		)
		if err != nil {
			return err
		}
		ctrl = c
	}

	m.teardown()
	m.page = p
	m.ctrl = ctrl
	m.targets = p.CopyTargets()
	m.copyCursor = 0
	m.pickCursor = 0
	if m.mode == ModePick {
		m.mode = ModeBrowse
	}
	m.feedback = page.NewCopyFeedback(m.feedback.Window())
	m.resetCounters()
	m.refreshContent()
	return nil
}

func lightboxObserver(logger ports.Logger) func(gallery.State) {
	return func(s gallery.State) {
		logger.Debug(context.Background(), "lightbox state changed", "open", s.IsOpen, "index", s.CurrentIndex)
	}
}

// teardown releases everything an open lightbox holds.
func (m *Model) teardown() {
	if m.ctrl != nil {
		m.ctrl.Teardown()
	}
}

func (m *Model) resetCounters() {
	m.counters = make([]page.Counter, 0, len(m.page.Metrics))
	m.shown = make([]float64, len(m.page.Metrics))
	m.velocity = make([]float64, len(m.page.Metrics))
	m.counterStart = m.now()
	m.counterGen++
	m.countersDone = !m.page.Widgets.Counter || len(m.page.Metrics) == 0
	for i, metric := range m.page.Metrics {
		m.counters = append(m.counters, page.NewCounter(metric.Value, m.counterDuration))
		if m.countersDone {
			m.shown[i] = metric.Value
		}
	}
}

// Accessors

// Page returns the page on display.
func (m Model) Page() *page.Page {
	return m.page
}

// Controller returns the gallery controller, or nil when the page has no
// gallery.
func (m Model) Controller() *gallery.Controller {
	return m.ctrl
}

// ScrollEnabled reports whether the page body may scroll.
func (m Model) ScrollEnabled() bool {
	return m.lock.ScrollEnabled()
}

// Mode returns the current page mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// CopyTargets returns the copyable values in cycle order.
func (m Model) CopyTargets() []page.CopyTarget {
	return m.targets
}

// NextCopyTarget returns the target the copy key will use next.
func (m Model) NextCopyTarget() (page.CopyTarget, bool) {
	if len(m.targets) == 0 {
		return page.CopyTarget{}, false
	}
	return m.targets[m.copyCursor], true
}

// Anchor returns the viewport line a section starts on.
func (m Model) Anchor(name string) (int, bool) {
	line, ok := m.anchors[name]
	return line, ok
}

// YOffset returns the viewport scroll position.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}

// CountersDone reports whether every impact counter has settled.
func (m Model) CountersDone() bool {
	return m.countersDone
}

// Teardown closes the lightbox. Hosts call it when the program exits.
func (m Model) Teardown() {
	m.teardown()
}
