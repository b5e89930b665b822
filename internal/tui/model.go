// Package tui is the terminal host of the calculator: a single Bubble Tea
// event loop that owns one session's state.
package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/mmynk/tipsplit/internal/boundary"
	"github.com/mmynk/tipsplit/internal/diag"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/router"
	"github.com/mmynk/tipsplit/internal/state"
)

// MarkdownFunc renders a markdown document for a terminal of the given width.
type MarkdownFunc func(markdown string, width int) (string, error)

// Options configures a Model. Zero values select the defaults.
type Options struct {
	// Logger receives session events. Defaults to a discarding logger.
	Logger *slog.Logger
	// Reporter receives rendering faults and background failures.
	// Defaults to a diag.LogReporter on Logger.
	Reporter diag.Reporter
	// Markdown renders the static pages. Defaults to glamour.
	Markdown MarkdownFunc
	// Fragment is the initial location, e.g. "#privacy".
	Fragment string
}

type focus int

const (
	focusBill focus = iota
	focusTip
	focusCustom
	focusPeople
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	inputLimit    = 12
)

// Model is the Bubble Tea model of one session.
type Model struct {
	opts     Options
	logger   *slog.Logger
	reporter diag.Reporter
	markdown MarkdownFunc
	keys     keyMap
	styles   Styles
	help     help.Model

	sessionID string
	store     *state.Store
	loc       *router.MemoryLocation
	router    *router.Router
	boundary  *boundary.Boundary

	bill      textinput.Model
	custom    textinput.Model
	page      viewport.Model
	focus     focus
	tipCursor int

	// rendered caches static pages per view at pageWidth.
	rendered  map[models.View]string
	pageWidth int

	width  int
	height int
}

// New returns a Model for a fresh session.
func New(opts Options) *Model {
	m := &Model{
		opts:   opts,
		logger: opts.Logger,
		keys:   defaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.reporter = opts.Reporter
	if m.reporter == nil {
		m.reporter = diag.NewLogReporter(m.logger)
	}
	m.markdown = opts.Markdown
	if m.markdown == nil {
		m.markdown = glamourMarkdown
	}
	m.reset()
	return m
}

// reset starts a new session: fresh state, location, router and boundary.
// Only the terminal size survives, the way a page reload keeps the window.
func (m *Model) reset() {
	m.sessionID = uuid.NewString()
	m.store = state.NewStore()
	m.loc = router.NewMemoryLocation(m.opts.Fragment)
	m.router = router.New(m.loc)
	m.boundary = boundary.New(m.reporter, m.recoveryView)

	m.bill = newAmountInput("0.00", "$ ")
	m.custom = newAmountInput("Enter %", "% ")
	m.page = viewport.New(m.width, m.pageHeight())
	m.rendered = map[models.View]string{}
	m.pageWidth = m.width
	m.focus = focusBill
	m.tipCursor = m.activeTipIndex()
	m.bill.Focus()

	m.loc.OnScrollTop(func() { m.page.GotoTop() })
	m.router.OnChange(func(v models.View) {
		m.logger.Debug("View changed", "session", m.sessionID, "view", v.String())
	})
	m.logger.Info("Session started", "session", m.sessionID, "view", m.router.Current().String())
}

func newAmountInput(placeholder, prompt string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = prompt
	ti.CharLimit = inputLimit
	ti.Width = inputLimit + 1
	return ti
}

func glamourMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Store returns the session's state store.
func (m *Model) Store() *state.Store { return m.store }

// Current returns the active top-level view.
func (m *Model) Current() models.View { return m.router.Current() }

// Tripped reports whether the error boundary has caught a fault.
func (m *Model) Tripped() bool { return m.boundary.Tripped() }

// SessionID identifies the current session in logs. It changes on reload.
func (m *Model) SessionID() string { return m.sessionID }

func (m *Model) pageHeight() int {
	// Title, blank line and help line.
	return max(3, m.height-3)
}

// activeTipIndex returns the option index of the tip in effect.
func (m *Model) activeTipIndex() int {
	sel := m.store.Input().Tip
	if sel.Mode == models.TipCustom {
		return len(models.TipPresets())
	}
	for i, p := range models.TipPresets() {
		if p == sel.Preset {
			return i
		}
	}
	return 0
}
