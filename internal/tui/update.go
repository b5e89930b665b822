package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/tipsplit/internal/boundary"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/render"
	"github.com/mmynk/tipsplit/internal/state"
)

// errMsg carries the failure of a background command.
type errMsg struct{ err error }

// pagesMsg carries static pages rendered ahead of time for width.
type pagesMsg struct {
	width int
	pages map[models.View]string
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.page.Width = msg.Width
		m.page.Height = m.pageHeight()
		m.help.Width = msg.Width
		return m, m.prerender(msg.Width)

	case pagesMsg:
		if msg.width == m.pageWidth {
			for v, out := range msg.pages {
				m.rendered[v] = out
			}
		}
		return m, nil

	case errMsg:
		m.reporter.Rejection(msg.err)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.boundary.Tripped() {
			if key.Matches(msg, m.keys.Reload) {
				m.logger.Info("Reloading after fault", "session", m.sessionID)
				m.reset()
				return m, tea.Batch(textinput.Blink, m.prerender(m.width))
			}
			return m, nil
		}
		if m.router.Current() == models.ViewCalculator {
			return m.updateCalculator(msg)
		}
		return m.updatePage(msg)
	}

	return m.updateInputs(msg)
}

func (m *Model) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Terms):
		m.router.Navigate(models.ViewTerms)
		return m, nil
	case key.Matches(msg, m.keys.Privacy):
		m.router.Navigate(models.ViewPrivacy)
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	}

	switch m.focus {
	case focusTip:
		return m, m.updateTipRow(msg)
	case focusPeople:
		switch {
		case key.Matches(msg, m.keys.Inc):
			m.dispatch(state.IncrementPeople{})
		case key.Matches(msg, m.keys.Dec):
			m.dispatch(state.DecrementPeople{})
		}
		return m, nil
	}

	if !amountKey(msg) {
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m *Model) updateTipRow(msg tea.KeyMsg) tea.Cmd {
	options := len(models.TipPresets()) + 1
	switch {
	case key.Matches(msg, m.keys.Left):
		m.tipCursor = (m.tipCursor + options - 1) % options
	case key.Matches(msg, m.keys.Right):
		m.tipCursor = (m.tipCursor + 1) % options
	case key.Matches(msg, m.keys.Select):
		return m.selectTip(m.tipCursor)
	case key.Matches(msg, m.keys.Custom):
		return m.selectTip(len(models.TipPresets()))
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if i := int(msg.Runes[0] - '1'); i >= 0 && i < len(models.TipPresets()) {
			return m.selectTip(i)
		}
	}
	return nil
}

// selectTip activates option i: a preset, or the custom field when i is
// past the presets. Choosing custom moves focus to its field.
func (m *Model) selectTip(i int) tea.Cmd {
	m.tipCursor = i
	if i < len(models.TipPresets()) {
		m.dispatch(state.SelectPreset{Percent: models.TipPresets()[i]})
		return nil
	}
	m.dispatch(state.SelectCustom{})
	return m.setFocus(focusCustom)
}

func (m *Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.router.Navigate(models.ViewCalculator)
		return m, nil
	case key.Matches(msg, m.keys.Terms):
		m.router.Navigate(models.ViewTerms)
		return m, nil
	case key.Matches(msg, m.keys.Privacy):
		m.router.Navigate(models.ViewPrivacy)
		return m, nil
	}
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// updateInputs forwards msg to the focused text field and dispatches any
// resulting edit to the store.
func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusBill:
		m.bill, cmd = m.bill.Update(msg)
		if v := m.bill.Value(); v != m.store.Input().BillText {
			m.dispatch(state.SetBill{Text: v})
		}
	case focusCustom:
		m.custom, cmd = m.custom.Update(msg)
		if v := m.custom.Value(); v != m.store.Input().Tip.CustomText {
			m.dispatch(state.SetCustomTip{Text: v})
		}
	}
	return m, cmd
}

func (m *Model) dispatch(a state.Action) {
	if err := m.store.Dispatch(a); err != nil {
		m.logger.Warn("Action rejected", "session", m.sessionID, "error", err)
	}
}

// focusOrder lists the focusable fields; the custom field only exists
// while custom mode is active.
func (m *Model) focusOrder() []focus {
	if m.store.Input().Tip.Mode == models.TipCustom {
		return []focus{focusBill, focusTip, focusCustom, focusPeople}
	}
	return []focus{focusBill, focusTip, focusPeople}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return m.setFocus(order[idx])
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.bill.Blur()
	m.custom.Blur()
	switch f {
	case focusBill:
		return m.bill.Focus()
	case focusCustom:
		return m.custom.Focus()
	case focusTip:
		m.tipCursor = m.activeTipIndex()
	}
	return nil
}

// amountKey reports whether msg may reach an amount field: editing and
// cursor keys, and typed text made only of digits and '.'.
func amountKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// prerender renders the static pages for width in the background.
func (m *Model) prerender(width int) tea.Cmd {
	m.pageWidth = width
	m.rendered = map[models.View]string{}
	markdown := m.markdown
	return guard(func() (tea.Msg, error) {
		pages := map[models.View]string{}
		for _, v := range []models.View{models.ViewTerms, models.ViewPrivacy} {
			p, _ := render.StaticPage(v)
			out, err := markdown(p.Markdown, width)
			if err != nil {
				return nil, err
			}
			pages[v] = out
		}
		return pagesMsg{width: width, pages: pages}, nil
	})
}

// guard turns fn into a command whose error or panic is delivered as an
// errMsg instead of crashing the program.
func guard(fn func() (tea.Msg, error)) tea.Cmd {
	return func() tea.Msg {
		var msg tea.Msg
		err := boundary.Guard(func() error {
			var err error
			msg, err = fn()
			return err
		})
		if err != nil {
			return errMsg{err: err}
		}
		return msg
	}
}
