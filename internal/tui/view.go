package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/render"
	"github.com/mmynk/tipsplit/internal/state"
)

// View implements tea.Model. The whole tree renders inside the error
// boundary.
func (m *Model) View() string {
	return m.boundary.Render(m.render)
}

func (m *Model) render() string {
	if v := m.router.Current(); v != models.ViewCalculator {
		return m.viewPage(v)
	}
	return m.viewCalculator()
}

func (m *Model) viewCalculator() string {
	in := m.store.Input()
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Logo.Render("TS") + " " + s.Title.Render(render.AppName) + "\n")
	b.WriteString(s.Tagline.Render(render.Tagline) + "\n\n")

	b.WriteString(m.label("Bill Amount", focusBill) + "\n")
	b.WriteString(m.bill.View() + "\n\n")

	b.WriteString(m.label("Tip Percentage", focusTip) + "\n")
	b.WriteString(m.viewTipRow(in.Tip) + "\n")
	if in.Tip.Mode == models.TipCustom {
		b.WriteString(m.custom.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.label("Number of People", focusPeople) + "\n")
	b.WriteString(m.viewStepper(in.People) + "\n\n")

	b.WriteString(m.viewResults(render.Results(in.People, state.Totals(in))) + "\n\n")

	b.WriteString(s.Footer.Render(render.Footer) + "\n")
	b.WriteString(s.Link.Render("Terms") + "  " + s.Link.Render("Privacy") + "\n")
	b.WriteString(m.help.View(calculatorHelp{m.keys}))
	return b.String()
}

func (m *Model) label(text string, f focus) string {
	if m.focus == f {
		return m.styles.FocusLabel.Render("› " + text)
	}
	return m.styles.Label.Render("  " + text)
}

func (m *Model) viewTipRow(sel models.TipSelection) string {
	opts := render.TipOptions(sel)
	cells := make([]string, len(opts))
	for i, o := range opts {
		label := o.Label
		if m.focus == focusTip && i == m.tipCursor {
			label = m.styles.Cursor.Render(label)
		}
		if o.Active {
			cells[i] = m.styles.Active.Render(label)
		} else {
			cells[i] = m.styles.Option.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (m *Model) viewStepper(people int) string {
	dec := m.styles.Stepper.Render("−")
	if people <= models.MinPeople {
		dec = m.styles.Disabled.Render("−")
	}
	count := m.styles.Count.Render(strconv.Itoa(people))
	return lipgloss.JoinHorizontal(lipgloss.Center, dec, count, m.styles.Stepper.Render("+"))
}

func (m *Model) viewResults(p render.ResultsPanel) string {
	line := func(l render.ResultLine, figure lipgloss.Style) string {
		left := m.styles.CardLabel.Render(l.Label)
		if l.SubLabel != "" {
			left += "\n" + m.styles.CardSub.Render(l.SubLabel)
		}
		right := figure.Render(l.Primary)
		if l.Secondary != "" {
			right += "\n" + m.styles.CardSub.Render(l.Secondary)
		}
		right = lipgloss.NewStyle().Align(lipgloss.Right).Render(right)
		gap := max(1, 38-lipgloss.Width(left)-lipgloss.Width(right))
		return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	}

	body := line(p.Tip, m.styles.Figure) + "\n" +
		m.styles.CardSub.Render(strings.Repeat("─", 38)) + "\n" +
		line(p.Total, m.styles.BigFigure)
	return m.styles.Card.Render(body)
}

func (m *Model) viewPage(v models.View) string {
	p, _ := render.StaticPage(v)
	m.page.SetContent(m.pageContent(v, p))

	return m.styles.PageTitle.Render("← "+render.BackText) + "\n\n" +
		m.page.View() + "\n" +
		m.help.View(pageHelp{m.keys})
}

// pageContent returns the rendered markdown of p, rendering it now when no
// background render has arrived yet. A renderer error degrades to the raw
// markdown; a renderer panic trips the boundary.
func (m *Model) pageContent(v models.View, p render.Page) string {
	if out, ok := m.rendered[v]; ok {
		return out
	}
	out, err := m.markdown(p.Markdown, m.pageWidth)
	if err != nil {
		m.logger.Warn("Markdown render failed", "session", m.sessionID, "view", v.String(), "error", err)
		return p.Markdown
	}
	m.rendered[v] = out
	return out
}

// recoveryView is the boundary's fallback. It must not depend on any
// session state.
func (m *Model) recoveryView() string {
	s := m.styles
	box := lipgloss.JoinVertical(lipgloss.Center,
		s.ErrorBadge.Render("!"),
		"",
		s.ErrorTitle.Render(render.RecoveryTitle),
		s.ErrorHint.Render(render.RecoveryHint),
		"",
		s.Button.Render("[r] "+render.RecoveryAction),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
