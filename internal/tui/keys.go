package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Custom    key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Terms     key.Binding
	Privacy   key.Binding
	Back      key.Binding
	Reload    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		Left:      key.NewBinding(key.WithKeys("left", "h")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Custom:    key.NewBinding(key.WithKeys("c")),
		Inc:       key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+/-", "people")),
		Dec:       key.NewBinding(key.WithKeys("-", "_", "left")),
		Terms:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "terms")),
		Privacy:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "privacy")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// calculatorHelp lists the bindings shown under the calculator.
type calculatorHelp struct{ k keyMap }

func (h calculatorHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Next, h.k.Select, h.k.Inc, h.k.Terms, h.k.Privacy, h.k.Quit}
}

func (h calculatorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// pageHelp lists the bindings shown under a static page.
type pageHelp struct{ k keyMap }

func (h pageHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Back, h.k.Terms, h.k.Privacy}
}

func (h pageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
