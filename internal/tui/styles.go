package tui

import "github.com/charmbracelet/lipgloss"

// Brand palette.
var (
	Brand      = lipgloss.Color("#10B981")
	BrandLight = lipgloss.Color("#6EE7B7")
	Surface    = lipgloss.Color("#1F2937")
	SurfaceDim = lipgloss.Color("#9CA3AF")
	Border     = lipgloss.Color("#D1D5DB")
	Danger     = lipgloss.Color("#EF4444")
	White      = lipgloss.Color("#FFFFFF")
)

// Styles holds every style the terminal host draws with.
type Styles struct {
	Logo       lipgloss.Style
	Title      lipgloss.Style
	Tagline    lipgloss.Style
	Label      lipgloss.Style
	FocusLabel lipgloss.Style
	Option     lipgloss.Style
	Active     lipgloss.Style
	Cursor     lipgloss.Style
	Stepper    lipgloss.Style
	Disabled   lipgloss.Style
	Count      lipgloss.Style
	Card       lipgloss.Style
	CardLabel  lipgloss.Style
	CardSub    lipgloss.Style
	Figure     lipgloss.Style
	BigFigure  lipgloss.Style
	Footer     lipgloss.Style
	Link       lipgloss.Style
	PageTitle  lipgloss.Style
	ErrorBadge lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorHint  lipgloss.Style
	Button     lipgloss.Style
}

// DefaultStyles returns the TipSplit look.
func DefaultStyles() Styles {
	return Styles{
		Logo:       lipgloss.NewStyle().Bold(true).Foreground(White).Background(Brand).Padding(0, 1),
		Title:      lipgloss.NewStyle().Bold(true),
		Tagline:    lipgloss.NewStyle().Foreground(SurfaceDim),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(SurfaceDim),
		FocusLabel: lipgloss.NewStyle().Bold(true).Foreground(Brand),
		Option:     lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(Border),
		Active:     lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(Brand).Bold(true).Foreground(Brand),
		Cursor:     lipgloss.NewStyle().Underline(true),
		Stepper:    lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(Border),
		Disabled:   lipgloss.NewStyle().Faint(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(Border),
		Count:      lipgloss.NewStyle().Bold(true).Width(8).Align(lipgloss.Center),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Surface).Padding(1, 2).Width(44),
		CardLabel:  lipgloss.NewStyle().Foreground(BrandLight),
		CardSub:    lipgloss.NewStyle().Foreground(SurfaceDim),
		Figure:     lipgloss.NewStyle().Bold(true),
		BigFigure:  lipgloss.NewStyle().Bold(true).Foreground(Brand),
		Footer:     lipgloss.NewStyle().Foreground(SurfaceDim),
		Link:       lipgloss.NewStyle().Foreground(Brand).Underline(true),
		PageTitle:  lipgloss.NewStyle().Bold(true).Foreground(Brand),
		ErrorBadge: lipgloss.NewStyle().Bold(true).Foreground(White).Background(Danger).Padding(0, 1),
		ErrorTitle: lipgloss.NewStyle().Bold(true),
		ErrorHint:  lipgloss.NewStyle().Foreground(SurfaceDim),
		Button:     lipgloss.NewStyle().Bold(true).Foreground(White).Background(Brand).Padding(0, 2),
	}
}
