package render

import (
	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/models"
)

// ResultLine is one row of the results panel.
type ResultLine struct {
	Label     string // "Tip Amount" or "Total"
	SubLabel  string // "/ person" when splitting, else ""
	Primary   string // the large figure
	Secondary string // "total: $X" when splitting, else ""
}

// ResultsPanel is the view model of the results card.
type ResultsPanel struct {
	Tip   ResultLine
	Total ResultLine
	Split bool
}

// Results builds the results panel for people and totals. When the bill is
// split, per-person figures are primary and the grand totals secondary.
func Results(people int, t calculator.Totals) ResultsPanel {
	if people <= 1 {
		return ResultsPanel{
			Tip:   ResultLine{Label: "Tip Amount", Primary: Currency(t.TipAmount)},
			Total: ResultLine{Label: "Total", Primary: Currency(t.PerPersonTotal)},
		}
	}
	return ResultsPanel{
		Split: true,
		Tip: ResultLine{
			Label:     "Tip Amount",
			SubLabel:  "/ person",
			Primary:   Currency(t.PerPersonTip),
			Secondary: "total: " + Currency(t.TipAmount),
		},
		Total: ResultLine{
			Label:     "Total",
			SubLabel:  "/ person",
			Primary:   Currency(t.PerPersonTotal),
			Secondary: "total: " + Currency(t.TotalWithTip),
		},
	}
}

// TipOption is one tip button.
type TipOption struct {
	Label   string
	Percent float64 // 0 for the custom option
	Custom  bool
	Active  bool
}

// TipOptions returns the preset buttons followed by the custom button,
// with the one in effect marked active.
func TipOptions(sel models.TipSelection) []TipOption {
	opts := make([]TipOption, 0, len(models.TipPresets())+1)
	for _, p := range models.TipPresets() {
		opts = append(opts, TipOption{
			Label:   Percent(p),
			Percent: p,
			Active:  sel.Mode == models.TipPreset && sel.Preset == p,
		})
	}
	return append(opts, TipOption{
		Label:  "Custom",
		Custom: true,
		Active: sel.Mode == models.TipCustom,
	})
}
