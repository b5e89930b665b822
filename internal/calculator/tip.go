package calculator

// Totals is the derived output of a tip calculation. Values are unrounded;
// rounding happens only when they are formatted for display.
type Totals struct {
	TipAmount      float64
	TotalWithTip   float64
	PerPersonTotal float64
	PerPersonTip   float64
}

// Calculate computes the tip, the grand total and each person's share.
// Based on: tip = bill × (percent / 100), total = bill + tip, share = x / people.
//
// Inputs are expected to be normalized by the caller (bill ≥ 0, percent ≥ 0,
// people ≥ 1). A non-positive party size yields zero shares rather than an error.
func Calculate(bill, tipPercent float64, people int) Totals {
	tip := bill * (tipPercent / 100)
	total := bill + tip

	t := Totals{
		TipAmount:    tip,
		TotalWithTip: total,
	}
	if people > 0 {
		t.PerPersonTotal = total / float64(people)
		t.PerPersonTip = tip / float64(people)
	}
	return t
}
