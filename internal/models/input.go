package models

var tipPresets = [...]float64{15, 18, 20, 25}

// TipPresets returns the one-tap tip percentages, in display order.
// The result is a copy.
func TipPresets() [len(tipPresets)]float64 { return tipPresets }

// DefaultTipPreset is the preset selected when a session starts.
const DefaultTipPreset = 18

// MinPeople is the smallest party size. The count never goes below it.
const MinPeople = 1

// TipMode tells which field drives the active tip percentage.
type TipMode int

const (
	// TipPreset uses TipSelection.Preset.
	TipPreset TipMode = iota
	// TipCustom uses the parsed TipSelection.CustomText.
	TipCustom
)

// String returns the mode's query-string form.
func (m TipMode) String() string {
	if m == TipCustom {
		return "custom"
	}
	return "preset"
}

// TipSelection is the tagged tip value. Exactly one mode is active.
type TipSelection struct {
	// Mode selects which of the fields below is in effect.
	Mode TipMode

	// Preset is the last preset percentage chosen. It is remembered while
	// custom mode is active.
	Preset float64

	// CustomText is the raw custom percentage as typed (e.g. "12.5").
	// It is retained, but ignored, while a preset is active.
	CustomText string
}

// Input groups everything a user has entered.
// It is replaced as a whole on every action.
type Input struct {
	// BillText is the raw bill amount as typed (e.g. "50.55").
	BillText string

	// Tip is the current tip selection.
	Tip TipSelection

	// People is the party size. Always >= MinPeople.
	People int
}

// NewInput returns the state of a fresh session: empty bill, 18% preset,
// one person.
func NewInput() Input {
	return Input{
		Tip: TipSelection{
			Mode:   TipPreset,
			Preset: DefaultTipPreset,
		},
		People: MinPeople,
	}
}

// IsPreset reports whether pct is one of TipPresets.
func IsPreset(pct float64) bool {
	for _, p := range tipPresets {
		if p == pct {
			return true
		}
	}
	return false
}
