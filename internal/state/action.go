package state

import (
	"errors"
	"fmt"

	"github.com/mmynk/tipsplit/internal/models"
)

// ErrUnknownPreset is returned when a tip preset outside models.TipPresets
// is selected. The state is left unchanged.
var ErrUnknownPreset = errors.New("unknown tip preset")

// Action is a single user edit. Actions are applied with Reduce.
type Action interface {
	apply(in models.Input) (models.Input, error)
}

// SetBill replaces the bill text.
type SetBill struct{ Text string }

// SelectPreset activates a preset tip percentage.
type SelectPreset struct{ Percent float64 }

// SelectCustom activates the custom tip field.
type SelectCustom struct{}

// SetCustomTip replaces the custom tip text. The mode is not changed.
type SetCustomTip struct{ Text string }

// IncrementPeople adds one person.
type IncrementPeople struct{}

// DecrementPeople removes one person, stopping at models.MinPeople.
type DecrementPeople struct{}

// SetPeople sets the party size directly, clamped to models.MinPeople.
type SetPeople struct{ Count int }

func (a SetBill) apply(in models.Input) (models.Input, error) {
	in.BillText = a.Text
	return in, nil
}

func (a SelectPreset) apply(in models.Input) (models.Input, error) {
	if !models.IsPreset(a.Percent) {
		return in, fmt.Errorf("%w: %v", ErrUnknownPreset, a.Percent)
	}
	in.Tip.Mode = models.TipPreset
	in.Tip.Preset = a.Percent
	return in, nil
}

func (SelectCustom) apply(in models.Input) (models.Input, error) {
	in.Tip.Mode = models.TipCustom
	return in, nil
}

func (a SetCustomTip) apply(in models.Input) (models.Input, error) {
	in.Tip.CustomText = a.Text
	return in, nil
}

func (IncrementPeople) apply(in models.Input) (models.Input, error) {
	in.People++
	return in, nil
}

func (DecrementPeople) apply(in models.Input) (models.Input, error) {
	in.People = max(models.MinPeople, in.People-1)
	return in, nil
}

func (a SetPeople) apply(in models.Input) (models.Input, error) {
	in.People = max(models.MinPeople, a.Count)
	return in, nil
}

// Reduce applies a to in and returns the new record. in is never modified.
// On error the returned record equals in.
func Reduce(in models.Input, a Action) (models.Input, error) {
	return a.apply(in)
}

// Bill returns the effective bill amount of in.
func Bill(in models.Input) float64 {
	return ParseAmount(in.BillText)
}

// ActivePercent returns the tip percentage currently in effect.
func ActivePercent(in models.Input) float64 {
	if in.Tip.Mode == models.TipCustom {
		return ParseAmount(in.Tip.CustomText)
	}
	return in.Tip.Preset
}
