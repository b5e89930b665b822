package state

import (
	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/models"
)

// Store holds the current Input of one session.
//
// A Store belongs to a single event loop and is not safe for concurrent use.
type Store struct {
	input models.Input
}

// NewStore returns a Store holding a fresh session's Input.
func NewStore() *Store {
	return &Store{input: models.NewInput()}
}

// Dispatch applies a and replaces the current Input with the result.
// The change is visible to the very next getter call.
func (s *Store) Dispatch(a Action) error {
	next, err := Reduce(s.input, a)
	if err != nil {
		return err
	}
	s.input = next
	return nil
}

// Input returns a copy of the current record.
func (s *Store) Input() models.Input { return s.input }

// Bill returns the effective bill amount.
func (s *Store) Bill() float64 { return Bill(s.input) }

// ActivePercent returns the tip percentage in effect.
func (s *Store) ActivePercent() float64 { return ActivePercent(s.input) }

// People returns the party size.
func (s *Store) People() int { return s.input.People }

// Totals recomputes the derived totals from the current record.
func (s *Store) Totals() calculator.Totals {
	return Totals(s.input)
}

// Totals computes the derived totals of in.
func Totals(in models.Input) calculator.Totals {
	return calculator.Calculate(Bill(in), ActivePercent(in), in.People)
}
