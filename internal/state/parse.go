// Package state holds the user's entered values and applies user actions to
// them. State is a single models.Input record, replaced whole on each action.
package state

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a bill amount or percentage as typed by the user.
// Only decimal notation is accepted. Empty, malformed, infinite, NaN and
// negative values all yield 0.
func ParseAmount(text string) float64 {
	text = strings.TrimSpace(text)
	// ParseFloat also takes hex floats and digit separators; a typed
	// amount is plain decimal.
	if text == "" || strings.ContainsAny(text, "xXpP_") {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParsePeople parses a party size. Anything that is not an integer >= 1
// yields 1.
func ParsePeople(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
