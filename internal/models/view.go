package models

import "strings"

// View is one of the top-level screens.
type View int

const (
	// ViewCalculator is the default screen.
	ViewCalculator View = iota
	// ViewTerms shows the terms of service.
	ViewTerms
	// ViewPrivacy shows the privacy policy.
	ViewPrivacy
)

// String returns a short human-readable name.
func (v View) String() string {
	switch v {
	case ViewTerms:
		return "terms"
	case ViewPrivacy:
		return "privacy"
	default:
		return "calculator"
	}
}

// Fragment returns the URL fragment that selects v, including the leading
// '#'. The calculator has no fragment.
func (v View) Fragment() string {
	switch v {
	case ViewTerms:
		return "#terms"
	case ViewPrivacy:
		return "#privacy"
	default:
		return ""
	}
}

// ViewFromFragment maps a URL fragment to a view. The leading '#' is
// optional. Unknown fragments fall back to the calculator.
func ViewFromFragment(fragment string) View {
	switch strings.TrimPrefix(fragment, "#") {
	case "terms":
		return ViewTerms
	case "privacy":
		return ViewPrivacy
	default:
		return ViewCalculator
	}
}
