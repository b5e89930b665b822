package render

import (
	_ "embed"

	"github.com/mmynk/tipsplit/internal/models"
)

// Fixed copy shown around the calculator.
const (
	AppName  = "TipSplit"
	Tagline  = "Split the bill. Skip the math."
	Footer   = "Free forever. No ads. No tracking."
	BackText = "Back to calculator"
)

// Recovery screen copy.
const (
	RecoveryTitle  = "Something went wrong"
	RecoveryHint   = "Try refreshing the page."
	RecoveryAction = "Refresh Page"
)

var (
	//go:embed content/terms.md
	termsMarkdown string

	//go:embed content/privacy.md
	privacyMarkdown string
)

// Page is a static informational page.
type Page struct {
	Title    string
	Markdown string
}

// StaticPage returns the page shown for v. The calculator has no static
// page and yields ok == false.
func StaticPage(v models.View) (p Page, ok bool) {
	switch v {
	case models.ViewTerms:
		return Page{Title: "Terms of Service", Markdown: termsMarkdown}, true
	case models.ViewPrivacy:
		return Page{Title: "Privacy Policy", Markdown: privacyMarkdown}, true
	default:
		return Page{}, false
	}
}
