package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/yuin/goldmark"

	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/render"
	"github.com/mmynk/tipsplit/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

// tipButton is one tip option as a form button.
type tipButton struct {
	Label  string
	Value  string
	Active bool
}

// staticSection is a Terms or Privacy section, shown via :target.
type staticSection struct {
	ID   string
	Body template.HTML
}

type pageData struct {
	AppName  string
	Tagline  string
	Footer   string
	BackText string

	Bill       string
	TipValue   string
	Options    []tipButton
	Custom     bool
	CustomText string

	People       int
	CanDecrement bool
	Dec          int
	Inc          int

	Results render.ResultsPanel
	Pages   []staticSection
}

type recoveryData struct {
	Title  string
	Hint   string
	Action string
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	if fsys == nil {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// renderRecovery renders the static recovery page once at startup.
func renderRecovery(tmpl *template.Template) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "recovery.html", recoveryData{
		Title:  render.RecoveryTitle,
		Hint:   render.RecoveryHint,
		Action: render.RecoveryAction,
	})
	if err != nil {
		return nil, fmt.Errorf("render recovery page: %w", err)
	}
	return buf.Bytes(), nil
}

// renderStaticSections converts the Terms and Privacy markdown to HTML.
func renderStaticSections() ([]staticSection, error) {
	var sections []staticSection
	for _, v := range []models.View{models.ViewTerms, models.ViewPrivacy} {
		p, _ := render.StaticPage(v)
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(p.Markdown), &buf); err != nil {
			return nil, fmt.Errorf("convert %s page: %w", v, err)
		}
		sections = append(sections, staticSection{
			ID:   v.String(),
			Body: template.HTML(buf.String()),
		})
	}
	return sections, nil
}

func (s *Server) pageData(in models.Input) pageData {
	opts := render.TipOptions(in.Tip)
	buttons := make([]tipButton, len(opts))
	for i, o := range opts {
		value := state.TipCustomValue
		if !o.Custom {
			value = strconv.FormatFloat(o.Percent, 'f', -1, 64)
		}
		buttons[i] = tipButton{Label: o.Label, Value: value, Active: o.Active}
	}

	return pageData{
		AppName:  render.AppName,
		Tagline:  render.Tagline,
		Footer:   render.Footer,
		BackText: render.BackText,

		Bill:       in.BillText,
		TipValue:   state.Values(in).Get(state.ParamTip),
		Options:    buttons,
		Custom:     in.Tip.Mode == models.TipCustom,
		CustomText: in.Tip.CustomText,

		People:       in.People,
		CanDecrement: in.People > models.MinPeople,
		Dec:          max(models.MinPeople, in.People-1),
		Inc:          in.People + 1,

		Results: render.Results(in.People, state.Totals(in)),
		Pages:   s.sections,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	in := state.FromValues(r.URL.Query())

	// Render into a buffer so a failing template never sends half a page.
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", s.pageData(in)); err != nil {
		s.boundary.Fail(w, r, fmt.Errorf("render calculator: %w", err))
		return
	}
	s.metrics.calculations.WithLabelValues("page").Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
