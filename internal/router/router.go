// Package router selects the top-level view from a URL fragment and keeps
// the two in sync.
package router

import "github.com/mmynk/tipsplit/internal/models"

// Location is the host's URL fragment and scroll position.
type Location interface {
	// Fragment returns the current fragment, including the leading '#',
	// or "" when there is none.
	Fragment() string
	// SetFragment replaces the fragment.
	SetFragment(fragment string)
	// ScrollToTop resets the scroll position.
	ScrollToTop()
}

// Notifier is implemented by locations that announce fragment changes.
// New subscribes the router to them once; there is no unsubscribe.
type Notifier interface {
	Subscribe(fn func())
}

// Router maps the location's fragment to a models.View.
type Router struct {
	loc       Location
	current   models.View
	listeners []func(models.View)
}

// New returns a Router whose view is read from loc's current fragment.
// If loc implements Notifier, the router follows every later change.
func New(loc Location) *Router {
	r := &Router{
		loc:     loc,
		current: models.ViewFromFragment(loc.Fragment()),
	}
	if n, ok := loc.(Notifier); ok {
		n.Subscribe(r.HandleFragmentChange)
	}
	return r
}

// Current returns the active view.
func (r *Router) Current() models.View {
	return r.current
}

// OnChange registers fn to be called after every effective view change.
func (r *Router) OnChange(fn func(models.View)) {
	r.listeners = append(r.listeners, fn)
}

// HandleFragmentChange re-reads the fragment and switches view if needed.
func (r *Router) HandleFragmentChange() {
	r.set(models.ViewFromFragment(r.loc.Fragment()))
}

// Navigate switches to v. The view state is updated before the fragment,
// so the change notification that follows finds nothing to do. The scroll
// position is reset afterwards.
func (r *Router) Navigate(v models.View) {
	r.set(v)
	r.loc.SetFragment(v.Fragment())
	r.loc.ScrollToTop()
}

func (r *Router) set(v models.View) {
	if v == r.current {
		return
	}
	r.current = v
	for _, fn := range r.listeners {
		fn(v)
	}
}
