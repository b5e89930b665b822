package router

// MemoryLocation is an in-process Location for hosts without a browser.
// Like a browser's hashchange event, subscribers hear about a fragment
// change only when the value actually changes.
type MemoryLocation struct {
	fragment    string
	subscribers []func()
	onScrollTop func()
	scrolls     int
}

// NewMemoryLocation returns a location positioned at fragment.
func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{fragment: normalize(fragment)}
}

// Fragment implements Location.
func (l *MemoryLocation) Fragment() string { return l.fragment }

// SetFragment implements Location.
func (l *MemoryLocation) SetFragment(fragment string) {
	fragment = normalize(fragment)
	if fragment == l.fragment {
		return
	}
	l.fragment = fragment
	for _, fn := range l.subscribers {
		fn()
	}
}

// ScrollToTop implements Location.
func (l *MemoryLocation) ScrollToTop() {
	l.scrolls++
	if l.onScrollTop != nil {
		l.onScrollTop()
	}
}

// Subscribe implements Notifier.
func (l *MemoryLocation) Subscribe(fn func()) {
	l.subscribers = append(l.subscribers, fn)
}

// OnScrollTop sets the function run on every scroll reset.
func (l *MemoryLocation) OnScrollTop(fn func()) {
	l.onScrollTop = fn
}

// ScrollResets returns how many times the scroll position was reset.
func (l *MemoryLocation) ScrollResets() int { return l.scrolls }

// normalize makes "terms" and "#terms" equivalent, and "#" empty.
func normalize(fragment string) string {
	if fragment == "" || fragment == "#" {
		return ""
	}
	if fragment[0] != '#' {
		return "#" + fragment
	}
	return fragment
}
