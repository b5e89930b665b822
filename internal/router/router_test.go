package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/tipsplit/internal/models"
)

func TestNewReadsFragmentOnLoad(t *testing.T) {
	tests := []struct {
		fragment string
		want     models.View
	}{
		{"", models.ViewCalculator},
		{"#terms", models.ViewTerms},
		{"#privacy", models.ViewPrivacy},
		{"#nowhere", models.ViewCalculator},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			r := New(NewMemoryLocation(tt.fragment))
			assert.Equal(t, tt.want, r.Current())
		})
	}
}

func TestFragmentChangeNotification(t *testing.T) {
	loc := NewMemoryLocation("")
	r := New(loc)

	var seen []models.View
	r.OnChange(func(v models.View) { seen = append(seen, v) })

	loc.SetFragment("#privacy")
	assert.Equal(t, models.ViewPrivacy, r.Current())

	loc.SetFragment("#bogus")
	assert.Equal(t, models.ViewCalculator, r.Current())

	assert.Equal(t, []models.View{models.ViewPrivacy, models.ViewCalculator}, seen)
	assert.Zero(t, loc.ScrollResets(), "fragment changes alone do not scroll")
}

func TestNavigate(t *testing.T) {
	loc := NewMemoryLocation("")
	r := New(loc)

	var seen []models.View
	r.OnChange(func(v models.View) { seen = append(seen, v) })

	r.Navigate(models.ViewTerms)
	assert.Equal(t, models.ViewTerms, r.Current())
	assert.Equal(t, "#terms", loc.Fragment())
	assert.Equal(t, 1, loc.ScrollResets())

	r.Navigate(models.ViewCalculator)
	assert.Equal(t, models.ViewCalculator, r.Current())
	assert.Equal(t, "", loc.Fragment())
	assert.Equal(t, 2, loc.ScrollResets())

	// One notification per navigation; the echoed fragment change is a no-op.
	assert.Equal(t, []models.View{models.ViewTerms, models.ViewCalculator}, seen)
}

func TestNavigateToCurrentViewStillScrolls(t *testing.T) {
	loc := NewMemoryLocation("#privacy")
	r := New(loc)

	calls := 0
	r.OnChange(func(models.View) { calls++ })

	r.Navigate(models.ViewPrivacy)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, loc.ScrollResets())
}

func TestMemoryLocationScrollCallback(t *testing.T) {
	loc := NewMemoryLocation("terms")
	assert.Equal(t, "#terms", loc.Fragment())

	called := false
	loc.OnScrollTop(func() { called = true })
	New(loc).Navigate(models.ViewCalculator)

	assert.True(t, called)
}
