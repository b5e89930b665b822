package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/models"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{20, "$20.00"},
		{120, "$120.00"},
		{0.07, "$0.07"},
		{1.1, "$1.10"},
		{6.31875, "$6.32"},
		{56.86875, "$56.87"},
		{28.434375, "$28.43"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{math.NaN(), "$0.00"},
		{-3.5, "-$3.50"},
		{-0.001, "$0.00"},
		{1.005, "$1.01"},
		{2.675, "$2.68"},
		{0.005, "$0.01"},
		{9.3e18, "$9,300,000,000,000,000,000.00"},
		{1e19, "$10,000,000,000,000,000,000.00"},
		{1e20, "$100,000,000,000,000,000,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "Currency(%v)", tt.in)
	}
}

func TestCurrencyHugeTotalsStayPositive(t *testing.T) {
	for _, bill := range []float64{9.3e18, 1e19, 1e20, 123456789012345678901} {
		got := Currency(calculator.Calculate(bill, 20, 1).TotalWithTip)
		assert.True(t, strings.HasPrefix(got, "$"), "Currency(total of %v) = %s", bill, got)
		assert.NotContains(t, got, "-")
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "15%", Percent(15))
	assert.Equal(t, "25%", Percent(25))
}

func TestResultsSinglePerson(t *testing.T) {
	p := Results(1, calculator.Calculate(100, 20, 1))

	assert.False(t, p.Split)
	assert.Equal(t, "$20.00", p.Tip.Primary)
	assert.Equal(t, "$120.00", p.Total.Primary)
	assert.Empty(t, p.Tip.Secondary)
	assert.Empty(t, p.Total.SubLabel)
}

func TestResultsSplit(t *testing.T) {
	p := Results(4, calculator.Calculate(100, 20, 4))

	assert.True(t, p.Split)
	assert.Equal(t, "$5.00", p.Tip.Primary)
	assert.Equal(t, "total: $20.00", p.Tip.Secondary)
	assert.Equal(t, "$30.00", p.Total.Primary)
	assert.Equal(t, "total: $120.00", p.Total.Secondary)
	assert.Equal(t, "/ person", p.Total.SubLabel)
}

func TestResultsCustomScenario(t *testing.T) {
	p := Results(2, calculator.Calculate(50.55, 12.5, 2))

	assert.Equal(t, "total: $6.32", p.Tip.Secondary)
	assert.Equal(t, "total: $56.87", p.Total.Secondary)
	assert.Equal(t, "$28.43", p.Total.Primary)
}

func TestTipOptions(t *testing.T) {
	opts := TipOptions(models.TipSelection{Mode: models.TipPreset, Preset: 20})
	assert.Len(t, opts, 5)

	var active []string
	for _, o := range opts {
		if o.Active {
			active = append(active, o.Label)
		}
	}
	assert.Equal(t, []string{"20%"}, active)

	opts = TipOptions(models.TipSelection{Mode: models.TipCustom, Preset: 20})
	assert.True(t, opts[4].Custom)
	assert.True(t, opts[4].Active)
	assert.False(t, opts[2].Active)
}

func TestStaticPage(t *testing.T) {
	p, ok := StaticPage(models.ViewTerms)
	assert.True(t, ok)
	assert.Contains(t, p.Markdown, "# Terms of Service")

	p, ok = StaticPage(models.ViewPrivacy)
	assert.True(t, ok)
	assert.Contains(t, p.Markdown, "# Privacy Policy")

	_, ok = StaticPage(models.ViewCalculator)
	assert.False(t, ok)
}
