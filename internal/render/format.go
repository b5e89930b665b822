// Package render builds what every host displays: formatted amounts, the
// results panel, the tip options and the static pages. Hosts only decide
// how these values are drawn.
package render

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var hundred = big.NewInt(100)

// Currency formats n as US dollars with two decimals and grouping
// separators, e.g. "$1,234.50". This is the only place amounts are rounded.
//
// Rounding is half away from zero on the shortest decimal form of n, so
// 2.675 shows as $2.68 even though its binary value is slightly below.
func Currency(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	cents := roundCents(n)
	if cents.Sign() == 0 {
		sign = ""
	}
	dollars, rem := new(big.Int).QuoRem(cents, hundred, new(big.Int))
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.BigComma(dollars), rem.Int64())
}

// roundCents returns n (non-negative, finite) in whole cents. It works on
// decimal digits so amounts beyond the int64 range keep their value.
func roundCents(n float64) *big.Int {
	whole, frac, _ := strings.Cut(strconv.FormatFloat(n, 'f', -1, 64), ".")
	frac += "000"
	cents, _ := new(big.Int).SetString(whole+frac[:2], 10)
	if frac[2] >= '5' {
		cents.Add(cents, big.NewInt(1))
	}
	return cents
}

// Percent formats a tip percentage for a button label, e.g. "18%".
func Percent(p float64) string {
	return humanize.FormatFloat("#.", p) + "%"
}
