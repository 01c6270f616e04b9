package math

import (
	"math"
	"strconv"
)

// Format formats a float with a fixed precision of 2 decimals.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Precise formats a float keeping 4 significant decimals,
// no matter how small the value is.
func Precise(f float64) string {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	p := 4
	if math.Abs(f) < 1 {
		p += O10(f)
	}
	return strconv.FormatFloat(f, 'f', p, 64)
}

// O10 returns the order of the value on a decimal basis
// NOTE : this does not differentiate between values bigger or smaller than 1
func O10(f float64) int {
	log10 := math.Log10(math.Abs(f))
	return int(math.Abs(log10))
}
