package uniform

import (
	"math"
	"strconv"
	"strings"
)

// Decimals is the precision every generated value is truncated to.
const Decimals = 5

// Truncate drops everything past the given number of decimal places,
// rounding toward zero.
//
// Values whose shortest decimal form already fits are returned as is: 0.29 *
// 1e5 is 28999.999999999996, and truncating that product would turn 0.29 into
// 0.28999.
func Truncate(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if fractionDigits(v) <= decimals {
		return v
	}
	factor := math.Pow10(decimals)
	return math.Trunc(v*factor) / factor
}

func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
