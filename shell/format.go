package shell

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Format limits.
const (
	DefaultDigits = 6
	MaxDigits     = 6
)

// Format renders v in decimal notation with at most digits fractional digits
// and no trailing zeros. Negative zero is rendered as "0".
// A non-zero value too small for digits falls back to the shortest exact form, i.e. 1e-07.
func Format(v float64, digits int) string {
	digits = min(max(digits, 0), MaxDigits)
	out := humanize.FtoaWithDigits(v, digits)
	if out != "0" && out != "-0" {
		return out
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
