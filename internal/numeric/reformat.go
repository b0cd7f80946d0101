package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Magnitude thresholds for switching between fixed-decimal and scientific
// rendering. Values with |v| in [1e-3, 1e5) read naturally as plain decimals;
// outside that band the fixed form degenerates into long zero runs.
const (
	fixedMin = 1e-3
	fixedMax = 1e5
)

// Reformat canonicalizes a numeric string for display.
//
// Input that does not parse as a float64 (including "" and intermediate
// typing states like "-" or "1E") is returned unchanged. Zero renders as
// "0". Mid-range values render fixed-decimal with the minimal digits needed
// to round-trip; positive values outside the mid-range band render in
// scientific notation.
//
// Negative values outside the band also pass through unchanged. That
// asymmetry is intentional: it matches the long-standing behavior of the
// input fields this package was extracted from, and changing it needs
// product sign-off. See DESIGN.md.
func Reformat(input string) string {
	// Accept the comma decimal mark, same as Filter.
	v, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return input
	}

	switch {
	case v == 0:
		return "0"
	case v < 0:
		if v > -fixedMax && v <= -fixedMin {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return input
	default:
		if v >= fixedMin && v < fixedMax {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'E', -1, 64)
	}
}
