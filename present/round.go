package present

import (
	"math"
	"strconv"
)

// DefaultPlaces is the number of decimal places used for display.
const DefaultPlaces = 2

// Round rounds v to places decimal places, halves away from zero.
//
// Values whose scaled magnitude exceeds the float64 integer range are
// returned unchanged.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || places < 0 {
		return v
	}

	scale := math.Pow10(places)
	scaled := v * scale
	if math.Abs(scaled) >= 1<<53 {
		return v
	}

	return math.Round(scaled) / scale
}

// Format rounds v to DefaultPlaces and prints it without trailing zeros.
// Negative zero prints as "0".
func Format(v float64) string {
	r := Round(v, DefaultPlaces)
	if r == 0 {
		r = 0
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
