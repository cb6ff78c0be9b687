package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/stats"
)

// valuePattern is the accepted input grammar: optional sign, digits and an
// optional fraction with comma or dot separator.
var valuePattern = regexp.MustCompile(`^([+-]?)([0-9]+([,.][0-9]+)?)?$`)

// ParseValue parses a user-entered coordinate such as "3", "-2,5" or "+0.75".
//
// Returns an error wrapping errs.ErrInvalidValue for empty input, input that
// does not match the grammar or values outside ±stats.MaxSafeValue.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "+" || s == "-" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidValue)
	}
	if !valuePattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidValue, s)
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrInvalidValue, err)
	}
	if err := stats.ValidateValue(v); err != nil {
		return 0, err
	}

	return v, nil
}

// ParsePoint parses both coordinates with ParseValue.
func ParsePoint(x, y string) (stats.Point, error) {
	px, err := ParseValue(x)
	if err != nil {
		return stats.Point{}, fmt.Errorf("x: %w", err)
	}
	py, err := ParseValue(y)
	if err != nil {
		return stats.Point{}, fmt.Errorf("y: %w", err)
	}

	return stats.Point{X: px, Y: py}, nil
}
