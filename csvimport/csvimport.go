// Package csvimport reads samples from semicolon separated text.
//
// Each line holds one point: the x value, a semicolon and the y value.
// Additional fields are ignored. The first comma of a field is read as the
// decimal separator, so "1,5;2" is the point (1.5, 2). Lines whose x or y
// value cannot be parsed, including blank lines and headers, are skipped.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/rechenmodul/stats"
)

// Comma is the field separator.
const Comma = ';'

// Store is the destination of Import.
type Store interface {
	Set(values []stats.Point) error
}

// Parse reads all points from r.
//
// Only read errors are returned; malformed lines are skipped. Values that
// parse but fail stats.Point.Validate are skipped as well.
func Parse(r io.Reader) ([]stats.Point, error) {
	reader := csv.NewReader(r)
	reader.Comma = Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	points := make([]stats.Point, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return points, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}

			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		x, okX := parseField(record[0])
		y, okY := parseField(record[1])
		if !okX || !okY {
			continue
		}

		p := stats.Point{X: x, Y: y}
		if p.Validate() != nil {
			continue
		}
		points = append(points, p)
	}
}

func parseField(field string) (float64, bool) {
	field = strings.TrimSpace(strings.Replace(field, ",", ".", 1))
	if field == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Import parses r and replaces the content of store with the result.
// It returns the number of imported points.
func Import(r io.Reader, store Store) (int, error) {
	points, err := Parse(r)
	if err != nil {
		return 0, err
	}
	if err := store.Set(points); err != nil {
		return 0, fmt.Errorf("import %d points: %w", len(points), err)
	}

	return len(points), nil
}
