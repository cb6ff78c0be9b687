// Package contingency converts between a sample and its contingency table,
// the frequency matrix over the distinct x and y values.
package contingency

import (
	"fmt"
	"math"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/stats"
)

// Limits bounds the size of a table.
type Limits struct {
	// MaxSampleSize is the largest total frequency.
	MaxSampleSize int
	// MaxDistinctValues is the largest number of rows and of columns.
	MaxDistinctValues int
}

// Table is a contingency table. Row i belongs to X[i], column j to Y[j] and
// H[i][j] is the number of points (X[i], Y[j]).
type Table struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	H [][]int   `json:"h"`
}

// FromSample builds the table of sample. Rows and columns are ordered by the
// first appearance of their value.
func FromSample(sample stats.Sample) Table {
	t := Table{X: []float64{}, Y: []float64{}, H: [][]int{}}
	rows := make(map[float64]int)
	cols := make(map[float64]int)

	for _, p := range sample {
		i, ok := rows[p.X+0]
		if !ok {
			i = len(t.X)
			rows[p.X+0] = i
			t.X = append(t.X, p.X)
			t.H = append(t.H, make([]int, len(t.Y)))
		}

		j, ok := cols[p.Y+0]
		if !ok {
			j = len(t.Y)
			cols[p.Y+0] = j
			t.Y = append(t.Y, p.Y)
			for r := range t.H {
				t.H[r] = append(t.H[r], 0)
			}
		}

		t.H[i][j]++
	}

	return t
}

// Sample expands the table into a sample, row by row. Each cell contributes
// H[i][j] copies of (X[i], Y[j]).
//
// The table should pass Validate first; cells outside X or Y are ignored.
func (t Table) Sample() stats.Sample {
	sample := make(stats.Sample, 0, max(t.Total(), 0))
	for i, row := range t.H {
		if i >= len(t.X) {
			break
		}
		for j, h := range row {
			if j >= len(t.Y) {
				break
			}
			for range h {
				sample = append(sample, stats.Point{X: t.X[i], Y: t.Y[j]})
			}
		}
	}

	return sample
}

// Validate checks the shape and contents of the table against limits.
//
// Non-positive limits are not enforced, but a total that does not fit in an
// int is always rejected with errs.ErrSampleTooLarge.
func (t Table) Validate(limits Limits) error {
	if len(t.H) != len(t.X) {
		return fmt.Errorf("%w: %d rows for %d x values", errs.ErrInvalidTable, len(t.H), len(t.X))
	}

	total := 0
	for i, row := range t.H {
		if len(row) != len(t.Y) {
			return fmt.Errorf("%w: row %d has %d cells for %d y values", errs.ErrInvalidTable, i, len(row), len(t.Y))
		}
		for j, h := range row {
			if h < 0 {
				return fmt.Errorf("%w: negative frequency %d at (%d, %d)", errs.ErrInvalidTable, h, i, j)
			}
			if h > math.MaxInt-total {
				return fmt.Errorf("%w: total frequency overflows at (%d, %d)", errs.ErrSampleTooLarge, i, j)
			}
			total += h
			if limits.MaxSampleSize > 0 && total > limits.MaxSampleSize {
				return fmt.Errorf("%w: total frequency exceeds limit %d at (%d, %d)",
					errs.ErrSampleTooLarge, limits.MaxSampleSize, i, j)
			}
		}
	}

	if err := validateAxis("x", t.X); err != nil {
		return err
	}
	if err := validateAxis("y", t.Y); err != nil {
		return err
	}

	if limits.MaxDistinctValues > 0 {
		if len(t.X) > limits.MaxDistinctValues || len(t.Y) > limits.MaxDistinctValues {
			return fmt.Errorf("%w: %dx%d table, limit %d values per axis",
				errs.ErrTooManyDistinctValues, len(t.X), len(t.Y), limits.MaxDistinctValues)
		}
	}

	return nil
}

func validateAxis(name string, values []float64) error {
	seen := make(map[float64]struct{}, len(values))
	for i, v := range values {
		if err := stats.ValidateValue(v); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		if _, dup := seen[v+0]; dup {
			return fmt.Errorf("%w: duplicate %s value %g", errs.ErrInvalidTable, name, v)
		}
		seen[v+0] = struct{}{}
	}

	return nil
}

// RowTotals returns the marginal frequency of every x value.
func (t Table) RowTotals() []int {
	totals := make([]int, len(t.H))
	for i, row := range t.H {
		for _, h := range row {
			totals[i] += h
		}
	}

	return totals
}

// ColumnTotals returns the marginal frequency of every y value.
func (t Table) ColumnTotals() []int {
	totals := make([]int, len(t.Y))
	for _, row := range t.H {
		for j, h := range row {
			if j < len(totals) {
				totals[j] += h
			}
		}
	}

	return totals
}

// Total returns the sum of all frequencies. Call Validate first; the sum of an
// unvalidated table may overflow.
func (t Table) Total() int {
	total := 0
	for _, row := range t.H {
		for _, h := range row {
			total += h
		}
	}

	return total
}
