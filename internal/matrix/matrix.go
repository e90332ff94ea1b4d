package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Matrix holds per-language accuracy values: one row per language, one
// column per (detector, category) metric. Missing cells are NaN.
type Matrix struct {
	languages []string
	columns   []string // sorted lexicographically on load
	colIndex  map[string]int
	values    map[string][]float64 // language -> value per column
}

// Stats are the column-wise descriptive statistics shown in the summary
// rows of the comparison table.
type Stats struct {
	Mean   float64
	Median float64
	Std    float64 // sample standard deviation (n-1)
}

// Languages returns row labels in input order.
func (m *Matrix) Languages() []string {
	out := make([]string, len(m.languages))
	copy(out, m.languages)
	return out
}

// Columns returns column names in lexicographic order.
func (m *Matrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Value looks up a single cell. NaN means the cell has no data.
func (m *Matrix) Value(language, column string) (float64, error) {
	idx, ok := m.colIndex[column]
	if !ok {
		return 0, fmt.Errorf("unknown column %q", column)
	}
	row, ok := m.values[language]
	if !ok {
		return 0, fmt.Errorf("unknown language %q", language)
	}
	return row[idx], nil
}

// ColumnStats computes mean, median, and sample standard deviation over the
// present (non-NaN) values of one column. All three are NaN for an empty
// column; Std is NaN when fewer than two values are present.
func (m *Matrix) ColumnStats(column string) (Stats, error) {
	idx, ok := m.colIndex[column]
	if !ok {
		return Stats{}, fmt.Errorf("unknown column %q", column)
	}
	vals := make([]float64, 0, len(m.languages))
	for _, lang := range m.languages {
		v := m.values[lang][idx]
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return Stats{Mean: mean(vals), Median: median(vals), Std: sampleStd(vals)}, nil
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median uses midpoint interpolation for even-length input.
func median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}

func sampleStd(vals []float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}
