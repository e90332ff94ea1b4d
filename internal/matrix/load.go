package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

const languageColumn = "language"

// LoadCSV reads an aggregated accuracy CSV into a Matrix. The header row must
// contain a "language" column; every other column is treated as a numeric
// metric. Metric columns are re-sorted lexicographically regardless of input
// order. Empty cells load as NaN; any other unparseable cell is an error.
func LoadCSV(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses matrix rows from r. Split out from LoadCSV so tests and
// callers with in-memory data avoid the filesystem.
func ReadCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	langIdx := -1
	type col struct {
		name string
		src  int // field index in the input records
	}
	cols := make([]col, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == languageColumn {
			if langIdx >= 0 {
				return nil, fmt.Errorf("duplicate %q column", languageColumn)
			}
			langIdx = i
			continue
		}
		cols = append(cols, col{name: name, src: i})
	}
	if langIdx < 0 {
		return nil, fmt.Errorf("missing %q column in header", languageColumn)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].name < cols[j].name })

	m := &Matrix{
		columns:  make([]string, len(cols)),
		colIndex: make(map[string]int, len(cols)),
		values:   make(map[string][]float64),
	}
	for i, c := range cols {
		if _, dup := m.colIndex[c.name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.name)
		}
		m.columns[i] = c.name
		m.colIndex[c.name] = i
	}

	for rowNum := 2; ; rowNum++ {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		lang := strings.TrimSpace(rec[langIdx])
		if lang == "" {
			return nil, fmt.Errorf("row %d: empty language name", rowNum)
		}
		if _, dup := m.values[lang]; dup {
			return nil, fmt.Errorf("row %d: duplicate language %q", rowNum, lang)
		}
		row := make([]float64, len(cols))
		for i, c := range cols {
			raw := strings.TrimSpace(rec[c.src])
			if raw == "" {
				row[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: invalid value %q", rowNum, c.name, raw)
			}
			row[i] = v
		}
		m.languages = append(m.languages, lang)
		m.values[lang] = row
	}
	return m, nil
}
