package matrix

import (
	"math"
	"strings"
	"testing"
)

func mustRead(t *testing.T, csv string) *Matrix {
	t.Helper()
	m, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return m
}

func TestReadCSVSortsColumns(t *testing.T) {
	m := mustRead(t, strings.Join([]string{
		"language,single-words-lingua,average-tika,average-lingua",
		"ENGLISH,74,80,90",
	}, "\n"))

	want := []string{"average-lingua", "average-tika", "single-words-lingua"}
	got := m.Columns()
	if len(got) != len(want) {
		t.Fatalf("columns = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %#v, want %#v", got, want)
		}
	}

	// Values must follow the column, not its position in the input.
	v, err := m.Value("ENGLISH", "average-lingua")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 90 {
		t.Fatalf("average-lingua = %v, want 90", v)
	}
}

func TestReadCSVMissingValuesAreNaN(t *testing.T) {
	m := mustRead(t, strings.Join([]string{
		"language,average-lingua,average-tika",
		"BOKMAL,58,",
	}, "\n"))

	v, err := m.Value("BOKMAL", "average-tika")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if !math.IsNaN(v) {
		t.Fatalf("empty cell = %v, want NaN", v)
	}
}

func TestReadCSVPreservesLanguageOrder(t *testing.T) {
	m := mustRead(t, strings.Join([]string{
		"language,average-lingua",
		"GERMAN,89",
		"ENGLISH,81",
		"AFRIKAANS,64",
	}, "\n"))

	want := []string{"GERMAN", "ENGLISH", "AFRIKAANS"}
	got := m.Languages()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("languages = %#v, want %#v", got, want)
		}
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		want string
	}{
		{"empty input", "", "missing header"},
		{"no language column", "lang,average-lingua\nENGLISH,90", `missing "language" column`},
		{"duplicate language", "language,average-lingua\nENGLISH,90\nENGLISH,91", `duplicate language "ENGLISH"`},
		{"duplicate column", "language,average-lingua,average-lingua\nENGLISH,90,91", `duplicate column "average-lingua"`},
		{"non-numeric cell", "language,average-lingua\nENGLISH,n/a", `invalid value "n/a"`},
		{"empty language name", "language,average-lingua\n,90", "empty language name"},
		{"ragged row", "language,average-lingua,average-tika\nENGLISH,90", "row 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.csv))
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want substring %q", err, tc.want)
			}
		})
	}
}

func TestColumnStats(t *testing.T) {
	m := mustRead(t, strings.Join([]string{
		"language,average-lingua,average-tika,average-opennlp",
		"ENGLISH,90,70,",
		"GERMAN,50,,",
		"FRENCH,,30,",
	}, "\n"))

	s, err := m.ColumnStats("average-lingua")
	if err != nil {
		t.Fatalf("ColumnStats: %v", err)
	}
	if !almostEqual(s.Mean, 70, 1e-9) {
		t.Fatalf("mean = %v, want 70", s.Mean)
	}
	if !almostEqual(s.Median, 70, 1e-9) {
		t.Fatalf("median = %v, want 70", s.Median)
	}
	// sample std of {90, 50} = sqrt(2*20^2/1)
	if !almostEqual(s.Std, math.Sqrt(800), 1e-9) {
		t.Fatalf("std = %v, want %v", s.Std, math.Sqrt(800))
	}

	// NaN cells are skipped, not counted as zero.
	s, err = m.ColumnStats("average-tika")
	if err != nil {
		t.Fatalf("ColumnStats: %v", err)
	}
	if !almostEqual(s.Mean, 50, 1e-9) {
		t.Fatalf("mean with gaps = %v, want 50", s.Mean)
	}

	// A column with no data at all yields NaN throughout.
	s, err = m.ColumnStats("average-opennlp")
	if err != nil {
		t.Fatalf("ColumnStats: %v", err)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Median) || !math.IsNaN(s.Std) {
		t.Fatalf("empty column stats = %+v, want all NaN", s)
	}

	if _, err := m.ColumnStats("no-such-column"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestColumnStatsSingleValue(t *testing.T) {
	m := mustRead(t, strings.Join([]string{
		"language,average-lingua",
		"ENGLISH,81",
	}, "\n"))

	s, err := m.ColumnStats("average-lingua")
	if err != nil {
		t.Fatalf("ColumnStats: %v", err)
	}
	if s.Mean != 81 || s.Median != 81 {
		t.Fatalf("stats = %+v, want mean/median 81", s)
	}
	if !math.IsNaN(s.Std) {
		t.Fatalf("std of one value = %v, want NaN", s.Std)
	}
}

func TestMedianOddCount(t *testing.T) {
	m := mustRead(t, strings.Join([]string{
		"language,average-lingua",
		"A,10",
		"B,40",
		"C,100",
	}, "\n"))

	s, err := m.ColumnStats("average-lingua")
	if err != nil {
		t.Fatalf("ColumnStats: %v", err)
	}
	if s.Median != 40 {
		t.Fatalf("median = %v, want 40", s.Median)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV("does-not-exist.csv"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
