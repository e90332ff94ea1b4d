// Package render turns an accuracy matrix into the static HTML comparison
// table embedded in the project README. The table layout is fixed: a
// two-row header, one color-coded row per language, then Mean, Median, and
// Standard Deviation summary rows.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/langbench/accutable/internal/matrix"
)

// displayColumns is the fixed rendering order of the 16 metric columns,
// independent of the input CSV's column order: four detectors under each of
// the Average / Single Words / Word Pairs / Sentences groups.
var displayColumns = []string{
	"average-lingua", "average-tika", "average-opennlp", "average-optimaize",
	"single-words-lingua", "single-words-tika", "single-words-opennlp", "single-words-optimaize",
	"word-pairs-lingua", "word-pairs-tika", "word-pairs-opennlp", "word-pairs-optimaize",
	"sentences-lingua", "sentences-tika", "sentences-opennlp", "sentences-optimaize",
}

const tableHeader = `<table>
    <tr>
        <th>Language</th>
        <th colspan="4">Average</th>
        <th colspan="4">Single Words</th>
        <th colspan="4">Word Pairs</th>
        <th colspan="4">Sentences</th>
    </tr>
    <tr>
        <th></th>
        <th>Lingua</th>
        <th>&nbsp;&nbsp;Tika&nbsp;&nbsp;</th>
        <th>OpenNLP</th>
        <th>Optimaize</th>
        <th>Lingua</th>
        <th>&nbsp;&nbsp;Tika&nbsp;&nbsp;</th>
        <th>OpenNLP</th>
        <th>Optimaize</th>
        <th>Lingua</th>
        <th>&nbsp;&nbsp;Tika&nbsp;&nbsp;</th>
        <th>OpenNLP</th>
        <th>Optimaize</th>
        <th>Lingua</th>
        <th>&nbsp;&nbsp;Tika&nbsp;&nbsp;</th>
        <th>OpenNLP</th>
        <th>Optimaize</th>
    </tr>
`

const spacerRow = "\t<tr>\n\t\t<td colspan=\"12\"></td>\n\t</tr>\n"

// SquareColor maps an accuracy percentage to the color of its table icon.
// NaN means "no data" and maps to grey. Values outside [0,100] are rejected;
// aggregated input never contains them, so hitting that branch indicates a
// broken upstream report.
func SquareColor(v float64) (string, error) {
	switch {
	case math.IsNaN(v):
		return "grey", nil
	case v < 0 || v > 100:
		return "", fmt.Errorf("invalid accuracy value: %v", v)
	case v <= 20:
		return "red", nil
	case v <= 40:
		return "orange", nil
	case v <= 60:
		return "yellow", nil
	case v <= 80:
		return "lightgreen", nil
	default:
		return "green", nil
	}
}

// ComparisonTable renders the full HTML table for m. Every column named in
// the fixed display order must exist in the matrix.
func ComparisonTable(m *matrix.Matrix) (string, error) {
	var b strings.Builder
	b.WriteString(tableHeader)

	for _, lang := range m.Languages() {
		b.WriteString("\t<tr>\n\t\t<td>" + lang + "</td>\n")
		for _, column := range displayColumns {
			v, err := m.Value(lang, column)
			if err != nil {
				return "", err
			}
			cell, err := valueCell(v)
			if err != nil {
				return "", fmt.Errorf("language %s, column %s: %w", lang, column, err)
			}
			b.WriteString(cell)
		}
		b.WriteString("\t</tr>\n")
	}

	stats := make([]matrix.Stats, len(displayColumns))
	for i, column := range displayColumns {
		s, err := m.ColumnStats(column)
		if err != nil {
			return "", err
		}
		stats[i] = s
	}

	b.WriteString(spacerRow)
	b.WriteString("\t<tr>\n\t\t<td><strong>Mean</strong></td>\n")
	for i, column := range displayColumns {
		rounded := math.Round(stats[i].Mean)
		color, err := SquareColor(rounded)
		if err != nil {
			return "", fmt.Errorf("mean of column %s: %w", column, err)
		}
		b.WriteString("\t\t<td><img src=\"images/" + color + ".png\"> <strong>" + formatRounded(rounded) + "</strong></td>\n")
	}
	b.WriteString("\t</tr>\n")

	b.WriteString(spacerRow)
	b.WriteString("\t<tr>\n\t\t<td>Median</td>\n")
	for i := range displayColumns {
		b.WriteString("\t\t<td>" + formatTwoDecimals(stats[i].Median) + "</td>\n")
	}
	b.WriteString("\t</tr>\n")

	b.WriteString("\t<tr>\n\t\t<td>Standard Deviation</td>\n")
	for i := range displayColumns {
		b.WriteString("\t\t<td>" + formatTwoDecimals(stats[i].Std) + "</td>\n")
	}
	b.WriteString("\t</tr>\n")

	b.WriteString("</table>")
	return b.String(), nil
}

// valueCell renders one per-language cell: color icon plus the accuracy
// rounded to the nearest integer, or a grey icon with "-" when no data.
func valueCell(v float64) (string, error) {
	rounded := v
	if !math.IsNaN(v) {
		rounded = math.Round(v)
	}
	color, err := SquareColor(rounded)
	if err != nil {
		return "", err
	}
	return "\t\t<td><img src=\"images/" + color + ".png\"> " + formatRounded(rounded) + "</td>\n", nil
}

func formatRounded(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.Itoa(int(v))
}

func formatTwoDecimals(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
