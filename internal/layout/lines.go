package layout

import (
	"math"
	"sort"
	"strings"
)

// LinesInCage reconstructs the text inside a cage rect as ordered lines.
//
// Every word whose box overlaps the cage is selected. Words are grouped
// into visual rows by their top coordinate rounded to one decimal, which
// absorbs sub-pixel baseline jitter from the layout engine. Rows are
// ordered top-to-bottom, words inside a row left-to-right, so the output
// is a deterministic reading order independent of the order the words
// were emitted in. Rows that are empty after trimming are dropped.
//
// A cage that overlaps no words yields an empty slice, not an error.
func LinesInCage(page Page, cage Rect) []string {
	var selected []Word
	for _, w := range page.Words {
		if w.Rect.Intersects(cage) {
			selected = append(selected, w)
		}
	}
	if len(selected) == 0 {
		return nil
	}

	rows := make(map[float64][]Word)
	for _, w := range selected {
		key := roundTenth(w.Rect.Y0)
		rows[key] = append(rows[key], w)
	}

	keys := make([]float64, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		row := rows[k]
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Rect.X0 < row[j].Rect.X0
		})

		parts := make([]string, 0, len(row))
		for _, w := range row {
			parts = append(parts, w.Text)
		}
		line := strings.TrimSpace(strings.Join(parts, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
