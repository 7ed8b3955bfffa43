package combinator

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"amp_buddy_go/table"
)

// LoadMotifRows reads the dominant motif of every anagram group from a table
// written by motif_finder (or any table with RequiredColumns).
// The structured "Most of OS Count" column is preferred when present; otherwise
// the count is recovered from the free-text description. Rows with an
// unreadable Count are logged and skipped.
func LoadMotifRows(path string) ([]MotifRow, error) {
	t, err := table.Read(path)
	if err != nil {
		return nil, err
	}
	cols, err := t.Columns(RequiredColumns...)
	if err != nil {
		return nil, err
	}
	motifCol, countCol, descCol := cols[0], cols[1], cols[2]

	domCol := -1
	if idx, err := t.Columns(ColDominantCount); err == nil {
		domCol = idx[0]
	}

	rows := make([]MotifRow, 0, len(t.Rows))
	for i, cells := range t.Rows {
		motif := table.Cell(cells, motifCol)
		count, err := strconv.Atoi(table.Cell(cells, countCol))
		if err != nil {
			log.Warnf("row %d: unreadable %s %q, skipped", i+2, ColCount, table.Cell(cells, countCol))
			continue
		}
		row := MotifRow{Motif: motif, Count: count}

		if domCol >= 0 {
			if n, err := strconv.Atoi(table.Cell(cells, domCol)); err == nil {
				row.DominantCount, row.HasDominant = n, true
			}
		}
		if !row.HasDominant {
			row.DominantCount, row.HasDominant = DominantCount(table.Cell(cells, descCol), motif)
		}
		if !row.HasDominant {
			log.Debugf("row %d: no dominant count for %q", i+2, motif)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
