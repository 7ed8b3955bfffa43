package kmer_analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// IdenticalHeader is the column layout of the identical-sequence table.
var IdenticalHeader = []string{
	"Sequence", "IDs (Avg Position)", "Percentage", "Count", "Average Position",
}

// FormatOccurrences renders "id (in P% aa)" for each occurrence.
func FormatOccurrences(occs []Occurrence) string {
	parts := make([]string, len(occs))
	for i, o := range occs {
		parts[i] = fmt.Sprintf("%s (in %.2f%% aa)", o.ID, o.Percent)
	}
	return strings.Join(parts, ", ")
}

// MeanPercent averages the positional percentages of occs.
func MeanPercent(occs []Occurrence) float64 {
	if len(occs) == 0 {
		return 0
	}
	pcts := make([]float64, len(occs))
	for i, o := range occs {
		pcts[i] = o.Percent
	}
	return stat.Mean(pcts, nil)
}

// Rows renders the identical-sequence table body.
func (s *IdenticalSet) Rows() [][]string {
	rows := make([][]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		count := e.Count()
		percentage := 0.0
		if s.Total > 0 {
			percentage = float64(count) / float64(s.Total) * 100
		}
		rows = append(rows, []string{
			e.Sequence,
			FormatOccurrences(e.Occurrences),
			fmt.Sprintf("%.2f%%", percentage),
			strconv.Itoa(count),
			fmt.Sprintf("%.2f%%", MeanPercent(e.Occurrences)),
		})
	}
	return rows
}
