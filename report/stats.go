// Package report renders the motif_finder HTML summary: corpus statistics
// plus SVG plots drawn with gonum/plot.
package report

import (
	"gonum.org/v1/gonum/stat"

	"amp_buddy_go/anagram"
	"amp_buddy_go/kmer_analyzer"
	common "amp_buddy_go/utils"
)

// Summary holds the headline numbers of one motif_finder run.
type Summary struct {
	InFile          string
	Sequences       int
	MinLength       int
	MaxLength       int
	MeanLength      float64
	LengthStdDev    float64
	KmerMin         int
	KmerMax         int
	Identical       int     // k-mers shared by two or more sequences
	Groups          int     // anagram groups
	MeanGroupIDs    float64 // mean distinct ids per group
	MaxGroupIDs     int
	MeanGroupPosPct float64
	TieBreak        string
}

// Summarize computes a Summary from the pipeline outputs.
func Summarize(seqs []common.Sequence, set *kmer_analyzer.IdenticalSet, rows []anagram.Row) Summary {
	s := Summary{
		Sequences: len(seqs),
		Identical: len(set.Entries),
		Groups:    len(rows),
	}

	if len(seqs) > 0 {
		lengths := make([]float64, len(seqs))
		s.MinLength = len(seqs[0].Residues)
		for i, sq := range seqs {
			n := len(sq.Residues)
			lengths[i] = float64(n)
			if n < s.MinLength {
				s.MinLength = n
			}
			if n > s.MaxLength {
				s.MaxLength = n
			}
		}
		s.MeanLength = stat.Mean(lengths, nil)
		if len(lengths) > 1 {
			s.LengthStdDev = stat.StdDev(lengths, nil)
		}
	}

	if len(rows) > 0 {
		ids := make([]float64, len(rows))
		pos := make([]float64, len(rows))
		for i, r := range rows {
			ids[i] = float64(r.Count)
			pos[i] = r.AvgPosition
			if r.Count > s.MaxGroupIDs {
				s.MaxGroupIDs = r.Count
			}
		}
		s.MeanGroupIDs = stat.Mean(ids, nil)
		s.MeanGroupPosPct = stat.Mean(pos, nil)
	}
	return s
}
