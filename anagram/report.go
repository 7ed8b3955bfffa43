package anagram

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"amp_buddy_go/kmer_analyzer"
)

// NotAvailable marks a value that could not be computed.
const NotAvailable = "N/A"

// TieBreak orders contributors with equal weighted counts.
type TieBreak int

const (
	// TieLexical orders tied contributors by subsequence text.
	TieLexical TieBreak = iota
	// TieEncounter keeps tied contributors in the order they were scanned.
	TieEncounter
)

// ParseTieBreak maps "lexical" or "encounter" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "lexical":
		return TieLexical, nil
	case "encounter":
		return TieEncounter, nil
	}
	return TieLexical, errors.Errorf("unknown tie break %q (want lexical or encounter)", s)
}

func (t TieBreak) String() string {
	if t == TieEncounter {
		return "encounter"
	}
	return "lexical"
}

// Contributor is one original subsequence inside an anagram group.
type Contributor struct {
	Sequence    string
	Count       int     // weighted count: distinct ids carrying Sequence
	Available   bool    // false when Sequence had no recorded count
	AvgPosition float64 // mean positional percentage
}

func (c Contributor) describe() string {
	if !c.Available {
		return fmt.Sprintf("%s (%s)", c.Sequence, NotAvailable)
	}
	return fmt.Sprintf("%s (%d, %.2f%%)", c.Sequence, c.Count, c.AvgPosition)
}

// Row is one line of the anagram table.
type Row struct {
	Signature    string
	Occurrences  []kmer_analyzer.Occurrence
	Count        int           // distinct ids across the group
	AvgPosition  float64       // mean positional percentage across the group
	Contributors []Contributor // scan order
	Ranked       []Contributor // available contributors, weighted count desc
}

// Place returns the contributor ranked n (0 is the dominant one).
func (r Row) Place(n int) (Contributor, bool) {
	if n < 0 || n >= len(r.Ranked) {
		return Contributor{}, false
	}
	return r.Ranked[n], true
}

// Report builds one Row per group. counts holds the distinct-id count of every
// identical sequence; subsequences missing from it are listed but not ranked.
func Report(groups []Group, set *kmer_analyzer.IdenticalSet, counts map[string]int, tie TieBreak) []Row {
	bySignature := make(map[string][]kmer_analyzer.IdenticalEntry)
	for _, e := range set.Entries {
		sig := Signature(e.Sequence)
		bySignature[sig] = append(bySignature[sig], e)
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		row := Row{
			Signature:   g.Signature,
			Occurrences: g.Occurrences,
			Count:       g.Count(),
			AvgPosition: kmer_analyzer.MeanPercent(g.Occurrences),
		}
		for _, e := range bySignature[g.Signature] {
			c := Contributor{Sequence: e.Sequence}
			if n, ok := counts[e.Sequence]; ok && n > 0 {
				c.Count = n
				c.Available = true
				c.AvgPosition = kmer_analyzer.MeanPercent(e.Occurrences)
				row.Ranked = append(row.Ranked, c)
			}
			row.Contributors = append(row.Contributors, c)
		}
		rankContributors(row.Ranked, tie)
		rows = append(rows, row)
	}
	return rows
}

func rankContributors(cs []Contributor, tie TieBreak) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Count != cs[j].Count {
			return cs[i].Count > cs[j].Count
		}
		if tie == TieLexical {
			return cs[i].Sequence < cs[j].Sequence
		}
		return false
	})
}

// Header is the column layout of the anagram table.
var Header = []string{
	"Anagram", "IDs (Avg Position)", "Count",
	"Original Sequences (count, average position)", "in X% aa",
	"Most of OS in Anagrams", "Most of OS Count", "Most of OS Avg Position",
	"Second Most OS", "Second Most OS Avg Position",
	"Third Most OS", "Third Most OS Avg Position",
}

// Cells renders the row in Header order.
func (r Row) Cells() []string {
	described := make([]string, len(r.Contributors))
	for i, c := range r.Contributors {
		described[i] = c.describe()
	}

	cells := []string{
		strings.Join(strings.Split(r.Signature, ""), " "),
		kmer_analyzer.FormatOccurrences(r.Occurrences),
		strconv.Itoa(r.Count),
		strings.Join(described, ", "),
		fmt.Sprintf("%.2f%%", r.AvgPosition),
	}
	for place := 0; place < 3; place++ {
		c, ok := r.Place(place)
		name, pos := NotAvailable, NotAvailable
		if ok {
			name, pos = c.Sequence, fmt.Sprintf("%.2f%%", c.AvgPosition)
		}
		cells = append(cells, name)
		if place == 0 {
			count := NotAvailable
			if ok {
				count = strconv.Itoa(c.Count)
			}
			cells = append(cells, count)
		}
		cells = append(cells, pos)
	}
	return cells
}

// Rows renders every row in Header order.
func Rows(rows []Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells()
	}
	return out
}
