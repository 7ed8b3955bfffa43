package combinator

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"amp_buddy_go/anagram"
)

// Columns read from the anagram table.
const (
	ColMotif         = "Most of OS in Anagrams"
	ColCount         = "Count"
	ColDescription   = "Original Sequences (count, average position)"
	ColDominantCount = "Most of OS Count"
)

// RequiredColumns must be present in every combinator input table.
var RequiredColumns = []string{ColMotif, ColCount, ColDescription}

// MotifRow is one dominant motif from the anagram table.
type MotifRow struct {
	Motif         string
	Count         int  // distinct ids in the anagram group
	DominantCount int  // weighted count of Motif inside its group
	HasDominant   bool // false when DominantCount could not be recovered
	Rank          int  // 1-based after RankMotifs
}

var countPattern = regexp.MustCompile(`^\((\d+)`)

// DominantCount recovers the count of motif from an
// "Original Sequences (count, average position)" cell such as
// "MKL (4, 12.50%), KLM (2, 30.00%)". The entry whose leading token equals
// motif is used; a motif that only appears inside another token does not match.
func DominantCount(description, motif string) (int, bool) {
	for _, entry := range strings.Split(description, ", ") {
		entry = strings.TrimSpace(entry)
		name, rest, found := strings.Cut(entry, " ")
		if !found || name != motif {
			continue
		}
		m := countPattern.FindStringSubmatch(strings.TrimSpace(rest))
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// RankMotifs keeps rows with Count above threshold whose motif is exactly
// unitLength residues long, sorts them by Count desc, DominantCount desc
// (missing counts last) and motif text asc, then numbers them from 1.
// The input slice is not modified.
func RankMotifs(rows []MotifRow, unitLength, threshold int) []MotifRow {
	var kept []MotifRow
	for _, r := range rows {
		if r.Count <= threshold {
			continue
		}
		if r.Motif == anagram.NotAvailable || utf8.RuneCountInString(r.Motif) != unitLength {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.HasDominant != b.HasDominant {
			return a.HasDominant
		}
		if a.DominantCount != b.DominantCount {
			return a.DominantCount > b.DominantCount
		}
		return a.Motif < b.Motif
	})

	for i := range kept {
		kept[i].Rank = i + 1
	}
	return kept
}
