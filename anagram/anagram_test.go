package anagram

import (
	"reflect"
	"testing"

	"amp_buddy_go/kmer_analyzer"
	common "amp_buddy_go/utils"
)

func Test_Signature(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"MKL", "KLM"},
		{"KLM", "KLM"},
		{"GIGK", "GGIK"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Signature(tt.in); got != tt.want {
			t.Errorf("Signature(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if !IsAnagram("MKL", "LKM") {
		t.Error("MKL and LKM are anagrams")
	}
	if IsAnagram("MKL", "MKK") || IsAnagram("MKL", "MKLL") {
		t.Error("different multisets reported as anagrams")
	}
}

// MKL is shared by A and B, KLM by C and D
func testSet(t *testing.T) *kmer_analyzer.IdenticalSet {
	t.Helper()
	idx, err := kmer_analyzer.ExtractKmers([]common.Sequence{
		{ID: "A", Residues: "MKLQ"},
		{ID: "B", Residues: "QMKL"},
		{ID: "C", Residues: "KLMW"},
		{ID: "D", Residues: "WKLM"},
	}, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	return kmer_analyzer.Aggregate(idx)
}

func Test_GroupAnagrams(t *testing.T) {
	set := testSet(t)
	groups := GroupAnagrams(set)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(groups), groups)
	}
	g := groups[0]
	if g.Signature != "KLM" {
		t.Errorf("Signature = %q, want KLM", g.Signature)
	}
	if g.Count() != 4 {
		t.Errorf("Count() = %d, want 4", g.Count())
	}
	for _, e := range set.Entries {
		if Signature(e.Sequence) != g.Signature {
			t.Errorf("%s is in the set but not an anagram of %s", e.Sequence, g.Signature)
		}
	}
}

func Test_GroupAnagrams_filterAndDedup(t *testing.T) {
	set := &kmer_analyzer.IdenticalSet{Entries: []kmer_analyzer.IdenticalEntry{
		{Sequence: "AB", Occurrences: []kmer_analyzer.Occurrence{{ID: "X", Position: 0}, {ID: "Y", Position: 1}}},
		{Sequence: "BA", Occurrences: []kmer_analyzer.Occurrence{{ID: "X", Position: 0}, {ID: "Z", Position: 2}}},
		{Sequence: "CD", Occurrences: []kmer_analyzer.Occurrence{{ID: "X", Position: 0}, {ID: "X", Position: 4}}},
	}}
	groups := GroupAnagrams(set)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want only AB (CD spans one id)", len(groups))
	}
	want := []kmer_analyzer.Occurrence{{ID: "X", Position: 0}, {ID: "Y", Position: 1}, {ID: "Z", Position: 2}}
	if !reflect.DeepEqual(groups[0].Occurrences, want) {
		t.Errorf("Occurrences = %+v, want %+v", groups[0].Occurrences, want)
	}
}

func Test_Report(t *testing.T) {
	set := testSet(t)
	groups := GroupAnagrams(set)

	tests := []struct {
		name  string
		tie   TieBreak
		first string
		cells []string
	}{
		{
			"lexical tie break",
			TieLexical,
			"KLM",
			[]string{
				"K L M",
				"A (in 0.00% aa), B (in 25.00% aa), C (in 0.00% aa), D (in 25.00% aa)",
				"4",
				"MKL (2, 12.50%), KLM (2, 12.50%)",
				"12.50%",
				"KLM", "2", "12.50%",
				"MKL", "12.50%",
				"N/A", "N/A",
			},
		},
		{
			"encounter tie break",
			TieEncounter,
			"MKL",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Report(groups, set, set.Counts(), tt.tie)
			if len(rows) != 1 {
				t.Fatalf("got %d rows, want 1", len(rows))
			}
			first, ok := rows[0].Place(0)
			if !ok || first.Sequence != tt.first {
				t.Errorf("dominant = %q, want %q", first.Sequence, tt.first)
			}
			if _, ok := rows[0].Place(2); ok {
				t.Error("there is no third contributor")
			}
			if tt.cells != nil {
				if got := rows[0].Cells(); !reflect.DeepEqual(got, tt.cells) {
					t.Errorf("Cells() =\n%q\nwant\n%q", got, tt.cells)
				}
			}
			for _, c := range rows[0].Contributors {
				if !IsAnagram(c.Sequence, rows[0].Signature) {
					t.Errorf("%s claimed for %s", c.Sequence, rows[0].Signature)
				}
			}
		})
	}
}

func Test_Report_weightedOrder(t *testing.T) {
	set := testSet(t)
	counts := map[string]int{"MKL": 7, "KLM": 2}
	rows := Report(GroupAnagrams(set), set, counts, TieLexical)

	if c, _ := rows[0].Place(0); c.Sequence != "MKL" || c.Count != 7 {
		t.Errorf("dominant = %+v, want MKL with 7", c)
	}
}

func Test_Report_notAvailable(t *testing.T) {
	set := testSet(t)
	counts := map[string]int{"KLM": 2}
	rows := Report(GroupAnagrams(set), set, counts, TieLexical)
	cells := rows[0].Cells()

	if cells[3] != "MKL (N/A), KLM (2, 12.50%)" {
		t.Errorf("description = %q", cells[3])
	}
	if len(rows[0].Ranked) != 1 || rows[0].Ranked[0].Sequence != "KLM" {
		t.Errorf("Ranked = %+v, want only KLM", rows[0].Ranked)
	}
	if cells[8] != NotAvailable {
		t.Errorf("second place = %q, want %s", cells[8], NotAvailable)
	}
}

func Test_ParseTieBreak(t *testing.T) {
	if tb, err := ParseTieBreak("encounter"); err != nil || tb != TieEncounter {
		t.Errorf("encounter: got %v, %v", tb, err)
	}
	if tb, err := ParseTieBreak(""); err != nil || tb != TieLexical {
		t.Errorf("empty: got %v, %v", tb, err)
	}
	if _, err := ParseTieBreak("random"); err == nil {
		t.Error("expected an error for an unknown tie break")
	}
}
