package kmer_analyzer

import (
	"errors"
	"reflect"
	"testing"

	common "amp_buddy_go/utils"
)

func Test_ExtractKmers(t *testing.T) {
	type args struct {
		seqs []common.Sequence
		min  int
		max  int
	}
	tests := []struct {
		name  string
		args  args
		kmers []string
		total int
	}{
		{
			"single window length",
			args{[]common.Sequence{{ID: "A", Residues: "MKLVST"}}, 3, 3},
			[]string{"MKL", "KLV", "LVS", "VST"},
			1,
		},
		{
			"length range",
			args{[]common.Sequence{{ID: "A", Residues: "ABC"}}, 1, 2},
			[]string{"A", "AB", "B", "BC", "C"},
			1,
		},
		{
			"sequence shorter than window contributes nothing",
			args{[]common.Sequence{{ID: "A", Residues: "MK"}, {ID: "B", Residues: "MKL"}}, 3, 3},
			[]string{"MKL"},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ExtractKmers(tt.args.seqs, tt.args.min, tt.args.max)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(idx.Kmers, tt.kmers) {
				t.Errorf("Kmers = %v, want %v", idx.Kmers, tt.kmers)
			}
			if idx.Total != tt.total {
				t.Errorf("Total = %d, want %d", idx.Total, tt.total)
			}
		})
	}
}

func Test_ExtractKmers_badWindow(t *testing.T) {
	for _, w := range [][2]int{{0, 3}, {4, 3}, {-1, -1}} {
		if _, err := ExtractKmers(nil, w[0], w[1]); !errors.Is(err, ErrBadWindow) {
			t.Errorf("window %v: got %v, want ErrBadWindow", w, err)
		}
	}
}

func Test_ExtractKmers_repeatedStarts(t *testing.T) {
	idx, err := ExtractKmers([]common.Sequence{{ID: "X", Residues: "AAAA"}}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Hit{{ID: "X", Starts: []int{0, 1, 2}}}
	if got := idx.Hits["AA"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Hits[AA] = %v, want %v", got, want)
	}
}

func Test_Aggregate(t *testing.T) {
	seqs := []common.Sequence{
		{ID: "A", Residues: "MKLVST"},
		{ID: "B", Residues: "VSTMKL"},
	}
	idx, err := ExtractKmers(seqs, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	set := Aggregate(idx)

	if len(set.Entries) != 2 {
		t.Fatalf("got %d entries, want 2 (MKL, VST): %+v", len(set.Entries), set.Entries)
	}
	mkl, ok := set.Lookup("MKL")
	if !ok {
		t.Fatal("MKL not retained")
	}
	want := []Occurrence{
		{ID: "A", Position: 0, Percent: 0},
		{ID: "B", Position: 3, Percent: 50},
	}
	if !reflect.DeepEqual(mkl.Occurrences, want) {
		t.Errorf("MKL occurrences = %+v, want %+v", mkl.Occurrences, want)
	}
	if _, ok := set.Lookup("KLV"); ok {
		t.Error("KLV is only in A and should be dropped")
	}
	if got := set.Counts(); !reflect.DeepEqual(got, map[string]int{"MKL": 2, "VST": 2}) {
		t.Errorf("Counts() = %v", got)
	}
}

func Test_Aggregate_averagesWithinID(t *testing.T) {
	seqs := []common.Sequence{
		{ID: "X", Residues: "AAAA"},
		{ID: "Y", Residues: "AA"},
	}
	idx, _ := ExtractKmers(seqs, 2, 2)
	set := Aggregate(idx)

	aa, ok := set.Lookup("AA")
	if !ok {
		t.Fatal("AA not retained")
	}
	if aa.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", aa.Count())
	}
	if aa.Occurrences[0].Position != 1 || aa.Occurrences[0].Percent != 25 {
		t.Errorf("X occurrence = %+v, want position 1 (25%%)", aa.Occurrences[0])
	}
}

// every retained entry must span at least two distinct ids
func Test_Aggregate_distinctIDs(t *testing.T) {
	seqs := []common.Sequence{
		{ID: "A", Residues: "GIGKFLHSAKKFGKAFVGEIMNS"},
		{ID: "B", Residues: "GIGKFLKKAKKFGKAFVKILKK"},
		{ID: "C", Residues: "KWKLFKKIGAVLKVL"},
		{ID: "A", Residues: "FLHSAKKF"},
	}
	idx, _ := ExtractKmers(seqs, 2, 4)
	for _, e := range Aggregate(idx).Entries {
		ids := map[string]bool{}
		for _, o := range e.Occurrences {
			if ids[o.ID] {
				t.Errorf("%s lists %s twice", e.Sequence, o.ID)
			}
			ids[o.ID] = true
		}
		if len(ids) < 2 {
			t.Errorf("%s retained with %d ids", e.Sequence, len(ids))
		}
	}
}

func Test_IdenticalSet_Rows(t *testing.T) {
	idx, _ := ExtractKmers([]common.Sequence{
		{ID: "A", Residues: "MKLV"},
		{ID: "B", Residues: "VMKL"},
		{ID: "C", Residues: "WWWW"},
	}, 3, 3)
	rows := Aggregate(idx).Rows()

	want := [][]string{
		{"MKL", "A (in 0.00% aa), B (in 25.00% aa)", "66.67%", "2", "12.50%"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Rows() = %v, want %v", rows, want)
	}
}
