package combinator

import (
	"errors"
	"reflect"
	"testing"
)

func ranked3() []MotifRow {
	return []MotifRow{
		{Motif: "AAA", Count: 3, Rank: 1},
		{Motif: "BBB", Count: 2, Rank: 2},
		{Motif: "CCC", Count: 1, Rank: 3},
	}
}

func Test_GenerateCombinations(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   []Combination
	}{
		{
			"pairs",
			6,
			[]Combination{
				{Sequence: "AAABBB", Unit: 3, Target: 6, MaxRank: 2, N: 2},
				{Sequence: "BBBCCC", Unit: 3, Target: 6, MaxRank: 3, N: 2},
			},
		},
		{
			"triple",
			9,
			[]Combination{{Sequence: "AAABBBCCC", Unit: 3, Target: 9, MaxRank: 3, N: 3}},
		},
		{
			"singles",
			3,
			[]Combination{
				{Sequence: "AAA", Unit: 3, Target: 3, MaxRank: 1, N: 1},
				{Sequence: "BBB", Unit: 3, Target: 3, MaxRank: 2, N: 1},
				{Sequence: "CCC", Unit: 3, Target: 3, MaxRank: 3, N: 1},
			},
		},
		{"window longer than list", 12, nil},
		{"unit exceeds target", 2, nil},
		{"negative target", -3, nil},
		{"zero target", 0, nil},
		{"not a multiple", 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateCombinations(ranked3(), 3, tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_GenerateCombinations_lengthInvariant(t *testing.T) {
	rows := []MotifRow{{Motif: "AAAA", Rank: 1}, {Motif: "BBB", Rank: 2}}
	if _, err := GenerateCombinations(rows, 3, 6); !errors.Is(err, ErrLengthInvariant) {
		t.Errorf("got %v, want ErrLengthInvariant", err)
	}
}

func Test_TargetLengths(t *testing.T) {
	tests := []struct {
		min, max, unit int
		want           []int
	}{
		{3, 12, 3, []int{3, 6, 9, 12}},
		{0, 6, 3, []int{3, 6}},
		{-3, 6, 3, []int{3, 6}},
		{-9, -3, 3, nil},
		{4, 12, 3, nil},
		{3, 12, 0, nil},
	}
	for _, tt := range tests {
		if got := TargetLengths(tt.min, tt.max, tt.unit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TargetLengths(%d, %d, %d) = %v, want %v", tt.min, tt.max, tt.unit, got, tt.want)
		}
	}
}

func Test_Label(t *testing.T) {
	c := Combination{Sequence: "AAABBB", Unit: 3, Target: 6, MaxRank: 2, N: 2}
	if c.Label() != "3_6_2_2" {
		t.Errorf("Label() = %q", c.Label())
	}
	if h := c.Header(7); h != "Combination_7_Unit3_Len6_MaxRank2_N2" {
		t.Errorf("Header(7) = %q", h)
	}

	unit, target, maxRank, n, err := ParseLabel(c.Label())
	if err != nil || unit != 3 || target != 6 || maxRank != 2 || n != 2 {
		t.Errorf("ParseLabel = %d %d %d %d %v", unit, target, maxRank, n, err)
	}
	for _, bad := range []string{"3_6_2", "3_6_x_2", "", "3_6_2_2_1"} {
		if _, _, _, _, err := ParseLabel(bad); !errors.Is(err, ErrBadLabel) {
			t.Errorf("ParseLabel(%q) = %v, want ErrBadLabel", bad, err)
		}
	}
}
