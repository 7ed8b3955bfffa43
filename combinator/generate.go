package combinator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrLengthInvariant means a window of ranked motifs did not add up to
	// the target length. RankMotifs makes this unreachable.
	ErrLengthInvariant = errors.New("combination length does not match target")

	// ErrBadLabel is returned by ParseLabel for a malformed label.
	ErrBadLabel = errors.New("malformed combination label")
)

// Combination is N consecutive ranked motifs joined end to end.
type Combination struct {
	Sequence string
	Unit     int
	Target   int
	MaxRank  int
	N        int
}

// Label encodes the combination parameters as "unit_target_maxrank_n".
func (c Combination) Label() string {
	return fmt.Sprintf("%d_%d_%d_%d", c.Unit, c.Target, c.MaxRank, c.N)
}

// Header is the FASTA header of the n-th combination written (1-based).
func (c Combination) Header(n int) string {
	return fmt.Sprintf("Combination_%d_Unit%d_Len%d_MaxRank%d_N%d", n, c.Unit, c.Target, c.MaxRank, c.N)
}

// ParseLabel reverses Label.
func ParseLabel(label string) (unit, target, maxRank, n int, err error) {
	parts := strings.Split(label, "_")
	if len(parts) != 4 {
		return 0, 0, 0, 0, errors.Wrapf(ErrBadLabel, "%q", label)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil || v < 0 {
			return 0, 0, 0, 0, errors.Wrapf(ErrBadLabel, "%q", label)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

// TargetLengths lists min..max stepping by unitLength, keeping only lengths
// that are a positive multiple of unitLength. Lengths below unitLength are dropped.
func TargetLengths(minLength, maxLength, unitLength int) []int {
	if unitLength < 1 {
		return nil
	}
	var targets []int
	for t := minLength; t <= maxLength; t += unitLength {
		if t < unitLength || t%unitLength != 0 {
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

// GenerateCombinations slides a window of target/unitLength ranked motifs
// over ranked and joins each window. It returns nothing when the window is
// empty or negative, target is not a multiple of unitLength, or ranked is
// shorter than the window.
func GenerateCombinations(ranked []MotifRow, unitLength, target int) ([]Combination, error) {
	if unitLength < 1 || target%unitLength != 0 {
		return nil, nil
	}
	n := target / unitLength
	if n < 1 || len(ranked) < n {
		return nil, nil
	}

	combos := make([]Combination, 0, len(ranked)-n+1)
	var sb strings.Builder
	for i := 0; i+n <= len(ranked); i++ {
		sb.Reset()
		maxRank := 0
		for _, row := range ranked[i : i+n] {
			sb.WriteString(row.Motif)
			if row.Rank > maxRank {
				maxRank = row.Rank
			}
		}
		joined := sb.String()
		if utf8.RuneCountInString(joined) != target {
			return nil, errors.Wrapf(ErrLengthInvariant, "window at rank %d: %q is not %d long", i+1, joined, target)
		}
		combos = append(combos, Combination{
			Sequence: joined,
			Unit:     unitLength,
			Target:   target,
			MaxRank:  maxRank,
			N:        n,
		})
	}
	return combos, nil
}
