package sanity_check

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"amp_buddy_go/anagram"
	"amp_buddy_go/combinator"
	"amp_buddy_go/config"
	"amp_buddy_go/motif_finder"
	common "amp_buddy_go/utils"
)

// Verify runs both pipelines on a tiny built-in corpus and compares the
// results against values worked out by hand.
func Verify() error {
	seqs := []common.Sequence{
		{ID: "A", Residues: "MKLVST"},
		{ID: "B", Residues: "VSTMKL"},
	}
	motifs, err := motif_finder.FindMotifs(seqs, 3, 3, anagram.TieLexical, nil)
	if err != nil {
		return err
	}
	entry, ok := motifs.Identical.Lookup("MKL")
	if !ok || entry.Count() != 2 {
		return errors.New("MKL should be shared by A and B")
	}
	if entry.Occurrences[0].Position != 0 || entry.Occurrences[1].Position != 3 {
		return errors.Errorf("MKL positions: got %+v", entry.Occurrences)
	}

	ranked := combinator.RankMotifs([]combinator.MotifRow{
		{Motif: "CCC", Count: 3, DominantCount: 1, HasDominant: true},
		{Motif: "AAA", Count: 5, DominantCount: 2, HasDominant: true},
		{Motif: "BBB", Count: 5, DominantCount: 1, HasDominant: true},
	}, 3, 0)
	combos, err := combinator.GenerateCombinations(ranked, 3, 6)
	if err != nil {
		return err
	}
	if len(combos) != 2 || combos[0].Sequence != "AAABBB" || combos[1].MaxRank != 3 {
		return errors.Errorf("combinations: got %+v", combos)
	}
	return nil
}

// Run performs a simple sanity check to ensure AMP Buddy is
// running properly, printing a helpful message and version number.
func Run(args []string) {
	if err := Verify(); err != nil {
		fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running AMP Buddy! (%s)\n", config.Main_version)
}
