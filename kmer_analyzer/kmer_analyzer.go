package kmer_analyzer

import (
	"github.com/pkg/errors"

	common "amp_buddy_go/utils"
)

// ErrBadWindow is returned for a k-mer length range that cannot be scanned.
var ErrBadWindow = errors.New("invalid k-mer length range")

// Hit holds every start index of one k-mer inside one source sequence.
type Hit struct {
	ID     string
	Starts []int
}

// KmerIndex maps every k-mer seen in a corpus to the sequences it occurs in.
// K-mers are kept in first-seen order and so are the hits of each k-mer,
// which keeps every downstream table stable between runs.
type KmerIndex struct {
	MinLength int
	MaxLength int
	Kmers     []string         // first-seen order
	Hits      map[string][]Hit // k-mer -> hits, first-seen id order
	Lengths   map[string]int   // residue count per source id
	Total     int              // sequences scanned, denominator for percentages
}

// NewKmerIndex prepares an empty index for windows of minLength..maxLength residues.
func NewKmerIndex(minLength, maxLength int) (*KmerIndex, error) {
	if minLength < 1 || maxLength < minLength {
		return nil, errors.Wrapf(ErrBadWindow, "min_length=%d max_length=%d", minLength, maxLength)
	}
	return &KmerIndex{
		MinLength: minLength,
		MaxLength: maxLength,
		Hits:      make(map[string][]Hit),
		Lengths:   make(map[string]int),
	}, nil
}

// Add slides every window length across one sequence.
// A sequence shorter than MinLength is counted but contributes no k-mers.
func (idx *KmerIndex) Add(s common.Sequence) {
	idx.Total++
	if _, seen := idx.Lengths[s.ID]; !seen {
		idx.Lengths[s.ID] = len(s.Residues)
	}

	residues := s.Residues
	// every start that fits the shortest window
	for i := 0; i+idx.MinLength <= len(residues); i++ {
		for k := idx.MinLength; k <= idx.MaxLength && i+k <= len(residues); k++ {
			idx.record(residues[i:i+k], s.ID, i)
		}
	}
}

func (idx *KmerIndex) record(kmer, id string, start int) {
	hits, seen := idx.Hits[kmer]
	if !seen {
		idx.Kmers = append(idx.Kmers, kmer)
	}
	// the current sequence is almost always the last hit
	for j := len(hits) - 1; j >= 0; j-- {
		if hits[j].ID == id {
			hits[j].Starts = append(hits[j].Starts, start)
			return
		}
	}
	idx.Hits[kmer] = append(hits, Hit{ID: id, Starts: []int{start}})
}

// ExtractKmers indexes every k-mer of length minLength..maxLength across seqs.
func ExtractKmers(seqs []common.Sequence, minLength, maxLength int) (*KmerIndex, error) {
	idx, err := NewKmerIndex(minLength, maxLength)
	if err != nil {
		return nil, err
	}
	for _, s := range seqs {
		idx.Add(s)
	}
	return idx, nil
}
