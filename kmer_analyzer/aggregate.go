package kmer_analyzer

// Occurrence is one source sequence carrying a k-mer.
type Occurrence struct {
	ID       string
	Position float64 // mean zero-based start index within ID
	Percent  float64 // Position relative to the length of ID, 0-100
}

// IdenticalEntry is a k-mer found in at least two distinct source sequences.
// Occurrences hold one element per source id.
type IdenticalEntry struct {
	Sequence    string
	Occurrences []Occurrence
}

// Count is the number of distinct source ids carrying the k-mer.
func (e IdenticalEntry) Count() int {
	return len(e.Occurrences)
}

// IdenticalSet is the output of Aggregate, in first-seen k-mer order.
type IdenticalSet struct {
	Entries []IdenticalEntry
	Total   int // sequences in the corpus
	index   map[string]int
}

// Lookup returns the entry for a subsequence, if it was retained.
func (s *IdenticalSet) Lookup(sequence string) (IdenticalEntry, bool) {
	i, ok := s.index[sequence]
	if !ok {
		return IdenticalEntry{}, false
	}
	return s.Entries[i], true
}

// Counts maps every retained subsequence to its distinct-id count.
func (s *IdenticalSet) Counts() map[string]int {
	counts := make(map[string]int, len(s.Entries))
	for _, e := range s.Entries {
		counts[e.Sequence] = e.Count()
	}
	return counts
}

// Aggregate collapses repeated hits within one source id into a single
// averaged occurrence and keeps only k-mers seen in two or more ids.
func Aggregate(idx *KmerIndex) *IdenticalSet {
	set := &IdenticalSet{
		Total: idx.Total,
		index: make(map[string]int),
	}
	for _, kmer := range idx.Kmers {
		hits := idx.Hits[kmer]
		if len(hits) < 2 {
			continue
		}
		occs := make([]Occurrence, 0, len(hits))
		for _, h := range hits {
			sum := 0
			for _, start := range h.Starts {
				sum += start
			}
			pos := float64(sum) / float64(len(h.Starts))
			occs = append(occs, Occurrence{
				ID:       h.ID,
				Position: pos,
				Percent:  pos / float64(idx.Lengths[h.ID]) * 100,
			})
		}
		set.index[kmer] = len(set.Entries)
		set.Entries = append(set.Entries, IdenticalEntry{Sequence: kmer, Occurrences: occs})
	}
	return set
}
