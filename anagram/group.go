// Package anagram groups shared k-mers that are permutations of one another
// and reports which original subsequences dominate each group.
package anagram

import (
	"sort"

	"amp_buddy_go/kmer_analyzer"
)

// Signature returns the characters of s in sorted order.
// Two strings are anagrams exactly when their signatures are equal.
func Signature(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

// IsAnagram reports whether a and b hold the same multiset of characters.
func IsAnagram(a, b string) bool {
	return len(a) == len(b) && Signature(a) == Signature(b)
}

// Group is every occurrence of every retained subsequence sharing a signature.
type Group struct {
	Signature   string
	Occurrences []kmer_analyzer.Occurrence // unique on (ID, Position)
}

// Count is the number of distinct source ids in the group.
func (g Group) Count() int {
	ids := make(map[string]struct{}, len(g.Occurrences))
	for _, o := range g.Occurrences {
		ids[o.ID] = struct{}{}
	}
	return len(ids)
}

type occKey struct {
	id  string
	pos float64
}

// GroupAnagrams unions the occurrence sets of all identical sequences that
// share a signature. Groups spanning fewer than two ids are dropped.
// Groups come back in the order their signature was first met.
func GroupAnagrams(set *kmer_analyzer.IdenticalSet) []Group {
	var order []string
	merged := make(map[string]*Group)
	seen := make(map[string]map[occKey]struct{})

	for _, e := range set.Entries {
		sig := Signature(e.Sequence)
		g, ok := merged[sig]
		if !ok {
			g = &Group{Signature: sig}
			merged[sig] = g
			seen[sig] = make(map[occKey]struct{})
			order = append(order, sig)
		}
		for _, o := range e.Occurrences {
			key := occKey{o.ID, o.Position}
			if _, dup := seen[sig][key]; dup {
				continue
			}
			seen[sig][key] = struct{}{}
			g.Occurrences = append(g.Occurrences, o)
		}
	}

	groups := make([]Group, 0, len(order))
	for _, sig := range order {
		if g := merged[sig]; g.Count() > 1 {
			groups = append(groups, *g)
		}
	}
	return groups
}
