package variant

import (
	"sort"

	"github.com/biogo/store/llrb"
)

// siteCalls is one tree node: every allele observed at one reference site.
type siteCalls struct {
	key     Key
	alleles map[AlleleKey]Call
}

// Compare orders sites by (RefID, Pos) for use in llrb.
func (s *siteCalls) Compare(c2 llrb.Comparable) int {
	o := c2.(*siteCalls)
	if s.key.RefID != o.key.RefID {
		if s.key.RefID < o.key.RefID {
			return -1
		}
		return 1
	}
	return s.key.Pos - o.key.Pos
}

// CallSet holds variant calls keyed by reference site, ordered so the
// emission pass can walk sites in (RefID, Pos) order.
type CallSet struct {
	tree llrb.Tree
}

func (s *CallSet) put(k Key, a AlleleKey, c Call) {
	if got := s.tree.Get(&siteCalls{key: k}); got != nil {
		got.(*siteCalls).alleles[a] = c
		return
	}
	s.tree.Insert(&siteCalls{key: k, alleles: map[AlleleKey]Call{a: c}})
}

// Len returns the number of distinct reference sites with at least one call.
func (s *CallSet) Len() int { return s.tree.Len() }

// Get returns the alleles at one site, or nil.
func (s *CallSet) Get(k Key) map[AlleleKey]Call {
	got := s.tree.Get(&siteCalls{key: k})
	if got == nil {
		return nil
	}
	return got.(*siteCalls).alleles
}

// Each visits every site in ascending (RefID, Pos) order.
func (s *CallSet) Each(f func(Key, map[AlleleKey]Call)) {
	s.tree.Do(func(c llrb.Comparable) bool {
		sc := c.(*siteCalls)
		f(sc.key, sc.alleles)
		return false
	})
}

// sortedAlleles returns the allele keys of one site ordered by
// (TargetID, Strand), which fixes the genotype-index assignment.
func sortedAlleles(alleles map[AlleleKey]Call) []AlleleKey {
	keys := make([]AlleleKey, 0, len(alleles))
	for a := range alleles {
		keys = append(keys, a)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TargetID != keys[j].TargetID {
			return keys[i].TargetID < keys[j].TargetID
		}
		return keys[i].Strand < keys[j].Strand
	})
	return keys
}
