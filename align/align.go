// Package align turns raw minimizer hit-pair chains reported by the sequence
// index engine into merged, orientation-aware alignment regions per target
// sequence.
package align

import (
	"sort"
	"sync"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// Span is one side of a hit-pair: a half-open coordinate interval on either
// the query or the target sequence, plus the alignment orientation of that
// side (0=forward, 1=reverse).
type Span struct {
	Start  int32
	End    int32
	Orient uint8
}

// HitPair is one matched minimizer-pair coordinate between the query and a
// target sequence, as produced by the index engine's sparse chaining.
type HitPair struct {
	Query  Span
	Target Span
}

// ScoredChain is one chained group of hit-pairs for a single target
// sequence, with the chaining score assigned by the engine.
type ScoredChain struct {
	Score float32
	Hits  []HitPair
}

// Region is the bounding target-coordinate interval of one chain (or, after
// merging, of several nearby chains).  Start <= End always.  Orient is the
// majority orientation of the contributing hit-pairs; a forward/reverse tie
// resolves to reverse.
type Region struct {
	Start  int32
	End    int32
	Length int32
	Orient uint8
	// Hits are the hit-pairs backing this region.  Merging concatenates
	// the hits of the merged-in regions.
	Hits []HitPair
}

// chainOrient runs the majority vote over one chain: a hit-pair votes
// forward when its query and target orientation bits agree, reverse
// otherwise.  Forward wins only on a strict majority.
func chainOrient(hits []HitPair) uint8 {
	var fwd, rev int
	for _, hp := range hits {
		if hp.Query.Orient == hp.Target.Orient {
			fwd++
		} else {
			rev++
		}
	}
	if fwd > rev {
		return 0
	}
	return 1
}

// Regions derives the bounding regions for one target sequence.  Chains with
// two or fewer hit-pairs are noise and contribute nothing.  The returned
// slice may be empty.
func Regions(chains []ScoredChain) []Region {
	var rgns []Region
	for _, c := range chains {
		if len(c.Hits) <= 2 {
			continue
		}
		orient := chainOrient(c.Hits)
		bgn := c.Hits[0].Target.Start
		end := bgn
		for _, hp := range c.Hits {
			if hp.Target.Start < bgn {
				bgn = hp.Target.Start
			}
			if hp.Target.End < bgn {
				bgn = hp.Target.End
			}
			if hp.Target.Start > end {
				end = hp.Target.Start
			}
			if hp.Target.End > end {
				end = hp.Target.End
			}
		}
		hits := make([]HitPair, len(c.Hits))
		copy(hits, c.Hits)
		rgns = append(rgns, Region{
			Start:  bgn,
			End:    end,
			Length: end - bgn,
			Orient: orient,
			Hits:   hits,
		})
	}
	return rgns
}

// AggregateAndMerge derives regions for every target sequence and, when
// tol > 0, merges nearby same-orientation regions per target.  tol <= 0
// disables merging.  Each target id is independent; they are processed in
// parallel.
func AggregateAndMerge(hits map[uint32][]ScoredChain, tol int32) map[uint32][]Region {
	ids := make([]uint32, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make(map[uint32][]Region, len(ids))
	var mu sync.Mutex
	err := traverse.Each(len(ids), func(i int) error {
		id := ids[i]
		rgns := Regions(hits[id])
		if len(rgns) == 0 {
			return nil
		}
		if tol > 0 {
			rgns = Merge(rgns, tol)
		}
		mu.Lock()
		out[id] = rgns
		mu.Unlock()
		return nil
	})
	if err != nil {
		// The per-target workers never fail.
		log.Panicf("align.AggregateAndMerge: %v", err)
	}
	return out
}
