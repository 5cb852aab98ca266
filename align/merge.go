package align

import "sort"

// mergeStrand runs the tolerance scan over one orientation's regions, which
// must already be sorted by (Start, End).  The open region is a local
// accumulator; input regions are never mutated.
func mergeStrand(rgns []Region, tol int32) []Region {
	var out []Region
	var last int32
	open := false
	var cur Region
	for _, r := range rgns {
		if !open {
			cur = cloneRegion(r)
			last = cur.End
			open = true
			continue
		}
		if r.End < cur.End {
			// Fully contained in the open region, already covered.
			continue
		}
		if r.Start-last < tol {
			cur.End = r.End
			cur.Length += r.Length
			cur.Hits = append(cur.Hits, r.Hits...)
		} else {
			out = append(out, cur)
			cur = cloneRegion(r)
		}
		last = cur.End
	}
	if open {
		out = append(out, cur)
	}
	return out
}

func cloneRegion(r Region) Region {
	c := r
	c.Hits = make([]HitPair, len(r.Hits))
	copy(c.Hits, r.Hits)
	return c
}

// Merge sorts rgns by (Start, End) and merges regions whose gap is below
// tol, one independent scan per orientation.  The result is the merged
// forward regions followed by the merged reverse regions, in that order.
// Merging with the same tolerance is idempotent.
func Merge(rgns []Region, tol int32) []Region {
	sorted := make([]Region, len(rgns))
	copy(sorted, rgns)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	var fwd, rev []Region
	for _, r := range sorted {
		if r.Orient == 0 {
			fwd = append(fwd, r)
		} else {
			rev = append(rev, r)
		}
	}
	return append(mergeStrand(fwd, tol), mergeStrand(rev, tol)...)
}
