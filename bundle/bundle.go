// Package bundle smooths the per-position principal-bundle decomposition of
// a contig into contiguous partitions: short runs are dropped as noise and
// nearby runs with the same bundle identity are fused.
package bundle

import "fmt"

// Marker is one minimizer-pair anchor on a contig: the two minimizer
// hashes, the start/end positions on the contig, and the anchor's own
// orientation.
type Marker struct {
	Shimmer0 uint64
	Shimmer1 uint64
	Start    int32
	End      int32
	Orient   uint8
}

// Info is the decomposition engine's bundle tag for one marker: bundle id,
// the bundle's direction, and the marker's position inside the bundle.
type Info struct {
	ID        int32
	Direction uint8
	Pos       int32
}

// Step is one element of the decomposition stream.  A nil Bundle means the
// marker was not assigned to any bundle; such steps are skipped.
type Step struct {
	Marker Marker
	Bundle *Info
}

// Assignment is a marker together with its resolved bundle identity.
// Direction is relative to the bundle: 0 when the marker's own orientation
// matches the bundle's direction, 1 otherwise.
type Assignment struct {
	Marker    Marker
	BundleID  int32
	Direction uint8
	Pos       int32
}

// Partition is a contiguous run of assignments sharing (BundleID,
// Direction).
type Partition []Assignment

// BundleID returns the partition's bundle id.
func (p Partition) BundleID() int32 { return p[0].BundleID }

// Direction returns the partition's bundle-relative direction.
func (p Partition) Direction() uint8 { return p[0].Direction }

// Begin returns the contig start position of the first marker.
func (p Partition) Begin() int32 { return p[0].Marker.Start }

// End returns the contig end position of the last marker.
func (p Partition) End() int32 { return p[len(p)-1].Marker.End }

// span is the contig distance covered by the run, last end minus first
// start.
func (p Partition) span() int32 { return p.End() - p.Begin() }

// Label formats the partition's BED label:
// "bundleID:direction:firstPos:lastPos" using the in-bundle positions of
// the first and last assignment.
func (p Partition) Label() string {
	return fmt.Sprintf("%d:%d:%d:%d", p.BundleID(), p.Direction(), p[0].Pos, p[len(p)-1].Pos)
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// PartitionSteps groups a decomposition stream into partitions.
//
// Phase 1 walks the stream, skipping unassigned steps, and closes the open
// partition whenever (bundle id, relative direction) changes; a closed
// partition is kept only when its span exceeds lenCutoff.  Phase 2 fuses
// adjacent kept partitions with identical identity whose position gap is
// below mergeLength.
func PartitionSteps(steps []Step, lenCutoff, mergeLength int32) []Partition {
	var kept []Partition
	var open Partition
	haveID := false
	var prevID int32
	var prevDir uint8
	for _, st := range steps {
		if st.Bundle == nil {
			continue
		}
		d := uint8(1)
		if st.Marker.Orient == st.Bundle.Direction {
			d = 0
		}
		a := Assignment{
			Marker:    st.Marker,
			BundleID:  st.Bundle.ID,
			Direction: d,
			Pos:       st.Bundle.Pos,
		}
		if haveID && (a.BundleID != prevID || a.Direction != prevDir) {
			if open.span() > lenCutoff {
				kept = append(kept, open)
			}
			open = nil
		}
		open = append(open, a)
		prevID = a.BundleID
		prevDir = a.Direction
		haveID = true
	}
	if len(open) > 0 && open.span() > lenCutoff {
		kept = append(kept, open)
	}
	if len(kept) == 0 {
		return nil
	}

	var out []Partition
	run := kept[0]
	for _, p := range kept[1:] {
		sameIdentity := p.BundleID() == run.BundleID() && p.Direction() == run.Direction()
		if sameIdentity && abs32(p.Begin()-run.End()) < mergeLength {
			run = append(run, p...)
		} else {
			out = append(out, run)
			run = p
		}
	}
	return append(out, run)
}
