package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mismatchSeg(refID, refStart, tgtID, tgtStart, n uint32) Segment {
	return Segment{
		Ref:    SeqLocus{ID: refID, Start: refStart, Len: n},
		Target: SeqLocus{ID: tgtID, Start: tgtStart, Len: n},
		Kind:   Mismatch,
	}
}

func TestMismatchNoShift(t *testing.T) {
	refSeq := "ACGTACGT"
	ctgSeq := "ACGAACGT"
	set, err := Calls([]Segment{mismatchSeg(0, 3, 5, 3, 1)}, 100, 0, refSeq, ctgSeq, 0)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	alleles := set.Get(Key{RefID: 0, Pos: 104})
	require.NotNil(t, alleles)
	c := alleles[AlleleKey{TargetID: 5, Strand: 0}]
	assert.Equal(t, "T", c.RefBases)
	assert.Equal(t, "A", c.AltBases)
	assert.Equal(t, byte('X'), c.Kind)
	assert.Equal(t, LocusTriple{ID: 0, Pos: 104, Len: 1}, c.Ref)
}

func TestMismatchSliceLength(t *testing.T) {
	refSeq := "AAACCCGGG"
	ctgSeq := "AAATTTGGG"
	set, err := Calls([]Segment{mismatchSeg(1, 3, 2, 3, 3)}, 0, 0, refSeq, ctgSeq, 0)
	require.NoError(t, err)
	c := set.Get(Key{RefID: 1, Pos: 4})[AlleleKey{TargetID: 2, Strand: 0}]
	assert.Equal(t, "CCC", c.RefBases)
	assert.Equal(t, "TTT", c.AltBases)
}

func TestInsertionLeftShift(t *testing.T) {
	// The contig carries one extra AT copy inside an AT run; the engine
	// reports the insertion at the right end of the run.
	refSeq := "CGTATATATG"
	ctgSeq := "CGTATATATATG"
	seg := Segment{
		Ref:    SeqLocus{ID: 0, Start: 9, Len: 0},
		Target: SeqLocus{ID: 3, Start: 9, Len: 2},
		Kind:   Insertion,
	}
	set, err := Calls([]Segment{seg}, 0, 0, refSeq, ctgSeq, 0)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	alleles := set.Get(Key{RefID: 0, Pos: 2})
	require.NotNil(t, alleles, "insertion should shift to the leftmost anchor")
	c := alleles[AlleleKey{TargetID: 3, Strand: 0}]
	assert.Equal(t, "G", c.RefBases)
	assert.Equal(t, "GTA", c.AltBases)
}

func TestInsertionNormalizationIdempotent(t *testing.T) {
	refSeq := "CGTATATATG"
	ctgSeq := "CGTATATATATG"
	seg := Segment{
		// Already at the leftmost representation.
		Ref:    SeqLocus{ID: 0, Start: 2, Len: 0},
		Target: SeqLocus{ID: 3, Start: 2, Len: 2},
		Kind:   Insertion,
	}
	set, err := Calls([]Segment{seg}, 0, 0, refSeq, ctgSeq, 0)
	require.NoError(t, err)
	c := set.Get(Key{RefID: 0, Pos: 2})[AlleleKey{TargetID: 3, Strand: 0}]
	assert.Equal(t, "G", c.RefBases)
	assert.Equal(t, "GTA", c.AltBases)
}

func TestDeletionLeftShift(t *testing.T) {
	refSeq := "CGTATATATATG"
	ctgSeq := "CGTATATATG"
	seg := Segment{
		Ref:    SeqLocus{ID: 0, Start: 9, Len: 2},
		Target: SeqLocus{ID: 3, Start: 9, Len: 0},
		Kind:   Deletion,
	}
	set, err := Calls([]Segment{seg}, 0, 0, refSeq, ctgSeq, 0)
	require.NoError(t, err)
	c := set.Get(Key{RefID: 0, Pos: 2})[AlleleKey{TargetID: 3, Strand: 0}]
	require.NotEqual(t, Call{}, c)
	assert.Equal(t, "GTA", c.RefBases)
	assert.Equal(t, "G", c.AltBases)
}

func TestIndelShiftClampsAtSequenceStart(t *testing.T) {
	// A repeat run reaching the sequence start: the shift must stop at the
	// first position that still has an anchor base, not read before index 0.
	refSeq := "ATATG"
	ctgSeq := "ATATATG"
	seg := Segment{
		Ref:    SeqLocus{ID: 0, Start: 3, Len: 0},
		Target: SeqLocus{ID: 1, Start: 3, Len: 2},
		Kind:   Insertion,
	}
	set, err := Calls([]Segment{seg}, 0, 0, refSeq, ctgSeq, 0)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	alleles := set.Get(Key{RefID: 0, Pos: 1})
	require.NotNil(t, alleles)
	c := alleles[AlleleKey{TargetID: 1, Strand: 0}]
	assert.Equal(t, "A", c.RefBases)
	assert.Equal(t, "ATA", c.AltBases)
}

func TestIndelWithoutAnchorIsBoundsError(t *testing.T) {
	seg := Segment{
		Ref:    SeqLocus{ID: 0, Start: 0, Len: 0},
		Target: SeqLocus{ID: 1, Start: 0, Len: 2},
		Kind:   Insertion,
	}
	_, err := Calls([]Segment{seg}, 0, 0, "ACGT", "ATACGT", 0)
	require.Error(t, err)
	_, ok := err.(*BoundsError)
	assert.True(t, ok, "expected *BoundsError, got %T", err)
}

func TestSegmentPastSequenceEndIsBoundsError(t *testing.T) {
	_, err := Calls([]Segment{mismatchSeg(0, 3, 1, 3, 4)}, 0, 0, "ACGT", "ACGT", 0)
	require.Error(t, err)
	_, ok := err.(*BoundsError)
	assert.True(t, ok)
}

func TestMatchAndUnknownKindsIgnored(t *testing.T) {
	segs := []Segment{
		{Ref: SeqLocus{0, 0, 4}, Target: SeqLocus{1, 0, 4}, Kind: Match},
		{Ref: SeqLocus{0, 0, 4}, Target: SeqLocus{1, 0, 4}, Kind: Unspecified},
		{Ref: SeqLocus{0, 0, 4}, Target: SeqLocus{1, 0, 4}, Kind: SegKind('Z')},
	}
	set, err := Calls(segs, 0, 0, "ACGT", "ACGT", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestAllelesBucketedByContigAndStrand(t *testing.T) {
	refSeq := "ACGT"
	set := &CallSet{}
	// Two contigs carry different alleles at the same reference site.
	err := set.Add([]Segment{mismatchSeg(0, 1, 10, 1, 1)}, 0, 0, refSeq, "AAGT", 0)
	require.NoError(t, err)
	err = set.Add([]Segment{mismatchSeg(0, 1, 11, 1, 1)}, 0, 0, refSeq, "ATGT", 1)
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	alleles := set.Get(Key{RefID: 0, Pos: 2})
	require.Equal(t, 2, len(alleles))
	assert.Equal(t, "A", alleles[AlleleKey{TargetID: 10, Strand: 0}].AltBases)
	assert.Equal(t, "T", alleles[AlleleKey{TargetID: 11, Strand: 1}].AltBases)
}
