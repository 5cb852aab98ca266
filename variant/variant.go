// Package variant canonicalizes aligned-segment differences between a
// reference sequence and an assembly contig into left-normalized variant
// calls, and flattens them into VCF-style records.
package variant

import (
	"fmt"
)

// SeqLocus addresses a substring of one sequence: sequence id, 0-based
// start offset, and length.
type SeqLocus struct {
	ID    uint32
	Start uint32
	Len   uint32
}

// SegKind classifies one aligned segment.  The values are the conventional
// single-letter alignment codes; any other value behaves as Unspecified.
type SegKind byte

const (
	Match       SegKind = 'M'
	Mismatch    SegKind = 'X'
	Insertion   SegKind = 'I'
	Deletion    SegKind = 'D'
	Unspecified SegKind = '?'
)

// Segment is one typed aligned segment between the reference and a contig.
type Segment struct {
	Ref    SeqLocus
	Target SeqLocus
	Kind   SegKind
}

// Key identifies a variant site: reference sequence id and 1-based
// reference position (after indel left-normalization).
type Key struct {
	RefID uint32
	Pos   int
}

// AlleleKey buckets the calls at one site by the contig carrying the allele
// and the alignment strand, so different haplotypes can hold different
// alleles at the same reference position.
type AlleleKey struct {
	TargetID uint32
	Strand   uint8
}

// LocusTriple is the (id, position, length) form a Call carries for each of
// its two sides.
type LocusTriple struct {
	ID  uint32
	Pos int
	Len int
}

// Call is one canonicalized variant call.
type Call struct {
	Kind     byte
	RefBases string
	AltBases string
	Ref      LocusTriple
	Target   LocusTriple
	Strand   uint8
}

// BoundsError reports an aligned segment whose coordinates do not fit the
// supplied sequences, including an indel too close to the sequence start to
// carry an anchor base.  Such segments are rejected before any slicing.
type BoundsError struct {
	Kind   SegKind
	Ref    SeqLocus
	Target SeqLocus
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("variant: %c segment out of sequence bounds (ref %d:%d+%d, target %d:%d+%d)",
		e.Kind, e.Ref.ID, e.Ref.Start, e.Ref.Len, e.Target.ID, e.Target.Start, e.Target.Len)
}
