package variant

// Calls canonicalizes the aligned segments of one contig-to-reference
// alignment into a fresh call set.  See CallSet.Add.
func Calls(segs []Segment, refBgn, ctgBgn int, refSeq, ctgSeq string, strand uint8) (*CallSet, error) {
	set := &CallSet{}
	if err := set.Add(segs, refBgn, ctgBgn, refSeq, ctgSeq, strand); err != nil {
		return nil, err
	}
	return set, nil
}

// Add canonicalizes the aligned segments of one contig-to-reference
// alignment and merges the resulting calls into the set.  Adding several
// contigs to one set buckets distinct alleles at a shared reference site by
// (contig, strand).
//
// refSeq and ctgSeq are the two sequences the segment coordinates index
// into; refBgn and ctgBgn are the absolute offsets of those sequences on
// the full reference/contig, added when forming output positions.  strand
// is the contig alignment strand.
//
// Match and Unspecified segments (and unknown kinds) produce nothing.
// Mismatch calls keep the segment's own coordinates.  Insertions and
// deletions are shifted left to their leftmost equivalent representation,
// following the VCF convention for repetitive sequence, and reported with a
// one-base anchor.  The shift stops at the sequence start; a segment whose
// raw coordinates cannot be sliced from the supplied sequences yields a
// *BoundsError.
func (set *CallSet) Add(segs []Segment, refBgn, ctgBgn int, refSeq, ctgSeq string, strand uint8) error {
	for _, s := range segs {
		var key Key
		var refBases, altBases string

		p0 := int(s.Ref.Start)
		p1 := int(s.Target.Start)
		refLen := int(s.Ref.Len)
		tgtLen := int(s.Target.Len)

		switch s.Kind {
		case Mismatch:
			if p0+refLen > len(refSeq) || p1+tgtLen > len(ctgSeq) {
				return &BoundsError{Kind: s.Kind, Ref: s.Ref, Target: s.Target}
			}
			key = Key{RefID: s.Ref.ID, Pos: p0 + refBgn + 1}
			refBases = refSeq[p0 : p0+refLen]
			altBases = ctgSeq[p1 : p1+tgtLen]

		case Insertion:
			// The anchor base and the periodicity probes need one base of
			// context on each side of the insertion point.
			if p0 < 1 || p1 < 1 || p0+refLen > len(refSeq) || p1+tgtLen > len(ctgSeq) {
				return &BoundsError{Kind: s.Kind, Ref: s.Ref, Target: s.Target}
			}
			for p0 >= 2 && p1 >= 2 &&
				refSeq[p0-1] == ctgSeq[p1+tgtLen-1] && refSeq[p0-2] == ctgSeq[p1-2] {
				p0--
				p1--
			}
			key = Key{RefID: s.Ref.ID, Pos: p0 + refBgn}
			refBases = refSeq[p0-1 : p0+refLen]
			altBases = ctgSeq[p1-1 : p1+tgtLen]

		case Deletion:
			if p0 < 1 || p1 < 1 || p0+refLen > len(refSeq) || p1+tgtLen > len(ctgSeq) {
				return &BoundsError{Kind: s.Kind, Ref: s.Ref, Target: s.Target}
			}
			for p0 >= 2 && p1 >= 2 &&
				refSeq[p0+refLen-1] == ctgSeq[p1-1] && refSeq[p0-2] == ctgSeq[p1-2] {
				p0--
				p1--
			}
			key = Key{RefID: s.Ref.ID, Pos: p0 + refBgn}
			refBases = refSeq[p0-1 : p0+refLen]
			altBases = ctgSeq[p1-1 : p1+tgtLen]

		default:
			continue
		}

		set.put(key, AlleleKey{TargetID: s.Target.ID, Strand: strand}, Call{
			Kind:     byte(s.Kind),
			RefBases: refBases,
			AltBases: altBases,
			Ref:      LocusTriple{ID: key.RefID, Pos: key.Pos, Len: refLen},
			Target:   LocusTriple{ID: s.Target.ID, Pos: ctgBgn + int(s.Target.Start), Len: tgtLen},
			Strand:   strand,
		})
	}
	return nil
}
