// Package dna holds small nucleotide-sequence helpers shared by the
// alignment and variant pipelines.
package dna

// rcTable maps each ASCII base to its complement, preserving case.  Bytes
// outside ACGTNacgtn map to 'N'.
var rcTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 'N'
	}
	fwd := "ACGTNacgtn"
	rev := "TGCANtgcan"
	for i := 0; i < len(fwd); i++ {
		t[fwd[i]] = rev[i]
	}
	return t
}()

// ReverseComplementBytes reverse-complements seq in place.
func ReverseComplementBytes(seq []byte) {
	i, j := 0, len(seq)-1
	for i < j {
		seq[i], seq[j] = rcTable[seq[j]], rcTable[seq[i]]
		i++
		j--
	}
	if i == j {
		seq[i] = rcTable[seq[i]]
	}
}

// ReverseComplement returns the reverse complement of seq.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = rcTable[seq[i]]
	}
	return string(out)
}
