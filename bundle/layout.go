package bundle

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
)

// LayoutEntry is one BED-like row describing where a bundle partition sits
// on the original contig.
type LayoutEntry struct {
	Contig string
	Start  int32
	End    int32
	Label  string
}

// Layout converts a contig's partitions to absolute contig coordinates.
// ctgBgn is the contig's offset on its source sequence and k the minimizer
// length (the last marker's end is extended by k to cover the full anchor).
// Partition order is reversed before emission, matching the decomposition
// engine's ordering convention.
func Layout(ctg string, ctgBgn, k int32, parts []Partition) []LayoutEntry {
	entries := make([]LayoutEntry, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		entries = append(entries, LayoutEntry{
			Contig: ctg,
			Start:  ctgBgn + p.Begin(),
			End:    ctgBgn + p.End() + k,
			Label:  p.Label(),
		})
	}
	return entries
}

// WriteBED writes layout entries as 4-column BED rows.
func WriteBED(w io.Writer, entries []LayoutEntry) error {
	tsvw := tsv.NewWriter(w)
	for _, e := range entries {
		tsvw.WriteString(e.Contig)
		tsvw.WriteString(strconv.Itoa(int(e.Start)))
		tsvw.WriteString(strconv.Itoa(int(e.End)))
		tsvw.WriteString(e.Label)
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}
