package variant

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
)

// VCFRecord is one fixed-shape VCF-style output row.  Qual, Filter, Info,
// Format, and Sample are placeholders, not computed values.
type VCFRecord struct {
	Chrom  string
	Pos    string
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string
	Info   string
	Format string
	Sample string
}

// VCFRecords flattens a call set into VCF-style records, one per allele,
// walking sites in ascending (RefID, Pos) order.  Alleles at one site are
// assigned 1-based genotype indexes in (TargetID, Strand) order.  Calls
// whose reference bases equal their alt bases are no-ops and are not
// emitted.
func VCFRecords(set *CallSet, refName string) []VCFRecord {
	var recs []VCFRecord
	set.Each(func(k Key, alleles map[AlleleKey]Call) {
		for _, a := range sortedAlleles(alleles) {
			c := alleles[a]
			if c.RefBases == c.AltBases {
				continue
			}
			recs = append(recs, VCFRecord{
				Chrom:  refName,
				Pos:    strconv.Itoa(k.Pos),
				ID:     ".",
				Ref:    c.RefBases,
				Alt:    c.AltBases,
				Qual:   "30",
				Filter: ".",
				Info:   ".",
				Format: "GT:AD",
				Sample: "./1:0,1:",
			})
		}
	})
	return recs
}

// WriteVCF writes the records as tab-separated rows.
func WriteVCF(w io.Writer, recs []VCFRecord) error {
	tsvw := tsv.NewWriter(w)
	for _, r := range recs {
		tsvw.WriteString(r.Chrom)
		tsvw.WriteString(r.Pos)
		tsvw.WriteString(r.ID)
		tsvw.WriteString(r.Ref)
		tsvw.WriteString(r.Alt)
		tsvw.WriteString(r.Qual)
		tsvw.WriteString(r.Filter)
		tsvw.WriteString(r.Info)
		tsvw.WriteString(r.Format)
		tsvw.WriteString(r.Sample)
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}
