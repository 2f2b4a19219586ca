package reloc

import (
	"github.com/grailbio/readloc/intersect"
	"github.com/grailbio/readloc/interval"
)

type alignmentKey struct {
	chrom, readID string
	start         int
}

// Join reconstructs candidate rows from the two intersect passes.  An overlap
// row is matched with the alignment records of the same read on the same
// chromosome whose 0-based position equals the overlap row's alignment
// start; each distinct CIGAR among those records yields one candidate.
// Overlap rows without a matching record are dropped.  The result follows
// the order of overlaps.
//
// The -wa pass repeats a record once per overlapped region, so duplicate
// records are collapsed.  Coordinates are in [0, interval.PosTypeMax], as
// guaranteed by intersect.ParseOverlaps and the BAM format.
func Join(alignments []intersect.AlignmentRow, overlaps []intersect.OverlapRow) []CandidateMatch {
	cigars := make(map[alignmentKey][]string, len(alignments))
	for _, a := range alignments {
		key := alignmentKey{a.Chrom, a.ReadID, a.Start}
		dup := false
		for _, c := range cigars[key] {
			if c == a.Cigar {
				dup = true
				break
			}
		}
		if !dup {
			cigars[key] = append(cigars[key], a.Cigar)
		}
	}
	var rows []CandidateMatch
	for _, o := range overlaps {
		for _, cigar := range cigars[alignmentKey{o.Chrom, o.ReadID, o.AlignStart}] {
			rows = append(rows, CandidateMatch{
				ReadID: o.ReadID,
				Alignment: AlignmentRecord{
					Chrom: o.Chrom,
					Start: interval.PosType(o.AlignStart),
					End:   interval.PosType(o.AlignEnd),
					Cigar: cigar,
				},
				Region: CandidateRegion{
					Chrom: o.Chrom,
					Start: interval.PosType(o.RegionStart),
					End:   interval.PosType(o.RegionEnd),
					ID:    o.RegionID,
				},
			})
		}
	}
	return rows
}
