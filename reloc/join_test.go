package reloc

import (
	"testing"

	"github.com/grailbio/readloc/intersect"
	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	alignments := []intersect.AlignmentRow{
		{ReadID: "r1", Chrom: "chr1", Start: 100, Cigar: "10M"},
		// -wa repeats the record once per overlapped region.
		{ReadID: "r2", Chrom: "chr1", Start: 0, Cigar: "5M3N5M"},
		{ReadID: "r2", Chrom: "chr1", Start: 0, Cigar: "5M3N5M"},
		// Same name, different placement.
		{ReadID: "r2", Chrom: "chr2", Start: 40, Cigar: "3M"},
		{ReadID: "r3", Chrom: "chr1", Start: 7, Cigar: "4M"},
		{ReadID: "r3", Chrom: "chr1", Start: 7, Cigar: "2S4M"},
	}
	overlaps := []intersect.OverlapRow{
		{Chrom: "chr1", AlignStart: 0, AlignEnd: 13, ReadID: "r2", RegionStart: 0, RegionEnd: 5, RegionID: "A", Overlap: 5},
		{Chrom: "chr1", AlignStart: 100, AlignEnd: 110, ReadID: "r1", RegionStart: 100, RegionEnd: 110, RegionID: "exon1", Overlap: 10},
		{Chrom: "chr1", AlignStart: 0, AlignEnd: 13, ReadID: "r2", RegionStart: 8, RegionEnd: 13, RegionID: "B", Overlap: 5},
		// Coordinates disagree with the BAM record: dropped.
		{Chrom: "chr1", AlignStart: 101, AlignEnd: 111, ReadID: "r1", RegionStart: 100, RegionEnd: 110, RegionID: "exon1", Overlap: 9},
		// No BAM record at all: dropped.
		{Chrom: "chr3", AlignStart: 0, AlignEnd: 10, ReadID: "r9", RegionStart: 0, RegionEnd: 10, RegionID: "z", Overlap: 10},
		{Chrom: "chr1", AlignStart: 7, AlignEnd: 11, ReadID: "r3", RegionStart: 0, RegionEnd: 10, RegionID: "g", Overlap: 4},
	}
	assert.Equal(t, []CandidateMatch{
		newMatch("r2", "chr1", 0, 13, 0, 5, "A", "5M3N5M"),
		newMatch("r1", "chr1", 100, 110, 100, 110, "exon1", "10M"),
		newMatch("r2", "chr1", 0, 13, 8, 13, "B", "5M3N5M"),
		newMatch("r3", "chr1", 7, 11, 0, 10, "g", "4M"),
		newMatch("r3", "chr1", 7, 11, 0, 10, "g", "2S4M"),
	}, Join(alignments, overlaps))
	assert.Empty(t, Join(nil, nil))
}
