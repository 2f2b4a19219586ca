package reloc

import (
	"fmt"

	"github.com/grailbio/readloc/interval"
)

// AlignmentRecord is one placement of a read on the reference.  Start is
// 0-based inclusive, End is exclusive.
type AlignmentRecord struct {
	Chrom string
	Start interval.PosType
	End   interval.PosType
	Cigar string
}

// CandidateRegion is one annotated genomic interval a read may belong to.
type CandidateRegion struct {
	Chrom string
	Start interval.PosType
	End   interval.PosType
	ID    string
}

// Interval returns the [Start, End) span of the region.
func (r CandidateRegion) Interval() interval.Interval {
	return interval.Interval{Start: r.Start, End: r.End}
}

// CandidateMatch is one observed overlap between a read's alignment and one
// region.  The CIGAR is always the read's own.
type CandidateMatch struct {
	ReadID    string
	Alignment AlignmentRecord
	Region    CandidateRegion
}

// Coverage returns the number of reference bases of the read's aligned
// footprint that fall inside the match's region.  See Coverage.
func (m CandidateMatch) Coverage() (interval.PosType, error) {
	footprint, err := Footprint(m.Alignment.Start, m.Alignment.End, m.Alignment.Cigar)
	if err != nil {
		return 0, err
	}
	return interval.CoveredLen(footprint, m.Region.Interval()), nil
}

// String returns the row in output column order, tab-separated.
func (m CandidateMatch) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%d\t%d\t%s\t%s",
		m.Alignment.Chrom, m.Alignment.Start, m.Alignment.End, m.ReadID,
		m.Region.Start, m.Region.End, m.Region.ID, m.Alignment.Cigar)
}
