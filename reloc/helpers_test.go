package reloc

import "github.com/grailbio/readloc/interval"

// newMatch builds a candidate row whose region lies on the read's chromosome.
func newMatch(readID, chrom string, alignStart, alignEnd, regionStart, regionEnd interval.PosType, regionID, cigar string) CandidateMatch {
	return CandidateMatch{
		ReadID:    readID,
		Alignment: AlignmentRecord{Chrom: chrom, Start: alignStart, End: alignEnd, Cigar: cigar},
		Region:    CandidateRegion{Chrom: chrom, Start: regionStart, End: regionEnd, ID: regionID},
	}
}
