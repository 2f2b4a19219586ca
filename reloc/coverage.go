package reloc

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/readloc/interval"
)

// Footprint decodes cigar at alignStart and merges the result into the
// disjoint reference intervals covered by the read.  The footprint must end
// exactly at alignEnd; otherwise the alignment and the intersector disagree
// about the read's span and an errors.Integrity error is returned.
func Footprint(alignStart, alignEnd interval.PosType, cigar string) ([]interval.Interval, error) {
	ivs, err := DecodeCigar(cigar, alignStart)
	if err != nil {
		return nil, err
	}
	merged := interval.Merge(ivs)
	if len(merged) == 0 {
		return nil, errors.E(errors.Integrity,
			fmt.Sprintf("cigar %s at %d covers no reference bases, but the alignment ends at %d", cigar, alignStart, alignEnd))
	}
	if end := merged[len(merged)-1].End; end != alignEnd {
		return nil, errors.E(errors.Integrity,
			fmt.Sprintf("cigar %s at %d ends at %d, but the alignment ends at %d", cigar, alignStart, end, alignEnd))
	}
	return merged, nil
}

// Coverage returns the number of reference bases of the read's footprint
// (see Footprint) that fall inside the region [regionStart, regionEnd).
func Coverage(alignStart, alignEnd, regionStart, regionEnd interval.PosType, cigar string) (interval.PosType, error) {
	footprint, err := Footprint(alignStart, alignEnd, cigar)
	if err != nil {
		return 0, err
	}
	return interval.CoveredLen(footprint, interval.Interval{Start: regionStart, End: regionEnd}), nil
}
