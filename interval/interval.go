package interval

import (
	"fmt"
	"math"
)

// PosType is the type used to represent interval coordinates.  int32 should be
// wide enough for some time to come, since that's what BAM is limited to.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// Interval is a 0-based, half-open range [Start, End) on one chromosome.
type Interval struct {
	Start PosType
	End   PosType
}

// Len returns the number of positions covered by the interval.  It is zero
// for empty or inverted intervals.
func (iv Interval) Len() PosType {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// String returns "[start,end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Merge collapses overlapping or touching intervals into the minimal set of
// disjoint intervals covering the same positions.  ivs must be sorted in
// nondecreasing order of Start; the result is sorted the same way.  An
// interval is folded into its predecessor whenever its Start is <= the
// predecessor's End, so [0,5) and [5,8) become [0,8).
//
// ivs is not modified.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	merged := make([]Interval, 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.Start <= cur.End {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	return append(merged, cur)
}

// OverlapLen returns the number of positions shared by a and b.
func OverlapLen(a, b Interval) PosType {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if end <= start {
		return 0
	}
	return end - start
}

// CoveredLen returns the total number of positions of ivs that fall inside
// region.  ivs should be disjoint (e.g. the output of Merge); overlapping
// positions are otherwise counted once per interval.
func CoveredLen(ivs []Interval, region Interval) PosType {
	var total PosType
	for _, iv := range ivs {
		total += OverlapLen(iv, region)
	}
	return total
}
