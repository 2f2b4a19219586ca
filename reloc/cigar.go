package reloc

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/readloc/interval"
)

// DecodeCigar converts a CIGAR string into the reference intervals covered by
// the read's bases, offset by the alignment start.
//
// M, D, = and X runs each emit one interval and advance the reference cursor;
// = and X are sequence match/mismatch and consume the reference like M.
// N (splice gap) advances the cursor without emitting.  Any other operation
// letter (I, S, H, P, ...) consumes no reference positions and is ignored.
// Intervals are emitted in increasing order and may touch each other; pass
// the result to interval.Merge to obtain the read's footprint.
//
// An errors.Invalid error is returned if a token is not of the form
// <digits><letter>.
func DecodeCigar(cigar string, offset interval.PosType) ([]interval.Interval, error) {
	if len(cigar) == 0 {
		return nil, errors.E(errors.Invalid, "decode cigar: empty string")
	}
	var (
		ivs    []interval.Interval
		cursor = int64(offset)
	)
	for i := 0; i < len(cigar); {
		j := i
		var n int64
		for ; j < len(cigar) && cigar[j] >= '0' && cigar[j] <= '9'; j++ {
			n = n*10 + int64(cigar[j]-'0')
			if n > interval.PosTypeMax {
				return nil, errors.E(errors.Invalid, fmt.Sprintf("decode cigar %q: run length too long at offset %d", cigar, i))
			}
		}
		if j == i {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("decode cigar %q: missing run length at offset %d", cigar, i))
		}
		if j == len(cigar) {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("decode cigar %q: missing operation at end", cigar))
		}
		op := cigar[j]
		switch {
		case op == 'M' || op == 'D' || op == '=' || op == 'X':
			if n > 0 {
				if cursor+n > interval.PosTypeMax {
					return nil, errors.E(errors.Invalid, fmt.Sprintf("decode cigar %q: alignment extends past position %d", cigar, interval.PosTypeMax))
				}
				ivs = append(ivs, interval.Interval{Start: interval.PosType(cursor), End: interval.PosType(cursor + n)})
			}
			cursor += n
		case op == 'N':
			cursor += n
		case (op >= 'A' && op <= 'Z') || (op >= 'a' && op <= 'z'):
			// Consumes no reference positions.
		default:
			return nil, errors.E(errors.Invalid, fmt.Sprintf("decode cigar %q: bad operation %q at offset %d", cigar, op, j))
		}
		i = j + 1
	}
	return ivs, nil
}
