package reloc

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/readloc/interval"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCigar(t *testing.T) {
	tests := []struct {
		cigar  string
		offset interval.PosType
		want   []interval.Interval
	}{
		{"10M", 100, []interval.Interval{{Start: 100, End: 110}}},
		{"5M3N5M", 0, []interval.Interval{{Start: 0, End: 5}, {Start: 8, End: 13}}},
		{"5M2D5M", 0, []interval.Interval{{Start: 0, End: 5}, {Start: 5, End: 7}, {Start: 7, End: 12}}},
		{"2S5M2I3M1D4M5S", 10, []interval.Interval{{Start: 10, End: 15}, {Start: 15, End: 18}, {Start: 18, End: 19}, {Start: 19, End: 23}}},
		{"3H4M", 7, []interval.Interval{{Start: 7, End: 11}}},
		{"3=1X2=", 0, []interval.Interval{{Start: 0, End: 3}, {Start: 3, End: 4}, {Start: 4, End: 6}}},
		{"0M5M", 0, []interval.Interval{{Start: 0, End: 5}}},
		{"5S", 0, nil},
	}
	for _, tt := range tests {
		got, err := DecodeCigar(tt.cigar, tt.offset)
		require.NoError(t, err, tt.cigar)
		expect.EQ(t, got, tt.want, tt.cigar)
	}
}

func TestDecodeCigarErrors(t *testing.T) {
	for _, cigar := range []string{"", "*", "M", "10", "5M3", "5M*3M", "5M-3M", "99999999999M"} {
		_, err := DecodeCigar(cigar, 0)
		require.Error(t, err, cigar)
		assert.True(t, errors.Is(errors.Invalid, err), "cigar %q: %v", cigar, err)
	}
}

// randomCigar generates a CIGAR over M, D, N, I and S that ends in M, and
// returns the number of reference bases it spans.
func randomCigar(r *rand.Rand) (string, interval.PosType) {
	var (
		sb   strings.Builder
		span interval.PosType
	)
	n := r.Intn(8)
	for i := 0; i < n; i++ {
		length := 1 + r.Intn(50)
		op := "MDNIS"[r.Intn(5)]
		if op == 'M' || op == 'D' || op == 'N' {
			span += interval.PosType(length)
		}
		fmt.Fprintf(&sb, "%d%c", length, op)
	}
	length := 1 + r.Intn(50)
	span += interval.PosType(length)
	fmt.Fprintf(&sb, "%dM", length)
	return sb.String(), span
}

func TestDecodeCigarSpan(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 1000; iter++ {
		cigar, span := randomCigar(r)
		offset := interval.PosType(r.Intn(1000000))
		ivs, err := DecodeCigar(cigar, offset)
		require.NoError(t, err, cigar)
		merged := interval.Merge(ivs)
		require.NotEmpty(t, merged, cigar)
		assert.True(t, merged[0].Start >= offset, cigar)
		assert.Equal(t, offset+span, merged[len(merged)-1].End, cigar)
	}
}
