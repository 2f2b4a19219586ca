package reloc

import (
	"fmt"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/readloc/interval"
)

// SelectBest returns the row of group whose region receives the largest
// coverage from the read's footprint.  Ties are broken in favor of the
// earliest row in group.
//
// REQUIRES: len(group) > 0.
func SelectBest(group []CandidateMatch) (CandidateMatch, error) {
	if len(group) == 0 {
		return CandidateMatch{}, errors.E(errors.Invalid, "select best: empty candidate group")
	}
	best := -1
	var bestCov interval.PosType
	for i, row := range group {
		cov, err := row.Coverage()
		if err != nil {
			return CandidateMatch{}, errors.E(fmt.Sprintf("read %s, region %s", row.ReadID, row.Region.ID), err)
		}
		if best < 0 || cov > bestCov {
			best, bestCov = i, cov
		}
	}
	return group[best], nil
}

// shardOf assigns a read to one of nShard selection workers.
func shardOf(readID string, nShard int) int {
	return int(seahash.Sum64(gunsafe.StringToBytes(readID)) % uint64(nShard))
}

// SelectAll runs SelectBest on every group and returns the winners in group
// order.  Groups are spread over up to parallelism workers by read ID; a
// value <= 0 means one worker.  The first error encountered is returned.
func SelectAll(groups []ReadGroup, parallelism int) ([]CandidateMatch, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	nShard := parallelism
	if nShard < 1 {
		nShard = 1
	}
	if nShard > len(groups) {
		nShard = len(groups)
	}
	shards := make([][]int, nShard)
	for gi := range groups {
		s := shardOf(groups[gi].ReadID, nShard)
		shards[s] = append(shards[s], gi)
	}
	selected := make([]CandidateMatch, len(groups))
	err := traverse.Each(nShard, func(shardIdx int) error {
		for _, gi := range shards[shardIdx] {
			row, err := SelectBest(groups[gi].Rows)
			if err != nil {
				return err
			}
			selected[gi] = row
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}
