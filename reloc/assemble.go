package reloc

import (
	"sort"
)

// Assemble unions the unambiguous rows with the rows selected for ambiguous
// reads and sorts the union by chromosome rank, alignment start, alignment
// end, region start and region end.  Rows with equal keys keep their order
// in the union (unambiguous rows first, then selected rows).
//
// An errors.Invalid error is returned if a row's chromosome has no rank in
// ranks.  A nil ranks means HumanChromRanks.
func Assemble(unambiguous, selected []CandidateMatch, ranks *ChromRanks) ([]CandidateMatch, error) {
	if ranks == nil {
		ranks = HumanChromRanks
	}
	type rankedRow struct {
		rank int
		row  CandidateMatch
	}
	rows := make([]rankedRow, 0, len(unambiguous)+len(selected))
	for _, src := range [][]CandidateMatch{unambiguous, selected} {
		for _, r := range src {
			rank, err := ranks.Rank(r.Alignment.Chrom)
			if err != nil {
				return nil, err
			}
			rows = append(rows, rankedRow{rank, r})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.row.Alignment.Start != b.row.Alignment.Start {
			return a.row.Alignment.Start < b.row.Alignment.Start
		}
		if a.row.Alignment.End != b.row.Alignment.End {
			return a.row.Alignment.End < b.row.Alignment.End
		}
		if a.row.Region.Start != b.row.Region.Start {
			return a.row.Region.Start < b.row.Region.Start
		}
		return a.row.Region.End < b.row.Region.End
	})
	result := make([]CandidateMatch, len(rows))
	for i := range rows {
		result[i] = rows[i].row
	}
	return result, nil
}
