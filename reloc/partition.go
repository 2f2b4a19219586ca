package reloc

// Partition splits candidate rows into rows of reads that have exactly one
// candidate (unambiguous) and rows of reads that have two or more
// (ambiguous).  Both outputs keep the input's relative row order.  Every row
// of rows appears in exactly one of the outputs.
func Partition(rows []CandidateMatch) (unambiguous, ambiguous []CandidateMatch) {
	counts := make(map[string]int, len(rows))
	for i := range rows {
		counts[rows[i].ReadID]++
	}
	for _, r := range rows {
		if counts[r.ReadID] == 1 {
			unambiguous = append(unambiguous, r)
		} else {
			ambiguous = append(ambiguous, r)
		}
	}
	return
}

// ReadGroup is the candidate rows of one read, in input order.
type ReadGroup struct {
	ReadID string
	Rows   []CandidateMatch
}

// GroupByRead groups rows by read ID.  Groups are ordered by the first
// appearance of their read in rows, and each group keeps the input order of
// its rows.
func GroupByRead(rows []CandidateMatch) []ReadGroup {
	index := map[string]int{}
	var groups []ReadGroup
	for _, r := range rows {
		gi, ok := index[r.ReadID]
		if !ok {
			gi = len(groups)
			index[r.ReadID] = gi
			groups = append(groups, ReadGroup{ReadID: r.ReadID})
		}
		groups[gi].Rows = append(groups[gi].Rows, r)
	}
	return groups
}
