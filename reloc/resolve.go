package reloc

import (
	"runtime"

	"github.com/grailbio/base/log"
)

// Resolve reduces the candidate rows to exactly one row per read and returns
// them in output order.  Reads with one candidate are passed through; for
// reads with several, the candidate chosen by SelectBest is kept.  See
// Assemble for the ordering.
//
// Resolve either returns the complete table or an error; no partial result
// is produced.
func Resolve(rows []CandidateMatch, opts Opts) ([]CandidateMatch, error) {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	if opts.Ranks == nil {
		opts.Ranks = HumanChromRanks
	}
	unambiguous, ambiguous := Partition(rows)
	groups := GroupByRead(ambiguous)
	log.Printf("resolve: %d candidate rows, %d unambiguous reads, %d ambiguous reads (%d rows)",
		len(rows), len(unambiguous), len(groups), len(ambiguous))
	selected, err := SelectAll(groups, opts.Parallelism)
	if err != nil {
		return nil, err
	}
	return Assemble(unambiguous, selected, opts.Ranks)
}
