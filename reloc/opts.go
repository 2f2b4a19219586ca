package reloc

import "runtime"

// Opts controls Resolve.
type Opts struct {
	// Parallelism is the max number of read groups scored concurrently.
	// Values <= 0 mean runtime.NumCPU().
	Parallelism int
	// Ranks orders chromosomes in the output.  Nil means HumanChromRanks.
	Ranks *ChromRanks
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	Parallelism: runtime.NumCPU(),
	Ranks:       HumanChromRanks,
}
