package reloc

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// ChromRanks maps chromosome names to their position in the output order.
// A ChromRanks is immutable after construction and safe for concurrent use.
type ChromRanks struct {
	ranks map[string]int
}

// NewChromRanks creates a table from a name -> rank map.  The map is copied.
func NewChromRanks(ranks map[string]int) *ChromRanks {
	c := &ChromRanks{ranks: make(map[string]int, len(ranks))}
	for name, rank := range ranks {
		c.ranks[name] = rank
	}
	return c
}

// Rank returns the rank of chromosome name.  It returns an errors.Invalid
// error if the name is not in the table.
func (c *ChromRanks) Rank(name string) (int, error) {
	rank, ok := c.ranks[name]
	if !ok {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("unknown chromosome name %q", name))
	}
	return rank, nil
}

// HumanChromRanks orders the standard human chromosomes: chr1..chr22 rank
// 1..22, chrX 97, chrY 98, chrM 99.
var HumanChromRanks = func() *ChromRanks {
	ranks := map[string]int{"chrX": 97, "chrY": 98, "chrM": 99}
	for i := 1; i <= 22; i++ {
		ranks[fmt.Sprintf("chr%d", i)] = i
	}
	return &ChromRanks{ranks: ranks}
}()
