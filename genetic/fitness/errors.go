package fitness

import "fmt"

// BlockSizeError reports a trap block size that cannot partition a genome
type BlockSizeError struct {
	K int
}

func (e *BlockSizeError) Error() string {
	return fmt.Sprintf("fitness: trap block size %d must be positive", e.K)
}
