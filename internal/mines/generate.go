package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// Rand is the source of randomness for mine placement and meal selection.
// [*rand.Rand] satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed generator. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate places d.MineCount() mines uniformly at random on a d.Size() board.
func Generate(d Difficulty, r Rand) (*Board, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %s", ErrInvalidArgument, d)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	size, mineCount := d.Size(), d.MineCount()
	b := &Board{size: size, mineCount: mineCount, cells: make([]int8, size*size)}

	/*
	 * Rejection sampling: draw a cell, keep it if it is not mined yet.
	 * Densities here stay under 25% so this settles quickly.
	 */
	for placed := 0; placed < mineCount; {
		x, y := r.IntN(size), r.IntN(size)
		i := b.index(x, y)
		if b.cells[i] != Mine {
			b.cells[i] = Mine
			placed++
		}
	}

	b.countNeighbours()
	return b, nil
}
