package mines

import (
	"fmt"
	"iter"
	"strings"
)

// Mine marks a mined cell. Any other cell holds its neighbour count, 0 to 8.
const Mine = -1

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Board is a finished mine layout. It is never modified after construction,
// so snapshots may share it.
type Board struct {
	size      int
	mineCount int
	cells     []int8
}

// NewBoard builds a board with mines at the given points and fills in the
// neighbour counts.
func NewBoard(size int, mines []Point) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidArgument, size)
	}
	if len(mines) > size*size {
		return nil, fmt.Errorf("%w: %d mines do not fit on %dx%d board",
			ErrInvalidArgument, len(mines), size, size)
	}
	b := &Board{size: size, cells: make([]int8, size*size)}
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: mine %s", ErrInvalidArgument, &RangeError{p.X, p.Y, size})
		}
		i := b.index(p.X, p.Y)
		if b.cells[i] == Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", ErrInvalidArgument, p)
		}
		b.cells[i] = Mine
		b.mineCount++
	}
	b.countNeighbours()
	return b, nil
}

func (b *Board) countNeighbours() {
	for i, v := range b.cells {
		if v == Mine {
			continue
		}
		var n int8
		for j := range b.neighbours(i) {
			if b.cells[j] == Mine {
				n++
			}
		}
		b.cells[i] = n
	}
}

func (b *Board) Size() int { return b.size }

func (b *Board) MineCount() int { return b.mineCount }

// Len is the total number of cells.
func (b *Board) Len() int { return len(b.cells) }

// SafeCells is the number of cells that must be revealed to win.
func (b *Board) SafeCells() int { return len(b.cells) - b.mineCount }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.size && 0 <= y && y < b.size
}

// Value returns Mine or the neighbour count at (x, y). Panics when out of
// bounds; check with [Board.InBounds] first.
func (b *Board) Value(x, y int) int {
	return int(b.cells[b.index(x, y)])
}

func (b *Board) IsMine(x, y int) bool {
	return b.Value(x, y) == Mine
}

// Mines lists mine coordinates in row-major order.
func (b *Board) Mines() []Point {
	res := make([]Point, 0, b.mineCount)
	for i, v := range b.cells {
		if v == Mine {
			res = append(res, b.point(i))
		}
	}
	return res
}

func (b *Board) index(x, y int) int {
	return y*b.size + x
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.size, Y: i / b.size}
}

// neighbours yields the indices of the Moore neighbourhood of cell i, clipped
// at the edges.
func (b *Board) neighbours(i int) iter.Seq[int] {
	x, y := i%b.size, i/b.size
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 || !b.InBounds(x+dx, y+dy) {
					continue
				}
				if !yield(b.index(x+dx, y+dy)) {
					return
				}
			}
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.size {
		for x := range b.size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v := b.Value(x, y); v == Mine {
				sb.WriteByte('*')
			} else {
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Mask is a per-cell boolean grid laid out like [Board].
type Mask []bool

func (m Mask) Count() (n int) {
	for _, v := range m {
		if v {
			n++
		}
	}
	return
}

func (m Mask) clone() Mask {
	if m == nil {
		return nil
	}
	res := make(Mask, len(m))
	copy(res, m)
	return res
}
