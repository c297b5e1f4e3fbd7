package mines

import (
	"fmt"
	"slices"
	"strings"
)

type Status uint8

const (
	Active Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func (s Status) Terminal() bool {
	return s == Lost || s == Won
}

// [Status] implements [encoding.TextMarshaler]
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is one game from generation to its outcome. The package-level
// operations never modify the State they are given; they return a changed
// copy. Board is shared between copies since it is immutable.
type State struct {
	Board          *Board
	Revealed       Mask
	Flagged        Mask
	Difficulty     Difficulty
	Status         Status
	RemainingMines int
	OutcomeFood    string
	Exploded       *Point /* the mine that ended the game, if any */
	FavoriteFoods  []string
	NormalFoods    []string
}

func NewState(b *Board, d Difficulty, favorites, normals []string) State {
	return State{
		Board:          b,
		Revealed:       make(Mask, b.Len()),
		Flagged:        make(Mask, b.Len()),
		Difficulty:     d,
		Status:         Active,
		RemainingMines: b.MineCount(),
		FavoriteFoods:  slices.Clone(favorites),
		NormalFoods:    slices.Clone(normals),
	}
}

// Clone returns a deep copy sharing only the board.
func (s State) Clone() State {
	res := s
	res.Revealed = s.Revealed.clone()
	res.Flagged = s.Flagged.clone()
	res.FavoriteFoods = slices.Clone(s.FavoriteFoods)
	res.NormalFoods = slices.Clone(s.NormalFoods)
	if s.Exploded != nil {
		p := *s.Exploded
		res.Exploded = &p
	}
	return res
}

func (s State) SteppedOnMine() bool {
	return s.Exploded != nil
}

func (s State) IsRevealed(x, y int) bool {
	return s.Revealed[s.Board.index(x, y)]
}

func (s State) IsFlagged(x, y int) bool {
	return s.Flagged[s.Board.index(x, y)]
}

func (s State) RevealedCount() int {
	return s.Revealed.Count()
}

func (s State) checkBounds(x, y int) error {
	if s.Board == nil {
		return fmt.Errorf("%w: no board", ErrInvalidArgument)
	}
	if !s.Board.InBounds(x, y) {
		return &RangeError{X: x, Y: y, Size: s.Board.Size()}
	}
	return nil
}

// String draws the player's view: '.' covered, 'F' flagged, '*' mine,
// 'X' the exploded mine and digits for revealed counts.
func (s State) String() string {
	if s.Board == nil {
		return ""
	}
	var sb strings.Builder
	size := s.Board.Size()
	for y := range size {
		for x := range size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			i := s.Board.index(x, y)
			switch {
			case s.Exploded != nil && *s.Exploded == (Point{x, y}):
				sb.WriteByte('X')
			case s.Revealed[i] && s.Board.cells[i] == Mine:
				sb.WriteByte('*')
			case s.Revealed[i]:
				fmt.Fprint(&sb, s.Board.cells[i])
			case s.Flagged[i]:
				sb.WriteByte('F')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
