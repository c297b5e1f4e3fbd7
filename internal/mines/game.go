package mines

// Reveal opens cell (x, y) and returns the new state with the number of cells
// that went from covered to revealed.
//
// Coordinates outside the board fail with [ErrOutOfRange]. Revealing while
// the game is over, on a flagged cell or on an already revealed cell is a
// no-op that returns s unchanged and 0.
//
// Hitting a mine reveals the whole board, ends the game as [Lost] and reports
// 0 opened cells. r is only used to pick the outcome food.
func Reveal(s State, x, y int, r Rand) (State, int, error) {
	if err := s.checkBounds(x, y); err != nil {
		return s, 0, err
	}
	if s.Status != Active {
		return s, 0, nil
	}
	i := s.Board.index(x, y)
	if s.Flagged[i] || s.Revealed[i] {
		return s, 0, nil
	}

	next := s.Clone()

	if s.Board.cells[i] == Mine {
		for j := range next.Revealed {
			next.Revealed[j] = true
		}
		next.Status = Lost
		next.Exploded = &Point{X: x, Y: y}
		next.OutcomeFood, _ = pick(next.NormalFoods, r)
		return next, 0, nil
	}

	opened := next.floodFill(i)

	if next.Revealed.Count() == next.Board.SafeCells() {
		next.Status = Won
		next.OutcomeFood, _ = pick(next.FavoriteFoods, r)
	}

	return next, opened, nil
}

// floodFill reveals cell start and, while revealed cells have no neighbouring
// mines, their covered neighbours. Flagged neighbours are opened too and keep
// their flag.
func (s *State) floodFill(start int) (opened int) {
	todo := newCellTodo(s.Board.Len())
	s.Revealed[start] = true
	todo.add(start)

	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		opened++
		if s.Board.cells[i] != 0 {
			continue
		}
		for j := range s.Board.neighbours(i) {
			if s.Revealed[j] {
				continue
			}
			s.Revealed[j] = true
			todo.add(j)
		}
	}

	return opened
}

// ToggleFlag flips the flag on a covered cell and adjusts RemainingMines,
// which may go negative. It is a no-op once the game is over or when the
// cell is already revealed.
func ToggleFlag(s State, x, y int) (State, error) {
	if err := s.checkBounds(x, y); err != nil {
		return s, err
	}
	i := s.Board.index(x, y)
	if s.Status != Active || s.Revealed[i] {
		return s, nil
	}

	next := s.Clone()
	next.Flagged[i] = !next.Flagged[i]
	if next.Flagged[i] {
		next.RemainingMines--
	} else {
		next.RemainingMines++
	}
	return next, nil
}

// Reset starts the same layout over: covered, unflagged and active.
func Reset(s State) State {
	next := s.Clone()
	if s.Board == nil {
		return next
	}
	next.Revealed = make(Mask, s.Board.Len())
	next.Flagged = make(Mask, s.Board.Len())
	next.Status = Active
	next.RemainingMines = s.Board.MineCount()
	next.OutcomeFood = ""
	next.Exploded = nil
	return next
}
