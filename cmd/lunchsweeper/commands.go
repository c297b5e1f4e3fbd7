package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/lunchsweeper/internal/config"
	"github.com/vancomm/lunchsweeper/internal/mines"
)

// Maps known commands to the accepted number of arguments
var commandNargs = map[string][2]int{
	"n": {0, 1},  // new game [difficulty]
	"o": {2, 2},  // open x y
	"f": {2, 2},  // flag x y
	"r": {0, 0},  // reset
	"m": {0, 0},  // pick meal
	"p": {0, 0},  // print
	"l": {0, -1}, // food lists, free text
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

// executeCommand runs one input line against s and returns the text to show.
func executeCommand(s *mines.Session, line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	name, rest, _ := strings.Cut(line, " ")
	nargs, ok := commandNargs[name]
	if !ok {
		return "", ErrUnknownCommand
	}
	args := strings.Fields(rest)
	if nargs[1] >= 0 && (len(args) < nargs[0] || len(args) > nargs[1]) {
		return "", ErrNargs
	}

	switch name {
	case "n":
		a, err := decodeNewGame(args)
		if err != nil {
			return "", fmt.Errorf("%w: difficulty must be one of 'easy', 'medium', 'hard': %w",
				mines.ErrInvalidArgument, err)
		}
		if a.Difficulty == 0 {
			a.Difficulty = s.Snapshot().Difficulty
		}
		if err := s.NewGame(a.Difficulty); err != nil {
			return "", err
		}
		return render(s.Snapshot()), nil

	case "o":
		p, err := decodePoint(args)
		if err != nil {
			return "", err
		}
		before := s.Snapshot().Status
		opened, err := s.Reveal(p.X, p.Y)
		if err != nil {
			return "", err
		}
		after := s.Snapshot()
		cue := mines.Classify(before, after.Status, opened)
		return fmt.Sprintf("opened %d (%s)\n%s", opened, cue, render(after)), nil

	case "f":
		p, err := decodePoint(args)
		if err != nil {
			return "", err
		}
		before := s.Snapshot()
		if err := s.ToggleFlag(p.X, p.Y); err != nil {
			return "", err
		}
		after := s.Snapshot()
		flagged := after.IsFlagged(p.X, p.Y)
		changed := flagged != before.IsFlagged(p.X, p.Y)
		cue := mines.ClassifyFlag(before.Status, changed)
		action := "unchanged"
		switch {
		case changed && flagged:
			action = "flagged"
		case changed:
			action = "unflagged"
		}
		return fmt.Sprintf("%s %d %d (%s)\n%s", action, p.X, p.Y, cue, render(after)), nil

	case "r":
		s.Reset()
		return render(s.Snapshot()), nil

	case "m":
		return s.PickMeal()

	case "p":
		return render(s.Snapshot()), nil

	case "l":
		favorites, normals, found := strings.Cut(rest, "|")
		if !found {
			return "", fmt.Errorf("%w: expected 'l favorites | normals'", ErrNargs)
		}
		s.SetFoodOptions(config.SplitList(favorites, ","), config.SplitList(normals, ","))
		st := s.Snapshot()
		return fmt.Sprintf("favorites: %s\nnormals: %s",
			strings.Join(st.FavoriteFoods, ", "), strings.Join(st.NormalFoods, ", ")), nil
	}
	return "", ErrUnknownCommand
}

func render(st mines.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %dx%d, %s, %d mines left\n",
		st.Difficulty, st.Board.Size(), st.Board.Size(), st.Status, st.RemainingMines)
	b.WriteString(st.String())
	if st.OutcomeFood != "" {
		fmt.Fprintf(&b, "lunch: %s\n", st.OutcomeFood)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
