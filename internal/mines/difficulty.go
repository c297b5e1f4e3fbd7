package mines

import (
	"fmt"
	"strings"
)

type Difficulty uint8

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

type difficultyParams struct {
	name      string
	size      int
	mineCount int
}

var difficulties = map[Difficulty]difficultyParams{
	Easy:   {"easy", 8, 10},
	Medium: {"medium", 12, 30},
	Hard:   {"hard", 16, 60},
}

func (d Difficulty) Valid() bool {
	_, ok := difficulties[d]
	return ok
}

// Size is the side length of the square board. Zero for invalid values.
func (d Difficulty) Size() int {
	return difficulties[d].size
}

func (d Difficulty) MineCount() int {
	return difficulties[d].mineCount
}

func (d Difficulty) String() string {
	if p, ok := difficulties[d]; ok {
		return p.name
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: difficulty must be one of 'easy', 'medium', 'hard', got %q",
		ErrInvalidArgument, s)
}

// [Difficulty] implements [encoding.TextMarshaler]
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, d)
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
