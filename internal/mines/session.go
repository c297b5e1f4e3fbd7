package mines

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Observer is notified of game events. Calls are made while the session lock
// is held, so implementations must not call back into the session.
type Observer interface {
	GameStarted(d Difficulty)
	CellsOpened(d Difficulty, n int)
	FlagToggled(d Difficulty, flagged bool)
	GameEnded(d Difficulty, s Status)
}

// Session owns one [State] and serializes every operation on it.
type Session struct {
	mu    sync.Mutex
	id    uuid.UUID
	rnd   Rand
	log   logrus.FieldLogger
	obs   Observer
	state State
}

type sessionConfig struct {
	rnd        Rand
	log        logrus.FieldLogger
	obs        Observer
	difficulty Difficulty
	board      *Board
	favorites  []string
	normals    []string
}

type SessionOption = func(*sessionConfig) error

func WithRand(r Rand) SessionOption {
	return func(c *sessionConfig) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidArgument)
		}
		c.rnd = r
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(c *sessionConfig) error {
		c.log = l
		return nil
	}
}

func WithObserver(o Observer) SessionOption {
	return func(c *sessionConfig) error {
		c.obs = o
		return nil
	}
}

func WithDifficulty(d Difficulty) SessionOption {
	return func(c *sessionConfig) error {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown difficulty %s", ErrInvalidArgument, d)
		}
		c.difficulty = d
		return nil
	}
}

// WithBoard starts the session on a pinned layout instead of a random one.
func WithBoard(d Difficulty, b *Board) SessionOption {
	return func(c *sessionConfig) error {
		if err := checkBoard(d, b); err != nil {
			return err
		}
		c.difficulty = d
		c.board = b
		return nil
	}
}

func WithFoodOptions(favorites, normals []string) SessionOption {
	return func(c *sessionConfig) error {
		c.favorites = favorites
		c.normals = normals
		return nil
	}
}

func checkBoard(d Difficulty, b *Board) error {
	if !d.Valid() {
		return fmt.Errorf("%w: unknown difficulty %s", ErrInvalidArgument, d)
	}
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidArgument)
	}
	if b.Size() != d.Size() || b.MineCount() != d.MineCount() {
		return fmt.Errorf("%w: %dx%d board with %d mines does not match %s",
			ErrInvalidArgument, b.Size(), b.Size(), b.MineCount(), d)
	}
	return nil
}

// NewSession creates a session with an Easy board unless told otherwise.
func NewSession(opts ...SessionOption) (*Session, error) {
	c := sessionConfig{
		log:        Log,
		difficulty: Easy,
		favorites:  DefaultFavoriteFoods,
		normals:    DefaultNormalFoods,
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	if c.rnd == nil {
		c.rnd = NewRand(0)
	}

	id := uuid.New()
	s := &Session{
		id:  id,
		rnd: c.rnd,
		log: c.log.WithField("session", id.String()),
		obs: c.obs,
	}

	board := c.board
	if board == nil {
		var err error
		if board, err = Generate(c.difficulty, s.rnd); err != nil {
			return nil, err
		}
	}
	s.start(c.difficulty, board, c.favorites, c.normals)

	return s, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// start must be called with s.mu held or before s is shared.
func (s *Session) start(d Difficulty, b *Board, favorites, normals []string) {
	s.state = NewState(b, d, favorites, normals)
	s.log.WithFields(logrus.Fields{
		"difficulty": d,
		"size":       b.Size(),
		"mines":      b.MineCount(),
	}).Info("new game")
	if s.obs != nil {
		s.obs.GameStarted(d)
	}
}

// NewGame throws the current board away and deals a fresh one. Food lists
// are kept.
func (s *Session) NewGame(d Difficulty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := Generate(d, s.rnd)
	if err != nil {
		return err
	}
	s.start(d, b, s.state.FavoriteFoods, s.state.NormalFoods)
	return nil
}

// NewGameWithBoard is [Session.NewGame] with a pinned layout. The board must
// have the size and mine count of d.
func (s *Session) NewGameWithBoard(d Difficulty, b *Board) error {
	if err := checkBoard(d, b); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.start(d, b, s.state.FavoriteFoods, s.state.NormalFoods)
	return nil
}

// Reveal opens (x, y) and returns how many cells were uncovered. See [Reveal].
func (s *Session) Reveal(x, y int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next, opened, err := Reveal(prev, x, y, s.rnd)
	if err != nil {
		s.log.WithError(err).Debug("reveal rejected")
		return 0, err
	}
	s.state = next

	log := s.log.WithFields(logrus.Fields{"x": x, "y": y, "opened": opened})
	if next.Status == prev.Status && opened == 0 {
		log.Debug("reveal ignored")
		return 0, nil
	}
	log.Debug("reveal")

	if s.obs != nil && opened > 0 {
		s.obs.CellsOpened(next.Difficulty, opened)
	}
	if next.Status.Terminal() {
		s.finish(next)
	}
	return opened, nil
}

func (s *Session) finish(st State) {
	log := s.log.WithFields(logrus.Fields{
		"status": st.Status,
		"food":   st.OutcomeFood,
	})
	if st.OutcomeFood == "" {
		log.Warn("game over with an empty food list")
	} else {
		log.Info("game over")
	}
	if s.obs != nil {
		s.obs.GameEnded(st.Difficulty, st.Status)
	}
}

func (s *Session) ToggleFlag(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ToggleFlag(s.state, x, y)
	if err != nil {
		s.log.WithError(err).Debug("flag rejected")
		return err
	}
	i := next.Board.index(x, y)
	if next.Flagged[i] == s.state.Flagged[i] {
		return nil
	}
	s.state = next

	s.log.WithFields(logrus.Fields{
		"x": x, "y": y,
		"flagged":   next.Flagged[i],
		"remaining": next.RemainingMines,
	}).Debug("flag")
	if s.obs != nil {
		s.obs.FlagToggled(next.Difficulty, next.Flagged[i])
	}
	return nil
}

// Reset replays the current layout from scratch.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reset(s.state)
	s.log.WithField("difficulty", s.state.Difficulty).Info("reset")
	if s.obs != nil {
		s.obs.GameStarted(s.state.Difficulty)
	}
}

// SetFoodOptions replaces both food lists. Empty lists are accepted; picking
// from them fails with [ErrEmptyList].
func (s *Session) SetFoodOptions(favorites, normals []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.FavoriteFoods = slices.Clone(favorites)
	s.state.NormalFoods = slices.Clone(normals)
	s.log.WithFields(logrus.Fields{
		"favorites": len(favorites),
		"normals":   len(normals),
	}).Debug("food options")
}

func (s *Session) PickMeal() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return PickMeal(s.state, s.rnd)
}

// Snapshot returns a copy of the current state that the caller may keep.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}
