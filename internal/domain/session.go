package domain

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCollided
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCollided:
		return "Collided"
	case OutcomeBoardFull:
		return "BoardFull"
	}
	return "None"
}

var (
	startBody  = []Coord{{1, 0}, {0, 0}}
	startApple = Coord{3, 3}
)

// Session is one playable round: a snake, an apple and the board they share.
type Session struct {
	Field *Field

	config  *GameConfig
	snake   *Snake
	apple   Coord
	rng     RandomSource
	outcome Outcome
}

func NewSession(config *GameConfig, rng RandomSource) *Session {
	field := NewField(config.Width, config.Height)
	s := &Session{
		Field:  field,
		config: config.Copy(),
		snake:  NewSnake(field, config.TickInterval, DirectionRight, startBody...),
		apple:  field.Normalize(startApple),
		rng:    rng,
	}
	if s.snake.Occupies(s.apple) {
		s.relocateApple()
	}
	return s
}

func (s *Session) Snake() *Snake {
	return s.snake
}

func (s *Session) Apple() Coord {
	return s.apple
}

func (s *Session) Score() int {
	return s.snake.Len()
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

func (s *Session) Steer(dir Direction) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	return s.snake.SetDirection(dir)
}

// Update feeds dt to the snake and resolves every step that came due. The
// apple is checked after each step, so a stalled host loses no food.
func (s *Session) Update(dt float64) Outcome {
	if s.outcome != OutcomeNone {
		return s.outcome
	}

	s.snake.Elapse(dt)
	for s.snake.Due() {
		if !s.snake.Step() {
			s.outcome = OutcomeCollided
			return s.outcome
		}
		if s.snake.Head().Equals(s.apple) {
			s.snake.Grow()
			if !s.relocateApple() {
				s.outcome = OutcomeBoardFull
				return s.outcome
			}
		}
	}
	return OutcomeNone
}

func (s *Session) relocateApple() bool {
	for s.snake.Occupies(s.apple) {
		pos, err := PlaceApple(s.rng, s.Field, s.snake, s.config.MaxAppleAttempts)
		if err != nil {
			return false
		}
		s.apple = pos
	}
	return true
}
