package domain

type SnakeState int

const (
	SnakeStateAlive    SnakeState = 0
	SnakeStateCollided SnakeState = 1
)

func (s SnakeState) String() string {
	if s == SnakeStateCollided {
		return "Collided"
	}
	return "Alive"
}

// Snake is a body of cells moving on a Field at a fixed cadence. Time is fed
// in through Tick (or Elapse/Due/Step) and converted into discrete steps.
type Snake struct {
	State SnakeState

	field     *Field
	body      *body
	direction Direction

	elapsed  float64
	interval float64

	// lastTail is the cell dropped by the most recent step. canGrow is
	// cleared once it has been re-appended so Grow is safe to repeat.
	lastTail Coord
	canGrow  bool
}

func NewSnake(field *Field, interval float64, dir Direction, cells ...Coord) *Snake {
	if len(cells) < 2 {
		panic("snake: body needs at least two cells")
	}
	return &Snake{
		State:     SnakeStateAlive,
		field:     field,
		body:      newBody(cells...),
		direction: dir,
		interval:  interval,
	}
}

func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection replaces the heading unless dir reverses it. The change takes
// effect on the next step.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.direction) {
		return false
	}
	s.direction = dir
	return true
}

func (s *Snake) Head() Coord {
	return s.body.front()
}

func (s *Snake) Len() int {
	return s.body.len()
}

func (s *Snake) Body() []Coord {
	return s.body.slice()
}

func (s *Snake) Occupies(c Coord) bool {
	return s.body.contains(c)
}

func (s *Snake) Alive() bool {
	return s.State == SnakeStateAlive
}

func (s *Snake) Interval() float64 {
	return s.interval
}

func (s *Snake) Elapse(dt float64) {
	if s.State != SnakeStateAlive {
		return
	}
	s.elapsed += dt
}

// Due consumes one interval of accumulated time if a step is owed.
func (s *Snake) Due() bool {
	if s.State != SnakeStateAlive || s.elapsed < s.interval {
		return false
	}
	s.elapsed -= s.interval
	return true
}

// Step moves the head one cell. It reports false and leaves the body
// untouched when the new head lands on the body.
func (s *Snake) Step() bool {
	if s.State != SnakeStateAlive {
		return false
	}

	newHead := s.field.Move(s.Head(), s.direction)
	if s.body.contains(newHead) {
		s.State = SnakeStateCollided
		return false
	}

	s.body.pushFront(newHead)
	s.lastTail = s.body.popBack()
	s.canGrow = true
	return true
}

// Tick accumulates dt and performs every step that has come due. It returns
// the number of steps that moved the snake.
func (s *Snake) Tick(dt float64) int {
	s.Elapse(dt)
	steps := 0
	for s.Due() {
		if !s.Step() {
			break
		}
		steps++
	}
	return steps
}

// Grow re-appends the tail dropped by the last step. Calls after the first
// one between two steps are no-ops.
func (s *Snake) Grow() bool {
	if !s.canGrow {
		return false
	}
	s.body.pushBack(s.lastTail)
	s.canGrow = false
	return true
}
