package types

import (
	"snake/internal/domain"
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

func (k Key) Direction() (domain.Direction, bool) {
	switch k {
	case KeyUp:
		return domain.DirectionUp, true
	case KeyDown:
		return domain.DirectionDown, true
	case KeyLeft:
		return domain.DirectionLeft, true
	case KeyRight:
		return domain.DirectionRight, true
	}
	return 0, false
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	}
	return "None"
}
