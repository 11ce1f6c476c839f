package screens

import (
	"fmt"

	"snake/internal/state"
	"snake/internal/ui/types"
)

// LostScreen shows the final score. Any key returns to the screen below.
type LostScreen struct {
	state.Hooks

	Score int
	Won   bool
}

func NewLostScreen(score int, won bool) *LostScreen {
	return &LostScreen{
		Score: score,
		Won:   won,
	}
}

func (s *LostScreen) Update(dt float64) state.Transition {
	return state.None()
}

func (s *LostScreen) HandleKey(key types.Key) state.Transition {
	return state.Pop()
}

func (s *LostScreen) Draw(surface types.Surface) {
	surface.Clear(types.ColorBackground)

	title := "You lost!"
	if s.Won {
		title = "You won!"
	}
	surface.DrawText(title, 10, 12, types.TextSize, types.ColorText)
	surface.DrawText(fmt.Sprintf("Your score: %d", s.Score), 50, 50, types.TextSize, types.ColorText)
}
