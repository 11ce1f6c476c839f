package screens

import (
	"snake/internal/state"
	"snake/internal/ui/components"
	"snake/internal/ui/types"
)

const (
	menuNewGame = iota
	menuQuit
)

type MenuScreen struct {
	state.Hooks

	ctx   types.ScreenContext
	items *components.MenuList
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:   ctx,
		items: components.NewMenuList(14, 50, "New game", "Quit"),
	}
}

func (s *MenuScreen) Selected() int {
	return s.items.Selected
}

func (s *MenuScreen) Update(dt float64) state.Transition {
	return state.None()
}

// HandleKey toggles between the two entries on both Up and Down.
func (s *MenuScreen) HandleKey(key types.Key) state.Transition {
	switch key {
	case types.KeyEnter:
		if s.items.Selected == menuQuit {
			return state.Quit()
		}
		return state.Push(NewGameScreen(s.ctx))

	case types.KeyUp, types.KeyDown:
		if s.items.Selected == menuNewGame {
			s.items.Selected = menuQuit
		} else {
			s.items.Selected = menuNewGame
		}
	}

	return state.None()
}

func (s *MenuScreen) Draw(surface types.Surface) {
	surface.Clear(types.ColorBackground)
	surface.DrawText("Snake game", 10, 12, types.TextSize, types.ColorText)
	s.items.Draw(surface)
}
