package terminal

import (
	"snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
)

func translateKey(ev *tcell.EventKey) (types.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyUp, true
	case tcell.KeyDown:
		return types.KeyDown, true
	case tcell.KeyLeft:
		return types.KeyLeft, true
	case tcell.KeyRight:
		return types.KeyRight, true
	case tcell.KeyEnter:
		return types.KeyEnter, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.KeyUp, true
		case 's', 'S':
			return types.KeyDown, true
		case 'a', 'A':
			return types.KeyLeft, true
		case 'd', 'D':
			return types.KeyRight, true
		}
	}
	return types.KeyNone, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
