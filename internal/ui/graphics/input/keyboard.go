package input

import (
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key  types.Key
	keys []ebiten.Key
}

var bindings = []binding{
	{types.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{types.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{types.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{types.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{types.KeyEnter, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
}

type KeyboardHandler struct {
	pressed []types.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the keys pressed since the previous tick. The slice is
// reused between calls.
func (kh *KeyboardHandler) Update() []types.Key {
	kh.pressed = kh.pressed[:0]
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				kh.pressed = append(kh.pressed, b.key)
				break
			}
		}
	}
	return kh.pressed
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
