package domain

import "errors"

var ErrBoardFull = errors.New("no free cell for apple")

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// PlaceApple draws random cells until one is off the snake. After maxAttempts
// draws it falls back to the first free cell in row-major order.
func PlaceApple(rng RandomSource, field *Field, snake *Snake, maxAttempts int) (Coord, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		pos := Coord{X: rng.Intn(field.Width), Y: rng.Intn(field.Height)}
		if !snake.Occupies(pos) {
			return pos, nil
		}
	}

	if snake.Len() >= field.Cells() {
		return Coord{}, ErrBoardFull
	}

	occupied := make(map[Coord]bool, snake.Len())
	for _, cell := range snake.Body() {
		occupied[cell] = true
	}
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			pos := Coord{X: x, Y: y}
			if !occupied[pos] {
				return pos, nil
			}
		}
	}
	return Coord{}, ErrBoardFull
}
