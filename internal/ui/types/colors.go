package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 255, 0, 255}
	ColorSnake      = color.RGBA{255, 0, 0, 255}
	ColorSnakeHead  = Darken(ColorSnake, 0.7)
	ColorApple      = color.RGBA{255, 255, 0, 255}
	ColorText       = color.RGBA{0, 0, 0, 255}
)

const (
	TextSize = 12
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
