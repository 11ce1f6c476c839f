package types

import "image/color"

// Surface is what screens draw on. Coordinates are pixels with the origin in
// the top-left corner; text is positioned by its baseline.
type Surface interface {
	Clear(c color.Color)
	FillRect(c color.Color, x, y, width, height float64)
	DrawText(s string, x, y float64, size int, c color.Color)
}
