package domain

// Field is a toroidal Width x Height grid. Moving past an edge re-enters
// from the opposite edge.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Normalize(c Coord) Coord {
	x := c.X
	if x < 0 {
		x += f.Width
	}
	y := c.Y
	if y < 0 {
		y += f.Height
	}
	return Coord{X: x % f.Width, Y: y % f.Height}
}

// Move advances c one cell along d and wraps each axis independently.
func (f *Field) Move(c Coord, d Direction) Coord {
	return f.Normalize(c.Add(d.Delta()))
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}
