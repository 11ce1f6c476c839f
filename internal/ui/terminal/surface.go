package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Surface maps pixel coordinates onto terminal cells. One board cell of
// cellSize pixels becomes two columns by one row, which keeps squares roughly
// square in most terminal fonts.
type Surface struct {
	screen   tcell.Screen
	cellSize int
}

func NewSurface(screen tcell.Screen, cellSize int) *Surface {
	return &Surface{
		screen:   screen,
		cellSize: cellSize,
	}
}

func (s *Surface) Clear(c color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

func (s *Surface) FillRect(c color.Color, x, y, width, height float64) {
	style := tcell.StyleDefault.Background(toColor(c))

	x0, x1 := s.column(x), s.column(x+width)
	y0, y1 := s.row(y), s.row(y+height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText keeps the background already under each character. size is
// ignored; the terminal has one font size.
func (s *Surface) DrawText(str string, x, y float64, size int, c color.Color) {
	fg := toColor(c)
	col, row := s.column(x), s.row(y)
	for _, r := range str {
		_, _, under, _ := s.screen.GetContent(col, row)
		_, bg, _ := under.Decompose()
		s.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		col++
	}
}

func (s *Surface) column(x float64) int {
	return int(x) * 2 / s.cellSize
}

func (s *Surface) row(y float64) int {
	return int(y) / s.cellSize
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
