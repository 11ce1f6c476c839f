package graphics

import (
	"image/color"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto one frame's ebiten image.
type Surface struct {
	image *ebiten.Image
	fonts *types.Fonts
}

func NewSurface(image *ebiten.Image, fonts *types.Fonts) *Surface {
	return &Surface{
		image: image,
		fonts: fonts,
	}
}

func (s *Surface) Clear(c color.Color) {
	s.image.Fill(c)
}

func (s *Surface) FillRect(c color.Color, x, y, width, height float64) {
	vector.DrawFilledRect(s.image,
		float32(x), float32(y),
		float32(width), float32(height),
		c, false)
}

func (s *Surface) DrawText(str string, x, y float64, size int, c color.Color) {
	text.Draw(s.image, str, s.fonts.Face(size), int(x), int(y), c)
}
