package types

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts hands out text faces by pixel size, parsed once from Go Regular.
type Fonts struct {
	source *opentype.Font
	faces  map[int]font.Face
}

func LoadFonts() (*Fonts, error) {
	source, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{
		source: source,
		faces:  make(map[int]font.Face),
	}, nil
}

// Face returns a face for size, falling back to the fixed 7x13 bitmap face
// if the vector face cannot be built.
func (f *Fonts) Face(size int) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}

	face, err := opentype.NewFace(f.source, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = basicfont.Face7x13
	}
	f.faces[size] = face
	return face
}
