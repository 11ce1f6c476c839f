package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"
)

// FieldRenderer draws board cells as CellSize squares at cell*CellSize.
type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{
		CellSize: cellSize,
	}
}

func (fr *FieldRenderer) DrawField(surface types.Surface, field *domain.Field) {
	if field == nil {
		return
	}

	surface.Clear(types.ColorBackground)
	surface.FillRect(types.ColorBackground,
		float64(fr.OffsetX), float64(fr.OffsetY),
		float64(field.Width*fr.CellSize), float64(field.Height*fr.CellSize))
}

func (fr *FieldRenderer) DrawApple(surface types.Surface, apple domain.Coord) {
	fr.drawCell(surface, apple, types.ColorApple)
}

func (fr *FieldRenderer) DrawSnake(surface types.Surface, snake *domain.Snake) {
	if snake == nil {
		return
	}

	for i, cell := range snake.Body() {
		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.ColorSnakeHead
		}
		fr.drawCell(surface, cell, cellColor)
	}
}

func (fr *FieldRenderer) drawCell(surface types.Surface, cell domain.Coord, c color.Color) {
	size := float64(fr.CellSize)
	surface.FillRect(c,
		float64(fr.OffsetX+cell.X*fr.CellSize),
		float64(fr.OffsetY+cell.Y*fr.CellSize),
		size, size)
}
