package components

import (
	"snake/internal/ui/types"
)

// MenuList is a vertical list of labels with a ">" cursor on the selected row.
type MenuList struct {
	X, Y     int
	CursorX  int
	Spacing  int
	Items    []string
	Selected int
}

func NewMenuList(x, y int, items ...string) *MenuList {
	return &MenuList{
		X:       x,
		Y:       y,
		CursorX: x - 9,
		Spacing: 20,
		Items:   items,
	}
}

func (ml *MenuList) Draw(surface types.Surface) {
	for i, item := range ml.Items {
		surface.DrawText(item, float64(ml.X), float64(ml.rowY(i)), types.TextSize, types.ColorText)
	}
	if ml.Selected >= 0 && ml.Selected < len(ml.Items) {
		surface.DrawText(">", float64(ml.CursorX), float64(ml.rowY(ml.Selected)), types.TextSize, types.ColorText)
	}
}

func (ml *MenuList) rowY(i int) int {
	return ml.Y + i*ml.Spacing
}
