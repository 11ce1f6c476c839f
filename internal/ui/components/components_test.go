package components

import (
	"testing"

	"snake/internal/domain"
	"snake/internal/ui/types"
)

func TestFieldRendererDrawsCellsAtCellSize(t *testing.T) {
	fr := NewFieldRenderer(20)
	rec := &types.Recorder{}
	field := domain.NewField(30, 20)
	snake := domain.NewSnake(field, 0.2, domain.DirectionRight, domain.Coord{X: 1, Y: 0}, domain.Coord{X: 0, Y: 0})

	fr.DrawField(rec, field)
	fr.DrawSnake(rec, snake)
	fr.DrawApple(rec, domain.Coord{X: 3, Y: 3})

	if rec.Calls[0].Op != types.OpClear {
		t.Fatalf("first call = %v, want clear", rec.Calls[0].Op)
	}
	board := rec.Rects(types.ColorBackground)
	if len(board) != 1 || board[0].W != 600 || board[0].H != 400 {
		t.Errorf("board rects = %+v, want one 600x400", board)
	}

	head := rec.Rects(types.ColorSnakeHead)
	tail := rec.Rects(types.ColorSnake)
	if len(head) != 1 || head[0].X != 20 || head[0].Y != 0 {
		t.Errorf("head rects = %+v", head)
	}
	if len(tail) != 1 || tail[0].X != 0 || tail[0].W != 20 || tail[0].H != 20 {
		t.Errorf("body rects = %+v", tail)
	}

	apple := rec.Rects(types.ColorApple)
	if len(apple) != 1 || apple[0].X != 60 || apple[0].Y != 60 {
		t.Errorf("apple rects = %+v, want one at (60,60)", apple)
	}
}

func TestMenuListCursorFollowsSelection(t *testing.T) {
	ml := NewMenuList(14, 50, "New game", "Quit")
	rec := &types.Recorder{}

	ml.Draw(rec)
	cursor := rec.Calls[len(rec.Calls)-1]
	if cursor.Text != ">" || cursor.X != 5 || cursor.Y != 50 {
		t.Errorf("cursor = %+v, want > at (5,50)", cursor)
	}

	rec.Reset()
	ml.Selected = 1
	ml.Draw(rec)
	cursor = rec.Calls[len(rec.Calls)-1]
	if cursor.Y != 70 {
		t.Errorf("cursor y = %v, want 70", cursor.Y)
	}
	if texts := rec.Texts(); len(texts) != 3 || texts[0] != "New game" || texts[1] != "Quit" {
		t.Errorf("texts = %v", texts)
	}
}
