package types

import "image/color"

type DrawOp int

const (
	OpClear DrawOp = iota
	OpRect
	OpText
)

// DrawCall is one recorded Surface call.
type DrawCall struct {
	Op    DrawOp
	Color color.Color
	X, Y  float64
	W, H  float64
	Text  string
	Size  int
}

// Recorder is a Surface that keeps every call, for tests and frame dumps.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) Clear(c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(c color.Color, x, y, width, height float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpRect, Color: c, X: x, Y: y, W: width, H: height})
}

func (r *Recorder) DrawText(s string, x, y float64, size int, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpText, Color: c, X: x, Y: y, Text: s, Size: size})
}

func (r *Recorder) Texts() []string {
	var out []string
	for _, call := range r.Calls {
		if call.Op == OpText {
			out = append(out, call.Text)
		}
	}
	return out
}

func (r *Recorder) Rects(c color.Color) []DrawCall {
	var out []DrawCall
	for _, call := range r.Calls {
		if call.Op == OpRect && call.Color == c {
			out = append(out, call)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
