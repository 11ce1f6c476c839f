package terminal

import (
	"context"
	"image/color"
	"testing"
	"time"

	"snake/internal/domain"
	"snake/internal/state"
	"snake/internal/ui/screens"
	"snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
)

type testContext struct {
	config *domain.GameConfig
}

func (c *testContext) Config() *domain.GameConfig  { return c.config }
func (c *testContext) Random() domain.RandomSource { return constRand(5) }

type constRand int

func (r constRand) Intn(n int) int { return int(r) % n }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(60, 20)
	return screen
}

func background(t *testing.T, screen tcell.Screen, col, row int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want types.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.KeyDown, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.KeyEnter, true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), types.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), types.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.KeyNone, false},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), types.KeyNone, false},
	}

	for _, tc := range tests {
		got, ok := translateKey(tc.ev)
		if got != tc.want || ok != tc.ok {
			t.Errorf("translateKey(%v) = (%v, %v), want (%v, %v)", tc.ev.Name(), got, ok, tc.want, tc.ok)
		}
	}

	if !isQuitKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape is not a quit key")
	}
	if isQuitKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("enter is a quit key")
	}
}

func TestSurfaceMapsPixelsToCells(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	surface := NewSurface(screen, 20)

	surface.Clear(color.RGBA{0, 255, 0, 255})
	surface.FillRect(color.RGBA{255, 0, 0, 255}, 20, 40, 20, 20)
	surface.DrawText("Quit", 14, 70, 12, color.RGBA{0, 0, 0, 255})

	green := tcell.NewRGBColor(0, 255, 0)
	red := tcell.NewRGBColor(255, 0, 0)

	if bg := background(t, screen, 0, 0); bg != green {
		t.Errorf("cleared cell bg = %v, want green", bg)
	}
	for _, col := range []int{2, 3} {
		if bg := background(t, screen, col, 2); bg != red {
			t.Errorf("rect cell (%d,2) bg = %v, want red", col, bg)
		}
	}
	if bg := background(t, screen, 4, 2); bg != green {
		t.Errorf("cell right of rect bg = %v, want green", bg)
	}

	for i, want := range "Quit" {
		r, _, style, _ := screen.GetContent(1+i, 3)
		if r != want {
			t.Errorf("col %d = %q, want %q", 1+i, r, want)
		}
		if _, bg, _ := style.Decompose(); bg != green {
			t.Errorf("text at col %d lost its background: %v", 1+i, bg)
		}
	}
}

func TestHostRoutesKeysAndFrames(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	cfg := domain.DefaultGameConfig()
	machine := state.NewMachine(screens.NewMenuScreen(&testContext{config: cfg}))
	machine.Start()
	h := NewHost(cfg, machine, screen)

	h.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if _, ok := machine.Top().(*screens.GameScreen); !ok {
		t.Fatalf("top = %T, want game screen", machine.Top())
	}

	h.frame(0.2)
	head := tcell.NewRGBColor(int32(types.ColorSnakeHead.R), int32(types.ColorSnakeHead.G), int32(types.ColorSnakeHead.B))
	if bg := background(t, screen, 4, 0); bg != head {
		t.Errorf("head cell bg = %v, want %v", bg, head)
	}

	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if machine.IsRunning() {
		t.Error("q did not stop the machine")
	}
}

func TestHostRunStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := domain.DefaultGameConfig()
	machine := state.NewMachine(screens.NewMenuScreen(&testContext{config: cfg}))
	machine.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- NewHost(cfg, machine, screen).Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if machine.IsRunning() {
		t.Error("machine still running after cancel")
	}
}
