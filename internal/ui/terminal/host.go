package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"snake/internal/domain"
	"snake/internal/state"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const framesPerSecond = 30

// Host runs the state machine in a terminal. Input is read by a pump
// goroutine; the machine itself is only touched from the frame loop.
type Host struct {
	config  *domain.GameConfig
	machine *state.Machine
	screen  tcell.Screen
	surface *Surface

	lastFrame time.Time
}

func NewHost(config *domain.GameConfig, machine *state.Machine, screen tcell.Screen) *Host {
	return &Host{
		config:  config,
		machine: machine,
		screen:  screen,
		surface: NewSurface(screen, config.CellSize),
	}
}

func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	log.Printf("Terminal: running at %d fps", framesPerSecond)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// Fini unblocks PollEvent and cancel unblocks a pending send, so the
		// pump exits either way.
		defer cancel()
		defer h.screen.Fini()
		h.loop(ctx, events)
		return nil
	})

	return g.Wait()
}

func (h *Host) loop(ctx context.Context, events <-chan tcell.Event) {
	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	h.lastFrame = time.Now()
	h.draw()

	for h.machine.IsRunning() {
		select {
		case <-ctx.Done():
			h.machine.Stop()
		case ev := <-events:
			h.handleEvent(ev)
		case now := <-ticker.C:
			h.frame(now.Sub(h.lastFrame).Seconds())
			h.lastFrame = now
		}
	}
	log.Println("Terminal: machine stopped")
}

func (h *Host) frame(dt float64) {
	h.machine.Update(dt)
	h.draw()
}

func (h *Host) draw() {
	if !h.machine.IsRunning() {
		return
	}
	h.screen.Clear()
	h.machine.Draw(h.surface)
	h.screen.Show()
}

func (h *Host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			h.machine.Stop()
			return
		}
		if key, ok := translateKey(ev); ok {
			h.machine.HandleKey(key)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}
