package graphics

import (
	"context"
	"errors"
	"fmt"
	"log"

	"snake/internal/domain"
	"snake/internal/state"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine runs the state machine inside an ebiten window. ebiten calls Update
// at a fixed TPS, so every update carries the same dt.
type Engine struct {
	config   *domain.GameConfig
	machine  *state.Machine
	keyboard *input.KeyboardHandler
	fonts    *types.Fonts

	ctx context.Context
}

func NewEngine(config *domain.GameConfig, machine *state.Machine) (*Engine, error) {
	fonts, err := types.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	return &Engine{
		config:   config,
		machine:  machine,
		keyboard: input.NewKeyboardHandler(),
		fonts:    fonts,
		ctx:      context.Background(),
	}, nil
}

func (e *Engine) Run(ctx context.Context) error {
	e.ctx = ctx

	w, h := e.config.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(e.config.Title)

	log.Printf("Engine: opening %dx%d window at %d TPS", w, h, ebiten.TPS())
	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

func (e *Engine) Update() error {
	if e.ctx.Err() != nil {
		e.machine.Stop()
		return ebiten.Termination
	}

	if input.IsEscapePressed() {
		e.machine.Stop()
	}
	for _, key := range e.keyboard.Update() {
		e.machine.HandleKey(key)
	}
	e.machine.Update(1 / float64(ebiten.TPS()))

	if !e.machine.IsRunning() {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.machine.Draw(NewSurface(screen, e.fonts))
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.config.WindowSize()
}
