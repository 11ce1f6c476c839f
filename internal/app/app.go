package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"snake/internal/domain"
	"snake/internal/state"
	"snake/internal/ui/screens"

	"golang.org/x/exp/rand"
)

// Host drives the state machine: it feeds keys and time deltas in and pulls
// frames out until the machine stops or ctx is cancelled.
type Host interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *domain.GameConfig
	rng     *rand.Rand
	seed    uint64
	machine *state.Machine
}

func NewApp(config *domain.GameConfig) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a := &App{
		config: config.Copy(),
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
	}
	a.machine = state.NewMachine(screens.NewMenuScreen(a))

	return a, nil
}

func (a *App) Config() *domain.GameConfig {
	return a.config
}

func (a *App) Random() domain.RandomSource {
	return a.rng
}

func (a *App) Machine() *state.Machine {
	return a.machine
}

func (a *App) Seed() uint64 {
	return a.seed
}

func (a *App) Run(ctx context.Context, host Host) error {
	log.Printf("App: board %dx%d, cell %dpx, tick %.2fs, seed %d",
		a.config.Width, a.config.Height, a.config.CellSize, a.config.TickInterval, a.seed)

	a.machine.Start()
	defer a.machine.Stop()

	if err := host.Run(ctx); err != nil {
		return fmt.Errorf("host stopped: %w", err)
	}
	return nil
}
