package types

import (
	"snake/internal/domain"
)

// ScreenContext gives screens what they need to start new rounds.
type ScreenContext interface {
	Config() *domain.GameConfig
	Random() domain.RandomSource
}
