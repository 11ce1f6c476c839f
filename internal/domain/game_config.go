package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	Width            int
	Height           int
	CellSize         int
	TickInterval     float64
	Title            string
	MaxAppleAttempts int
	Seed             uint64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:            30,
		Height:           20,
		CellSize:         20,
		TickInterval:     0.2,
		Title:            "Snake Game",
		MaxAppleAttempts: 100,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 2 || c.Width > 200 {
		return fmt.Errorf("%w: width %d out of range [2, 200]", ErrInvalidConfig, c.Width)
	}
	if c.Height < 2 || c.Height > 200 {
		return fmt.Errorf("%w: height %d out of range [2, 200]", ErrInvalidConfig, c.Height)
	}
	if c.CellSize < 4 || c.CellSize > 64 {
		return fmt.Errorf("%w: cell size %d out of range [4, 64]", ErrInvalidConfig, c.CellSize)
	}
	if c.TickInterval < 0.01 || c.TickInterval > 5 {
		return fmt.Errorf("%w: tick interval %.3fs out of range [0.01, 5]", ErrInvalidConfig, c.TickInterval)
	}
	if c.MaxAppleAttempts < 1 {
		return fmt.Errorf("%w: max apple attempts must be positive, got %d", ErrInvalidConfig, c.MaxAppleAttempts)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

// WindowSize is the board size in pixels.
func (c *GameConfig) WindowSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}
