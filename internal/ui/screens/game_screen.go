package screens

import (
	"log"

	"snake/internal/domain"
	"snake/internal/state"
	"snake/internal/ui/components"
	"snake/internal/ui/types"
)

type GameScreen struct {
	state.Hooks

	session       *domain.Session
	fieldRenderer *components.FieldRenderer
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	config := ctx.Config()
	return &GameScreen{
		session:       domain.NewSession(config, ctx.Random()),
		fieldRenderer: components.NewFieldRenderer(config.CellSize),
	}
}

func (s *GameScreen) Session() *domain.Session {
	return s.session
}

func (s *GameScreen) Update(dt float64) state.Transition {
	switch outcome := s.session.Update(dt); outcome {
	case domain.OutcomeCollided, domain.OutcomeBoardFull:
		won := outcome == domain.OutcomeBoardFull
		log.Printf("GameScreen: round over (%v), score %d", outcome, s.session.Score())
		return state.Switch(NewLostScreen(s.session.Score(), won))
	}
	return state.None()
}

func (s *GameScreen) HandleKey(key types.Key) state.Transition {
	if dir, ok := key.Direction(); ok {
		s.session.Steer(dir)
	}
	return state.None()
}

func (s *GameScreen) Draw(surface types.Surface) {
	s.fieldRenderer.DrawField(surface, s.session.Field)
	s.fieldRenderer.DrawSnake(surface, s.session.Snake())
	s.fieldRenderer.DrawApple(surface, s.session.Apple())
}

func (s *GameScreen) OnStart() {
	log.Printf("GameScreen: new round on %dx%d board", s.session.Field.Width, s.session.Field.Height)
}
