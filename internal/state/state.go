package state

import (
	"snake/internal/ui/types"
)

type Kind int

const (
	KindNone Kind = iota
	KindPop
	KindPush
	KindSwitch
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindPop:
		return "pop"
	case KindPush:
		return "push"
	case KindSwitch:
		return "switch"
	case KindQuit:
		return "quit"
	}
	return "none"
}

// Transition is a state's verdict on how the stack should change. Next is
// set only for push and switch.
type Transition struct {
	Kind Kind
	Next State
}

func None() Transition {
	return Transition{Kind: KindNone}
}

func Pop() Transition {
	return Transition{Kind: KindPop}
}

func Push(next State) Transition {
	return Transition{Kind: KindPush, Next: next}
}

func Switch(next State) Transition {
	return Transition{Kind: KindSwitch, Next: next}
}

func Quit() Transition {
	return Transition{Kind: KindQuit}
}

// State is one screen on the machine's stack. Only the topmost state gets
// updates, keys and draw calls.
type State interface {
	Update(dt float64) Transition
	HandleKey(key types.Key) Transition
	Draw(surface types.Surface)

	OnStart()
	OnStop()
	OnPause()
	OnResume()
}

// Hooks gives embedding states no-op lifecycle hooks.
type Hooks struct{}

func (Hooks) OnStart()  {}
func (Hooks) OnStop()   {}
func (Hooks) OnPause()  {}
func (Hooks) OnResume() {}
