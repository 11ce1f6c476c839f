package state

import (
	"fmt"
	"log"
	"strings"

	"snake/internal/ui/types"
)

// Machine owns a stack of states. It runs from Start until the last state is
// popped or a quit is applied.
type Machine struct {
	running bool
	states  []State
}

func NewMachine(initial State) *Machine {
	if initial == nil {
		panic("state: machine needs an initial state")
	}
	return &Machine{
		states: []State{initial},
	}
}

func (m *Machine) Start() {
	if m.running || len(m.states) == 0 {
		return
	}
	m.top().OnStart()
	m.running = true
	log.Printf("StateMachine: started with %s", stateName(m.top()))
}

func (m *Machine) IsRunning() bool {
	return m.running
}

func (m *Machine) Depth() int {
	return len(m.states)
}

// Top returns the active state, or nil once the stack is empty.
func (m *Machine) Top() State {
	if len(m.states) == 0 {
		return nil
	}
	return m.top()
}

func (m *Machine) Update(dt float64) {
	if !m.running {
		return
	}
	m.Apply(m.top().Update(dt))
}

func (m *Machine) HandleKey(key types.Key) {
	if !m.running {
		return
	}
	m.Apply(m.top().HandleKey(key))
}

func (m *Machine) Draw(surface types.Surface) {
	if !m.running {
		return
	}
	m.top().Draw(surface)
}

func (m *Machine) Apply(t Transition) {
	if !m.running {
		return
	}

	switch t.Kind {
	case KindNone:
		return
	case KindPop:
		m.pop()
	case KindPush:
		m.push(t.Next)
	case KindSwitch:
		m.switchTo(t.Next)
	case KindQuit:
		m.Stop()
	default:
		panic(fmt.Sprintf("state: unknown transition kind %d", t.Kind))
	}
}

// Stop runs every stop hook from the top down and empties the stack.
func (m *Machine) Stop() {
	if !m.running {
		return
	}
	for len(m.states) > 0 {
		m.drop()
	}
	m.running = false
	log.Println("StateMachine: stopped")
}

func (m *Machine) pop() {
	m.drop()
	if len(m.states) == 0 {
		m.running = false
		log.Println("StateMachine: popped last state, stopped")
		return
	}
	m.top().OnResume()
	log.Printf("StateMachine: pop, resumed %s (depth %d)", stateName(m.top()), len(m.states))
}

func (m *Machine) push(next State) {
	if next == nil {
		panic("state: push of nil state")
	}
	if len(m.states) > 0 {
		m.top().OnPause()
	}
	m.states = append(m.states, next)
	next.OnStart()
	log.Printf("StateMachine: push %s (depth %d)", stateName(next), len(m.states))
}

func (m *Machine) switchTo(next State) {
	if next == nil {
		panic("state: switch to nil state")
	}
	m.drop()
	m.states = append(m.states, next)
	next.OnStart()
	log.Printf("StateMachine: switch to %s (depth %d)", stateName(next), len(m.states))
}

func (m *Machine) drop() {
	last := len(m.states) - 1
	if last < 0 {
		return
	}
	s := m.states[last]
	m.states[last] = nil
	m.states = m.states[:last]
	s.OnStop()
}

func (m *Machine) top() State {
	return m.states[len(m.states)-1]
}

func stateName(s State) string {
	name := fmt.Sprintf("%T", s)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
