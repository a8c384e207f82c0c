package scene

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/bramble/engine"
)

// State is one screen or mode of the game: a menu, a level, a pause screen.
type State interface {
	Initialize()
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Terminate()
}

// BaseState provides no-op State methods for embedding.
type BaseState struct{}

func (BaseState) Initialize()        {}
func (BaseState) Update(float64)     {}
func (BaseState) Draw(*ebiten.Image) {}
func (BaseState) Terminate()         {}

type stateEntry struct {
	state       State
	initialized bool
}

// StateMachine runs one registered State at a time. Leaving a state clears
// the stage and unloads the content cache, so every state starts from an
// empty scene.
type StateMachine struct {
	ctx     engine.Context
	stage   *Stage
	states  map[string]*stateEntry
	current string
}

// NewStateMachine creates a state machine that clears stage on every state
// change. stage may be nil.
func NewStateMachine(ctx engine.Context, stage *Stage) *StateMachine {
	return &StateMachine{
		ctx:    ctx,
		stage:  stage,
		states: make(map[string]*stateEntry),
	}
}

// Register adds state under name, replacing any previous registration.
// Replacing the running state panics.
func (m *StateMachine) Register(name string, state State) {
	if state == nil {
		panic("bramble: cannot register nil state")
	}
	if name == "" {
		panic("bramble: state name must not be empty")
	}
	if name == m.current {
		panic(fmt.Sprintf("bramble: cannot replace running state %q", name))
	}
	m.states[name] = &stateEntry{state: state}
}

// States returns the registered state names, sorted.
func (m *StateMachine) States() []string {
	return slices.Sorted(maps.Keys(m.states))
}

// Current returns the running state's name, or "" before the first change.
func (m *StateMachine) Current() string { return m.current }

// ChangeState terminates the running state, clears the stage, unloads
// content and initializes the named state. Changing to the running state
// restarts it. An unknown name leaves everything untouched.
func (m *StateMachine) ChangeState(name string) error {
	next, ok := m.states[name]
	if !ok {
		return fmt.Errorf("change state to %q: %w", name, ErrStateNotFound)
	}

	if prev := m.states[m.current]; prev != nil {
		prev.state.Terminate()
		prev.initialized = false
		if m.stage != nil {
			m.stage.Clear()
		}
		if m.ctx.Content != nil {
			m.ctx.Content.Unload()
		}
	}

	from := m.current
	m.current = name
	next.state.Initialize()
	next.initialized = true
	m.ctx.Log().Debug("state changed", zap.String("from", from), zap.String("to", name))
	return nil
}

// Update runs the current state if it is initialized.
func (m *StateMachine) Update(dt float64) {
	if e := m.states[m.current]; e != nil && e.initialized {
		e.state.Update(dt)
	}
}

// Draw draws the current state if it is initialized.
func (m *StateMachine) Draw(screen *ebiten.Image) {
	if e := m.states[m.current]; e != nil && e.initialized {
		e.state.Draw(screen)
	}
}

// Close terminates every registered state, running or not.
func (m *StateMachine) Close() {
	for _, name := range m.States() {
		e := m.states[name]
		e.state.Terminate()
		e.initialized = false
	}
	m.current = ""
}
