// Package scene manages game objects and game states. A Stage owns the
// live entities and drives their update and draw passes, a StateMachine
// switches between named game states, and a MessageQueue delivers deferred
// messages to entities by tag.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble/geom"
)

// Entity is a game object managed by a Stage. Embed Base to get no-op
// defaults and the bookkeeping the Stage needs, then override the methods
// the object cares about.
type Entity interface {
	Initialize()
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Terminate()
	ReceiveMessage(message string, values ...any)
	// Bounds is the area used for visibility culling. An empty rectangle is
	// never culled.
	Bounds() geom.Rect

	entity() *Base
}

// Base holds the state every entity shares. Its zero value is hidden and
// disabled; use NewBase for a live one.
type Base struct {
	Enabled  bool
	Visible  bool
	Priority int // update order, higher first
	ZOrder   int // draw order, higher first
	Location geom.Vec2
	Tag      string
	Rect     geom.Rect

	name        string
	seq         uint64
	stage       *Stage
	killed      bool
	initialized bool
}

// NewBase returns an enabled, visible Base.
func NewBase() Base {
	return Base{Enabled: true, Visible: true}
}

func (b *Base) entity() *Base { return b }

// Name returns the name given by Stage.AddEntity.
func (b *Base) Name() string { return b.name }

// Stage returns the owning stage, or nil.
func (b *Base) Stage() *Stage { return b.stage }

// Killed reports whether Kill was called and the stage has not yet
// removed the entity.
func (b *Base) Killed() bool { return b.killed }

// IsInitialized reports whether the entity is live on a stage.
func (b *Base) IsInitialized() bool { return b.initialized }

// Kill disables and hides the entity. The stage terminates and removes it
// during its next update pass.
func (b *Base) Kill() {
	if b.killed {
		return
	}
	b.killed = true
	b.Enabled = false
	b.Visible = false
	if b.stage != nil {
		b.stage.killed++
	}
}

func (b *Base) Initialize()                   {}
func (b *Base) Update(float64)                {}
func (b *Base) Draw(*ebiten.Image)            {}
func (b *Base) Terminate()                    {}
func (b *Base) ReceiveMessage(string, ...any) {}
func (b *Base) Bounds() geom.Rect             { return b.Rect }

// reset clears the shared state after the entity has been terminated.
func (b *Base) reset() {
	b.Enabled = false
	b.Visible = false
	b.Priority = 0
	b.ZOrder = 0
	b.Location = geom.Vec2{}
	b.Tag = ""
	b.Rect = geom.Rect{}
	b.stage = nil
	b.killed = false
	b.initialized = false
}
