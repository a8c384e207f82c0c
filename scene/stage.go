package scene

import (
	"fmt"
	"slices"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
)

// Stage owns the live entities. Update runs them in Priority order and
// removes killed ones; Draw renders the visible ones in ZOrder order.
type Stage struct {
	Enabled bool
	Visible bool

	ctx      engine.Context
	entities []Entity
	seq      uint64
	killed   int

	updateList []Entity
	drawList   []Entity
}

// NewStage creates an enabled, visible stage. ctx.Viewport, when set, is
// used to cull entities outside the screen.
func NewStage(ctx engine.Context) *Stage {
	return &Stage{
		Enabled: true,
		Visible: true,
		ctx:     ctx,
	}
}

// AddEntity names e, initializes it and appends it to the stage. Adding nil
// or an entity that already belongs to a stage panics.
func (s *Stage) AddEntity(e Entity, name string) {
	if e == nil {
		panic("bramble: cannot add nil entity")
	}
	b := e.entity()
	if b.stage != nil {
		panic(fmt.Sprintf("bramble: entity %q already belongs to a stage", b.name))
	}
	s.seq++
	b.name = name
	b.stage = s
	b.seq = s.seq
	b.killed = false

	e.Initialize()
	b.initialized = true
	s.entities = append(s.entities, e)
	s.ctx.Log().Debug("entity added", zap.String("name", name), zap.Int("count", len(s.entities)))
}

// Update runs one update pass. Entities are visited by descending Priority,
// ties in insertion order. An entity killed before its turn, or during its
// own Update, is terminated and removed when visited.
func (s *Stage) Update(dt float64) {
	if !s.Enabled {
		return
	}

	// Taken out of the stage so a nested Update gets its own list.
	list := s.updateList[:0]
	s.updateList = nil
	for _, e := range s.entities {
		if b := e.entity(); b.Enabled || b.killed {
			list = append(list, e)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].entity().Priority > list[j].entity().Priority
	})

	for i, e := range list {
		b := e.entity()
		if b.stage != s {
			// Removed by an earlier entity this pass.
			continue
		}
		if b.Enabled {
			e.Update(dt)
		}
		if b.killed && b.stage == s {
			s.remove(s.indexOf(e))
		}
		list[i] = nil
	}
	s.updateList = list[:0]

	if s.killed > 0 {
		s.ctx.Log().Debug("entities killed", zap.Int("count", s.killed))
		s.killed = 0
	}
}

// Draw renders the visible entities inside the viewport, highest ZOrder
// first.
func (s *Stage) Draw(screen *ebiten.Image) {
	if !s.Visible {
		return
	}

	cull := s.ctx.Viewport != nil
	view := s.screenBounds()
	list := s.drawList[:0]
	s.drawList = nil
	for _, e := range s.entities {
		if !e.entity().Visible {
			continue
		}
		if r := e.Bounds(); cull && !r.IsEmpty() && !r.Intersects(view) {
			continue
		}
		list = append(list, e)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].entity().ZOrder > list[j].entity().ZOrder
	})

	for i, e := range list {
		if e.entity().Visible {
			e.Draw(screen)
		}
		list[i] = nil
	}
	s.drawList = list[:0]
}

// FindByName returns the most recently added entity with the given name.
func (s *Stage) FindByName(name string) (Entity, bool) {
	i := s.findIndex(name)
	if i < 0 {
		return nil, false
	}
	return s.entities[i], true
}

// RemoveEntity terminates and removes the most recently added entity with
// the given name.
func (s *Stage) RemoveEntity(name string) error {
	i := s.findIndex(name)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", name, ErrEntityNotFound)
	}
	s.remove(i)
	return nil
}

// RemoveEntityAt terminates and removes the entity at index i.
func (s *Stage) RemoveEntityAt(i int) error {
	if i < 0 || i >= len(s.entities) {
		return fmt.Errorf("remove at %d of %d: %w", i, len(s.entities), ErrIndexOutOfRange)
	}
	s.remove(i)
	return nil
}

// Entities returns a copy of the entity list in insertion order.
func (s *Stage) Entities() []Entity {
	return slices.Clone(s.entities)
}

// Len returns the number of entities.
func (s *Stage) Len() int { return len(s.entities) }

// Clear terminates and removes every entity.
func (s *Stage) Clear() {
	n := len(s.entities)
	entities := s.entities
	s.entities = nil
	for _, e := range entities {
		e.Terminate()
		e.entity().reset()
	}
	s.killed = 0
	if n > 0 {
		s.ctx.Log().Debug("stage cleared", zap.Int("count", n))
	}
}

func (s *Stage) screenBounds() geom.Rect {
	if s.ctx.Viewport == nil {
		return geom.Rect{}
	}
	return s.ctx.Viewport.ScreenBounds()
}

func (s *Stage) findIndex(name string) int {
	found := -1
	var best uint64
	for i, e := range s.entities {
		if b := e.entity(); b.name == name && (found < 0 || b.seq > best) {
			found, best = i, b.seq
		}
	}
	return found
}

func (s *Stage) indexOf(e Entity) int {
	for i, o := range s.entities {
		if o == e {
			return i
		}
	}
	return -1
}

// remove terminates the entity at i and drops it from the stage.
func (s *Stage) remove(i int) {
	if i < 0 {
		return
	}
	e := s.entities[i]
	s.entities = slices.Delete(s.entities, i, i+1)
	name := e.entity().name
	e.Terminate()
	e.entity().reset()
	s.ctx.Log().Debug("entity removed", zap.String("name", name), zap.Int("count", len(s.entities)))
}
