package scene

import (
	"errors"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
)

// probe is a test entity that records its lifecycle calls into a shared log.
type probe struct {
	Base
	log      *[]string
	onUpdate func(p *probe)
	received []string
}

func newProbe(log *[]string) *probe {
	return &probe{Base: NewBase(), log: log}
}

func (p *probe) record(event string) {
	if p.log != nil {
		*p.log = append(*p.log, event+" "+p.Name())
	}
}

func (p *probe) Initialize() { p.record("init") }
func (p *probe) Terminate()  { p.record("term") }
func (p *probe) Draw(*ebiten.Image) {
	p.record("draw")
}

func (p *probe) Update(float64) {
	p.record("update")
	if p.onUpdate != nil {
		p.onUpdate(p)
	}
}

func (p *probe) ReceiveMessage(message string, values ...any) {
	p.received = append(p.received, message)
}

func TestAddEntity(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	p := newProbe(&log)
	s.AddEntity(p, "hero")

	if p.Name() != "hero" || p.Stage() != s || !p.IsInitialized() {
		t.Errorf("name=%q stage=%v initialized=%v", p.Name(), p.Stage(), p.IsInitialized())
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if !slices.Equal(log, []string{"init hero"}) {
		t.Errorf("log = %v", log)
	}
}

func TestAddEntityPanics(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewStage(engine.Context{}).AddEntity(nil, "x")
	})
	t.Run("owned", func(t *testing.T) {
		p := newProbe(nil)
		NewStage(engine.Context{}).AddEntity(p, "x")
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewStage(engine.Context{}).AddEntity(p, "x")
	})
}

func TestFindByNameLatestWins(t *testing.T) {
	s := NewStage(engine.Context{})
	first, second, other := newProbe(nil), newProbe(nil), newProbe(nil)
	s.AddEntity(first, "A")
	s.AddEntity(second, "A")
	s.AddEntity(other, "B")

	got, ok := s.FindByName("A")
	if !ok || got != second {
		t.Fatalf("FindByName(A) = %v, want the second A", got)
	}
	if _, ok := s.FindByName("C"); ok {
		t.Error("FindByName(C) should miss")
	}

	if err := s.RemoveEntity("A"); err != nil {
		t.Fatal(err)
	}
	got, ok = s.FindByName("A")
	if !ok || got != first {
		t.Errorf("after removal FindByName(A) = %v, want the first A", got)
	}
}

func TestRemoveEntityErrors(t *testing.T) {
	s := NewStage(engine.Context{})
	s.AddEntity(newProbe(nil), "A")

	if err := s.RemoveEntity("missing"); !errors.Is(err, ErrEntityNotFound) {
		t.Errorf("RemoveEntity(missing) = %v, want ErrEntityNotFound", err)
	}
	for _, i := range []int{-1, 1, 5} {
		if err := s.RemoveEntityAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveEntityAt(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestRemoveEntityAtTerminatesAndResets(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	p := newProbe(&log)
	p.Tag = "enemy"
	p.Priority = 4
	s.AddEntity(p, "A")

	if err := s.RemoveEntityAt(0); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(log, []string{"init A", "term A"}) {
		t.Errorf("log = %v", log)
	}
	if p.Stage() != nil || p.IsInitialized() || p.Enabled || p.Visible || p.Tag != "" || p.Priority != 0 {
		t.Errorf("entity not reset after removal: %+v", p.Base)
	}

	// A removed entity can join another stage.
	NewStage(engine.Context{}).AddEntity(p, "again")
}

func TestUpdatePriorityOrder(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	for _, e := range []struct {
		name     string
		priority int
	}{{"low", 1}, {"high", 5}, {"mid", 3}, {"mid2", 3}} {
		p := newProbe(&log)
		p.Priority = e.priority
		s.AddEntity(p, e.name)
	}
	log = nil
	s.Update(1.0 / 60.0)

	want := []string{"update high", "update mid", "update mid2", "update low"}
	if !slices.Equal(log, want) {
		t.Errorf("update order = %v, want %v", log, want)
	}
}

func TestUpdateSkipsDisabled(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	p := newProbe(&log)
	s.AddEntity(p, "A")
	p.Enabled = false
	log = nil

	s.Update(1.0 / 60.0)
	if len(log) != 0 {
		t.Errorf("disabled entity was updated: %v", log)
	}
	if s.Len() != 1 {
		t.Error("disabled entities stay on the stage")
	}
}

func TestKillDuringOwnUpdate(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	p := newProbe(&log)
	p.onUpdate = func(p *probe) { p.Kill() }
	s.AddEntity(p, "A")
	log = nil

	s.Update(1.0 / 60.0)
	if !slices.Equal(log, []string{"update A", "term A"}) {
		t.Errorf("log = %v, want update then terminate in the same pass", log)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}

	log = nil
	s.Draw(nil)
	if len(log) != 0 {
		t.Errorf("killed entity was drawn: %v", log)
	}
}

func TestKillOtherEntity(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	victim := newProbe(&log)
	killer := newProbe(&log)
	killer.Priority = 10
	killer.onUpdate = func(*probe) { victim.Kill() }
	s.AddEntity(victim, "victim")
	s.AddEntity(killer, "killer")
	log = nil

	s.Update(1.0 / 60.0)
	want := []string{"update killer", "term victim"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if _, ok := s.FindByName("victim"); ok {
		t.Error("victim should be removed")
	}
}

func TestKillBeforeUpdate(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	p := newProbe(&log)
	s.AddEntity(p, "A")
	p.Kill()
	if !p.Killed() || p.Enabled || p.Visible {
		t.Fatal("Kill should disable and hide the entity")
	}
	log = nil

	s.Update(1.0 / 60.0)
	if !slices.Equal(log, []string{"term A"}) {
		t.Errorf("log = %v", log)
	}
	if p.Killed() {
		t.Error("kill flag should be cleared after removal")
	}
}

func TestRemoveDuringUpdateSkipsEntity(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	a := newProbe(&log)
	a.Priority = 2
	b := newProbe(&log)
	a.onUpdate = func(*probe) {
		if err := s.RemoveEntity("B"); err != nil {
			t.Error(err)
		}
	}
	s.AddEntity(a, "A")
	s.AddEntity(b, "B")
	log = nil

	s.Update(1.0 / 60.0)
	want := []string{"update A", "term B"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestStageDisabledAndHidden(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	s.AddEntity(newProbe(&log), "A")
	log = nil

	s.Enabled = false
	s.Visible = false
	s.Update(1.0 / 60.0)
	s.Draw(nil)
	if len(log) != 0 {
		t.Errorf("log = %v, want nothing", log)
	}
}

func TestDrawZOrderAndCulling(t *testing.T) {
	var log []string
	view := engine.StaticViewport(geom.Rect{Width: 100, Height: 100})
	s := NewStage(engine.Context{Viewport: view})

	back := newProbe(&log)
	back.ZOrder = 10
	back.Rect = geom.Rect{X: 10, Y: 10, Width: 10, Height: 10}
	front := newProbe(&log)
	front.ZOrder = 1
	offscreen := newProbe(&log)
	offscreen.Rect = geom.Rect{X: 500, Y: 500, Width: 10, Height: 10}
	hidden := newProbe(&log)
	hidden.Visible = false
	edge := newProbe(&log)
	edge.Rect = geom.Rect{X: 100, Y: 0, Width: 10, Height: 10}

	s.AddEntity(front, "front")
	s.AddEntity(offscreen, "offscreen")
	s.AddEntity(hidden, "hidden")
	s.AddEntity(back, "back")
	s.AddEntity(edge, "edge")
	log = nil

	s.Draw(nil)
	want := []string{"draw back", "draw front"}
	if !slices.Equal(log, want) {
		t.Errorf("draw = %v, want %v", log, want)
	}
}

func TestDrawWithoutViewportDoesNotCull(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	p := newProbe(&log)
	p.Rect = geom.Rect{X: 5000, Y: 5000, Width: 1, Height: 1}
	s.AddEntity(p, "far")
	log = nil

	s.Draw(nil)
	if !slices.Equal(log, []string{"draw far"}) {
		t.Errorf("draw = %v", log)
	}
}

func TestClear(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	s.AddEntity(newProbe(&log), "A")
	s.AddEntity(newProbe(&log), "B")
	log = nil

	s.Clear()
	if !slices.Equal(log, []string{"term A", "term B"}) {
		t.Errorf("log = %v", log)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestEntitiesIsACopy(t *testing.T) {
	s := NewStage(engine.Context{})
	s.AddEntity(newProbe(nil), "A")
	list := s.Entities()
	list[0] = nil
	if got, _ := s.FindByName("A"); got == nil {
		t.Error("modifying Entities() changed the stage")
	}
}

func TestUpdateFromEntityUpdate(t *testing.T) {
	var log []string
	s := NewStage(engine.Context{})
	outer := newProbe(&log)
	outer.Priority = 1
	nested := false
	outer.onUpdate = func(*probe) {
		if !nested {
			nested = true
			s.Update(0)
		}
	}
	other := newProbe(&log)
	s.AddEntity(outer, "outer")
	s.AddEntity(other, "other")
	log = nil

	s.Update(0)

	want := []string{"update outer", "update outer", "update other", "update other"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}
