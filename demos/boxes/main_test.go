package main

import (
	"testing"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/engine"
)

func TestLevelEntitiesTakeBodyNames(t *testing.T) {
	layout, err := loadLevel("")
	if err != nil {
		t.Fatalf("built-in level: %v", err)
	}
	g := bramble.NewGame(*engine.DefaultConfig(), nil)
	s := newLevelState(g, layout)
	s.Initialize()

	if s.player == nil {
		t.Fatal("level has no player")
	}
	e, ok := g.Stage.FindByName("player")
	if !ok {
		t.Fatal("player entity not on the stage")
	}
	if b := e.(*block); b.Tag != "player" || b.body != s.player {
		t.Errorf("player block tag=%q body=%v", b.Tag, b.body)
	}
	if _, ok := g.Stage.FindByName("goal"); ok {
		t.Error("goal trigger should not get an entity")
	}
	if _, ok := g.Stage.FindByName("crate"); !ok {
		t.Error("crate entity missing")
	}
}
