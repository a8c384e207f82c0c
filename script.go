package bramble

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/bramble/geom"
	"github.com/phanxgames/bramble/physics"
)

// scriptStep is one action in a scenario script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Tag     string  `json:"tag,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Radius  int     `json:"radius,omitempty"`
	Force   float64 `json:"force,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"state":      true, // change to state Label
	"send":       true, // send message Label to Tag
	"set":        true, // set variable Label to X
	"explode":    true, // explosion at (X, Y)
	"debug":      true, // show or hide the physics overlay
	"screenshot": true,
	"wait":       true,
	"quit":       true,
}

// ScriptRunner plays a scenario against a Game one step per frame, for
// demos and automated runs without input. Attach it with Game.SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON scenario:
//
//	{"steps": [
//		{"action": "state", "label": "level1"},
//		{"action": "wait", "frames": 60},
//		{"action": "explode", "x": 320, "y": 200, "radius": 120, "force": 40},
//		{"action": "screenshot", "label": "after-blast"},
//		{"action": "quit"}
//	]}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a scenario file.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return LoadScript(data)
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the errors raised by failed steps, joined.
func (r *ScriptRunner) Err() error {
	return errors.Join(r.errs...)
}

// step runs at most one step. Called from Game.Update.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "state":
		if err := g.States.ChangeState(st.Label); err != nil {
			r.fail(g, st, err)
		}
	case "send":
		g.Messages.Send(st.Tag, st.Label)
	case "set":
		g.Vars.Set(st.Label, st.X)
	case "explode":
		physics.NewExplosion(g.World, geom.Vec2{X: st.X, Y: st.Y}, st.Radius, st.Force).Explode()
	case "debug":
		g.World.Visible = st.Visible == nil || *st.Visible
	case "screenshot":
		g.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		g.Quit()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) fail(g *Game, st scriptStep, err error) {
	r.errs = append(r.errs, fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err))
	g.ctx.Log().Warn("script step failed",
		zap.Int("step", r.cursor-1), zap.String("action", st.Action), zap.Error(err))
}
