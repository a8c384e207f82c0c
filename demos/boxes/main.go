// boxes is a small platform scene: a player box, crates to knock around with
// mouse-click explosions, a ray aimed at the cursor and a goal trigger.
//
//	go run ./demos/boxes -config demos/boxes/game.toml -script demos/boxes/script.json
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/ecs"
	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
	"github.com/phanxgames/bramble/physics"
	"github.com/phanxgames/bramble/scene"
)

//go:embed level.yaml
var defaultLevel []byte

const (
	moveForce  = 4.0
	jumpForce  = 14.0
	blastForce = 30.0
	blastSize  = 160
	rayLength  = 400
	flashTicks = 12
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	levelPath := flag.String("level", "", "YAML level layout (defaults to the built-in level)")
	scriptPath := flag.String("script", "", "JSON scenario to play instead of waiting for input")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	logger, err := engine.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}

	layout, err := loadLevel(*levelPath)
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	g := bramble.NewGame(*cfg, logger)
	g.States.Register("title", &titleState{game: g})
	g.States.Register("level", newLevelState(g, layout))
	if err := g.States.ChangeState("title"); err != nil {
		logger.Fatal("start", zap.Error(err))
	}

	var runner *bramble.ScriptRunner
	if *scriptPath != "" {
		if runner, err = bramble.LoadScriptFile(*scriptPath); err != nil {
			logger.Fatal("load script", zap.Error(err))
		}
		g.SetScript(runner)
	}

	rc := bramble.WindowRunConfig(*cfg)
	rc.Resizable = true
	if err := bramble.Run(g, rc); err != nil {
		log.Fatal(err)
	}
	if runner != nil {
		if err := runner.Err(); err != nil {
			log.Fatal(err)
		}
	}
}

func loadLevel(path string) (*physics.Layout, error) {
	if path == "" {
		return physics.LoadLayout(defaultLevel)
	}
	return physics.LoadLayoutFile(path)
}

// titleState waits for Enter.
type titleState struct {
	scene.BaseState
	game *bramble.Game
}

func (s *titleState) Update(float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := s.game.States.ChangeState("level"); err != nil {
			s.game.Context().Log().Warn("change state", zap.Error(err))
		}
	}
}

func (s *titleState) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "BOXES\n\nEnter: start\nArrows/Space: move and jump\nClick: explode\nEsc: back here", 40, 40)
}

// levelState owns the physics scene. Bodies come from the layout and each
// visible one gets a block entity on the stage.
type levelState struct {
	scene.BaseState
	game   *bramble.Game
	layout *physics.Layout
	events donburi.World

	player *physics.Body
	ray    *physics.RayTracer
	won    bool
}

func newLevelState(g *bramble.Game, layout *physics.Layout) *levelState {
	s := &levelState{game: g, layout: layout, events: donburi.NewWorld()}

	ecs.HitEventType.Subscribe(s.events, func(_ donburi.World, e ecs.HitEvent) {
		g.Messages.Send("crate", "hit", e.Body.ID)
	})
	ecs.TriggerEventType.Subscribe(s.events, func(_ donburi.World, e ecs.TriggerEvent) {
		if e.Body == s.player && e.Trigger.Tag == "goal" && !s.won {
			s.reachGoal(e.Trigger)
		}
	})
	ecs.CollisionEventType.Subscribe(s.events, func(_ donburi.World, e ecs.CollisionEvent) {
		if e.Body == s.player && e.Other.Tag == "crate" {
			g.Messages.Send("crate", "bump", e.Other.ID)
		}
	})
	return s
}

func (s *levelState) Initialize() {
	g := s.game
	g.World.Clear()
	s.won = false
	g.Vars.Set("blasts", 0)

	for _, b := range g.World.Populate(s.layout) {
		name, _ := b.Tag.(string)
		switch name {
		case "player":
			s.player = b
			ecs.AttachTriggers(s.events, b)
		case "goal":
			// Triggers are drawn by the debug overlay only.
			continue
		default:
			ecs.Attach(s.events, b)
		}
		g.Stage.AddEntity(newBlock(g, b), name)
	}

	s.ray = physics.NewRayTracer(g.World)
	s.ray.Radius = rayLength
	s.ray.SourceBody = s.player

	g.Camera.SetBounds(g.World.WorkArea)
	if s.player != nil {
		g.Camera.Follow(s.player, geom.Vec2{Y: -60}, 0.1)
	}
	g.Context().Log().Info("level started", zap.Int("bodies", g.World.Len()))
}

func (s *levelState) Terminate() {
	s.game.Camera.Unfollow()
	s.game.Camera.ClearBounds()
	s.game.World.Clear()
	s.player = nil
}

func (s *levelState) Update(float64) {
	g := s.game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.States.ChangeState("title"); err != nil {
			g.Context().Log().Warn("change state", zap.Error(err))
		}
		return
	}

	if s.player != nil && !s.won {
		f := s.player.Force
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			f.X = -moveForce
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			f.X = moveForce
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) && s.grounded() {
			f.Y = -jumpForce
		}
		s.player.ApplyForce(f)
	}

	mx, my := ebiten.CursorPosition()
	cursor := g.Camera.ScreenToWorld(geom.Vec2{X: float64(mx), Y: float64(my)})
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.explode(cursor)
	}
	if s.player != nil {
		s.ray.Source = s.player.Location()
		s.ray.TraceTo(cursor)
	}

	events.ProcessAllEvents(s.events)
}

func (s *levelState) Draw(screen *ebiten.Image) {
	g := s.game
	screen.Fill(color.RGBA{0x18, 0x1c, 0x24, 0xff})
	if s.player != nil {
		s.ray.Draw(engine.NewOverlay(screen, g.Camera))
	}

	blasts, _ := g.Vars.Get("blasts")
	status := fmt.Sprintf("blasts: %v  bodies: %d", blasts, g.World.Len())
	if s.won {
		status += "  GOAL!"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, g.Config.Window.Height-20)
}

func (s *levelState) explode(at geom.Vec2) {
	g := s.game
	ex := physics.NewExplosion(g.World, at, blastSize, blastForce)
	ex.LineOfSight = true
	ex.Explode()

	n, _ := g.Vars.Get("blasts")
	count, _ := n.(int)
	g.Vars.Set("blasts", count+1)
}

func (s *levelState) grounded() bool {
	sensor := s.player.Sensor()
	for _, b := range s.game.World.Bodies() {
		if b != s.player && !b.Trigger && sensor.Intersects(b.Bounds) {
			return true
		}
	}
	return false
}

func (s *levelState) reachGoal(goal *physics.Body) {
	s.won = true
	s.game.Camera.Unfollow()
	s.game.Camera.ScrollTo(goal.Location(), 1.5, ease.InOutQuad)
	s.game.Messages.Send("", "cheer")
	s.game.Context().Log().Info("goal reached", zap.Stringer("player", s.player))
}

// block draws one body and flashes when a message names it.
type block struct {
	scene.Base
	game  *bramble.Game
	body  *physics.Body
	fill  color.RGBA
	flash int
}

func newBlock(g *bramble.Game, b *physics.Body) *block {
	e := &block{Base: scene.NewBase(), game: g, body: b}
	e.Tag, _ = b.Tag.(string)
	switch {
	case e.Tag == "player":
		e.fill = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
		e.Priority = 1
	case b.Fixed:
		e.fill = color.RGBA{0x60, 0x60, 0x70, 0xff}
		e.ZOrder = -1
	case b.Z != 0:
		e.fill = color.RGBA{0x70, 0x50, 0x90, 0x80}
	default:
		e.fill = color.RGBA{0xc8, 0x8a, 0x3c, 0xff}
	}
	e.sync()
	return e
}

func (e *block) sync() {
	e.Location = e.body.Location()
	e.Rect = e.body.Bounds
}

func (e *block) Update(float64) {
	e.sync()
	if e.flash > 0 {
		e.flash--
	}
}

func (e *block) Draw(screen *ebiten.Image) {
	fill := e.fill
	if e.flash > 0 {
		fill = color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	engine.NewOverlay(screen, e.game.Camera).DrawRect(e.body.Bounds, color.RGBA{0, 0, 0, 0xff}, fill)
}

func (e *block) ReceiveMessage(message string, values ...any) {
	switch message {
	case "flash", "cheer":
		e.flash = flashTicks
	case "hit", "bump":
		if len(values) > 0 && values[0] == e.body.ID {
			e.flash = flashTicks
		}
	}
}
