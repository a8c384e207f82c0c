package bramble

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/physics"
	"github.com/phanxgames/bramble/scene"
)

// Game owns one of each engine subsystem and drives them in a fixed order
// every frame. It implements ebiten.Game.
type Game struct {
	Config engine.Config

	Camera   *engine.Camera
	Content  *engine.Content
	World    *physics.World
	Stage    *scene.Stage
	States   *scene.StateMachine
	Messages *scene.MessageQueue
	Vars     *scene.VarList

	// ShowFPS draws the frame counter in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is the directory where screenshots are saved.
	// Defaults to "screenshots".
	ScreenshotDir string

	ctx             engine.Context
	overlay         *engine.ScreenOverlay
	fps             engine.FPSCounter
	lastDraw        time.Time
	script          *ScriptRunner
	screenshotQueue []string
	quit            bool
}

// NewGame wires the subsystems from cfg. logger may be nil.
func NewGame(cfg engine.Config, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	screen := engineRect(cfg)
	cam := engine.NewCamera(screen)
	content := engine.NewContent(logger)
	ctx := engine.Context{
		Clock:    engine.TickClock{},
		Viewport: cam,
		Content:  content,
		Logger:   logger,
	}

	world := physics.NewWorld(ctx, cfg.Physics.Gravity, cfg.Physics.WorkArea)
	world.Visible = cfg.Debug
	world.SetDebugMode(cfg.Debug)

	stage := scene.NewStage(ctx)
	g := &Game{
		Config:        cfg,
		Camera:        cam,
		Content:       content,
		World:         world,
		Stage:         stage,
		States:        scene.NewStateMachine(ctx, stage),
		Messages:      scene.NewMessageQueue(stage),
		Vars:          scene.NewVarList(),
		ShowFPS:       cfg.Debug,
		ScreenshotDir: "screenshots",
		ctx:           ctx,
		overlay:       engine.NewOverlay(nil, cam),
	}
	logger.Debug("game created",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	return g
}

// Context returns the collaborators shared by the subsystems.
func (g *Game) Context() engine.Context { return g.ctx }

// Update advances one frame: game state, physics, entities, pending
// messages, then the camera.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.script != nil {
		g.script.step(g)
	}
	g.step(g.ctx.Delta())
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) step(dt float64) {
	g.States.Update(dt)
	g.World.Update(dt)
	g.Stage.Update(dt)
	g.Messages.Process()
	g.Camera.Update(dt)
}

// Draw renders the current state, then the entities, then the physics
// debug overlay on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.States.Draw(screen)
	g.Stage.Draw(screen)
	g.overlay.Target = screen
	g.World.Draw(g.overlay)

	now := time.Now()
	if !g.lastDraw.IsZero() {
		g.fps.Update(now.Sub(g.lastDraw).Seconds())
	}
	g.lastDraw = now
	if g.ShowFPS {
		g.fps.Draw(screen)
	}

	g.flushScreenshots(screen)
}

// Layout reports the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

// FPS returns the measured frame rate.
func (g *Game) FPS() int { return g.fps.FPS() }

// Quit ends the game loop after the current Update.
func (g *Game) Quit() { g.quit = true }

// SetScript attaches a ScriptRunner. Its steps run at the start of every
// Update.
func (g *Game) SetScript(r *ScriptRunner) {
	g.script = r
}

// Close tears everything down: every state is terminated, the stage and
// world are emptied, and content is unloaded.
func (g *Game) Close() {
	g.States.Close()
	g.Stage.Clear()
	g.World.Clear()
	g.Content.Unload()
	g.ctx.Log().Debug("game closed")
	_ = g.ctx.Log().Sync()
}
