// Package bramble is a small 2D game framework for [Ebitengine] built around
// axis-aligned rectangle physics.
//
// A [Game] owns one of each subsystem and implements [ebiten.Game]:
//
//   - engine: shared [engine.Context], camera, content cache, config, logging
//   - physics: bodies, gravity, collision response, ray tracing, explosions
//   - scene: entities on a stage, a state machine, messages, variables
//   - ecs: an optional bridge that republishes physics callbacks as
//     [Donburi] events
//
// # Quick start
//
// [Run] opens a window and drives the game loop:
//
//	cfg, err := engine.LoadConfig("game.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	logger, _ := engine.NewLogger(cfg.Logging)
//	g := bramble.NewGame(*cfg, logger)
//	g.States.Register("level", &levelState{game: g})
//	if err := g.States.ChangeState("level"); err != nil {
//		log.Fatal(err)
//	}
//	if err := bramble.Run(g, bramble.WindowRunConfig(*cfg)); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame order
//
// Every Update runs the current state, then the physics world, then the
// stage, then the messages queued during the previous frame, and finally
// the camera. Draw renders the state, the stage and, when the world is
// visible, the physics debug overlay on top.
//
// # Scripts
//
// A [ScriptRunner] replays a JSON scenario one step per frame so a demo can
// run unattended and capture screenshots. See [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package bramble
