// Package ecs bridges physics callbacks into a [Donburi] world as typed
// events, so ECS systems can react to collisions without owning the bodies.
//
// Usage:
//
//	ecs.AttachWorld(world, physicsWorld)
//	ecs.CollisionEventType.Subscribe(world, onCollision)
//	// once per frame, after World.Update:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
