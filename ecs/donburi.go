package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/bramble/geom"
	"github.com/phanxgames/bramble/physics"
)

// CollisionEvent is published when Body overlaps a non-trigger body, or a
// trigger when Body has no trigger handler.
type CollisionEvent struct {
	Body      *physics.Body
	Other     *physics.Body
	Force     geom.Vec2
	Direction float64
}

// TriggerEvent is published when Body overlaps Trigger.
type TriggerEvent struct {
	Body    *physics.Body
	Trigger *physics.Body
}

// HitEvent is published when an explosion or ray reaches Body.
type HitEvent struct {
	Body      *physics.Body
	Source    any
	Force     float64
	Direction float64
}

var (
	CollisionEventType = events.NewEventType[CollisionEvent]()
	TriggerEventType   = events.NewEventType[TriggerEvent]()
	HitEventType       = events.NewEventType[HitEvent]()
)

// Attach makes b publish its collision, trigger and hit callbacks into
// world. Handlers already set on b keep running before the publish.
//
// A trigger handler is only installed when b already has one, so a body
// without one keeps reporting trigger overlaps as collisions.
func Attach(world donburi.World, b *physics.Body) {
	if b == nil {
		return
	}

	prevCollision := b.OnCollision
	b.OnCollision = func(other *physics.Body, force geom.Vec2, direction float64) {
		if prevCollision != nil {
			prevCollision(other, force, direction)
		}
		CollisionEventType.Publish(world, CollisionEvent{
			Body:      b,
			Other:     other,
			Force:     force,
			Direction: direction,
		})
	}

	if prevTrigger := b.OnTriggerCollision; prevTrigger != nil {
		b.OnTriggerCollision = func(trigger *physics.Body) {
			prevTrigger(trigger)
			TriggerEventType.Publish(world, TriggerEvent{Body: b, Trigger: trigger})
		}
	}

	prevHit := b.OnHit
	b.OnHit = func(source any, force, direction float64) {
		if prevHit != nil {
			prevHit(source, force, direction)
		}
		HitEventType.Publish(world, HitEvent{
			Body:      b,
			Source:    source,
			Force:     force,
			Direction: direction,
		})
	}
}

// AttachTriggers is like Attach but always publishes trigger overlaps as
// TriggerEvent instead of falling through to CollisionEvent.
func AttachTriggers(world donburi.World, b *physics.Body) {
	if b == nil {
		return
	}
	if b.OnTriggerCollision == nil {
		b.OnTriggerCollision = func(*physics.Body) {}
	}
	Attach(world, b)
}

// AttachWorld attaches every body currently in w.
func AttachWorld(world donburi.World, w *physics.World) {
	for _, b := range w.Bodies() {
		Attach(world, b)
	}
}
