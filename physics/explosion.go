package physics

import (
	"github.com/phanxgames/bramble/geom"
)

// Explosion pushes movable bodies away from an epicentre. Bodies closer to
// the centre receive more force.
type Explosion struct {
	Location geom.Vec2
	Radius   int
	Force    float64
	// LineOfSight skips bodies shielded by another body. Off by default, in
	// which case every body in range is reached.
	LineOfSight bool

	world *World
}

// NewExplosion creates an explosion in w.
func NewExplosion(w *World, location geom.Vec2, radius int, force float64) *Explosion {
	return &Explosion{
		Location: location,
		Radius:   radius,
		Force:    force,
		world:    w,
	}
}

// Explode applies the blast to every enabled, non-fixed, non-trigger body
// whose centre lies within Radius. OnHit fires for each of them, with a
// response of 0 when Force is not positive.
func (e *Explosion) Explode() {
	if e.world == nil {
		return
	}
	var ray *RayTracer
	if e.LineOfSight {
		ray = NewRayTracer(e.world)
	}

	bodies := append([]*Body(nil), e.world.bodies...)
	for _, b := range bodies {
		if !b.Enabled || b.Fixed || b.Trigger {
			continue
		}
		loc := b.Location()
		distance := int(geom.Distance(e.Location, loc))
		if distance > e.Radius {
			continue
		}
		if ray != nil && !e.reaches(ray, b) {
			continue
		}

		direction := geom.Angle(e.Location, loc)
		var response float64
		if e.Force > 0 {
			response = -geom.Percent(float64(distance-e.Radius), e.Force)
			b.ApplyForceAngle(response, direction)
		}
		if b.OnHit != nil {
			b.OnHit(e, response, direction)
		}
	}
}

// reaches reports whether the first body on the segment from the epicentre
// to b's centre is b itself. A nil trace means the epicentre is inside b.
func (e *Explosion) reaches(ray *RayTracer, b *Body) bool {
	ray.Source = e.Location
	hit := ray.TraceTo(b.Location())
	return hit == nil || hit == b
}
