package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Settings controls the world step.
type Settings struct {
	Gravity     float32
	FixedStep   float32
	MaxSubSteps int
	Iterations  int
}

// DefaultSettings steps at 60 Hz with Earth gravity along -Y.
func DefaultSettings() Settings {
	return Settings{
		Gravity:     -9.81,
		FixedStep:   1.0 / 60,
		MaxSubSteps: 5,
		Iterations:  4,
	}
}

// Hit is the result of a ray cast.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Collider *Collider
}

// World holds dynamic capsule bodies and static box colliders and steps them at a fixed rate.
// Gravity acts along Y; negative is down.
type World struct {
	settings    Settings
	Bodies      []*Body
	Colliders   []*Collider
	accumulator float32
}

// NewWorld returns an empty world. Zero fields in settings fall back to DefaultSettings.
func NewWorld(settings Settings) *World {
	def := DefaultSettings()
	if settings.FixedStep <= 0 {
		settings.FixedStep = def.FixedStep
	}
	if settings.MaxSubSteps <= 0 {
		settings.MaxSubSteps = def.MaxSubSteps
	}
	if settings.Iterations <= 0 {
		settings.Iterations = def.Iterations
	}
	return &World{settings: settings}
}

// Settings returns the step settings.
func (w *World) Settings() Settings { return w.settings }

// Gravity returns the vertical gravity.
func (w *World) Gravity() float32 { return w.settings.Gravity }

// SetGravity sets the vertical gravity (e.g. -9.81).
func (w *World) SetGravity(g float32) {
	w.settings.Gravity = g
}

// AddBody appends a dynamic body.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// AddCollider appends a static collider.
func (w *World) AddCollider(c *Collider) {
	w.Colliders = append(w.Colliders, c)
}

// ClearColliders removes every static collider. Bodies stay.
func (w *World) ClearColliders() {
	w.Colliders = nil
}

// CastRay returns the nearest collider hit along dir within maxDist. Bodies are not
// hit, so a ray starting inside the character only sees the course.
func (w *World) CastRay(origin, dir mgl32.Vec3, maxDist float32) (Hit, bool) {
	l := dir.Len()
	if l == 0 || maxDist < 0 {
		return Hit{}, false
	}
	dir = dir.Mul(1 / l)
	var best Hit
	found := false
	for _, c := range w.Colliders {
		t, n, ok := c.Raycast(origin, dir, maxDist)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Point: origin.Add(dir.Mul(t)), Normal: n, Distance: t, Collider: c}
		found = true
	}
	return best, found
}

// Step advances the world by dt seconds in fixed substeps and returns how many ran.
// Time beyond MaxSubSteps substeps is dropped so a long frame cannot stall the loop.
func (w *World) Step(dt float32) int {
	if dt <= 0 {
		return 0
	}
	h := w.settings.FixedStep
	w.accumulator += dt
	if limit := h * float32(w.settings.MaxSubSteps); w.accumulator > limit {
		w.accumulator = limit
	}
	n := 0
	for w.accumulator >= h {
		w.substep(h)
		w.accumulator -= h
		n++
	}
	return n
}

func (w *World) substep(h float32) {
	for _, b := range w.Bodies {
		cfg := b.cfg
		b.velocity[1] += w.settings.Gravity * h
		if cfg.LinearDamping > 0 {
			b.velocity = b.velocity.Mul(1 / (1 + h*cfg.LinearDamping))
		}
		b.position = b.position.Add(b.velocity.Mul(h))

		b.touching = false
		var support mgl32.Vec3
		supported := false
		for it := 0; it < w.settings.Iterations; it++ {
			for _, c := range w.Colliders {
				a, top := b.segment()
				n, depth, ok := c.capsuleContact(a, top, cfg.CapsuleRadius)
				if !ok {
					continue
				}
				b.touching = true
				b.position = b.position.Add(n.Mul(depth))
				if vn := b.velocity.Dot(n); vn < 0 {
					e := float32(0)
					if -vn > 1 {
						e = cfg.Restitution
					}
					b.velocity = b.velocity.Sub(n.Mul(vn * (1 + e)))
				}
				if n.Y() > 0.5 && (!supported || n.Y() > support.Y()) {
					support = n
					supported = true
				}
			}
		}
		if supported && cfg.Friction > 0 {
			b.velocity = applyFriction(b.velocity, support, cfg.Friction*math32.Abs(w.settings.Gravity)*h)
		}
	}
}

// applyFriction removes up to drop from the velocity component tangent to n.
func applyFriction(v, n mgl32.Vec3, drop float32) mgl32.Vec3 {
	vt := v.Sub(n.Mul(v.Dot(n)))
	speed := vt.Len()
	if speed == 0 {
		return v
	}
	if speed <= drop {
		return v.Sub(vt)
	}
	return v.Sub(vt.Mul(drop / speed))
}
