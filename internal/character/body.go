package character

import (
	"capybara-sandbox/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// RigidBody is the handle the character holds on a body owned by the physics world.
type RigidBody interface {
	Translation() mgl32.Vec3
	LinearVelocity() mgl32.Vec3
	SetLinearVelocity(v mgl32.Vec3)
	ApplyImpulse(j mgl32.Vec3)
}

// RayCaster answers the downward ground probe.
type RayCaster interface {
	CastRay(origin, dir mgl32.Vec3, maxDist float32) (physics.Hit, bool)
}

var down = mgl32.Vec3{0, -1, 0}

// Body is the character: a facing yaw and a grounded flag on top of a rigid body handle.
type Body struct {
	rb       RigidBody
	extent   float32
	facing   float32
	grounded bool
	ground   physics.Hit
}

// NewBody wraps rb. extent is the distance from the body center to its base.
func NewBody(rb RigidBody, extent, facing float32) *Body {
	return &Body{rb: rb, extent: extent, facing: facing}
}

// RigidBody returns the physics handle.
func (b *Body) RigidBody() RigidBody { return b.rb }

// Position returns the body center as reported by physics.
func (b *Body) Position() mgl32.Vec3 { return b.rb.Translation() }

// Facing returns the yaw the character model faces.
func (b *Body) Facing() float32 { return b.facing }

// SetFacing overrides the facing yaw.
func (b *Body) SetFacing(yaw float32) { b.facing = yaw }

// Extent returns the center-to-base distance used by the ground probe.
func (b *Body) Extent() float32 { return b.extent }

// SetExtent changes the center-to-base distance, e.g. after a capsule resize.
func (b *Body) SetExtent(e float32) { b.extent = e }

// Grounded returns the flag from the last UpdateGrounded.
func (b *Body) Grounded() bool { return b.grounded }

// Ground returns the surface found by the last successful probe.
func (b *Body) Ground() (physics.Hit, bool) { return b.ground, b.grounded }

// UpdateGrounded casts straight down from the body center and marks the body grounded
// when a surface lies within extent+epsilon. There is no hysteresis.
func (b *Body) UpdateGrounded(rays RayCaster, epsilon float32) bool {
	hit, ok := rays.CastRay(b.rb.Translation(), down, b.extent+epsilon)
	b.grounded = ok
	if ok {
		b.ground = hit
	} else {
		b.ground = physics.Hit{}
	}
	return ok
}
