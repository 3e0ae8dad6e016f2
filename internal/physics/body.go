package physics

import "github.com/go-gl/mathgl/mgl32"

// BodyConfig holds the per-body tunables of the character capsule.
// Field names match engineconfig.Physics so the section copies straight across.
type BodyConfig struct {
	CapsuleRadius     float32
	CapsuleHalfHeight float32
	Mass              float32
	LinearDamping     float32
	Friction          float32
	Restitution       float32
}

// DefaultBodyConfig is a 0.5 radius capsule with a 1.0 tall cylinder, mass 1.
func DefaultBodyConfig() BodyConfig {
	return BodyConfig{
		CapsuleRadius:     0.5,
		CapsuleHalfHeight: 0.5,
		Mass:              1,
		LinearDamping:     0.5,
		Friction:          0.7,
		Restitution:       0.2,
	}
}

// Body is a dynamic upright capsule: a vertical segment of half length CapsuleHalfHeight
// swept by CapsuleRadius. Rotation is locked so the capsule never tips over.
type Body struct {
	position mgl32.Vec3
	velocity mgl32.Vec3
	cfg      BodyConfig
	touching bool
}

// NewBody returns a capsule at position with zero velocity. A non-positive mass is treated as 1.
func NewBody(position mgl32.Vec3, cfg BodyConfig) *Body {
	b := &Body{position: position}
	b.SetConfig(cfg)
	return b
}

// Config returns the body tunables.
func (b *Body) Config() BodyConfig { return b.cfg }

// SetConfig replaces the body tunables. Position and velocity are kept.
func (b *Body) SetConfig(cfg BodyConfig) {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if cfg.CapsuleRadius <= 0 {
		cfg.CapsuleRadius = DefaultBodyConfig().CapsuleRadius
	}
	if cfg.CapsuleHalfHeight < 0 {
		cfg.CapsuleHalfHeight = 0
	}
	b.cfg = cfg
}

// Translation returns the capsule center.
func (b *Body) Translation() mgl32.Vec3 { return b.position }

// SetTranslation teleports the body. Velocity is not changed.
func (b *Body) SetTranslation(p mgl32.Vec3) { b.position = p }

// LinearVelocity returns the current velocity.
func (b *Body) LinearVelocity() mgl32.Vec3 { return b.velocity }

// SetLinearVelocity replaces the velocity.
func (b *Body) SetLinearVelocity(v mgl32.Vec3) { b.velocity = v }

// ApplyImpulse changes velocity by j / mass.
func (b *Body) ApplyImpulse(j mgl32.Vec3) {
	b.velocity = b.velocity.Add(j.Mul(1 / b.cfg.Mass))
}

// Extent returns the distance from the center to the bottom of the capsule.
func (b *Body) Extent() float32 {
	return b.cfg.CapsuleHalfHeight + b.cfg.CapsuleRadius
}

// Touching reports whether the body was in contact with any collider during the last substep.
func (b *Body) Touching() bool { return b.touching }

// segment returns the bottom and top points of the capsule's core segment.
func (b *Body) segment() (mgl32.Vec3, mgl32.Vec3) {
	h := mgl32.Vec3{0, b.cfg.CapsuleHalfHeight, 0}
	return b.position.Sub(h), b.position.Add(h)
}
