package character

import (
	"capybara-sandbox/internal/ease"
	"capybara-sandbox/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// facingThreshold is the movement length below which the idle facing policy applies.
const facingThreshold = 0.1

// MoveDirection returns the unit horizontal direction for the move axes relative to yaw,
// or the zero vector when there is no input.
func MoveDirection(yaw float32, forward, right int) mgl32.Vec3 {
	if forward == 0 && right == 0 {
		return mgl32.Vec3{}
	}
	f := mgl32.Vec3{math32.Sin(yaw), 0, math32.Cos(yaw)}
	r := mgl32.Vec3{math32.Sin(yaw + math32.Pi/2), 0, math32.Cos(yaw + math32.Pi/2)}
	dir := f.Mul(float32(forward)).Add(r.Mul(float32(right)))
	l := dir.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	dir = dir.Mul(1 / l)
	dir[1] = 0
	return dir
}

// ClampHorizontal rescales the XZ part of v to max when it is faster. Y is untouched.
func ClampHorizontal(v mgl32.Vec3, max float32) (mgl32.Vec3, bool) {
	speed := math32.Sqrt(v.X()*v.X() + v.Z()*v.Z())
	if speed <= max || speed == 0 {
		return v, false
	}
	s := max / speed
	return mgl32.Vec3{v.X() * s, v.Y(), v.Z() * s}, true
}

// Result reports what Resolve did this frame.
type Result struct {
	Direction mgl32.Vec3
	Impulse   mgl32.Vec3
	Jumped    bool
	Clamped   bool
	Facing    float32
}

// Resolver turns intents into impulses on a character body.
type Resolver struct {
	cfg Config
}

// NewResolver returns a Resolver or a *engineconfig.ConfigurationError.
func NewResolver(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// Config returns the active configuration.
func (r *Resolver) Config() Config { return r.cfg }

// SetConfig swaps the configuration after validating it.
func (r *Resolver) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

// Resolve applies one frame of intent to body. yaw is the camera heading that movement is
// relative to. The grounded flag must already be current for this frame.
func (r *Resolver) Resolve(body *Body, in input.Intent, yaw float32) Result {
	c := r.cfg
	rb := body.RigidBody()
	res := Result{Direction: MoveDirection(yaw, in.MoveForward, in.MoveRight)}

	speed := c.MovementSpeed
	if !body.Grounded() {
		speed *= c.AirControlFactor
	}
	if res.Direction.Len() > 0 && speed != 0 {
		res.Impulse = mgl32.Vec3{res.Direction.X() * speed, 0, res.Direction.Z() * speed}
		rb.ApplyImpulse(res.Impulse)
	}

	if in.JumpRequested && body.Grounded() {
		rb.ApplyImpulse(mgl32.Vec3{0, c.JumpForce, 0})
		res.Jumped = true
	}

	if v, clamped := ClampHorizontal(rb.LinearVelocity(), c.MaxVelocity); clamped {
		rb.SetLinearVelocity(v)
		res.Clamped = true
	}

	switch {
	case res.Direction.Len() > facingThreshold:
		target := math32.Atan2(res.Direction.X(), res.Direction.Z())
		if c.FacingBlend >= 1 {
			body.SetFacing(target)
		} else {
			body.SetFacing(ease.LerpAngle(body.Facing(), target, c.FacingBlend))
		}
	case c.IdleFacing == IdleCamera:
		body.SetFacing(yaw)
	}
	res.Facing = body.Facing()
	return res
}
