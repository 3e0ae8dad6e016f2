package character

import (
	"fmt"

	"capybara-sandbox/internal/engineconfig"
)

// IdleFacing decides what the character faces while it is not moving.
type IdleFacing int

const (
	// IdleHold keeps the last movement facing.
	IdleHold IdleFacing = iota
	// IdleCamera turns the character to the camera heading.
	IdleCamera
)

func (f IdleFacing) String() string {
	switch f {
	case IdleHold:
		return "hold"
	case IdleCamera:
		return "camera"
	default:
		return fmt.Sprintf("idle(%d)", int(f))
	}
}

// ParseIdleFacing accepts "hold" or "camera".
func ParseIdleFacing(s string) (IdleFacing, error) {
	switch s {
	case "hold", "":
		return IdleHold, nil
	case "camera":
		return IdleCamera, nil
	}
	return IdleHold, fmt.Errorf("unknown idle facing %q (use hold or camera)", s)
}

// Config holds the movement tunables. Field names match engineconfig.Movement.
type Config struct {
	MovementSpeed    float32
	JumpForce        float32
	MaxVelocity      float32
	AirControlFactor float32
	FacingBlend      float32
	IdleFacing       IdleFacing
	GroundEpsilon    float32
}

// DefaultConfig mirrors the shipped movement tuning.
func DefaultConfig() Config {
	return Config{
		MovementSpeed:    5,
		JumpForce:        10,
		MaxVelocity:      10,
		AirControlFactor: 0.2,
		FacingBlend:      1,
		IdleFacing:       IdleHold,
		GroundEpsilon:    0.1,
	}
}

// Validate rejects values the resolver cannot work with.
func (c Config) Validate() error {
	if c.MaxVelocity <= 0 {
		return engineconfig.Invalid("movement.max_velocity", c.MaxVelocity, "must be > 0")
	}
	if c.AirControlFactor < 0 || c.AirControlFactor > 1 {
		return engineconfig.Invalid("movement.air_control", c.AirControlFactor, "must be in [0, 1]")
	}
	if c.FacingBlend <= 0 || c.FacingBlend > 1 {
		return engineconfig.Invalid("movement.facing_blend", c.FacingBlend, "must be in (0, 1]")
	}
	if c.GroundEpsilon < 0 {
		return engineconfig.Invalid("movement.ground_epsilon", c.GroundEpsilon, "must be >= 0")
	}
	return nil
}
