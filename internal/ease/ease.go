package ease

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ReferenceRate is the frame rate at which time-scaled smoothing matches fixed-fraction smoothing.
const ReferenceRate = 60

// Mode selects how a smoothing factor turns into a per-update blend fraction.
type Mode int

const (
	// Fixed applies the factor as-is on every update, so convergence speed follows the frame rate.
	Fixed Mode = iota
	// TimeScaled rescales the factor by elapsed time so convergence speed is frame-rate independent.
	TimeScaled
)

func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case TimeScaled:
		return "timescaled"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "fixed" or "timescaled" (also "time-scaled", "time").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fixed", "":
		return Fixed, nil
	case "timescaled", "time-scaled", "time":
		return TimeScaled, nil
	}
	return Fixed, fmt.Errorf("unknown smoothing mode %q (use fixed or timescaled)", s)
}

// Alpha returns the blend fraction for one update of dt seconds.
// In TimeScaled mode a factor f at ReferenceRate becomes 1-(1-f)^(dt*ReferenceRate).
func Alpha(mode Mode, factor, dt float32) float32 {
	if factor >= 1 {
		return 1
	}
	if factor <= 0 {
		return 0
	}
	if mode != TimeScaled {
		return factor
	}
	if dt <= 0 {
		return 0
	}
	return 1 - math32.Pow(1-factor, dt*ReferenceRate)
}

// Lerp blends a toward b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 blends a toward b by t component-wise.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// LerpAngle blends angle a toward b by t along the shortest arc.
func LerpAngle(a, b, t float32) float32 {
	return a + WrapAngle(b-a)*t
}

// WrapAngle maps an angle into [-pi, pi).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}
