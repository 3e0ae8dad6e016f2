package camera

import (
	"fmt"

	"capybara-sandbox/internal/ease"
	"capybara-sandbox/internal/engineconfig"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how the desired camera position is derived from yaw.
type Mode int

const (
	// ModeOffset places the camera behind the target along -forward at Distance, raised by Height.
	ModeOffset Mode = iota
	// ModeSpherical places the camera on a sphere of radius Distance using the pitch as
	// vertical angle for the horizontal radius, and a fixed height above the target.
	ModeSpherical
)

func (m Mode) String() string {
	switch m {
	case ModeOffset:
		return "offset"
	case ModeSpherical:
		return "spherical"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "offset" or "spherical".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "offset", "":
		return ModeOffset, nil
	case "spherical":
		return ModeSpherical, nil
	}
	return ModeOffset, fmt.Errorf("unknown camera mode %q (use offset or spherical)", s)
}

// Config holds the follow-camera tunables. Field names match engineconfig.Camera so the
// loader can copy sections straight across. VerticalAngle is not read here: the spherical
// form takes its angle from the pitch passed to Update, which the owner seeds from it.
type Config struct {
	Mode                Mode
	Smoothing           ease.Mode
	Distance            float32
	Height              float32
	MinHeight           float32
	VerticalAngle       float32
	SmoothingFactor     float32
	LookAtHeightOffset  float32
	RotationSensitivity float32
	VerticalLook        bool
	MinPolarAngle       float32
	MaxPolarAngle       float32
}

// Validate rejects degenerate values. A zero distance would collapse the camera onto the target.
func (c Config) Validate() error {
	if c.Distance <= 0 {
		return engineconfig.Invalid("camera.distance", c.Distance, "must be > 0")
	}
	if c.SmoothingFactor <= 0 || c.SmoothingFactor > 1 {
		return engineconfig.Invalid("camera.smoothness", c.SmoothingFactor, "must be in (0, 1]")
	}
	if c.MinPolarAngle > c.MaxPolarAngle {
		return engineconfig.Invalid("camera.min_polar_angle", c.MinPolarAngle, "must not exceed max_polar_angle")
	}
	return nil
}

// Alpha returns the blend fraction for an update of dt seconds under the configured smoothing.
func (c Config) Alpha(dt float32) float32 {
	return ease.Alpha(c.Smoothing, c.SmoothingFactor, dt)
}

// Pose is the camera state after an update.
type Pose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// Forward returns the unit horizontal direction the camera faces for a given yaw.
func Forward(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(yaw), 0, math32.Cos(yaw)}
}

// Follow is the third-person follow camera. Its position is derived every update from the
// target and the view angles and is never fed back into character logic.
type Follow struct {
	cfg      Config
	pose     Pose
	attached bool
}

// NewFollow returns a Follow camera or a *engineconfig.ConfigurationError.
func NewFollow(cfg Config) (*Follow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Follow{cfg: cfg}, nil
}

// Config returns the active configuration.
func (f *Follow) Config() Config { return f.cfg }

// SetConfig swaps the configuration. Easing state is kept so the camera glides to the new framing.
func (f *Follow) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	return nil
}

// Pose returns the last computed pose.
func (f *Follow) Pose() Pose { return f.pose }

// Desired returns where the camera wants to be for the given target and view angles.
func (f *Follow) Desired(target mgl32.Vec3, yaw, pitch float32) mgl32.Vec3 {
	c := f.cfg
	lift := math32.Max(c.Height, c.MinHeight)
	switch c.Mode {
	case ModeSpherical:
		phi := math32.Pi/2 - pitch
		r := c.Distance * math32.Sin(phi)
		return mgl32.Vec3{
			target.X() + r*math32.Sin(yaw),
			target.Y() + lift,
			target.Z() + r*math32.Cos(yaw),
		}
	default:
		return mgl32.Vec3{
			target.X() - math32.Sin(yaw)*c.Distance,
			target.Y() + lift,
			target.Z() - math32.Cos(yaw)*c.Distance,
		}
	}
}

// Heading returns the horizontal yaw the camera looks along for a view yaw.
// The offset form sits behind the target so it looks along yaw; the spherical form
// sits on the +yaw side and looks back along yaw+pi.
func (f *Follow) Heading(yaw float32) float32 {
	if f.cfg.Mode == ModeSpherical {
		return yaw + math32.Pi
	}
	return yaw
}

// LookAt returns the aim point: the target raised by LookAtHeightOffset.
func (f *Follow) LookAt(target mgl32.Vec3) mgl32.Vec3 {
	return target.Add(mgl32.Vec3{0, f.cfg.LookAtHeightOffset, 0})
}

// Update eases the camera toward its desired position and re-aims at the target.
// The first update after construction or Detach snaps instead of easing from the origin.
func (f *Follow) Update(target mgl32.Vec3, yaw, pitch, dt float32) Pose {
	desired := f.Desired(target, yaw, pitch)
	if !f.attached {
		f.pose.Position = desired
		f.attached = true
	} else {
		f.pose.Position = ease.LerpVec3(f.pose.Position, desired, f.cfg.Alpha(dt))
	}
	f.pose.LookAt = f.LookAt(target)
	return f.pose
}

// Detach makes the next Update snap to the desired position.
func (f *Follow) Detach() {
	f.attached = false
}
