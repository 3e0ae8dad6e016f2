package orientation

import (
	"capybara-sandbox/internal/ease"
)

// Settings controls how mouse motion turns into view angles.
// MinPitch/MaxPitch bound the vertical look angle; VerticalLook enables it.
type Settings struct {
	RotationSensitivity float32
	VerticalLook        bool
	MinPitch            float32
	MaxPitch            float32
}

// State holds the smoothed horizontal yaw, the yaw it is chasing, and a clamped pitch.
// Yaw is unbounded; consumers go through sin/cos so it wraps implicitly.
// A State is owned by the frame loop and is not safe for concurrent use; mouse deltas
// from other goroutines go through input.MouseAccumulator first.
type State struct {
	settings  Settings
	yaw       float32
	targetYaw float32
	pitch     float32
}

// New returns a State at yaw 0 with pitch clamped into the configured range.
func New(settings Settings, pitch float32) *State {
	s := &State{settings: settings}
	s.pitch = s.clampPitch(pitch)
	return s
}

// Yaw returns the smoothed yaw in radians.
func (s *State) Yaw() float32 { return s.yaw }

// TargetYaw returns the yaw the smoothed value is converging on.
func (s *State) TargetYaw() float32 { return s.targetYaw }

// Pitch returns the vertical look angle in radians.
func (s *State) Pitch() float32 { return s.pitch }

// Settings returns the current settings.
func (s *State) Settings() Settings { return s.settings }

// SetSettings replaces the settings and re-clamps pitch against the new bounds.
func (s *State) SetSettings(settings Settings) {
	s.settings = settings
	s.pitch = s.clampPitch(s.pitch)
}

// SetPitch sets the vertical look angle, clamped to the configured bounds.
func (s *State) SetPitch(p float32) {
	s.pitch = s.clampPitch(p)
}

// ApplyMouseDelta moves the target yaw (and pitch, with vertical look) by a raw mouse delta.
// Moving the mouse right (dx > 0) decreases yaw.
func (s *State) ApplyMouseDelta(dx, dy float32) {
	s.targetYaw -= dx * s.settings.RotationSensitivity
	if s.settings.VerticalLook {
		s.pitch = s.clampPitch(s.pitch - dy*s.settings.RotationSensitivity)
	}
}

// Advance moves yaw toward the target by the blend fraction alpha in [0,1].
// Callers compute alpha with ease.Alpha so fixed and time-scaled smoothing share this path.
func (s *State) Advance(alpha float32) {
	if alpha >= 1 {
		s.yaw = s.targetYaw
		return
	}
	if alpha <= 0 {
		return
	}
	s.yaw = ease.Lerp(s.yaw, s.targetYaw, alpha)
}

// Reset sets yaw and target yaw to the same angle.
func (s *State) Reset(yaw float32) {
	s.yaw = yaw
	s.targetYaw = yaw
}

func (s *State) clampPitch(p float32) float32 {
	lo, hi := s.settings.MinPitch, s.settings.MaxPitch
	if lo > hi {
		return lo
	}
	if p < lo {
		return lo
	}
	if p > hi {
		return hi
	}
	return p
}
