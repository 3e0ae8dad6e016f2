package engineconfig

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the sandbox looks for its config, relative to the working directory.
const DefaultPath = "config/sandbox.yaml"

// Prefs holds engine-only preferences (overlays, grid, window). They never affect simulation.
type Prefs struct {
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	ShowState    bool   `yaml:"show_state"`
	GridVisible  bool   `yaml:"grid_visible"`
	Fullscreen   bool   `yaml:"fullscreen"`
	Font         string `yaml:"font,omitempty"`
}

// Camera holds the follow-camera and mouse-look tunables.
// ModeName is "offset" or "spherical"; SmoothingName is "fixed" or "timescaled".
type Camera struct {
	ModeName            string  `yaml:"mode"`
	SmoothingName       string  `yaml:"smoothing"`
	Distance            float32 `yaml:"distance"`
	Height              float32 `yaml:"height"`
	MinHeight           float32 `yaml:"min_height"`
	VerticalAngle       float32 `yaml:"vertical_angle"`
	SmoothingFactor     float32 `yaml:"smoothness"`
	LookAtHeightOffset  float32 `yaml:"look_at_height"`
	RotationSensitivity float32 `yaml:"rotation_speed"`
	VerticalLook        bool    `yaml:"vertical_look"`
	MinPolarAngle       float32 `yaml:"min_polar_angle"`
	MaxPolarAngle       float32 `yaml:"max_polar_angle"`
}

// Movement holds the character controller tunables.
// IdleFacingName is "hold" (keep last facing) or "camera" (snap to camera yaw).
type Movement struct {
	MovementSpeed    float32 `yaml:"movement_speed"`
	JumpForce        float32 `yaml:"jump_force"`
	MaxVelocity      float32 `yaml:"max_velocity"`
	AirControlFactor float32 `yaml:"air_control"`
	FacingBlend      float32 `yaml:"facing_blend"`
	IdleFacingName   string  `yaml:"idle_facing"`
	GroundEpsilon    float32 `yaml:"ground_epsilon"`
}

// Physics holds world and character-body tunables.
type Physics struct {
	Gravity           float32 `yaml:"gravity"`
	LinearDamping     float32 `yaml:"linear_damping"`
	Friction          float32 `yaml:"friction"`
	Restitution       float32 `yaml:"restitution"`
	CapsuleRadius     float32 `yaml:"capsule_radius"`
	CapsuleHalfHeight float32 `yaml:"capsule_half_height"`
	Mass              float32 `yaml:"mass"`
}

// Config is the whole sandbox configuration as stored in config/sandbox.yaml.
type Config struct {
	Prefs    Prefs    `yaml:"prefs"`
	Camera   Camera   `yaml:"camera"`
	Movement Movement `yaml:"movement"`
	Physics  Physics  `yaml:"physics"`
}

// Default returns the tuning the sandbox ships with.
func Default() Config {
	return Config{
		Prefs: Prefs{
			ShowFPS:     true,
			GridVisible: false,
		},
		Camera: Camera{
			ModeName:            "offset",
			SmoothingName:       "fixed",
			Distance:            10,
			Height:              5,
			MinHeight:           1,
			VerticalAngle:       0.3,
			SmoothingFactor:     0.1,
			LookAtHeightOffset:  1.5,
			RotationSensitivity: 0.002,
			VerticalLook:        true,
			MinPolarAngle:       0.1,
			MaxPolarAngle:       math.Pi/2 - 0.1,
		},
		Movement: Movement{
			MovementSpeed:    5,
			JumpForce:        10,
			MaxVelocity:      10,
			AirControlFactor: 0.2,
			FacingBlend:      1,
			IdleFacingName:   "hold",
			GroundEpsilon:    0.1,
		},
		Physics: Physics{
			Gravity:           -9.81,
			LinearDamping:     0.5,
			Friction:          0.7,
			Restitution:       0.2,
			CapsuleRadius:     0.5,
			CapsuleHalfHeight: 0.5,
			Mass:              1,
		},
	}
}

// Load reads the config at path. A missing file yields Default() and no error.
// Keys absent from the file keep their default values. The result is validated;
// a degenerate value is returned as a *ConfigurationError and the config must not be used.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every unusable value, joined with errors.Join.
// Only degenerate values are rejected; cross-field combinations such as
// min_height above height are allowed, the camera takes the larger of the two.
func (c Config) Validate() error {
	var errs []error
	for _, f := range Fields() {
		v := *f.ptr(&c)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			errs = append(errs, Invalid(f.Name, v, "must be finite"))
		}
	}

	cam := c.Camera
	if cam.Distance <= 0 {
		errs = append(errs, Invalid("camera.distance", cam.Distance, "must be > 0"))
	}
	if cam.SmoothingFactor <= 0 || cam.SmoothingFactor > 1 {
		errs = append(errs, Invalid("camera.smoothness", cam.SmoothingFactor, "must be in (0, 1]"))
	}
	if !oneOf(cam.ModeName, CameraModes) {
		errs = append(errs, Invalid("camera.mode", cam.ModeName, "must be offset or spherical"))
	}
	if !oneOf(cam.SmoothingName, SmoothingModes) {
		errs = append(errs, Invalid("camera.smoothing", cam.SmoothingName, "must be fixed or timescaled"))
	}
	if cam.MinPolarAngle > cam.MaxPolarAngle {
		errs = append(errs, Invalid("camera.min_polar_angle", cam.MinPolarAngle, "must not exceed max_polar_angle"))
	}

	mv := c.Movement
	if mv.MaxVelocity <= 0 {
		errs = append(errs, Invalid("movement.max_velocity", mv.MaxVelocity, "must be > 0"))
	}
	if mv.AirControlFactor < 0 || mv.AirControlFactor > 1 {
		errs = append(errs, Invalid("movement.air_control", mv.AirControlFactor, "must be in [0, 1]"))
	}
	if mv.FacingBlend <= 0 || mv.FacingBlend > 1 {
		errs = append(errs, Invalid("movement.facing_blend", mv.FacingBlend, "must be in (0, 1]"))
	}
	if mv.GroundEpsilon < 0 {
		errs = append(errs, Invalid("movement.ground_epsilon", mv.GroundEpsilon, "must be >= 0"))
	}
	if !oneOf(mv.IdleFacingName, IdleFacings) {
		errs = append(errs, Invalid("movement.idle_facing", mv.IdleFacingName, "must be hold or camera"))
	}

	ph := c.Physics
	if ph.CapsuleRadius <= 0 {
		errs = append(errs, Invalid("physics.capsule_radius", ph.CapsuleRadius, "must be > 0"))
	}
	if ph.CapsuleHalfHeight < 0 {
		errs = append(errs, Invalid("physics.capsule_half_height", ph.CapsuleHalfHeight, "must be >= 0"))
	}
	if ph.Mass <= 0 {
		errs = append(errs, Invalid("physics.mass", ph.Mass, "must be > 0"))
	}
	if ph.LinearDamping < 0 {
		errs = append(errs, Invalid("physics.linear_damping", ph.LinearDamping, "must be >= 0"))
	}
	if ph.Friction < 0 || ph.Friction > 1 {
		errs = append(errs, Invalid("physics.friction", ph.Friction, "must be in [0, 1]"))
	}
	if ph.Restitution < 0 || ph.Restitution > 1 {
		errs = append(errs, Invalid("physics.restitution", ph.Restitution, "must be in [0, 1]"))
	}
	return errors.Join(errs...)
}

// Accepted names for the string-valued settings.
var (
	CameraModes    = []string{"offset", "spherical"}
	SmoothingModes = []string{"fixed", "timescaled"}
	IdleFacings    = []string{"hold", "camera"}
)

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
