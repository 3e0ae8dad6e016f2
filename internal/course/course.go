package course

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"capybara-sandbox/internal/physics"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Obstacle is one static box of the course. Size is the full extent; RotationDeg is
// applied in X, Y, Z order.
type Obstacle struct {
	Kind        string     `yaml:"kind"`
	Position    [3]float32 `yaml:"position,flow"`
	Size        [3]float32 `yaml:"size,flow"`
	RotationDeg [3]float32 `yaml:"rotation_deg,flow,omitempty"`
	Color       string     `yaml:"color,omitempty"`
}

// Course is the static world the character runs around in.
type Course struct {
	Name      string          `yaml:"name"`
	Sky       string          `yaml:"sky,omitempty"`
	Spawn     [3]float32      `yaml:"spawn,flow"`
	KillY     float32         `yaml:"kill_y"`
	Obstacles []Obstacle      `yaml:"obstacles"`
	Scatter   *ScatterOptions `yaml:"scatter,omitempty"`
}

// Default colors, as hex strings.
const (
	GroundColor   = "#1a5e1a"
	ObstacleColor = "#8b4513"
	RampColor     = "#808080"
	SkyColor      = "#87ceeb"
)

// Default returns the built-in course: a 100x100 ground slab, five crates and a ramp.
func Default() Course {
	box := func(x, z float32) Obstacle {
		return Obstacle{Kind: "obstacle", Position: [3]float32{x, 1, z}, Size: [3]float32{2, 2, 2}, Color: ObstacleColor}
	}
	return Course{
		Name:  "default",
		Sky:   SkyColor,
		Spawn: [3]float32{0, 2, 0},
		KillY: -20,
		Obstacles: []Obstacle{
			{Kind: "ground", Position: [3]float32{0, -0.1, 0}, Size: [3]float32{100, 0.2, 100}, Color: GroundColor},
			box(-8, -5),
			box(8, -7),
			box(0, -15),
			box(-5, 10),
			box(10, 5),
			{Kind: "ramp", Position: [3]float32{0, 0.5, 10}, Size: [3]float32{10, 1, 5}, RotationDeg: [3]float32{15, 0, 0}, Color: RampColor},
		},
	}
}

// Load reads a course file. Fields missing from the file keep the default course values,
// except obstacles, which replace the default list when present.
func Load(path string) (Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Course{}, fmt.Errorf("read course %s: %w", path, err)
	}
	c := Default()
	c.Obstacles = nil
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Course{}, fmt.Errorf("parse course %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Course{}, fmt.Errorf("course %s: %w", path, err)
	}
	return c, nil
}

// Save writes c as YAML.
func Save(path string, c Course) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save course: %w", err)
	}
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("save course: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every obstacle and color.
func (c Course) Validate() error {
	var errs []error
	if len(c.Obstacles) == 0 && (c.Scatter == nil || c.Scatter.Count == 0) {
		errs = append(errs, errors.New("course has no obstacles"))
	}
	if c.Sky != "" {
		if _, err := ParseColor(c.Sky); err != nil {
			errs = append(errs, fmt.Errorf("sky: %w", err))
		}
	}
	for i, o := range c.Obstacles {
		if err := o.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("obstacle %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks kind, size and color.
func (o Obstacle) Validate() error {
	if _, err := physics.ParseKind(o.Kind); err != nil {
		return err
	}
	for i, s := range o.Size {
		if s <= 0 || math32.IsNaN(s) || math32.IsInf(s, 0) {
			return fmt.Errorf("size[%d]=%v must be > 0", i, s)
		}
	}
	if o.Color != "" {
		if _, err := ParseColor(o.Color); err != nil {
			return err
		}
	}
	return nil
}

// Rotation returns the obstacle orientation as a quaternion.
func (o Obstacle) Rotation() mgl32.Quat {
	r := o.RotationDeg
	if r == ([3]float32{}) {
		return mgl32.QuatIdent()
	}
	return mgl32.AnglesToQuat(mgl32.DegToRad(r[0]), mgl32.DegToRad(r[1]), mgl32.DegToRad(r[2]), mgl32.XYZ)
}

// Collider builds the physics collider for o.
func (o Obstacle) Collider() (*physics.Collider, error) {
	kind, err := physics.ParseKind(o.Kind)
	if err != nil {
		return nil, err
	}
	return physics.NewBox(kind, mgl32.Vec3(o.Position), mgl32.Vec3(o.Size), o.Rotation()), nil
}

// Tint returns the obstacle color, or the default color for its kind.
func (o Obstacle) Tint() Color {
	if o.Color != "" {
		if c, err := ParseColor(o.Color); err == nil {
			return c
		}
	}
	switch o.Kind {
	case "ground":
		return MustColor(GroundColor)
	case "ramp":
		return MustColor(RampColor)
	}
	return MustColor(ObstacleColor)
}

// SpawnPoint returns the spawn position.
func (c Course) SpawnPoint() mgl32.Vec3 { return mgl32.Vec3(c.Spawn) }

// Build returns the obstacles to place: the listed ones plus any scattered extras.
func (c Course) Build() []Obstacle {
	out := append([]Obstacle(nil), c.Obstacles...)
	if c.Scatter != nil && c.Scatter.Count > 0 {
		out = append(out, Scatter(*c.Scatter, c.Obstacles)...)
	}
	return out
}

// Install replaces the world's colliders with the course and returns the placed obstacles
// in the same order as the world's colliders.
func (c Course) Install(w *physics.World) ([]Obstacle, error) {
	obstacles := c.Build()
	colliders := make([]*physics.Collider, 0, len(obstacles))
	for i, o := range obstacles {
		col, err := o.Collider()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		colliders = append(colliders, col)
	}
	w.ClearColliders()
	for _, col := range colliders {
		w.AddCollider(col)
	}
	return obstacles, nil
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ParseColor accepts "#rrggbb", "0xrrggbb", "rrggbb" and the 8-digit forms with alpha.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#"), "0x")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor is ParseColor for constants; it panics on a malformed string.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", adding alpha only when it is not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
