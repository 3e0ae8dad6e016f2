package engineconfig

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Field describes one numeric tunable in the flat parameter table.
// Min, Max and Step mirror the slider ranges of the parameter surface; they bound
// Set but are not cross-checked against each other.
type Field struct {
	Name  string
	Label string
	Min   float32
	Max   float32
	Step  float32
	ptr   func(*Config) *float32
}

var fields = []Field{
	{Name: "camera.distance", Label: "Camera Distance", Min: 1, Max: 30, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Camera.Distance }},
	{Name: "camera.height", Label: "Camera Height", Min: 0, Max: 20, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Camera.Height }},
	{Name: "camera.min_height", Label: "Camera Min Height", Min: 0, Max: 10, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Camera.MinHeight }},
	{Name: "camera.vertical_angle", Label: "Vertical Angle", Min: 0, Max: 1.57, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Camera.VerticalAngle }},
	{Name: "camera.smoothness", Label: "Camera Smoothness", Min: 0.01, Max: 1, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Camera.SmoothingFactor }},
	{Name: "camera.look_at_height", Label: "Look At Height", Min: 0, Max: 5, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Camera.LookAtHeightOffset }},
	{Name: "camera.rotation_speed", Label: "Rotation Speed", Min: 0.0005, Max: 0.01, Step: 0.0005, ptr: func(c *Config) *float32 { return &c.Camera.RotationSensitivity }},
	{Name: "camera.min_polar_angle", Label: "Min Polar Angle", Min: 0, Max: 1.57, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Camera.MinPolarAngle }},
	{Name: "camera.max_polar_angle", Label: "Max Polar Angle", Min: 0, Max: 1.57, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Camera.MaxPolarAngle }},
	{Name: "movement.movement_speed", Label: "Movement Speed", Min: 1, Max: 15, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Movement.MovementSpeed }},
	{Name: "movement.jump_force", Label: "Jump Force", Min: 1, Max: 20, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Movement.JumpForce }},
	{Name: "movement.max_velocity", Label: "Max Velocity", Min: 1, Max: 20, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Movement.MaxVelocity }},
	{Name: "movement.air_control", Label: "Air Control", Min: 0, Max: 1, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Movement.AirControlFactor }},
	{Name: "movement.facing_blend", Label: "Facing Blend", Min: 0.01, Max: 1, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Movement.FacingBlend }},
	{Name: "movement.ground_epsilon", Label: "Ground Epsilon", Min: 0, Max: 0.5, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Movement.GroundEpsilon }},
	{Name: "physics.gravity", Label: "Gravity", Min: -20, Max: 0, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Physics.Gravity }},
	{Name: "physics.linear_damping", Label: "Linear Damping", Min: 0, Max: 1, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Physics.LinearDamping }},
	{Name: "physics.friction", Label: "Friction", Min: 0, Max: 1, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Physics.Friction }},
	{Name: "physics.restitution", Label: "Restitution", Min: 0, Max: 1, Step: 0.01, ptr: func(c *Config) *float32 { return &c.Physics.Restitution }},
	{Name: "physics.capsule_radius", Label: "Capsule Radius", Min: 0.1, Max: 2, Step: 0.05, ptr: func(c *Config) *float32 { return &c.Physics.CapsuleRadius }},
	{Name: "physics.capsule_half_height", Label: "Capsule Half Height", Min: 0, Max: 2, Step: 0.05, ptr: func(c *Config) *float32 { return &c.Physics.CapsuleHalfHeight }},
	{Name: "physics.mass", Label: "Mass", Min: 0.1, Max: 10, Step: 0.1, ptr: func(c *Config) *float32 { return &c.Physics.Mass }},
}

// Fields returns the flat parameter table in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup finds a field by full name ("camera.distance") or by unique suffix ("distance").
func Lookup(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var matches []Field
	for _, f := range fields {
		if f.Name == name {
			return f, nil
		}
		if strings.HasSuffix(f.Name, "."+name) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return Field{}, fmt.Errorf("unknown parameter %q", name)
	case 1:
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	sort.Strings(names)
	return Field{}, fmt.Errorf("ambiguous parameter %q: %s", name, strings.Join(names, ", "))
}

// Get returns the current value of the named parameter.
func (c *Config) Get(name string) (float32, error) {
	f, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return *f.ptr(c), nil
}

// Set assigns the named parameter after checking it against the field range.
// The receiver is left untouched when the value is out of range or not finite.
func (c *Config) Set(name string, value float32) error {
	f, err := Lookup(name)
	if err != nil {
		return err
	}
	if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
		return Invalid(f.Name, value, "must be finite")
	}
	if value < f.Min || value > f.Max {
		return Invalid(f.Name, value, fmt.Sprintf("out of range [%g, %g]", f.Min, f.Max))
	}
	*f.ptr(c) = value
	return nil
}
