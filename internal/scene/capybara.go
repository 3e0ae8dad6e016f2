package scene

import (
	"capybara-sandbox/internal/course"
	"capybara-sandbox/internal/primitives"

	"github.com/go-gl/mathgl/mgl32"
)

// Part is one primitive of the capybara model. Offset and Scale are in model space,
// relative to the body center, with +Z the facing direction.
type Part struct {
	Name   string
	Prim   string
	Offset mgl32.Vec3
	Scale  mgl32.Vec3
	Color  course.Color
}

var (
	furColor  = course.MustColor("#8b5a2b")
	darkColor = course.MustColor("#5c3a1e")
	noseColor = course.MustColor("#2b1d12")
)

// capybaraParts fits inside the default capsule (radius 0.5, half height 0.5), feet at -1.
var capybaraParts = []Part{
	{Name: "body", Prim: primitives.Sphere, Offset: mgl32.Vec3{0, -0.2, 0}, Scale: mgl32.Vec3{1.0, 0.9, 1.5}, Color: furColor},
	{Name: "head", Prim: primitives.Sphere, Offset: mgl32.Vec3{0, 0.15, 0.75}, Scale: mgl32.Vec3{0.6, 0.6, 0.7}, Color: furColor},
	{Name: "snout", Prim: primitives.Cube, Offset: mgl32.Vec3{0, 0.05, 1.1}, Scale: mgl32.Vec3{0.45, 0.35, 0.3}, Color: darkColor},
	{Name: "nose", Prim: primitives.Cube, Offset: mgl32.Vec3{0, 0.12, 1.26}, Scale: mgl32.Vec3{0.25, 0.1, 0.05}, Color: noseColor},
	{Name: "ear_left", Prim: primitives.Sphere, Offset: mgl32.Vec3{0.22, 0.45, 0.6}, Scale: mgl32.Vec3{0.15, 0.12, 0.08}, Color: darkColor},
	{Name: "ear_right", Prim: primitives.Sphere, Offset: mgl32.Vec3{-0.22, 0.45, 0.6}, Scale: mgl32.Vec3{0.15, 0.12, 0.08}, Color: darkColor},
	{Name: "leg_front_left", Prim: primitives.Cylinder, Offset: mgl32.Vec3{0.3, -0.75, 0.45}, Scale: mgl32.Vec3{0.2, 0.5, 0.2}, Color: darkColor},
	{Name: "leg_front_right", Prim: primitives.Cylinder, Offset: mgl32.Vec3{-0.3, -0.75, 0.45}, Scale: mgl32.Vec3{0.2, 0.5, 0.2}, Color: darkColor},
	{Name: "leg_back_left", Prim: primitives.Cylinder, Offset: mgl32.Vec3{0.3, -0.75, -0.45}, Scale: mgl32.Vec3{0.2, 0.5, 0.2}, Color: darkColor},
	{Name: "leg_back_right", Prim: primitives.Cylinder, Offset: mgl32.Vec3{-0.3, -0.75, -0.45}, Scale: mgl32.Vec3{0.2, 0.5, 0.2}, Color: darkColor},
}

// CapybaraParts returns the model parts.
func CapybaraParts() []Part {
	out := make([]Part, len(capybaraParts))
	copy(out, capybaraParts)
	return out
}

// CapybaraTransforms returns one model matrix per part for a capybara centered at pos
// and turned to facing (radians about +Y, 0 looks down +Z).
func CapybaraTransforms(pos mgl32.Vec3, facing float32) []mgl32.Mat4 {
	rot := mgl32.QuatRotate(facing, mgl32.Vec3{0, 1, 0})
	out := make([]mgl32.Mat4, len(capybaraParts))
	for i, p := range capybaraParts {
		center := pos.Add(rot.Rotate(p.Offset))
		out[i] = primitives.Transform(center, rot, p.Scale)
	}
	return out
}
