package scene

import (
	"capybara-sandbox/internal/camera"
	"capybara-sandbox/internal/course"
	"capybara-sandbox/internal/primitives"

	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	fovy           = 75
)

// lightDir points from the scene toward the sun.
var lightDir = mgl32.Vec3{10, 20, 10}

// Scene draws the course and the capybara from the follow camera. Draw renders between
// BeginMode3D and EndMode3D; the camera is taken from the frame, never moved here.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	reg         *primitives.Registry
	sky         rl.Color
	obstacles   []course.Obstacle
	rotations   []mgl32.Quat
	tints       []rl.Color
}

// New returns a scene drawing with reg. The grid is hidden by default and the sky is the
// default sky color until SetCourse.
func New(reg *primitives.Registry) *Scene {
	s := &Scene{reg: reg, sky: toColor(course.MustColor(course.SkyColor))}
	s.Camera = cameraFromPose(camera.Pose{Position: mgl32.Vec3{10, 10, 10}})
	return s
}

func cameraFromPose(p camera.Pose) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(p.Position.X(), p.Position.Y(), p.Position.Z()),
		Target:     rl.NewVector3(p.LookAt.X(), p.LookAt.Y(), p.LookAt.Z()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

func toColor(c course.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// SetCourse sets the obstacles to draw and the sky color. Pass the list returned by
// course.Install so scattered obstacles match the colliders.
func (s *Scene) SetCourse(c course.Course, obstacles []course.Obstacle) {
	s.obstacles = obstacles
	s.rotations = make([]mgl32.Quat, len(obstacles))
	s.tints = make([]rl.Color, len(obstacles))
	for i, o := range obstacles {
		s.rotations[i] = o.Rotation()
		s.tints[i] = toColor(o.Tint())
	}
	s.sky = toColor(course.MustColor(course.SkyColor))
	if c.Sky != "" {
		if col, err := course.ParseColor(c.Sky); err == nil {
			s.sky = toColor(col)
		}
	}
}

// Sky returns the clear color.
func (s *Scene) Sky() rl.Color { return s.sky }

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Draw renders the 3D scene for one frame. Call after ClearBackground and before 2D overlays.
// Draws the obstacles, the capybara and the grid when GridVisible is true. The sky is the clear color.
func (s *Scene) Draw(view camera.Pose, position mgl32.Vec3, facing float32) {
	s.Camera = cameraFromPose(view)
	s.reg.SetView(view.Position, lightDir)
	rl.BeginMode3D(s.Camera)
	for i, o := range s.obstacles {
		s.reg.DrawAt(primitives.Cube, mgl32.Vec3(o.Position), s.rotations[i], mgl32.Vec3(o.Size), s.tints[i])
	}
	parts := capybaraParts
	for i, m := range CapybaraTransforms(position, facing) {
		s.reg.Draw(parts[i].Prim, m, toColor(parts[i].Color))
	}
	if s.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

// drawEditorGrid draws an infinite-style grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	// Grid lines on XZ plane (Y=0): lines along X (varying Z) and along Z (varying X)
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
