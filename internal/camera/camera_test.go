package camera

import (
	"errors"
	"math"
	"testing"

	"capybara-sandbox/internal/ease"
	"capybara-sandbox/internal/engineconfig"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func testConfig() Config {
	return Config{
		Mode:                ModeOffset,
		Smoothing:           ease.Fixed,
		Distance:            5,
		Height:              3,
		MinHeight:           1,
		VerticalAngle:       0.3,
		SmoothingFactor:     0.1,
		LookAtHeightOffset:  1.5,
		RotationSensitivity: 0.002,
		VerticalLook:        true,
		MinPolarAngle:       0.1,
		MaxPolarAngle:       math.Pi/2 - 0.1,
	}
}

func near(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestOffsetDesiredAtYawZero(t *testing.T) {
	f, err := NewFollow(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	got := f.Desired(mgl32.Vec3{0, 0, 0}, 0, 0.3)
	if !near(got, mgl32.Vec3{0, 3, -5}) {
		t.Fatalf("expected (0,3,-5), got %v", got)
	}
}

func TestOffsetDesiredFollowsYaw(t *testing.T) {
	f, _ := NewFollow(testConfig())
	target := mgl32.Vec3{2, 1, -4}
	got := f.Desired(target, math.Pi/2, 0.3)
	want := mgl32.Vec3{2 - 5, 1 + 3, -4}
	if !near(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSphericalDesired(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeSpherical
	f, _ := NewFollow(cfg)
	pitch := float32(0.5)
	yaw := float32(0.7)
	target := mgl32.Vec3{1, 2, 3}
	got := f.Desired(target, yaw, pitch)
	phi := math.Pi/2 - float64(pitch)
	want := mgl32.Vec3{
		float32(5*math.Sin(phi)*math.Sin(float64(yaw))) + 1,
		2 + 3,
		float32(5*math.Sin(phi)*math.Cos(float64(yaw))) + 3,
	}
	if !near(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMinHeightGuardsGroundClipping(t *testing.T) {
	for _, mode := range []Mode{ModeOffset, ModeSpherical} {
		cfg := testConfig()
		cfg.Mode = mode
		cfg.Height = 0.2
		cfg.MinHeight = 1.25
		f, _ := NewFollow(cfg)
		got := f.Desired(mgl32.Vec3{0, 4, 0}, 1, 0.5)
		if math.Abs(float64(got.Y()-5.25)) > eps {
			t.Fatalf("%v: expected y=5.25, got %v", mode, got.Y())
		}
	}
}

func TestLookAtKeepsTargetXZForAllYaws(t *testing.T) {
	for _, mode := range []Mode{ModeOffset, ModeSpherical} {
		cfg := testConfig()
		cfg.Mode = mode
		f, _ := NewFollow(cfg)
		target := mgl32.Vec3{3, 0.5, -7}
		for yaw := float32(-10); yaw <= 10; yaw += 0.37 {
			pose := f.Update(target, yaw, 0.4, 1.0/60)
			if pose.LookAt.X() != target.X() || pose.LookAt.Z() != target.Z() {
				t.Fatalf("%v yaw %v: look-at xz drifted: %v", mode, yaw, pose.LookAt)
			}
			if math.Abs(float64(pose.LookAt.Y()-(target.Y()+1.5))) > eps {
				t.Fatalf("%v yaw %v: look-at y wrong: %v", mode, yaw, pose.LookAt.Y())
			}
		}
	}
}

func TestUpdateSnapsFirstThenEases(t *testing.T) {
	f, _ := NewFollow(testConfig())
	target := mgl32.Vec3{0, 0, 0}
	p := f.Update(target, 0, 0.3, 1.0/60)
	if !near(p.Position, mgl32.Vec3{0, 3, -5}) {
		t.Fatalf("first update must snap, got %v", p.Position)
	}
	moved := mgl32.Vec3{10, 0, 0}
	p = f.Update(moved, 0, 0.3, 1.0/60)
	// 10% of the way from (0,3,-5) to (10,3,-5).
	if !near(p.Position, mgl32.Vec3{1, 3, -5}) {
		t.Fatalf("expected eased position (1,3,-5), got %v", p.Position)
	}
	for i := 0; i < 300; i++ {
		p = f.Update(moved, 0, 0.3, 1.0/60)
	}
	if !near(p.Position, mgl32.Vec3{10, 3, -5}) {
		t.Fatalf("expected convergence, got %v", p.Position)
	}
}

func TestTimeScaledSmoothingIsFrameRateIndependent(t *testing.T) {
	cfg := testConfig()
	cfg.Smoothing = ease.TimeScaled
	fast, _ := NewFollow(cfg)
	slow, _ := NewFollow(cfg)
	start := mgl32.Vec3{0, 0, 0}
	goal := mgl32.Vec3{20, 0, 0}
	fast.Update(start, 0, 0.3, 0)
	slow.Update(start, 0, 0.3, 0)
	for i := 0; i < 120; i++ {
		fast.Update(goal, 0, 0.3, 1.0/120)
	}
	for i := 0; i < 30; i++ {
		slow.Update(goal, 0, 0.3, 1.0/30)
	}
	if !fast.Pose().Position.ApproxEqualThreshold(slow.Pose().Position, 1e-2) {
		t.Fatalf("positions diverged: %v vs %v", fast.Pose().Position, slow.Pose().Position)
	}
}

func TestRejectsDegenerateConfig(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*Config)
		field string
	}{
		{"zero_distance", func(c *Config) { c.Distance = 0 }, "camera.distance"},
		{"negative_distance", func(c *Config) { c.Distance = -1 }, "camera.distance"},
		{"zero_smoothing", func(c *Config) { c.SmoothingFactor = 0 }, "camera.smoothness"},
		{"smoothing_above_one", func(c *Config) { c.SmoothingFactor = 1.01 }, "camera.smoothness"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig()
			c.tweak(&cfg)
			_, err := NewFollow(cfg)
			var cerr *engineconfig.ConfigurationError
			if !errors.As(err, &cerr) || cerr.Field != c.field {
				t.Fatalf("expected ConfigurationError on %s, got %v", c.field, err)
			}
		})
	}
}

func TestSetConfigKeepsOldOnError(t *testing.T) {
	f, _ := NewFollow(testConfig())
	bad := testConfig()
	bad.Distance = 0
	if err := f.SetConfig(bad); err == nil {
		t.Fatalf("expected error")
	}
	if f.Config().Distance != 5 {
		t.Fatalf("config replaced despite error")
	}
}

func TestHeadingFacesTarget(t *testing.T) {
	for _, mode := range []Mode{ModeOffset, ModeSpherical} {
		cfg := testConfig()
		cfg.Mode = mode
		f, _ := NewFollow(cfg)
		target := mgl32.Vec3{0, 0, 0}
		yaw := float32(0.9)
		cam := f.Desired(target, yaw, 0.3)
		toTarget := mgl32.Vec3{target.X() - cam.X(), 0, target.Z() - cam.Z()}.Normalize()
		if !near(toTarget, Forward(f.Heading(yaw))) {
			t.Fatalf("%v: heading %v does not point at target (%v)", mode, Forward(f.Heading(yaw)), toTarget)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("spherical"); err != nil || m != ModeSpherical {
		t.Fatalf("got %v %v", m, err)
	}
	if _, err := ParseMode("orbit"); err == nil {
		t.Fatalf("expected error")
	}
}
