package character

import (
	"errors"
	"math"
	"testing"

	"capybara-sandbox/internal/engineconfig"
	"capybara-sandbox/internal/input"
	"capybara-sandbox/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeBody struct {
	pos      mgl32.Vec3
	vel      mgl32.Vec3
	impulses []mgl32.Vec3
}

func (f *fakeBody) Translation() mgl32.Vec3        { return f.pos }
func (f *fakeBody) LinearVelocity() mgl32.Vec3     { return f.vel }
func (f *fakeBody) SetLinearVelocity(v mgl32.Vec3) { f.vel = v }
func (f *fakeBody) ApplyImpulse(j mgl32.Vec3) {
	f.impulses = append(f.impulses, j)
	f.vel = f.vel.Add(j)
}

// floorAt reports a surface at height y below any origin above it.
type floorAt float32

func (y floorAt) CastRay(origin, dir mgl32.Vec3, maxDist float32) (physics.Hit, bool) {
	d := origin.Y() - float32(y)
	if d < 0 || d > maxDist {
		return physics.Hit{}, false
	}
	return physics.Hit{Point: mgl32.Vec3{origin.X(), float32(y), origin.Z()}, Normal: mgl32.Vec3{0, 1, 0}, Distance: d}, true
}

func newBody(y float32, grounded bool) (*Body, *fakeBody) {
	fb := &fakeBody{pos: mgl32.Vec3{0, y, 0}}
	b := NewBody(fb, 1, 0)
	floor := floorAt(0)
	if !grounded {
		floor = floorAt(-100)
	}
	b.UpdateGrounded(floor, 0.1)
	return b, fb
}

func mustResolver(t *testing.T, cfg Config) *Resolver {
	t.Helper()
	r, err := NewResolver(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMoveDirectionIsUnitOrZero(t *testing.T) {
	for yaw := float32(-7); yaw < 7; yaw += 0.41 {
		for f := -1; f <= 1; f++ {
			for r := -1; r <= 1; r++ {
				d := MoveDirection(yaw, f, r)
				if d.Y() != 0 {
					t.Fatalf("yaw %v (%d,%d): y=%v", yaw, f, r, d.Y())
				}
				if f == 0 && r == 0 {
					if d != (mgl32.Vec3{}) {
						t.Fatalf("expected exact zero, got %v", d)
					}
					continue
				}
				if l := d.Len(); math.Abs(float64(l-1)) > 1e-5 {
					t.Fatalf("yaw %v (%d,%d): length %v", yaw, f, r, l)
				}
			}
		}
	}
}

func TestMoveDirectionForwardAtQuarterTurn(t *testing.T) {
	d := MoveDirection(math.Pi/2, 1, 0)
	if !d.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("expected (1,0,0), got %v", d)
	}
}

func TestClampHorizontal(t *testing.T) {
	cases := []struct {
		name    string
		in      mgl32.Vec3
		clamped bool
	}{
		{"slow", mgl32.Vec3{3, -2, 4}, false},
		{"exact", mgl32.Vec3{6, 7, 8}, false},
		{"fast", mgl32.Vec3{30, 5, 40}, true},
		{"fast_falling", mgl32.Vec3{-12, -20, 0}, true},
		{"vertical_only", mgl32.Vec3{0, 50, 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, clamped := ClampHorizontal(c.in, 10)
			if clamped != c.clamped {
				t.Fatalf("clamped=%v, want %v", clamped, c.clamped)
			}
			if out.Y() != c.in.Y() {
				t.Fatalf("vertical velocity changed: %v -> %v", c.in.Y(), out.Y())
			}
			if h := math.Hypot(float64(out.X()), float64(out.Z())); h > 10+1e-4 {
				t.Fatalf("horizontal speed %v exceeds max", h)
			}
			if !clamped && out != c.in {
				t.Fatalf("unclamped velocity modified: %v", out)
			}
		})
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	cfg := DefaultConfig()
	r := mustResolver(t, cfg)

	b, fb := newBody(1, true)
	res := r.Resolve(b, input.Intent{JumpRequested: true}, 0)
	if !res.Jumped {
		t.Fatalf("grounded jump request must jump")
	}
	var vertical []mgl32.Vec3
	for _, j := range fb.impulses {
		if j.Y() != 0 {
			vertical = append(vertical, j)
		}
	}
	if len(vertical) != 1 || vertical[0] != (mgl32.Vec3{0, cfg.JumpForce, 0}) {
		t.Fatalf("expected exactly one jump impulse of %v, got %v", cfg.JumpForce, vertical)
	}

	b, fb = newBody(5, false)
	res = r.Resolve(b, input.Intent{JumpRequested: true}, 0)
	if res.Jumped {
		t.Fatalf("airborne jump request must not jump")
	}
	for _, j := range fb.impulses {
		if j.Y() != 0 {
			t.Fatalf("airborne vertical impulse applied: %v", j)
		}
	}
}

func TestAirControlScalesImpulse(t *testing.T) {
	cfg := DefaultConfig()
	r := mustResolver(t, cfg)

	b, _ := newBody(1, true)
	ground := r.Resolve(b, input.Intent{MoveForward: 1}, 0)
	b, _ = newBody(5, false)
	air := r.Resolve(b, input.Intent{MoveForward: 1}, 0)

	if l := ground.Impulse.Len(); math.Abs(float64(l-cfg.MovementSpeed)) > 1e-5 {
		t.Fatalf("grounded impulse %v, want %v", l, cfg.MovementSpeed)
	}
	want := cfg.MovementSpeed * cfg.AirControlFactor
	if l := air.Impulse.Len(); math.Abs(float64(l-want)) > 1e-5 {
		t.Fatalf("airborne impulse %v, want %v", l, want)
	}
}

func TestResolveClampsAfterImpulse(t *testing.T) {
	r := mustResolver(t, DefaultConfig())
	b, fb := newBody(1, true)
	fb.vel = mgl32.Vec3{0, -3, 9}
	res := r.Resolve(b, input.Intent{MoveForward: 1}, 0)
	if !res.Clamped {
		t.Fatalf("expected clamp")
	}
	if fb.vel.Y() != -3 {
		t.Fatalf("vertical velocity changed: %v", fb.vel.Y())
	}
	if h := math.Hypot(float64(fb.vel.X()), float64(fb.vel.Z())); h > 10+1e-4 {
		t.Fatalf("horizontal speed %v", h)
	}
}

func TestFacing(t *testing.T) {
	t.Run("moving_faces_direction", func(t *testing.T) {
		r := mustResolver(t, DefaultConfig())
		b, _ := newBody(1, true)
		res := r.Resolve(b, input.Intent{MoveForward: 1}, math.Pi/2)
		if math.Abs(float64(res.Facing)-math.Pi/2) > 1e-5 {
			t.Fatalf("expected facing pi/2, got %v", res.Facing)
		}
	})
	t.Run("idle_hold", func(t *testing.T) {
		r := mustResolver(t, DefaultConfig())
		b, _ := newBody(1, true)
		b.SetFacing(1.25)
		res := r.Resolve(b, input.Intent{}, 3)
		if res.Facing != 1.25 {
			t.Fatalf("expected held facing, got %v", res.Facing)
		}
	})
	t.Run("idle_camera", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.IdleFacing = IdleCamera
		r := mustResolver(t, cfg)
		b, _ := newBody(1, true)
		b.SetFacing(1.25)
		res := r.Resolve(b, input.Intent{}, 3)
		if res.Facing != 3 {
			t.Fatalf("expected camera facing, got %v", res.Facing)
		}
	})
	t.Run("blended", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FacingBlend = 0.15
		r := mustResolver(t, cfg)
		b, _ := newBody(1, true)
		res := r.Resolve(b, input.Intent{MoveForward: 1}, 1)
		if math.Abs(float64(res.Facing)-0.15) > 1e-5 {
			t.Fatalf("expected 15%% of the turn, got %v", res.Facing)
		}
	})
}

func TestUpdateGrounded(t *testing.T) {
	fb := &fakeBody{pos: mgl32.Vec3{0, 1.05, 0}}
	b := NewBody(fb, 1, 0)
	if !b.UpdateGrounded(floorAt(0), 0.1) {
		t.Fatalf("surface within extent+epsilon must ground")
	}
	if hit, ok := b.Ground(); !ok || hit.Distance != 1.05 {
		t.Fatalf("unexpected ground hit %+v", hit)
	}
	fb.pos = mgl32.Vec3{0, 1.2, 0}
	if b.UpdateGrounded(floorAt(0), 0.1) {
		t.Fatalf("surface beyond extent+epsilon must not ground")
	}
}

func TestUpdateGroundedAgainstWorld(t *testing.T) {
	w := physics.NewWorld(physics.DefaultSettings())
	w.AddCollider(physics.NewBox(physics.KindGround, mgl32.Vec3{0, -0.1, 0}, mgl32.Vec3{100, 0.2, 100}, mgl32.QuatIdent()))
	pb := physics.NewBody(mgl32.Vec3{0, 1, 0}, physics.DefaultBodyConfig())
	b := NewBody(pb, pb.Extent(), 0)
	if !b.UpdateGrounded(w, 0.1) {
		t.Fatalf("resting capsule must be grounded")
	}
	pb.SetTranslation(mgl32.Vec3{0, 3, 0})
	if b.UpdateGrounded(w, 0.1) {
		t.Fatalf("raised capsule must be airborne")
	}
}

func TestRejectsDegenerateConfig(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*Config)
		field string
	}{
		{"zero_max_velocity", func(c *Config) { c.MaxVelocity = 0 }, "movement.max_velocity"},
		{"air_control_negative", func(c *Config) { c.AirControlFactor = -0.1 }, "movement.air_control"},
		{"facing_blend_zero", func(c *Config) { c.FacingBlend = 0 }, "movement.facing_blend"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.tweak(&cfg)
			_, err := NewResolver(cfg)
			var cerr *engineconfig.ConfigurationError
			if !errors.As(err, &cerr) || cerr.Field != c.field {
				t.Fatalf("expected error on %s, got %v", c.field, err)
			}
		})
	}
}

func TestParseIdleFacing(t *testing.T) {
	if f, err := ParseIdleFacing("camera"); err != nil || f != IdleCamera {
		t.Fatalf("got %v %v", f, err)
	}
	if _, err := ParseIdleFacing("spin"); err == nil {
		t.Fatalf("expected error")
	}
}
