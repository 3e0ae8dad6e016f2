package ease

import (
	"math"
	"testing"
)

func TestAlphaFixedIgnoresDt(t *testing.T) {
	for _, dt := range []float32{0, 1.0 / 144, 1.0 / 60, 1.0 / 30} {
		if got := Alpha(Fixed, 0.1, dt); got != 0.1 {
			t.Fatalf("dt=%v: expected 0.1, got %v", dt, got)
		}
	}
}

func TestAlphaTimeScaledMatchesFixedAtReferenceRate(t *testing.T) {
	got := Alpha(TimeScaled, 0.1, 1.0/ReferenceRate)
	if math.Abs(float64(got-0.1)) > 1e-5 {
		t.Fatalf("expected 0.1 at reference rate, got %v", got)
	}
}

func TestAlphaTimeScaledFrameRateIndependent(t *testing.T) {
	// Two half-length frames must converge as far as one full frame.
	full := Alpha(TimeScaled, 0.2, 1.0/30)
	half := Alpha(TimeScaled, 0.2, 1.0/60)
	remainingFull := 1 - full
	remainingHalf := (1 - half) * (1 - half)
	if math.Abs(float64(remainingFull-remainingHalf)) > 1e-5 {
		t.Fatalf("expected equal remaining distance, got %v vs %v", remainingFull, remainingHalf)
	}
}

func TestAlphaBounds(t *testing.T) {
	cases := []struct {
		name   string
		mode   Mode
		factor float32
		dt     float32
		want   float32
	}{
		{"one_is_instant", TimeScaled, 1, 0.016, 1},
		{"zero_factor", Fixed, 0, 0.016, 0},
		{"zero_dt_timescaled", TimeScaled, 0.5, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Alpha(c.mode, c.factor, c.dt); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"fixed": Fixed, "": Fixed, "timescaled": TimeScaled, "time": TimeScaled} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("bogus"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	a := float32(math.Pi - 0.1)
	b := float32(-math.Pi + 0.1)
	mid := LerpAngle(a, b, 0.5)
	if math.Abs(math.Abs(float64(WrapAngle(mid)))-math.Pi) > 1e-4 {
		t.Fatalf("expected midpoint near pi, got %v", mid)
	}
}
