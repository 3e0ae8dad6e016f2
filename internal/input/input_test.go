package input

import (
	"sync"
	"testing"
)

type fakeDevice struct {
	down    map[int32]bool
	pressed map[int32]bool
	dx, dy  float32
	locked  bool
}

func newFake() *fakeDevice {
	return &fakeDevice{down: map[int32]bool{}, pressed: map[int32]bool{}, locked: true}
}

func (f *fakeDevice) KeyDown(k int32) bool    { return f.down[k] }
func (f *fakeDevice) KeyPressed(k int32) bool { return f.pressed[k] }
func (f *fakeDevice) PointerLocked() bool     { return f.locked }
func (f *fakeDevice) MouseDelta() (float32, float32) {
	dx, dy := f.dx, f.dy
	f.dx, f.dy = 0, 0
	return dx, dy
}

func TestSampleAxes(t *testing.T) {
	cases := []struct {
		name    string
		keys    []int32
		forward int
		right   int
	}{
		{"none", nil, 0, 0},
		{"w", []int32{KeyW}, 1, 0},
		{"s", []int32{KeyS}, -1, 0},
		{"w_and_s_cancel", []int32{KeyW, KeyS}, 0, 0},
		{"a", []int32{KeyA}, 0, 1},
		{"d", []int32{KeyD}, 0, -1},
		{"arrows", []int32{KeyUp, KeyLeft}, 1, 1},
		{"mixed_aliases", []int32{KeyW, KeyUp, KeyRight}, 1, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dev := newFake()
			for _, k := range c.keys {
				dev.down[k] = true
			}
			in := NewSampler(dev, DefaultBindings()).Sample()
			if in.MoveForward != c.forward || in.MoveRight != c.right {
				t.Fatalf("expected (%d,%d), got (%d,%d)", c.forward, c.right, in.MoveForward, in.MoveRight)
			}
		})
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	dev := newFake()
	s := NewSampler(dev, DefaultBindings())
	dev.down[KeySpace] = true
	if s.Sample().JumpRequested {
		t.Fatalf("held key without press edge must not request a jump")
	}
	dev.pressed[KeySpace] = true
	if !s.Sample().JumpRequested {
		t.Fatalf("expected jump request on press")
	}
}

func TestMouseDeltaResetsAfterRead(t *testing.T) {
	dev := newFake()
	s := NewSampler(dev, DefaultBindings())
	dev.dx, dev.dy = 3, -2
	s.Feed(1, 1)
	in := s.Sample()
	if in.MouseDX != 4 || in.MouseDY != -1 {
		t.Fatalf("expected (4,-1), got (%v,%v)", in.MouseDX, in.MouseDY)
	}
	in = s.Sample()
	if in.MouseDX != 0 || in.MouseDY != 0 {
		t.Fatalf("delta not reset: (%v,%v)", in.MouseDX, in.MouseDY)
	}
}

func TestMouseIgnoredWhenUnlocked(t *testing.T) {
	dev := newFake()
	dev.locked = false
	dev.dx = 10
	in := NewSampler(dev, DefaultBindings()).Sample()
	if in.MouseDX != 0 {
		t.Fatalf("unlocked pointer must not rotate, got %v", in.MouseDX)
	}
}

func TestSuppressedDrainsAndReturnsZero(t *testing.T) {
	dev := newFake()
	s := NewSampler(dev, DefaultBindings())
	s.SetSuppressed(true)
	dev.down[KeyW] = true
	dev.pressed[KeySpace] = true
	s.Feed(5, 5)
	if in := s.Sample(); in != (Intent{}) {
		t.Fatalf("expected zero intent, got %+v", in)
	}
	s.SetSuppressed(false)
	if in := s.Sample(); in.MouseDX != 0 {
		t.Fatalf("motion from the suppressed frame leaked: %v", in.MouseDX)
	}
}

func TestAccumulatorConcurrentAdd(t *testing.T) {
	var acc MouseAccumulator
	var wg sync.WaitGroup
	const workers, events = 8, 1000
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < events; i++ {
				acc.Add(1, -0.5)
			}
		}()
	}
	wg.Wait()
	dx, dy := acc.Drain()
	if dx != workers*events || dy != -workers*events/2 {
		t.Fatalf("lost updates: (%v,%v)", dx, dy)
	}
	if dx, dy := acc.Peek(); dx != 0 || dy != 0 {
		t.Fatalf("drain did not reset: (%v,%v)", dx, dy)
	}
}

func TestNilDeviceUsesFeedOnly(t *testing.T) {
	s := NewSampler(nil, DefaultBindings())
	s.Feed(2, 3)
	in := s.Sample()
	if in.MouseDX != 2 || in.MouseDY != 3 || in.Moving() {
		t.Fatalf("unexpected intent %+v", in)
	}
}
