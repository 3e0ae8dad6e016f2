package input

// Key codes. Values match raylib's KeyboardKey constants so the raylib Device can pass
// them through unchanged.
const (
	KeySpace int32 = 32
	KeyA     int32 = 65
	KeyD     int32 = 68
	KeyS     int32 = 83
	KeyW     int32 = 87
	KeyRight int32 = 262
	KeyLeft  int32 = 263
	KeyDown  int32 = 264
	KeyUp    int32 = 265
)

// Device is the raw input source. KeyPressed reports a key that went down this frame.
// MouseDelta returns the motion since the previous frame.
type Device interface {
	KeyDown(key int32) bool
	KeyPressed(key int32) bool
	MouseDelta() (dx, dy float32)
	PointerLocked() bool
}

// Bindings maps actions to keys. Any key in a slice triggers the action.
type Bindings struct {
	Forward []int32
	Back    []int32
	Left    []int32
	Right   []int32
	Jump    []int32
}

// DefaultBindings is WASD plus arrow keys, space to jump.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: []int32{KeyW, KeyUp},
		Back:    []int32{KeyS, KeyDown},
		Left:    []int32{KeyA, KeyLeft},
		Right:   []int32{KeyD, KeyRight},
		Jump:    []int32{KeySpace},
	}
}

// Intent is the per-frame snapshot of what the player asked for.
// MoveRight is positive along the resolver's right axis, which in the sandbox's
// right-handed Y-up frame is the player's left-hand key.
type Intent struct {
	MoveForward   int
	MoveRight     int
	JumpRequested bool
	MouseDX       float32
	MouseDY       float32
}

// Moving reports whether either move axis is non-zero.
func (i Intent) Moving() bool {
	return i.MoveForward != 0 || i.MoveRight != 0
}

// Sampler turns device state into Intents. Mouse motion is collected into an
// accumulator by Poll (or by Feed from another goroutine) and drained by Sample.
type Sampler struct {
	device     Device
	bindings   Bindings
	mouse      MouseAccumulator
	suppressed bool
}

// NewSampler returns a Sampler reading dev. dev may be nil when all input arrives through Feed.
func NewSampler(dev Device, bindings Bindings) *Sampler {
	return &Sampler{device: dev, bindings: bindings}
}

// SetSuppressed stops keys and mouse motion from reaching intents, e.g. while the console is open.
func (s *Sampler) SetSuppressed(v bool) {
	s.suppressed = v
}

// Suppressed reports whether sampling is suppressed.
func (s *Sampler) Suppressed() bool { return s.suppressed }

// Feed adds pointer motion. Safe to call from any goroutine.
func (s *Sampler) Feed(dx, dy float32) {
	s.mouse.Add(dx, dy)
}

// Poll moves the device's mouse delta into the accumulator. Motion only counts while
// the pointer is locked.
func (s *Sampler) Poll() {
	if s.device == nil {
		return
	}
	dx, dy := s.device.MouseDelta()
	if s.device.PointerLocked() {
		s.mouse.Add(dx, dy)
	}
}

// Sample polls the device and returns this frame's intent. The accumulated mouse delta
// is reset by every call, including suppressed ones.
func (s *Sampler) Sample() Intent {
	s.Poll()
	dx, dy := s.mouse.Drain()
	if s.suppressed {
		return Intent{}
	}
	in := Intent{MouseDX: dx, MouseDY: dy}
	if s.device == nil {
		return in
	}
	in.MoveForward = axis(s.anyDown(s.bindings.Forward), s.anyDown(s.bindings.Back))
	in.MoveRight = axis(s.anyDown(s.bindings.Left), s.anyDown(s.bindings.Right))
	for _, k := range s.bindings.Jump {
		if s.device.KeyPressed(k) {
			in.JumpRequested = true
			break
		}
	}
	return in
}

func (s *Sampler) anyDown(keys []int32) bool {
	for _, k := range keys {
		if s.device.KeyDown(k) {
			return true
		}
	}
	return false
}

func axis(pos, neg bool) int {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}
