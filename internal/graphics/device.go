package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Device reads keyboard and mouse through raylib. Pointer lock is raylib's disabled cursor:
// hidden, captured and reporting relative motion.
type Device struct {
	locked bool
}

// NewDevice returns an unlocked Device.
func NewDevice() *Device {
	return &Device{}
}

// KeyDown reports whether key is held. Key codes are raylib's.
func (d *Device) KeyDown(key int32) bool { return rl.IsKeyDown(key) }

// KeyPressed reports whether key went down this frame.
func (d *Device) KeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

// MouseDelta returns mouse motion since the last frame.
func (d *Device) MouseDelta() (float32, float32) {
	v := rl.GetMouseDelta()
	return v.X, v.Y
}

// PointerLocked reports whether the cursor is captured for mouse look.
func (d *Device) PointerLocked() bool { return d.locked }

// Lock captures the cursor.
func (d *Device) Lock() {
	if d.locked {
		return
	}
	rl.DisableCursor()
	d.locked = true
}

// Unlock releases the cursor.
func (d *Device) Unlock() {
	if !d.locked {
		return
	}
	rl.EnableCursor()
	d.locked = false
}

// Update captures the cursor on a left click when allowed. Call once per frame before sampling.
func (d *Device) Update(allowLock bool) {
	if allowLock && !d.locked && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		d.Lock()
	}
}
