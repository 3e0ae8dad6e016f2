package input

import (
	"math"
	"sync/atomic"
)

// MouseAccumulator sums pointer motion from any goroutine and hands the total to the
// frame loop exactly once. Both components live in one 64-bit word so a drain never
// sees dx from one event and dy from another.
type MouseAccumulator struct {
	bits atomic.Uint64
}

func pack(dx, dy float32) uint64 {
	return uint64(math.Float32bits(dx))<<32 | uint64(math.Float32bits(dy))
}

func unpack(v uint64) (dx, dy float32) {
	return math.Float32frombits(uint32(v >> 32)), math.Float32frombits(uint32(v))
}

// Add accumulates one motion event.
func (m *MouseAccumulator) Add(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	for {
		old := m.bits.Load()
		x, y := unpack(old)
		if m.bits.CompareAndSwap(old, pack(x+dx, y+dy)) {
			return
		}
	}
}

// Drain returns the motion accumulated since the last Drain and resets it to zero.
func (m *MouseAccumulator) Drain() (dx, dy float32) {
	return unpack(m.bits.Swap(0))
}

// Peek returns the pending motion without consuming it.
func (m *MouseAccumulator) Peek() (dx, dy float32) {
	return unpack(m.bits.Load())
}
