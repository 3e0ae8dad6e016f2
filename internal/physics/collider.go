package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags what a collider represents in the course.
type Kind int

const (
	KindGround Kind = iota
	KindObstacle
	KindRamp
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindObstacle:
		return "obstacle"
	case KindRamp:
		return "ramp"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts "ground", "obstacle" (or "box") and "ramp".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "ground":
		return KindGround, nil
	case "obstacle", "box", "":
		return KindObstacle, nil
	case "ramp":
		return KindRamp, nil
	}
	return KindObstacle, fmt.Errorf("unknown collider kind %q", s)
}

// Collider is a static oriented box.
type Collider struct {
	Kind        Kind
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Rotation    mgl32.Quat
}

// NewBox returns a collider of the given full size centered at center.
func NewBox(kind Kind, center, size mgl32.Vec3, rotation mgl32.Quat) *Collider {
	if rotation.Len() == 0 {
		rotation = mgl32.QuatIdent()
	}
	return &Collider{
		Kind:        kind,
		Center:      center,
		HalfExtents: size.Mul(0.5),
		Rotation:    rotation.Normalize(),
	}
}

// Size returns the full extents.
func (c *Collider) Size() mgl32.Vec3 { return c.HalfExtents.Mul(2) }

func (c *Collider) toLocal(p mgl32.Vec3) mgl32.Vec3 {
	return c.Rotation.Conjugate().Rotate(p.Sub(c.Center))
}

func (c *Collider) toWorld(p mgl32.Vec3) mgl32.Vec3 {
	return c.Center.Add(c.Rotation.Rotate(p))
}

// ClosestPoint returns the point of the box nearest to p. Points inside return themselves.
func (c *Collider) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	l := c.toLocal(p)
	for i := 0; i < 3; i++ {
		l[i] = mgl32.Clamp(l[i], -c.HalfExtents[i], c.HalfExtents[i])
	}
	return c.toWorld(l)
}

// Contains reports whether p lies inside the box.
func (c *Collider) Contains(p mgl32.Vec3) bool {
	l := c.toLocal(p)
	for i := 0; i < 3; i++ {
		if math32.Abs(l[i]) > c.HalfExtents[i] {
			return false
		}
	}
	return true
}

// Raycast intersects the ray origin + t*dir (dir unit length) with the box using the slab
// test in box space. A ray starting inside hits at t=0 with the normal facing back along dir.
func (c *Collider) Raycast(origin, dir mgl32.Vec3, maxDist float32) (float32, mgl32.Vec3, bool) {
	inv := c.Rotation.Conjugate()
	o := inv.Rotate(origin.Sub(c.Center))
	d := inv.Rotate(dir)

	tmin := float32(math32.Inf(-1))
	tmax := float32(math32.Inf(1))
	axis := -1
	var sign float32
	for i := 0; i < 3; i++ {
		h := c.HalfExtents[i]
		if math32.Abs(d[i]) < 1e-8 {
			if math32.Abs(o[i]) > h {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		t1 := (-h - o[i]) / d[i]
		t2 := (h - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			axis = i
			sign = -1
			if d[i] < 0 {
				sign = 1
			}
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}
	if tmax < 0 || axis < 0 {
		return 0, mgl32.Vec3{}, false
	}
	if tmin < 0 {
		return 0, dir.Mul(-1), true
	}
	if tmin > maxDist {
		return 0, mgl32.Vec3{}, false
	}
	var n mgl32.Vec3
	n[axis] = sign
	return tmin, c.Rotation.Rotate(n), true
}

// capsuleContact returns the push-out normal and depth for a capsule overlapping the box.
func (c *Collider) capsuleContact(a, b mgl32.Vec3, radius float32) (mgl32.Vec3, float32, bool) {
	p := a.Add(b).Mul(0.5)
	q := c.ClosestPoint(p)
	for i := 0; i < 4; i++ {
		p = closestOnSegment(a, b, q)
		q = c.ClosestPoint(p)
	}
	d := p.Sub(q)
	dist := d.Len()
	if dist > radius {
		return mgl32.Vec3{}, 0, false
	}
	if dist > 1e-6 {
		return d.Mul(1 / dist), radius - dist, true
	}

	// Core segment is inside the box: leave through the nearest face.
	l := c.toLocal(p)
	axis := 0
	best := c.HalfExtents[0] - math32.Abs(l[0])
	for i := 1; i < 3; i++ {
		if gap := c.HalfExtents[i] - math32.Abs(l[i]); gap < best {
			best = gap
			axis = i
		}
	}
	var n mgl32.Vec3
	n[axis] = 1
	if l[axis] < 0 {
		n[axis] = -1
	}
	return c.Rotation.Rotate(n), best + radius, true
}

func closestOnSegment(a, b, q mgl32.Vec3) mgl32.Vec3 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den < 1e-12 {
		return a
	}
	t := mgl32.Clamp(q.Sub(a).Dot(ab)/den, 0, 1)
	return a.Add(ab.Mul(t))
}
