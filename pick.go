package meshedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is an origin plus a direction, used for interactive face picking. The
// direction does not have to be unit length; reported distances are in
// multiples of it.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// BoundingBox is an axis-aligned box around a set of points.
type BoundingBox struct {
	Min, Max mgl64.Vec3
}

// BoundingBox returns the axis-aligned bounds of all vertex positions. An
// empty mesh yields the zero box.
func (m *Mesh) BoundingBox() BoundingBox {
	if len(m.Positions) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for axis := 0; axis < 3; axis++ {
			bb.Min[axis] = math.Min(bb.Min[axis], p[axis])
			bb.Max[axis] = math.Max(bb.Max[axis], p[axis])
		}
	}
	return bb
}

// IntersectsRay is a slab test against the box, used as a cheap early-out
// before testing individual triangles.
func (bb BoundingBox) IntersectsRay(r Ray) bool {
	tMin, tMax := 0.0, math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if r.Dir[axis] == 0 {
			if r.Origin[axis] < bb.Min[axis] || r.Origin[axis] > bb.Max[axis] {
				return false
			}
			continue
		}
		inv := 1 / r.Dir[axis]
		t0 := (bb.Min[axis] - r.Origin[axis]) * inv
		t1 := (bb.Max[axis] - r.Origin[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// intersectTriangle runs the Moller-Trumbore test of a ray against one
// triangle, both sides. Returns the ray parameter of the hit point and
// whether there was a hit in front of the origin.
func intersectTriangle(r Ray, v0, v1, v2 mgl64.Vec3) (float64, bool) {
	const epsilon = 1e-9

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	p := r.Dir.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < epsilon {
		return 0, false // parallel or degenerate
	}
	invDet := 1 / det

	tv := r.Origin.Sub(v0)
	u := tv.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := tv.Cross(edge1)
	v := r.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t < epsilon {
		return 0, false
	}
	return t, true
}

// PickFace returns the face index of the closest triangle hit by the ray,
// along with the ray parameter of the hit. ok is false when the ray misses
// the mesh entirely.
func (m *Mesh) PickFace(r Ray) (face int, distance float64, ok bool) {
	if len(m.Triangles) == 0 || !m.BoundingBox().IntersectsRay(r) {
		return -1, 0, false
	}

	face = -1
	distance = math.Inf(1)
	for i, tri := range m.Triangles {
		t, hit := intersectTriangle(r, m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]])
		if hit && t < distance {
			face = i
			distance = t
		}
	}
	if face < 0 {
		return -1, 0, false
	}
	return face, distance, true
}
