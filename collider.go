package meshedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TriangleCollider is the collision-shape view of a mesh: positions and
// triangle indices only, snapshotted away from the attribute arrays so the
// physics side is unaffected by later edits to the source mesh.
type TriangleCollider struct {
	Positions []mgl64.Vec3
	Triangles [][3]uint32

	bounds BoundingBox
}

// BuildCollider snapshots the mesh's positions and indices into a collider.
func (m *Mesh) BuildCollider() *TriangleCollider {
	c := &TriangleCollider{
		Positions: append([]mgl64.Vec3(nil), m.Positions...),
		Triangles: append([][3]uint32(nil), m.Triangles...),
	}
	c.bounds = m.BoundingBox()
	return c
}

// ColliderHit describes the closest intersection of a ray with a collider.
type ColliderHit struct {
	Face     int
	Distance float64
	Point    mgl64.Vec3
}

// RayIntersect returns the closest hit of the ray against the collider, or
// ok=false on a miss.
func (c *TriangleCollider) RayIntersect(r Ray) (ColliderHit, bool) {
	if len(c.Triangles) == 0 || !c.bounds.IntersectsRay(r) {
		return ColliderHit{}, false
	}

	best := ColliderHit{Face: -1, Distance: math.Inf(1)}
	for i, tri := range c.Triangles {
		t, hit := intersectTriangle(r, c.Positions[tri[0]], c.Positions[tri[1]], c.Positions[tri[2]])
		if hit && t < best.Distance {
			best.Face = i
			best.Distance = t
		}
	}
	if best.Face < 0 {
		return ColliderHit{}, false
	}
	best.Point = r.Origin.Add(r.Dir.Mul(best.Distance))
	return best, true
}
