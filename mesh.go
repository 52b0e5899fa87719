package meshedit

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle mesh held as parallel per-vertex attribute
// arrays plus a flat triangle index array. Positions, Normals and UVs always
// have the same length, and every index stored in Triangles is less than that
// length. A triangle's position within Triangles is its face index, which is
// only meaningful against this exact snapshot of the mesh.
//
// There is no stored adjacency: two triangles are connected at a vertex iff
// they reference the same vertex index. Editing operators never mutate their
// receiver; each one returns a freshly allocated Mesh, which is what makes
// undo at the caller level a simple stack of old values.
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Triangles [][3]uint32
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends one vertex with all of its attributes and returns its
// index. This keeps the three attribute arrays growing in lockstep.
func (m *Mesh) AddVertex(pos, normal mgl64.Vec3, uv mgl64.Vec2) uint32 {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	return uint32(len(m.Positions) - 1)
}

// AddTriangle appends a face and returns its face index.
func (m *Mesh) AddTriangle(a, b, c uint32) int {
	m.Triangles = append(m.Triangles, [3]uint32{a, b, c})
	return len(m.Triangles) - 1
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) FaceCount() int {
	return len(m.Triangles)
}

// Clone returns a deep copy. The copy shares no backing storage with the
// original, so either side can be edited freely afterwards.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Positions: make([]mgl64.Vec3, len(m.Positions)),
		Normals:   make([]mgl64.Vec3, len(m.Normals)),
		UVs:       make([]mgl64.Vec2, len(m.UVs)),
		Triangles: make([][3]uint32, len(m.Triangles)),
	}
	copy(out.Positions, m.Positions)
	copy(out.Normals, m.Normals)
	copy(out.UVs, m.UVs)
	copy(out.Triangles, m.Triangles)
	return out
}

// FaceNormal returns the unit normal of the given face, computed from the
// cross product of two of its edge vectors. A degenerate (zero area) triangle
// yields the zero vector; callers treat that as "no contribution" and must
// never normalize through it. An out-of-range face index also yields zero.
func (m *Mesh) FaceNormal(face int) mgl64.Vec3 {
	if face < 0 || face >= len(m.Triangles) {
		return mgl64.Vec3{}
	}
	tri := m.Triangles[face]
	p0 := m.Positions[tri[0]]
	p1 := m.Positions[tri[1]]
	p2 := m.Positions[tri[2]]

	n := p1.Sub(p0).Cross(p2.Sub(p1))
	length := n.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return n.Mul(1 / length)
}

// FaceCentroid returns the average of the face's three corner positions.
func (m *Mesh) FaceCentroid(face int) mgl64.Vec3 {
	if face < 0 || face >= len(m.Triangles) {
		return mgl64.Vec3{}
	}
	tri := m.Triangles[face]
	sum := m.Positions[tri[0]].Add(m.Positions[tri[1]]).Add(m.Positions[tri[2]])
	return sum.Mul(1.0 / 3.0)
}

// RecomputeNormals rebuilds every vertex normal by accumulating the face
// normals of all triangles referencing that vertex and renormalizing the sum.
// Every topology-changing operator calls this on its result before returning.
// Degenerate faces contribute nothing; a vertex referenced by no face (or by
// only degenerate faces) ends up with a zero normal.
func (m *Mesh) RecomputeNormals() {
	normals := make([]mgl64.Vec3, len(m.Positions))
	for face := range m.Triangles {
		fn := m.FaceNormal(face)
		if fn.Len() == 0 {
			continue
		}
		for _, idx := range m.Triangles[face] {
			normals[idx] = normals[idx].Add(fn)
		}
	}
	for i := range normals {
		if length := normals[i].Len(); length > 0 {
			normals[i] = normals[i].Mul(1 / length)
		}
	}
	m.Normals = normals
}

// lerpVec3 interpolates a towards b by t.
func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// lerpVec2 interpolates a towards b by t.
func lerpVec2(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// safeNormalize returns v scaled to unit length, or v unchanged when its
// length is zero.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if length := v.Len(); length > 0 {
		return v.Mul(1 / length)
	}
	return v
}
