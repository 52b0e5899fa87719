package meshedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// insetEpsilon is the fraction magnitude below which Inset is the identity.
const insetEpsilon = 1e-6

// Inset shrinks each selected face towards its own centroid, replacing it
// with a smaller inner triangle ringed by bridging quads. Every selected face
// is processed on its own: adjacent selected faces do not share or weld their
// inner rings. Unselected faces are copied unchanged and keep their original
// vertex indices, so a face next to the selection still sees the unmoved
// outer vertex.
//
// fraction is clamped to (0.001, 0.999); 0 means no inset, 1 would collapse
// the face to its centroid. For each selected face (a,b,c) three new vertices
// are made by interpolating a, b and c towards the centroid (positions,
// normals and UVs all interpolated, normals renormalized). The original face
// is replaced by one inner triangle with the original winding plus two
// bridging triangles per original edge, so every selected face turns into
// seven.
//
// An empty or entirely stale selection, or |fraction| below 1e-6, returns a
// plain clone with nothing recomputed.
func (m *Mesh) Inset(sel FaceSet, fraction float64) *Mesh {
	if m.validFaceCount(sel) == 0 || math.Abs(fraction) < insetEpsilon {
		return m.Clone()
	}
	f := mgl64.Clamp(fraction, 0.001, 0.999)

	out := &Mesh{
		Positions: append([]mgl64.Vec3(nil), m.Positions...),
		Normals:   append([]mgl64.Vec3(nil), m.Normals...),
		UVs:       append([]mgl64.Vec2(nil), m.UVs...),
		Triangles: make([][3]uint32, 0, len(m.Triangles)),
	}

	for face, tri := range m.Triangles {
		if !sel.Has(face) {
			out.Triangles = append(out.Triangles, tri)
			continue
		}

		centerPos := m.FaceCentroid(face)
		centerNormal := m.Normals[tri[0]].Add(m.Normals[tri[1]]).Add(m.Normals[tri[2]]).Mul(1.0 / 3.0)
		centerUV := m.UVs[tri[0]].Add(m.UVs[tri[1]]).Add(m.UVs[tri[2]]).Mul(1.0 / 3.0)

		// One new vertex per corner, pulled towards the centroid.
		var inner [3]uint32
		for i, idx := range tri {
			pos := lerpVec3(m.Positions[idx], centerPos, f)
			normal := safeNormalize(lerpVec3(m.Normals[idx], centerNormal, f))
			uv := lerpVec2(m.UVs[idx], centerUV, f)
			inner[i] = out.AddVertex(pos, normal, uv)
		}

		// Inner triangle keeps the original winding.
		out.Triangles = append(out.Triangles, inner)

		// One bridging quad per original edge, split into two triangles.
		// Outer edge runs a->b, inner edge runs innerA->innerB, and both
		// triangles keep the outward winding of the source face.
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			a, b := tri[i], tri[j]
			ia, ib := inner[i], inner[j]
			out.Triangles = append(out.Triangles, [3]uint32{a, b, ib})
			out.Triangles = append(out.Triangles, [3]uint32{a, ib, ia})
		}
	}

	out.RecomputeNormals()
	return out
}
