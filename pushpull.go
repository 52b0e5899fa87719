package meshedit

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// pushPullEpsilon is the distance magnitude below which PushPull is the
// identity.
const pushPullEpsilon = 1e-6

// PushPull slides the geometry of the selected faces along their face
// normals by the signed distance, without generating any side-wall geometry
// (which is what separates it from an extrude).
//
// Every selected face contributes its normal times distance to each of its
// three vertices; a vertex touched by several selected faces receives the
// average of those contributions. Vertices also used by an unselected face
// (boundary vertices) are duplicated: the moved copy is appended and the
// selected faces are remapped onto it, while the original stays put for the
// unselected faces. Interior vertices are simply moved in place.
//
// An empty or entirely stale selection, or |distance| below 1e-6, returns a
// plain clone.
func (m *Mesh) PushPull(sel FaceSet, distance float64) *Mesh {
	if m.validFaceCount(sel) == 0 || math.Abs(distance) < pushPullEpsilon {
		return m.Clone()
	}

	// Accumulate per-vertex offsets from every selected face.
	offsets := make(map[uint32]mgl64.Vec3)
	counts := make(map[uint32]int)
	for f := range sel {
		if f < 0 || f >= len(m.Triangles) {
			continue
		}
		move := m.FaceNormal(f).Mul(distance)
		for _, idx := range m.Triangles[f] {
			offsets[idx] = offsets[idx].Add(move)
			counts[idx]++
		}
	}

	boundary := m.BoundaryVertices(sel)
	out := m.Clone()

	// Process moved vertices in index order so duplicates land at
	// deterministic positions run to run.
	moved := make([]uint32, 0, len(offsets))
	for idx := range offsets {
		moved = append(moved, idx)
	}
	sort.Slice(moved, func(i, j int) bool { return moved[i] < moved[j] })

	// Boundary vertices get a moved duplicate; selected faces are remapped
	// onto it. duplicates maps original index -> appended copy.
	duplicates := make(map[uint32]uint32)
	for _, idx := range moved {
		move := offsets[idx].Mul(1 / float64(counts[idx]))
		if boundary.Has(idx) {
			dup := out.AddVertex(out.Positions[idx].Add(move), out.Normals[idx], out.UVs[idx])
			duplicates[idx] = dup
		} else {
			out.Positions[idx] = out.Positions[idx].Add(move)
		}
	}

	if len(duplicates) > 0 {
		for f := range sel {
			if f < 0 || f >= len(out.Triangles) {
				continue
			}
			tri := out.Triangles[f]
			for i, idx := range tri {
				if dup, ok := duplicates[idx]; ok {
					tri[i] = dup
				}
			}
			out.Triangles[f] = tri
		}
	}

	out.RecomputeNormals()
	return out
}
