package meshedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FalloffCurve maps a normalized distance t in [0,1] (0 = at the selection,
// 1 = at the radius) to an influence weight. The set of curves is closed and
// dispatched with an exhaustive switch, so it stays fixed and inspectable.
type FalloffCurve int

const (
	// FalloffSmooth is the default: (cos(pi*t)+1)/2.
	FalloffSmooth FalloffCurve = iota
	// FalloffLinear is 1-t.
	FalloffLinear
	// FalloffSharp is (1-t)^2.
	FalloffSharp
	// FalloffRoot is sqrt(1-t).
	FalloffRoot
)

// Weight evaluates the curve at t, clamped into [0,1]. Unknown curve values
// fall back to the smooth curve.
func (c FalloffCurve) Weight(t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	switch c {
	case FalloffLinear:
		return 1 - t
	case FalloffSharp:
		return (1 - t) * (1 - t)
	case FalloffRoot:
		return math.Sqrt(1 - t)
	default:
		return (math.Cos(math.Pi*t) + 1) / 2
	}
}

// SoftWeights computes one influence weight per vertex. Selected vertices
// weigh exactly 1. Any other vertex weighs curve(d/radius), where d is its
// distance to the nearest selected vertex, if d is within the radius, and 0
// otherwise. A non-positive radius or an empty selection degrades to a binary
// selected/unselected weighting instead of computing falloff.
//
// The nearest-vertex scan is O(unselected * selected); fine for editing-sized
// meshes, a known scaling limit beyond that.
func (m *Mesh) SoftWeights(sel VertexSet, radius float64, curve FalloffCurve) []float64 {
	weights := make([]float64, len(m.Positions))

	selected := make([]uint32, 0, len(sel))
	for v := range sel {
		if int(v) < len(m.Positions) {
			selected = append(selected, v)
		}
	}

	if radius <= 0 || len(selected) == 0 {
		for _, v := range selected {
			weights[v] = 1
		}
		return weights
	}

	for i := range m.Positions {
		if sel.Has(uint32(i)) {
			weights[i] = 1
			continue
		}
		nearest := math.Inf(1)
		for _, v := range selected {
			if d := m.Positions[i].Sub(m.Positions[v]).Len(); d < nearest {
				nearest = d
			}
		}
		if nearest < radius {
			weights[i] = curve.Weight(nearest / radius)
		}
	}
	return weights
}

// ApplySoftDisplacement returns a new mesh in which every vertex with a
// positive weight is moved by delta scaled by that weight. Zero-weight
// vertices are untouched. The input mesh is cloned first and only the clone
// is mutated; normals are recomputed afterwards.
func (m *Mesh) ApplySoftDisplacement(weights []float64, delta mgl64.Vec3) *Mesh {
	out := m.Clone()
	n := len(weights)
	if len(out.Positions) < n {
		n = len(out.Positions)
	}
	for i := 0; i < n; i++ {
		if weights[i] > 0 {
			out.Positions[i] = out.Positions[i].Add(delta.Mul(weights[i]))
		}
	}
	out.RecomputeNormals()
	return out
}
