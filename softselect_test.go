package meshedit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFalloffCurveValues(t *testing.T) {
	tests := []struct {
		name  string
		curve FalloffCurve
		t     float64
		want  float64
	}{
		{"smooth at 0", FalloffSmooth, 0, 1},
		{"smooth at 1", FalloffSmooth, 1, 0},
		{"smooth at half", FalloffSmooth, 0.5, 0.5},
		{"linear quarter", FalloffLinear, 0.25, 0.75},
		{"sharp half", FalloffSharp, 0.5, 0.25},
		{"root three quarters", FalloffRoot, 0.75, 0.5},
		{"clamped below", FalloffLinear, -2, 1},
		{"clamped above", FalloffLinear, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.curve.Weight(tc.t)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestFalloffCurvesNonIncreasing(t *testing.T) {
	curves := []FalloffCurve{FalloffSmooth, FalloffLinear, FalloffSharp, FalloffRoot}
	for _, c := range curves {
		prev := c.Weight(0)
		assert.InDelta(t, 1.0, prev, 1e-9, "every curve starts at 1")
		for step := 1; step <= 100; step++ {
			w := c.Weight(float64(step) / 100)
			assert.LessOrEqual(t, w, prev+1e-12, "curve %d not monotone at step %d", c, step)
			prev = w
		}
		assert.InDelta(t, 0.0, c.Weight(1), 1e-9, "every curve ends at 0")
	}
}

func TestSoftWeights(t *testing.T) {
	// A 4x4 grid plane, selecting one corner vertex.
	m := NewPlaneMesh(4, 4)
	sel := NewVertexSet(0)
	weights := m.SoftWeights(sel, 2.5, FalloffLinear)

	require.Len(t, weights, m.VertexCount())
	assert.InDelta(t, 1.0, weights[0], 1e-9, "selected vertex weighs exactly 1")

	for i := range weights {
		d := m.Positions[i].Sub(m.Positions[0]).Len()
		if d >= 2.5 && !sel.Has(uint32(i)) {
			assert.Zero(t, weights[i], "vertex %d beyond radius", i)
		}
		if d < 2.5 {
			assert.InDelta(t, FalloffLinear.Weight(d/2.5), weights[i], 1e-9)
		}
	}
}

func TestSoftWeightsNearestSelected(t *testing.T) {
	// Two selected vertices; an in-between vertex must be weighted against
	// whichever is closer.
	m := NewPlaneMesh(4, 4)
	a, b := uint32(0), uint32(4) // two corners of the first row
	weights := m.SoftWeights(NewVertexSet(a, b), 10, FalloffLinear)

	for i := range weights {
		if uint32(i) == a || uint32(i) == b {
			continue
		}
		da := m.Positions[i].Sub(m.Positions[a]).Len()
		db := m.Positions[i].Sub(m.Positions[b]).Len()
		d := da
		if db < da {
			d = db
		}
		assert.InDelta(t, FalloffLinear.Weight(d/10), weights[i], 1e-9, "vertex %d", i)
	}
}

func TestSoftWeightsBinaryFallback(t *testing.T) {
	m := quadMesh()

	// Non-positive radius: selected get 1, everyone else 0.
	weights := m.SoftWeights(NewVertexSet(1, 3), 0, FalloffSmooth)
	assert.Equal(t, []float64{0, 1, 0, 1}, weights)

	weights = m.SoftWeights(NewVertexSet(1), -5, FalloffSmooth)
	assert.Equal(t, []float64{0, 1, 0, 0}, weights)

	// Empty selection: all zeros regardless of radius.
	weights = m.SoftWeights(NewVertexSet(), 3, FalloffSmooth)
	assert.Equal(t, []float64{0, 0, 0, 0}, weights)

	// Stale vertex indices are skipped, which can empty the selection.
	weights = m.SoftWeights(NewVertexSet(99), 3, FalloffSmooth)
	assert.Equal(t, []float64{0, 0, 0, 0}, weights)
}

func TestApplySoftDisplacement(t *testing.T) {
	m := quadMesh()
	weights := []float64{1, 0.5, 0, 0}
	delta := mgl64.Vec3{0, 0, 2}

	out := m.ApplySoftDisplacement(weights, delta)
	checkConsistent(t, out)

	assert.True(t, vecAlmostEqual(out.Positions[0], m.Positions[0].Add(mgl64.Vec3{0, 0, 2})))
	assert.True(t, vecAlmostEqual(out.Positions[1], m.Positions[1].Add(mgl64.Vec3{0, 0, 1})))
	assert.True(t, vecAlmostEqual(out.Positions[2], m.Positions[2]), "zero-weight vertex moved")
	assert.True(t, vecAlmostEqual(out.Positions[3], m.Positions[3]))

	// Input untouched; clone first, then mutate the clone.
	assert.True(t, vecAlmostEqual(m.Positions[0], mgl64.Vec3{0, 0, 0}))
}

func TestApplySoftDisplacementShortWeights(t *testing.T) {
	// A weight array from a stale snapshot may be shorter than the mesh;
	// extra vertices are simply left alone.
	m := quadMesh()
	out := m.ApplySoftDisplacement([]float64{1}, mgl64.Vec3{1, 0, 0})
	assert.True(t, vecAlmostEqual(out.Positions[0], mgl64.Vec3{1, 0, 0}))
	assert.True(t, vecAlmostEqual(out.Positions[3], m.Positions[3]))
}
