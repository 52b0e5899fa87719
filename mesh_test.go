package meshedit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b mgl64.Vec3) bool {
	return almostEqual(a.X(), b.X()) && almostEqual(a.Y(), b.Y()) && almostEqual(a.Z(), b.Z())
}

// singleTriangleMesh is the concrete scenario mesh: one triangle in the XY
// plane with unit +Z normals and uniform UVs.
func singleTriangleMesh() *Mesh {
	m := NewMesh()
	m.AddVertex(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec2{0.5, 0.5})
	m.AddVertex(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec2{0.5, 0.5})
	m.AddVertex(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec2{0.5, 0.5})
	m.AddTriangle(0, 1, 2)
	return m
}

// quadMesh is a unit square in the XY plane split into two triangles that
// share the diagonal vertices 1 and 2.
func quadMesh() *Mesh {
	m := NewMesh()
	m.AddVertex(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, mgl64.Vec2{0, 0})
	m.AddVertex(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, mgl64.Vec2{1, 0})
	m.AddVertex(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}, mgl64.Vec2{0, 1})
	m.AddVertex(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{}, mgl64.Vec2{1, 1})
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(2, 1, 3)
	m.RecomputeNormals()
	return m
}

// checkConsistent verifies the structural invariant every operator has to
// uphold: equal attribute array lengths and in-range triangle indices.
func checkConsistent(t *testing.T, m *Mesh) {
	t.Helper()
	require.Equal(t, len(m.Positions), len(m.Normals))
	require.Equal(t, len(m.Positions), len(m.UVs))
	for _, tri := range m.Triangles {
		for _, idx := range tri {
			require.Less(t, int(idx), len(m.Positions))
		}
	}
}

func TestFaceNormal(t *testing.T) {
	m := singleTriangleMesh()

	n := m.FaceNormal(0)
	assert.True(t, vecAlmostEqual(n, mgl64.Vec3{0, 0, 1}), "got %v", n)

	// Out of range yields zero, not a panic.
	assert.Equal(t, mgl64.Vec3{}, m.FaceNormal(-1))
	assert.Equal(t, mgl64.Vec3{}, m.FaceNormal(7))
}

func TestFaceNormalDegenerate(t *testing.T) {
	// All three corners on one line: zero area, zero normal.
	m := NewMesh()
	m.AddVertex(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, mgl64.Vec2{})
	m.AddVertex(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, mgl64.Vec2{})
	m.AddVertex(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{}, mgl64.Vec2{})
	m.AddTriangle(0, 1, 2)

	assert.Equal(t, mgl64.Vec3{}, m.FaceNormal(0))

	// A degenerate face must not poison normal recomputation either.
	m.RecomputeNormals()
	for _, n := range m.Normals {
		assert.Equal(t, mgl64.Vec3{}, n)
	}
}

func TestFaceCentroid(t *testing.T) {
	m := singleTriangleMesh()
	c := m.FaceCentroid(0)
	assert.True(t, vecAlmostEqual(c, mgl64.Vec3{1.0 / 3.0, 1.0 / 3.0, 0}), "got %v", c)
	assert.Equal(t, mgl64.Vec3{}, m.FaceCentroid(99))
}

func TestRecomputeNormalsFlat(t *testing.T) {
	m := quadMesh()
	m.RecomputeNormals()
	for _, n := range m.Normals {
		assert.True(t, vecAlmostEqual(n, mgl64.Vec3{0, 0, 1}), "got %v", n)
	}
}

func TestRecomputeNormalsUnitLength(t *testing.T) {
	m := NewCubeMesh(2)
	m.RecomputeNormals()
	for i, n := range m.Normals {
		assert.True(t, almostEqual(n.Len(), 1), "vertex %d: |n| = %v", i, n.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := singleTriangleMesh()
	c := m.Clone()
	require.Equal(t, m, c)

	c.Positions[0] = mgl64.Vec3{9, 9, 9}
	c.Triangles[0][0] = 2

	assert.True(t, vecAlmostEqual(m.Positions[0], mgl64.Vec3{0, 0, 0}))
	assert.Equal(t, uint32(0), m.Triangles[0][0])
}

func TestAddVertexKeepsArraysParallel(t *testing.T) {
	m := NewMesh()
	idx := m.AddVertex(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 0}, mgl64.Vec2{0.5, 0.5})
	assert.Equal(t, uint32(0), idx)
	checkConsistent(t, m)
}
