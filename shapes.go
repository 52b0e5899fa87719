package meshedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Starter meshes for tests and the viewer. Vertices are shared wherever the
// editing operators care about connectivity, since shared indices are the
// only connectivity signal the kernel has.

// NewCubeMesh builds an axis-aligned cube centered on the origin with the
// given edge length. The eight corner vertices are shared between faces, so
// every edit sees the cube as one connected surface.
func NewCubeMesh(size float64) *Mesh {
	h := size / 2
	m := NewMesh()

	corners := []mgl64.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	for _, p := range corners {
		// UVs on a shared-vertex cube are necessarily crude; project onto XY.
		uv := mgl64.Vec2{(p.X() + h) / size, (p.Y() + h) / size}
		m.AddVertex(p, mgl64.Vec3{}, uv)
	}

	quads := [][4]uint32{
		{0, 3, 2, 1}, // back  (-Z)
		{4, 5, 6, 7}, // front (+Z)
		{0, 1, 5, 4}, // bottom (-Y)
		{3, 7, 6, 2}, // top (+Y)
		{0, 4, 7, 3}, // left (-X)
		{1, 2, 6, 5}, // right (+X)
	}
	for _, q := range quads {
		m.AddTriangle(q[0], q[1], q[2])
		m.AddTriangle(q[0], q[2], q[3])
	}

	m.RecomputeNormals()
	return m
}

// NewPlaneMesh builds a flat square grid in the XZ plane, centered on the
// origin, normal up, with segments*segments cells. Interior vertices are
// shared by up to six triangles.
func NewPlaneMesh(size float64, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	m := NewMesh()
	step := size / float64(segments)
	half := size / 2

	for row := 0; row <= segments; row++ {
		for col := 0; col <= segments; col++ {
			pos := mgl64.Vec3{-half + float64(col)*step, 0, -half + float64(row)*step}
			uv := mgl64.Vec2{float64(col) / float64(segments), float64(row) / float64(segments)}
			m.AddVertex(pos, mgl64.Vec3{0, 1, 0}, uv)
		}
	}

	stride := uint32(segments + 1)
	for row := 0; row < segments; row++ {
		for col := 0; col < segments; col++ {
			a := uint32(row)*stride + uint32(col)
			b := a + 1
			c := a + stride
			d := c + 1
			m.AddTriangle(a, d, b)
			m.AddTriangle(a, c, d)
		}
	}

	m.RecomputeNormals()
	return m
}

// NewUVSphereMesh builds a longitude/latitude sphere. Ring vertices are
// shared between neighboring quads; the two poles are single vertices shared
// by their whole fan. slices is clamped to at least 3 and stacks to at
// least 2.
func NewUVSphereMesh(radius float64, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	m := NewMesh()

	for stack := 0; stack <= stacks; stack++ {
		phi := math.Pi * float64(stack) / float64(stacks)
		y := math.Cos(phi)
		r := math.Sin(phi)
		for slice := 0; slice <= slices; slice++ {
			theta := 2 * math.Pi * float64(slice) / float64(slices)
			dir := mgl64.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)}
			uv := mgl64.Vec2{float64(slice) / float64(slices), float64(stack) / float64(stacks)}
			m.AddVertex(dir.Mul(radius), dir, uv)
		}
	}

	stride := uint32(slices + 1)
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			a := uint32(stack)*stride + uint32(slice)
			b := a + 1
			c := a + stride
			d := c + 1
			if stack > 0 {
				m.AddTriangle(a, b, d)
			}
			if stack < stacks-1 {
				m.AddTriangle(a, d, c)
			}
		}
	}

	m.RecomputeNormals()
	return m
}
