package meshedit

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// nearPlaneZ is the camera-space depth in front of which faces are dropped
// instead of clipped. Editing scenes keep the camera well away from the
// surface, so dropping is good enough here.
const nearPlaneZ = 0.1

// lightDir is the fixed camera-space light used for flat shading.
var lightDir = mgl64.Vec3{0.3, -0.5, -0.8}.Normalize()

// RenderMesh is the drawable form of one mesh snapshot: screen-space
// triangles ready for ebiten's DrawTriangles. It is rebuilt per frame from
// whatever mesh value the editor currently holds.
type RenderMesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// BuildRenderMesh projects a mesh through the view matrix onto a
// width x height screen and flat-shades each face from its normal. Faces
// behind the near plane or facing away are skipped. Remaining faces are
// depth-sorted far to near (painter's algorithm) so no depth buffer is
// needed. Faces in sel are tinted with the highlight color.
func BuildRenderMesh(m *Mesh, view mgl64.Mat4, width, height int, sel FaceSet, base, highlight color.RGBA) *RenderMesh {
	camPos := make([]mgl64.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		camPos[i] = view.Mul4x1(p.Vec4(1)).Vec3()
	}

	type shadedFace struct {
		face  int
		depth float64
	}
	visible := make([]shadedFace, 0, len(m.Triangles))

	for face, tri := range m.Triangles {
		p0, p1, p2 := camPos[tri[0]], camPos[tri[1]], camPos[tri[2]]
		if p0.Z() < nearPlaneZ || p1.Z() < nearPlaneZ || p2.Z() < nearPlaneZ {
			continue
		}
		n := p1.Sub(p0).Cross(p2.Sub(p1))
		if n.Dot(p0) >= 0 {
			continue // back-facing
		}
		depth := (p0.Z() + p1.Z() + p2.Z()) / 3
		visible = append(visible, shadedFace{face: face, depth: depth})
	}

	// Painter's algorithm: far faces first so near faces draw over them.
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	rm := &RenderMesh{
		Vertices: make([]ebiten.Vertex, 0, len(visible)*3),
		Indices:  make([]uint16, 0, len(visible)*3),
	}

	focal := float64(height)
	cx, cy := float64(width)/2, float64(height)/2

	for _, sf := range visible {
		tri := m.Triangles[sf.face]
		p0, p1, p2 := camPos[tri[0]], camPos[tri[1]], camPos[tri[2]]
		n := safeNormalize(p1.Sub(p0).Cross(p2.Sub(p1)))

		shade := math.Max(0, -n.Dot(lightDir))*0.7 + 0.3
		col := base
		if sel.Has(sf.face) {
			col = highlight
		}
		cr := float32(shade) * float32(col.R) / 255
		cg := float32(shade) * float32(col.G) / 255
		cb := float32(shade) * float32(col.B) / 255
		ca := float32(col.A) / 255

		for _, p := range []mgl64.Vec3{p0, p1, p2} {
			rm.Indices = append(rm.Indices, uint16(len(rm.Vertices)))
			rm.Vertices = append(rm.Vertices, ebiten.Vertex{
				DstX:   float32(cx + focal*p.X()/p.Z()),
				DstY:   float32(cy + focal*p.Y()/p.Z()),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
	}
	return rm
}

// Draw rasterizes the prepared triangles onto the screen.
func (rm *RenderMesh) Draw(screen *ebiten.Image) {
	if len(rm.Indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(rm.Vertices, rm.Indices, whiteSub, op)
}

// ScreenRay turns a screen coordinate back into a world-space picking ray
// for the same view matrix and screen size BuildRenderMesh projects with.
func ScreenRay(view mgl64.Mat4, x, y float64, width, height int) Ray {
	focal := float64(height)
	cx, cy := float64(width)/2, float64(height)/2

	inv := view.Inv()
	origin := inv.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	dirCam := mgl64.Vec3{(x - cx) / focal, (y - cy) / focal, 1}.Normalize()
	dir := inv.Mul4x1(dirCam.Vec4(0)).Vec3()

	return Ray{Origin: origin, Dir: dir}
}
