package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kelseyhightower/envconfig"

	"github.com/smasonuk/meshedit"
)

// Config is read from MESHVIEW_* environment variables.
type Config struct {
	Width  int    `default:"960"`
	Height int    `default:"720"`
	Title  string `default:"meshview"`
}

var (
	baseColor      = color.RGBA{R: 170, G: 180, B: 200, A: 255}
	highlightColor = color.RGBA{R: 240, G: 150, B: 60, A: 255}
)

// Editor is the interactive demo around the kernel. It owns the current mesh
// snapshot; every operator returns a new value, so undo is nothing more than
// a stack of old snapshots.
type Editor struct {
	cfg Config

	mesh    *meshedit.Mesh
	history []*meshedit.Mesh
	sel     meshedit.FaceSet
	seams   meshedit.SeamSet

	yaw, pitch, dist float64
	lastX, lastY     int
	dragging         bool

	status string
}

func NewEditor(cfg Config) *Editor {
	return &Editor{
		cfg:    cfg,
		mesh:   meshedit.NewCubeMesh(2),
		sel:    meshedit.NewFaceSet(),
		seams:  meshedit.NewSeamSet(),
		yaw:    0.6,
		pitch:  0.4,
		dist:   6,
		status: "ready",
	}
}

func (e *Editor) view() mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, e.dist).
		Mul4(mgl64.HomogRotate3DX(e.pitch)).
		Mul4(mgl64.HomogRotate3DY(e.yaw))
}

// snapshot pushes the current mesh onto the undo stack before an edit.
func (e *Editor) snapshot() {
	e.history = append(e.history, e.mesh)
}

// setMesh installs an operator result and drops the now-stale selection.
func (e *Editor) setMesh(m *meshedit.Mesh, what string) {
	e.mesh = m
	e.sel = meshedit.NewFaceSet()
	e.status = fmt.Sprintf("%s: %d verts, %d faces", what, m.VertexCount(), m.FaceCount())
}

func (e *Editor) Update() error {
	e.handleMouse()
	e.handleKeys()
	return nil
}

func (e *Editor) handleMouse() {
	x, y := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if e.dragging {
			e.yaw += float64(x-e.lastX) * 0.01
			e.pitch += float64(y-e.lastY) * 0.01
			e.pitch = mgl64.Clamp(e.pitch, -math.Pi/2, math.Pi/2)
		}
		e.dragging = true
		e.lastX, e.lastY = x, y
	} else {
		e.dragging = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		ray := meshedit.ScreenRay(e.view(), float64(x), float64(y), e.cfg.Width, e.cfg.Height)
		if face, _, ok := e.mesh.PickFace(ray); ok {
			if e.sel.Has(face) {
				e.sel.Remove(face)
			} else {
				e.sel.Add(face)
			}
			e.status = fmt.Sprintf("%d face(s) selected", len(e.sel))
		}
	}

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		e.dist = mgl64.Clamp(e.dist-wheel*0.5, 1.5, 50)
	}
}

func (e *Editor) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		e.snapshot()
		e.setMesh(e.mesh.Inset(e.sel, 0.3), "inset")

	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		e.snapshot()
		e.setMesh(e.mesh.PushPull(e.sel, 0.25), "pull")

	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		e.snapshot()
		e.setMesh(e.mesh.PushPull(e.sel, -0.25), "push")

	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		e.snapshot()
		e.setMesh(e.mesh.Mirror(meshedit.AxisX), "mirror")

	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.snapshot()
		remaining, _ := e.mesh.Cut(e.sel)
		e.setMesh(remaining, "cut")

	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		e.snapshot()
		verts := e.mesh.SelectedVertices(e.sel)
		weights := e.mesh.SoftWeights(verts, 1.5, meshedit.FalloffSmooth)
		e.setMesh(e.mesh.ApplySoftDisplacement(weights, mgl64.Vec3{0, 0.4, 0}), "soft grab")

	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		em := meshedit.NewEdgeMesh(e.mesh)
		for face := range e.sel {
			edge := em.FaceEdge(face)
			for k := 0; k < 3 && edge != meshedit.NoEdge; k++ {
				e.seams.ToggleHalfEdge(em, edge)
				edge = em.Next(edge)
			}
		}
		e.status = fmt.Sprintf("%d seam edge(s)", e.seams.Len())

	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if n := len(e.history); n > 0 {
			e.mesh = e.history[n-1]
			e.history = e.history[:n-1]
			e.sel = meshedit.NewFaceSet()
			e.status = "undo"
		}

	case inpututil.IsKeyJustPressed(ebiten.Key1):
		e.snapshot()
		e.setMesh(meshedit.NewCubeMesh(2), "cube")

	case inpututil.IsKeyJustPressed(ebiten.Key2):
		e.snapshot()
		e.setMesh(meshedit.NewPlaneMesh(4, 6), "plane")

	case inpututil.IsKeyJustPressed(ebiten.Key3):
		e.snapshot()
		e.setMesh(meshedit.NewUVSphereMesh(1.5, 18, 12), "sphere")
	}
}

func (e *Editor) Draw(screen *ebiten.Image) {
	rm := meshedit.BuildRenderMesh(e.mesh, e.view(), e.cfg.Width, e.cfg.Height, e.sel, baseColor, highlightColor)
	rm.Draw(screen)

	help := "drag: orbit  rmb: select face  I: inset  P/O: pull/push  M: mirror\n" +
		"C: cut  G: soft grab  E: seams  Z: undo  1/2/3: cube/plane/sphere\n" +
		e.status
	ebitenutil.DebugPrint(screen, help)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

func main() {
	var cfg Config
	if err := envconfig.Process("MESHVIEW", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("starting %s (%dx%d)", cfg.Title, cfg.Width, cfg.Height)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(NewEditor(cfg)); err != nil {
		log.Fatal(err)
	}
}
