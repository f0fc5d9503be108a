package ui

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SvenDH/go-card-table/table"
)

// renderer projects table objects through the session camera onto the screen.
type renderer struct {
	cam    *table.Camera
	w, h   float64
	images map[*table.Texture]*ebiten.Image
}

func newRenderer() *renderer {
	return &renderer{images: make(map[*table.Texture]*ebiten.Image)}
}

func (r *renderer) toScreen(ndc mgl64.Vec2) (float32, float32) {
	return float32((ndc.X() + 1) / 2 * r.w), float32((1 - ndc.Y()) / 2 * r.h)
}

func (r *renderer) image(t *table.Texture) *ebiten.Image {
	img, ok := r.images[t]
	if !ok {
		img = ebiten.NewImageFromImage(t.Image)
		r.images[t] = img
	}
	return img
}

var gridColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// drawGrid draws a size x size unit grid on the y=0 plane.
func (r *renderer) drawGrid(screen *ebiten.Image, size int) {
	half := float64(size) / 2
	for i := 0; i <= size; i++ {
		k := float64(i) - half
		r.drawLine(screen, mgl64.Vec3{k, 0, -half}, mgl64.Vec3{k, 0, half})
		r.drawLine(screen, mgl64.Vec3{-half, 0, k}, mgl64.Vec3{half, 0, k})
	}
}

func (r *renderer) drawLine(screen *ebiten.Image, a, b mgl64.Vec3) {
	na, _, okA := r.cam.Project(a)
	nb, _, okB := r.cam.Project(b)
	if !okA || !okB {
		return
	}
	x0, y0 := r.toScreen(na)
	x1, y1 := r.toScreen(nb)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, true)
}

type sprite struct {
	card  *table.Card
	face  *table.Face
	depth float64
}

// drawCards draws the visible face of each card, farthest first.
func (r *renderer) drawCards(screen *ebiten.Image, cards []*table.Card) {
	sprites := make([]sprite, 0, len(cards))
	for _, c := range cards {
		_, depth, ok := r.cam.Project(c.Pose.Position)
		if !ok {
			continue
		}
		sprites = append(sprites, sprite{card: c, face: c.VisibleFace(), depth: depth})
	}
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].depth > sprites[j].depth })
	for _, s := range sprites {
		r.drawFace(screen, s.card, s.face)
	}
}

func (r *renderer) drawFace(screen *ebiten.Image, c *table.Card, f *table.Face) {
	if f.Texture == nil {
		return
	}
	img := r.image(f.Texture)
	iw, ih := f.Texture.Size()
	src := f.UV.Pixels(iw, ih)
	quad := r.cam.Quad(c.Pose.Position, f.Width*c.Scale, f.Height*c.Scale, c.Pose.Roll())
	// bottom-left, bottom-right, top-right, top-left
	srcPts := [4][2]int{
		{src.Min.X, src.Max.Y},
		{src.Max.X, src.Max.Y},
		{src.Max.X, src.Min.Y},
		{src.Min.X, src.Min.Y},
	}
	var vs [4]ebiten.Vertex
	for i, p := range quad {
		ndc, _, ok := r.cam.Project(p)
		if !ok {
			return
		}
		x, y := r.toScreen(ndc)
		vs[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: float32(srcPts[i][0]), SrcY: float32(srcPts[i][1]),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	screen.DrawTriangles(vs[:], []uint16{0, 1, 2, 0, 2, 3}, img, op)
}
