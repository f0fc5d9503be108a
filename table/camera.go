package table

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// DefaultCamera looks down at the table origin from behind the player's
// seat, with both hands in view.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl64.Vec3{0, 10, 6},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
		FOV:      45,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      1000,
	}
}

type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Basis returns the camera's right, up and forward unit vectors.
func (c *Camera) Basis() (right, up, forward mgl64.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// Ray casts from the camera through a point in normalized device coordinates.
func (c *Camera) Ray(ndc mgl64.Vec2) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndc.X(), ndc.Y(), -1, 1})
	near := p.Vec3().Mul(1 / p.W())
	return Ray{Origin: c.Position, Direction: near.Sub(c.Position).Normalize()}
}

// Project maps a world point to normalized device coordinates. depth is the
// distance along the view axis; ok is false behind the camera.
func (c *Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec2, depth float64, ok bool) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-9 {
		return mgl64.Vec2{}, w, false
	}
	return mgl64.Vec2{clip.X() / w, clip.Y() / w}, w, true
}

// billboard intersects r with a camera-facing rectangle of size w x h
// centered on center and rolled by roll radians. It returns the ray distance.
func (c *Camera) billboard(r Ray, center mgl64.Vec3, w, h, roll float64) (float64, bool) {
	right, up, forward := c.Basis()
	denom := r.Direction.Dot(forward)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t := center.Sub(r.Origin).Dot(forward) / denom
	if t <= 0 {
		return 0, false
	}
	local := r.At(t).Sub(center)
	lx, ly := local.Dot(right), local.Dot(up)
	sin, cos := math.Sincos(roll)
	x := lx*cos + ly*sin
	y := -lx*sin + ly*cos
	if math.Abs(x) > w/2 || math.Abs(y) > h/2 {
		return 0, false
	}
	return t, true
}

// Quad returns the four world corners of a camera-facing rectangle in the
// order bottom-left, bottom-right, top-right, top-left.
func (c *Camera) Quad(center mgl64.Vec3, w, h, roll float64) [4]mgl64.Vec3 {
	right, up, _ := c.Basis()
	sin, cos := math.Sincos(roll)
	corners := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	var out [4]mgl64.Vec3
	for i, k := range corners {
		x := k[0]*cos - k[1]*sin
		y := k[0]*sin + k[1]*cos
		out[i] = center.Add(right.Mul(x)).Add(up.Mul(y))
	}
	return out
}
