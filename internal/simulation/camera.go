package simulation

import (
	"harmonia/internal/layout"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera with a vertical field of view in degrees.
// Width and Height are the viewport in pixels; Aspect follows them on Resize.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Near     float32
	Far      float32
	Aspect   float32
	Width    int
	Height   int
}

func newCamera(c layout.Camera, width, height int) Camera {
	cam := Camera{
		Position: vec(c.Position),
		Target:   vec(c.Target),
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     c.Fovy,
		Near:     c.Near,
		Far:      c.Far,
		Aspect:   1,
	}
	cam.Resize(width, height)
	return cam
}

// Resize updates the viewport and aspect ratio. Non-positive sizes are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width, c.Height = width, height
	c.Aspect = float32(width) / float32(height)
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

// NDC maps a pointer position in viewport pixels (origin top-left) to normalized device
// coordinates in [-1, 1] with y up. ok is false for an empty viewport.
func (c *Camera) NDC(x, y float32) (ndc mgl32.Vec2, ok bool) {
	if c.Width <= 0 || c.Height <= 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{
		x/float32(c.Width)*2 - 1,
		-(y/float32(c.Height))*2 + 1,
	}, true
}

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// RayThrough returns the ray from the camera through the given NDC point.
func (c *Camera) RayThrough(ndc mgl32.Vec2) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	p := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 0.5, 1})
	point := p.Vec3().Mul(1 / p.W())
	return Ray{Origin: c.Position, Dir: point.Sub(c.Position).Normalize()}
}

// Project maps a world point to viewport pixels (origin top-left). It is the inverse of
// NDC + RayThrough for points in front of the camera.
func (c *Camera) Project(p mgl32.Vec3) (x, y float32) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	return (nx + 1) / 2 * float32(c.Width), (1 - ny) / 2 * float32(c.Height)
}

// Cylinder is an upright capped cylinder around Center.
type Cylinder struct {
	Center mgl32.Vec3
	Radius float32
	Height float32
}

// Intersect returns the distance along r to the nearest point where it enters cyl.
// Hits behind the origin do not count.
func (cyl Cylinder) Intersect(r Ray) (t float32, ok bool) {
	half := cyl.Height / 2
	bottom, top := cyl.Center.Y()-half, cyl.Center.Y()+half
	ox, oz := r.Origin.X()-cyl.Center.X(), r.Origin.Z()-cyl.Center.Z()
	dx, dz := r.Dir.X(), r.Dir.Z()
	rr := cyl.Radius * cyl.Radius

	best := math32.Inf(1)
	consider := func(t float32) {
		if t > 0 && t < best {
			best = t
		}
	}

	// Side wall. Solve around the point of closest approach in the xz plane for stability.
	if a := dx*dx + dz*dz; a > 1e-12 {
		tc := -(ox*dx + oz*dz) / a
		cx, cz := ox+tc*dx, oz+tc*dz
		if d2 := cx*cx + cz*cz; d2 <= rr {
			h := math32.Sqrt((rr - d2) / a)
			for _, t := range [2]float32{tc - h, tc + h} {
				if y := r.Origin.Y() + t*r.Dir.Y(); y >= bottom && y <= top {
					consider(t)
				}
			}
		}
	}

	// Caps.
	if dy := r.Dir.Y(); dy != 0 {
		for _, capY := range [2]float32{bottom, top} {
			t := (capY - r.Origin.Y()) / dy
			px, pz := ox+t*dx, oz+t*dz
			if px*px+pz*pz <= rr {
				consider(t)
			}
		}
	}

	if math32.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
