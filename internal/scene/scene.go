package scene

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"harmonia/internal/layout"
	"harmonia/internal/simulation"
)

const (
	stripThickness = 0.02
	stripDepth     = 0.05
	shadeGlow      = 0.5 // emissive scale for emissive props at full lamp intensity
	smokeRings     = 4
	smokeSlices    = 6
)

// Renderer draws a layout and the live simulation with raylib. Meshes, the material and the
// shader are created on the first Draw (after the window exists) and released by Close.
type Renderer struct {
	layout     *layout.Layout
	props      []layout.Prop // opaque first, then translucent
	meshes     meshes
	camera     rl.Camera3D
	background rl.Color
	smokeColor rl.Color
	smoke      []rl.Vector3
	smokeSize  []float32
	closed     bool
}

// New returns a renderer for l. No GPU work happens until Draw.
func New(l *layout.Layout) *Renderer {
	props := append([]layout.Prop(nil), l.Props...)
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].Alpha() == 1 && props[j].Alpha() < 1
	})
	return &Renderer{
		layout:     l,
		props:      props,
		background: toRL(l.Background.Color, 1),
		smokeColor: toRL(l.Smoke.Color.Color, l.Smoke.Opacity),
		camera:     rl.Camera3D{Projection: rl.CameraPerspective, Up: rl.NewVector3(0, 1, 0)},
	}
}

// Draw clears the frame and renders the scene for sim. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(sim *simulation.Simulation) {
	if r.closed || sim == nil {
		return
	}
	r.meshes.ensure()
	r.syncCamera(&sim.Camera)
	r.syncSmoke(sim.Smoke)
	r.meshes.setLights(&sim.Lights, r.layout.Ambient, sim.Camera.Position)

	rl.ClearBackground(r.background)
	rl.BeginMode3D(r.camera)
	r.drawProps(&sim.Lights, sim.CupYaw)
	r.drawStrips(&sim.Lights)
	r.drawBulb()
	r.drawChain(sim.ChainPos)
	r.drawSmoke()
	rl.EndMode3D()
}

// Close releases GPU resources. Later Draw calls do nothing.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.meshes.release()
	r.closed = true
}

func (r *Renderer) syncCamera(c *simulation.Camera) {
	r.camera.Position = vec3(c.Position)
	r.camera.Target = vec3(c.Target)
	r.camera.Up = vec3(c.Up)
	r.camera.Fovy = c.Fovy
}

// syncSmoke copies particle buffers only when the simulation changed them.
func (r *Renderer) syncSmoke(s *simulation.Smoke) {
	if !s.Dirty() && len(r.smoke) == s.Len() {
		return
	}
	if len(r.smoke) != s.Len() {
		r.smoke = make([]rl.Vector3, s.Len())
		r.smokeSize = make([]float32, s.Len())
	}
	for i := range r.smoke {
		r.smoke[i] = rl.NewVector3(s.Positions[i*3], s.Positions[i*3+1], s.Positions[i*3+2])
		r.smokeSize[i] = s.Sizes[i]
	}
	s.ClearDirty()
}

func (r *Renderer) drawProps(lt *simulation.Lights, cupYaw float32) {
	glow := float32(0)
	if on := r.layout.Lamp.Point.Intensity; on > 0 {
		glow = shadeGlow * lt.LampPoint.Intensity / on
	}
	for _, p := range r.props {
		yaw := float32(0)
		if p.Sway {
			yaw = cupYaw
		}
		var emissive mgl32.Vec3
		if p.Emissive {
			emissive = colorVec(p.Color.Color).Mul(glow)
		}
		r.meshes.draw(r.meshFor(p.Shape), toRL(p.Color.Color, p.Alpha()), emissive, propTransform(p, yaw))
	}
}

func (r *Renderer) meshFor(shape string) rl.Mesh {
	switch shape {
	case layout.ShapeCylinder:
		return r.meshes.cylinder
	case layout.ShapeSphere:
		return r.meshes.sphere
	default:
		return r.meshes.cube
	}
}

// drawStrips draws each strip's base bar and its bulbs; bulb emission follows color and switch state.
func (r *Renderer) drawStrips(lt *simulation.Lights) {
	st := r.layout.Strips
	base := toRL(st.Color.Color, 1)
	for i := 0; i < st.Count; i++ {
		t := rl.MatrixMultiply(rl.MatrixScale(st.Length, stripThickness, stripDepth), rl.MatrixTranslate(0, st.StripY(i), 0))
		r.meshes.draw(r.meshes.cube, base, mgl32.Vec3{}, t)
	}
	for _, b := range lt.Bulbs {
		t := rl.MatrixMultiply(rl.MatrixScale(st.BulbRadius, st.BulbRadius, st.BulbRadius),
			rl.MatrixTranslate(b.Position[0], b.Position[1], b.Position[2]))
		r.meshes.draw(r.meshes.sphere, toRL(b.Color, 1), colorVec(b.Emissive).Mul(b.EmissiveIntensity), t)
	}
}

func (r *Renderer) drawBulb() {
	b := r.layout.Bulb
	t := rl.MatrixMultiply(rl.MatrixScale(b.Radius, b.Radius, b.Radius),
		rl.MatrixTranslate(b.Position[0], b.Position[1], b.Position[2]))
	r.meshes.draw(r.meshes.sphere, toRL(b.Color.Color, 1), colorVec(b.Color.Color).Mul(b.EmissiveIntensity), t)
}

// drawChain draws the pull chain centered on pos.
func (r *Renderer) drawChain(pos mgl32.Vec3) {
	c := r.layout.Chain
	scale := rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(c.Radius, c.Length, c.Radius))
	t := rl.MatrixMultiply(scale, rl.MatrixTranslate(pos[0], pos[1], pos[2]))
	r.meshes.draw(r.meshes.cylinder, toRL(c.Color.Color, 1), mgl32.Vec3{}, t)
}

// drawSmoke draws particles unlit; they are tiny and translucent so a low-poly sphere reads as a point.
func (r *Renderer) drawSmoke() {
	for i, p := range r.smoke {
		rl.DrawSphereEx(p, r.smokeSize[i]/2, smokeRings, smokeSlices, r.smokeColor)
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
