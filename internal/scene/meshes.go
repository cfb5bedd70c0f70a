package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"harmonia/internal/layout"
	"harmonia/internal/simulation"
)

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 24
)

// meshes holds one unit mesh per shape and a single lit material shared by all of them.
// Everything is created on first use so GPU allocation happens after the window exists.
type meshes struct {
	loaded   bool
	cube     rl.Mesh // 1x1x1, centered
	sphere   rl.Mesh // radius 1, centered
	cylinder rl.Mesh // radius 1, height 1, base at y=0
	mtl      rl.Material
	lit      bool
	locs     map[string]int32
}

var uniforms = []string{
	"viewPos", "ambient",
	"pointPos", "pointColor", "pointIntensity", "pointRange",
	"spotPos", "spotDir", "spotColor", "spotIntensity", "spotCos",
	"emissive", "specularPower", "specularStrength",
}

func (m *meshes) ensure() {
	if m.loaded {
		return
	}
	m.cube = rl.GenMeshCube(1, 1, 1)
	m.sphere = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	m.cylinder = rl.GenMeshCylinder(1, 1, cylinderSlices)
	m.mtl = rl.LoadMaterialDefault()
	m.locs = make(map[string]int32, len(uniforms))
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		m.mtl.Shader = shader
		m.lit = true
		for _, name := range uniforms {
			m.locs[name] = rl.GetShaderLocation(shader, name)
		}
	}
	m.loaded = true
}

// release frees the meshes and the material. UnloadMaterial also frees a non-default shader.
func (m *meshes) release() {
	if !m.loaded {
		return
	}
	rl.UnloadMesh(&m.cube)
	rl.UnloadMesh(&m.sphere)
	rl.UnloadMesh(&m.cylinder)
	rl.UnloadMaterial(m.mtl)
	m.loaded, m.lit = false, false
	m.locs = nil
}

func (m *meshes) setVec3(name string, v mgl32.Vec3) {
	if loc, ok := m.locs[name]; ok && loc >= 0 {
		rl.SetShaderValueV(m.mtl.Shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3, 1)
	}
}

func (m *meshes) setFloat(name string, f float32) {
	if loc, ok := m.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(m.mtl.Shader, loc, []float32{f}, rl.ShaderUniformFloat)
	}
}

// setLights feeds the frame's lamp state and the camera position to the shader.
func (m *meshes) setLights(lt *simulation.Lights, amb layout.Ambient, viewPos mgl32.Vec3) {
	if !m.lit {
		return
	}
	m.setVec3("viewPos", viewPos)
	m.setVec3("ambient", colorVec(amb.Color.Color).Mul(amb.Intensity))

	p := lt.LampPoint
	m.setVec3("pointPos", p.Position)
	m.setVec3("pointColor", colorVec(p.Color))
	m.setFloat("pointIntensity", p.Intensity)
	m.setFloat("pointRange", p.Range)

	s := lt.LampSpot
	dir := s.Target.Sub(s.Position)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	m.setVec3("spotPos", s.Position)
	m.setVec3("spotDir", dir)
	m.setVec3("spotColor", colorVec(s.Color))
	m.setFloat("spotIntensity", s.Intensity)
	m.setFloat("spotCos", math32.Cos(s.Angle))

	m.setFloat("specularPower", specularPower)
	m.setFloat("specularStrength", specularStrength)
}

// draw renders mesh with albedo col and an emissive term, using transform as the model matrix.
func (m *meshes) draw(mesh rl.Mesh, col rl.Color, emissive mgl32.Vec3, transform rl.Matrix) {
	if albedo := m.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = col
	}
	m.setVec3("emissive", emissive)
	rl.DrawMesh(mesh, m.mtl, transform)
}

// propTransform places a unit mesh for p: size, center offset for cylinders, position, then yaw about the world y axis.
func propTransform(p layout.Prop, yaw float32) rl.Matrix {
	var scale rl.Matrix
	switch p.Shape {
	case layout.ShapeCylinder:
		r := math32.Max(p.Size[0], p.Size[1])
		scale = rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(r, p.Size[2], r))
	case layout.ShapeSphere:
		scale = rl.MatrixScale(p.Size[0], p.Size[0], p.Size[0])
	default:
		scale = rl.MatrixScale(p.Size[0], p.Size[1], p.Size[2])
	}
	t := rl.MatrixMultiply(scale, rl.MatrixTranslate(p.Position[0], p.Position[1], p.Position[2]))
	if yaw != 0 {
		t = rl.MatrixMultiply(t, rl.MatrixRotateY(yaw))
	}
	return t
}

func colorVec(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

func toRL(c colorful.Color, alpha float32) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, uint8(math32.Round(clamp01(alpha)*255)))
}

func clamp01(f float32) float32 {
	return math32.Max(0, math32.Min(1, f))
}
