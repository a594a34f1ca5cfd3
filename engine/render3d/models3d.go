package render3d

import (
	"errors"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

// ErrNoMesh is returned when a renderer without geometry is asked to draw
var ErrNoMesh = errors.New("render3d: renderer has no mesh")

// Shape defaults
const (
	DefaultSphereSectors    = 36
	DefaultSphereStacks     = 18
	DefaultCircleSegments   = 32
	DefaultCylinderSegments = 16
	DefaultBrickStrength    = 3
)

// Palette
var (
	White     = gem.V4(1.0, 1.0, 1.0, 1.0)
	FloorGray = gem.V4(0.35, 0.37, 0.42, 1.0)
	PaddleRed = gem.V4(0.85, 0.2, 0.2, 1.0)
	BallWhite = gem.V4(0.95, 0.95, 0.9, 1.0)
)

// MeshRenderer draws a mesh with a material through the active shader, or a
// named one when ShaderName is set.
type MeshRenderer struct {
	core.Base
	Mesh       *core.Mesh
	Material   core.Material
	ShaderName string
}

func NewMeshRenderer(mesh *core.Mesh, color gem.Vec4f) *MeshRenderer {
	return &MeshRenderer{
		Mesh:     mesh,
		Material: core.Material{Color: color, Shininess: 32},
	}
}

func (r *MeshRenderer) Type() core.ComponentType { return core.CompMeshRenderer }

// SetColor replaces the material color
func (r *MeshRenderer) SetColor(c gem.Vec4f) { r.Material.Color = c }

func (r *MeshRenderer) Render(rs *core.RenderState) error {
	return r.draw(rs, r.Material)
}

func (r *MeshRenderer) draw(rs *core.RenderState, mat core.Material) error {
	if r.Mesh == nil {
		return ErrNoMesh
	}
	sh := rs.ShaderNamed(r.ShaderName)
	if sh == nil {
		return core.ErrMissingShader
	}
	return sh.Draw(rs, r.Mesh, mat)
}

// --- Typed renderers ---

type CubeRenderer struct {
	MeshRenderer
}

func NewCubeRenderer(color gem.Vec4f) *CubeRenderer {
	return &CubeRenderer{MeshRenderer: *NewMeshRenderer(CubeMesh(), color)}
}

type SphereRenderer struct {
	MeshRenderer
	Radius  float64
	Sectors int
	Stacks  int
}

func NewSphereRenderer(radius float64, sectors, stacks int, color gem.Vec4f) *SphereRenderer {
	return &SphereRenderer{
		MeshRenderer: *NewMeshRenderer(SphereMesh(radius, sectors, stacks), color),
		Radius:       radius,
		Sectors:      sectors,
		Stacks:       stacks,
	}
}

type PlaneRenderer struct {
	MeshRenderer
	Size      float64
	Divisions int
}

func NewPlaneRenderer(size float64, divisions int, color gem.Vec4f) *PlaneRenderer {
	return &PlaneRenderer{
		MeshRenderer: *NewMeshRenderer(PlaneMesh(size, divisions), color),
		Size:         size,
		Divisions:    divisions,
	}
}

type CircleRenderer struct {
	MeshRenderer
	Radius   float64
	Segments int
}

func NewCircleRenderer(radius float64, segments int, color gem.Vec4f) *CircleRenderer {
	return &CircleRenderer{
		MeshRenderer: *NewMeshRenderer(CircleMesh(radius, segments), color),
		Radius:       radius,
		Segments:     segments,
	}
}

type CylinderRenderer struct {
	MeshRenderer
	Radius   float64
	Segments int
	Height   float64
}

func NewCylinderRenderer(radius float64, segments int, height float64, color gem.Vec4f) *CylinderRenderer {
	return &CylinderRenderer{
		MeshRenderer: *NewMeshRenderer(CylinderMesh(radius, segments, height), color),
		Radius:       radius,
		Segments:     segments,
		Height:       height,
	}
}

// ArcRenderer draws an annular sector. Paddles and bricks are arcs; bricks
// additionally track how many more hits they take before breaking.
type ArcRenderer struct {
	MeshRenderer
	InnerRadius float64
	OuterRadius float64
	Segments    int
	Height      float64
	Angle       float64 // radians, starting at +X and sweeping towards +Z

	strength    int
	maxStrength int
}

func NewArcRenderer(inner, outer float64, segments int, height, angle float64, color gem.Vec4f) *ArcRenderer {
	return &ArcRenderer{
		MeshRenderer: *NewMeshRenderer(ArcMesh(inner, outer, segments, height, angle), color),
		InnerRadius:  inner,
		OuterRadius:  outer,
		Segments:     segments,
		Height:       height,
		Angle:        angle,
		strength:     DefaultBrickStrength,
		maxStrength:  DefaultBrickStrength,
	}
}

// Closed reports whether the arc spans a full turn
func (a *ArcRenderer) Closed() bool { return arcClosed(a.Angle) }

func (a *ArcRenderer) Strength() int { return a.strength }

// SetStrength sets both the current and the restored strength
func (a *ArcRenderer) SetStrength(n int) {
	a.strength = n
	a.maxStrength = n
}

func (a *ArcRenderer) ResetStrength() { a.strength = a.maxStrength }

// BreakOnCollision consumes one point of strength. It returns true once the
// arc has no strength left to absorb the hit.
func (a *ArcRenderer) BreakOnCollision() bool {
	if a.strength > 0 {
		a.strength--
		return false
	}
	return true
}

// Render darkens the arc as it loses strength
func (a *ArcRenderer) Render(rs *core.RenderState) error {
	mat := a.Material
	if a.maxStrength > 0 {
		f := 0.4 + 0.6*float64(a.strength)/float64(a.maxStrength)
		c := mat.Color
		mat.Color = gem.V4(c[0]*f, c[1]*f, c[2]*f, c[3])
	}
	return a.draw(rs, mat)
}
