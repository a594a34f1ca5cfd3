package render3d

import (
	"math"
	"testing"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingShader struct {
	meshes []*core.Mesh
	mats   []core.Material
	models []gem.Mat4f
}

func (s *recordingShader) Draw(rs *core.RenderState, m *core.Mesh, mat core.Material) error {
	s.meshes = append(s.meshes, m)
	s.mats = append(s.mats, mat)
	s.models = append(s.models, rs.Model)
	return nil
}

func TestTypedRenderers(t *testing.T) {
	sphere := NewSphereRenderer(2, 8, 4, BallWhite)
	assert.Equal(t, 2.0, sphere.Radius)
	assert.Equal(t, 8, sphere.Sectors)
	assert.Equal(t, 4, sphere.Stacks)
	assert.Len(t, sphere.Mesh.Vertices, 5*9)

	cyl := NewCylinderRenderer(1, 12, 3, White)
	assert.Equal(t, 3.0, cyl.Height)
	plane := NewPlaneRenderer(10, 4, FloorGray)
	assert.Equal(t, 4, plane.Divisions)
	circle := NewCircleRenderer(1, DefaultCircleSegments, White)
	assert.Equal(t, DefaultCircleSegments, circle.Segments)

	arc := NewArcRenderer(4, 5, 8, 0.5, math.Pi/4, PaddleRed)
	assert.False(t, arc.Closed())
	assert.True(t, NewArcRenderer(4, 5, 8, 0.5, 2*math.Pi, PaddleRed).Closed())

	// every typed renderer is found under the mesh renderer tag
	e := core.NewEntity("brick")
	e.AddComponent(arc)
	got, ok := core.ComponentAs[*ArcRenderer](e, core.CompMeshRenderer)
	require.True(t, ok)
	assert.Same(t, arc, got)
	_, ok = core.ComponentAs[*SphereRenderer](e, core.CompMeshRenderer)
	assert.False(t, ok)
}

func TestMeshRendererShaderSelection(t *testing.T) {
	def, flat := &recordingShader{}, &recordingShader{}
	s := core.NewScene(nil)
	s.AddShader("default", def)
	s.AddShader("flat", flat)

	cam := core.NewEntity("camera")
	cam.AddComponent(DefaultCamera())
	s.AddEntity(cam)
	require.NoError(t, s.SetMainCameraEntity(cam))

	e := core.NewEntity("box")
	e.Position = gem.V3(0.0, 1.0, 0.0)
	box := NewCubeRenderer(White)
	e.AddComponent(box)
	floor := NewPlaneRenderer(10, 1, FloorGray)
	floor.ShaderName = "flat"
	e.AddComponent(floor)
	s.AddEntity(e)

	require.NoError(t, s.Render())
	require.Len(t, def.meshes, 1)
	require.Len(t, flat.meshes, 1)
	assert.Same(t, box.Mesh, def.meshes[0])
	assert.Equal(t, e.WorldTransform(), def.models[0])
	assert.Equal(t, FloorGray, flat.mats[0].Color)

	t.Run("missing mesh", func(t *testing.T) {
		empty := &MeshRenderer{}
		assert.ErrorIs(t, empty.Render(&core.RenderState{Shader: def}), ErrNoMesh)
		assert.ErrorIs(t, box.Render(&core.RenderState{}), core.ErrMissingShader)
	})
}

func TestArcStrength(t *testing.T) {
	arc := NewArcRenderer(4, 5, 8, 0.5, math.Pi/4, gem.V4(1.0, 1.0, 1.0, 1.0))
	assert.Equal(t, DefaultBrickStrength, arc.Strength())

	var breaks []bool
	for i := 0; i < 5; i++ {
		breaks = append(breaks, arc.BreakOnCollision())
	}
	assert.Equal(t, []bool{false, false, false, true, true}, breaks)
	assert.Zero(t, arc.Strength())

	arc.ResetStrength()
	assert.Equal(t, DefaultBrickStrength, arc.Strength())
	arc.SetStrength(1)
	assert.False(t, arc.BreakOnCollision())
	assert.True(t, arc.BreakOnCollision())

	t.Run("worn arcs render darker", func(t *testing.T) {
		sh := &recordingShader{}
		rs := &core.RenderState{Shader: sh}
		arc.SetStrength(2)
		require.NoError(t, arc.Render(rs))
		arc.BreakOnCollision()
		arc.BreakOnCollision()
		require.NoError(t, arc.Render(rs))

		assert.InDelta(t, 1, sh.mats[0].Color[0], 1e-12)
		assert.InDelta(t, 0.4, sh.mats[1].Color[0], 1e-12)
		assert.Equal(t, 1.0, sh.mats[1].Color[3], "alpha is kept")
	})
}

func TestParticleSystem(t *testing.T) {
	ps := NewParticleSystem()
	assert.Equal(t, core.CompParticles, ps.Type())
	ps.AddBurst(gem.V3(1.0, 0.0, 2.0), gem.V4(1.0, 0.5, 0.0, 1.0))
	require.Len(t, ps.Particles, 20)

	vy := ps.Particles[0].Vel[1]
	ps.Update(0.1)
	assert.Len(t, ps.Particles, 20)
	assert.InDelta(t, vy-0.2, ps.Particles[0].Vel[1], 1e-12)
	assert.NotEqual(t, gem.V3(1.0, 0.0, 2.0), ps.Particles[0].Pos)

	sh := &recordingShader{}
	require.NoError(t, ps.Render(&core.RenderState{Shader: sh}))
	assert.Len(t, sh.mats, 20)
	for _, m := range sh.mats {
		assert.True(t, m.Unlit)
		assert.Less(t, m.Color[3], 1.0)
	}

	// the longest particle lives 0.95s
	ps.Update(1.0)
	assert.Empty(t, ps.Particles)
	assert.NoError(t, ps.Render(&core.RenderState{}))
}
