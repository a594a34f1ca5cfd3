package render3d

import (
	"testing"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batch struct {
	vs []ebiten.Vertex
	is []uint16
}

type fakeSink struct {
	batches []batch
}

func (s *fakeSink) DrawTriangles(vs []ebiten.Vertex, is []uint16, _ *ebiten.Image, _ *ebiten.DrawTrianglesOptions) {
	s.batches = append(s.batches, batch{
		vs: append([]ebiten.Vertex(nil), vs...),
		is: append([]uint16(nil), is...),
	})
}

// identityState maps model space straight to NDC
func identityState() *core.RenderState {
	return &core.RenderState{
		Model:      gem.Identity[float64](),
		View:       gem.Identity[float64](),
		Projection: gem.Identity[float64](),
	}
}

func triangleMesh(z float64, ccw bool) *core.Mesh {
	m := &core.Mesh{
		Vertices: []core.Vertex{
			{Position: gem.V3(-0.5, -0.5, z), Normal: gem.V3(0.0, 0.0, 1.0)},
			{Position: gem.V3(0.5, -0.5, z), Normal: gem.V3(0.0, 0.0, 1.0)},
			{Position: gem.V3(0.0, 0.5, z), Normal: gem.V3(0.0, 0.0, 1.0)},
		},
		Indices: []uint32{0, 1, 2},
	}
	if !ccw {
		m.Indices = []uint32{0, 2, 1}
	}
	return m
}

func newTestRasterizer() (*Rasterizer, *fakeSink) {
	r := newRasterizer(100, 100, nil)
	sink := &fakeSink{}
	r.SetTarget(sink)
	return r, sink
}

func TestRasterizerProjectsToScreen(t *testing.T) {
	r, sink := newTestRasterizer()
	red := core.Material{Color: gem.V4(1.0, 0.0, 0.0, 1.0)}

	require.NoError(t, r.Draw(identityState(), triangleMesh(0, true), red))
	assert.Equal(t, 1, r.Pending())
	require.NoError(t, r.Flush())

	require.Len(t, sink.batches, 1)
	b := sink.batches[0]
	assert.Equal(t, []uint16{0, 1, 2}, b.is)
	assert.Equal(t, float32(25), b.vs[0].DstX)
	assert.Equal(t, float32(75), b.vs[0].DstY)
	assert.Equal(t, float32(75), b.vs[1].DstX)
	assert.Equal(t, float32(50), b.vs[2].DstX)
	assert.Equal(t, float32(25), b.vs[2].DstY)
	for _, v := range b.vs {
		assert.Equal(t, float32(1), v.ColorR)
		assert.Zero(t, v.ColorG)
		assert.Equal(t, float32(1), v.ColorA)
	}

	st := r.Stats()
	assert.Equal(t, Stats{Submitted: 1, Drawn: 1, Batches: 1}, st)
	assert.Zero(t, r.Pending())
}

func TestRasterizerRejects(t *testing.T) {
	mat := core.Material{Color: White}

	t.Run("behind the eye", func(t *testing.T) {
		r, sink := newTestRasterizer()
		rs := identityState()
		rs.Projection = gem.Perspective(60.0, 1.0, 0.1, 100.0)
		// the eye looks down -Z, so +Z is behind it
		require.NoError(t, r.Draw(rs, triangleMesh(1, true), mat))
		require.NoError(t, r.Flush())
		assert.Empty(t, sink.batches)
		assert.Equal(t, 1, r.Stats().Clipped)
	})

	t.Run("outside the frustum", func(t *testing.T) {
		r, sink := newTestRasterizer()
		rs := identityState()
		rs.Model = gem.Translation(gem.V3(5.0, 0.0, 0.0))
		require.NoError(t, r.Draw(rs, triangleMesh(0, true), mat))
		require.NoError(t, r.Flush())
		assert.Empty(t, sink.batches)
		assert.Equal(t, 1, r.Stats().Culled)
	})

	t.Run("back faces when culling", func(t *testing.T) {
		r, sink := newTestRasterizer()
		r.CullBackFaces = true
		require.NoError(t, r.Draw(identityState(), triangleMesh(0, false), mat))
		require.NoError(t, r.Flush())
		assert.Empty(t, sink.batches)

		r.CullBackFaces = false
		require.NoError(t, r.Draw(identityState(), triangleMesh(0, false), mat))
		require.NoError(t, r.Flush())
		assert.Len(t, sink.batches, 1)
	})

	t.Run("bad meshes", func(t *testing.T) {
		r, _ := newTestRasterizer()
		assert.ErrorIs(t, r.Draw(identityState(), nil, mat), ErrNoMesh)
		bad := triangleMesh(0, true)
		bad.Indices = []uint32{0, 1, 7}
		assert.Error(t, r.Draw(identityState(), bad, mat))
	})
}

func TestRasterizerDepthOrder(t *testing.T) {
	r, sink := newTestRasterizer()
	near := core.Material{Color: gem.V4(0.0, 1.0, 0.0, 1.0)}
	far := core.Material{Color: gem.V4(0.0, 0.0, 1.0, 1.0)}

	require.NoError(t, r.Draw(identityState(), triangleMesh(-0.5, true), near))
	require.NoError(t, r.Draw(identityState(), triangleMesh(0.5, true), far))
	require.NoError(t, r.Flush())

	require.Len(t, sink.batches, 1)
	vs := sink.batches[0].vs
	require.Len(t, vs, 6)
	assert.Equal(t, float32(1), vs[0].ColorB, "far triangle is painted first")
	assert.Equal(t, float32(1), vs[3].ColorG)
}

func TestRasterizerBatches(t *testing.T) {
	r, sink := newTestRasterizer()
	const n = maxBatchVertices/3 + 1

	m := &core.Mesh{}
	tri := triangleMesh(0, true)
	for i := 0; i < n; i++ {
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, tri.Vertices...)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	require.NoError(t, r.Draw(identityState(), m, core.Material{Color: White}))
	require.NoError(t, r.Flush())

	require.Len(t, sink.batches, 2)
	assert.Len(t, sink.batches[0].vs, (n-1)*3)
	assert.Len(t, sink.batches[1].vs, 3)
	assert.Equal(t, []uint16{0, 1, 2}, sink.batches[1].is)
	for _, b := range sink.batches {
		assert.LessOrEqual(t, len(b.vs), maxBatchVertices)
	}
	assert.Equal(t, 2, r.Stats().Batches)
}

func TestRasterizerWireframe(t *testing.T) {
	r, sink := newTestRasterizer()
	require.NoError(t, r.Draw(identityState(), triangleMesh(0, true), core.Material{Color: White, Wireframe: true}))
	assert.Equal(t, 6, r.Pending(), "two triangles per edge")
	require.NoError(t, r.Flush())
	assert.Len(t, sink.batches[0].vs, 18)

	t.Run("forced", func(t *testing.T) {
		r, _ := newTestRasterizer()
		r.Wireframe = true
		require.NoError(t, r.Draw(identityState(), triangleMesh(0, true), core.Material{Color: White}))
		assert.Equal(t, 6, r.Pending())
	})
}

func TestRasterizerNeedsTarget(t *testing.T) {
	r := newRasterizer(10, 10, nil)
	require.NoError(t, r.Flush(), "an empty frame needs no target")

	require.NoError(t, r.Draw(identityState(), triangleMesh(0, true), core.Material{}))
	assert.ErrorIs(t, r.Flush(), ErrNoTarget)
	assert.Zero(t, r.Pending())
}

func TestRasterizerInScene(t *testing.T) {
	r, sink := newTestRasterizer()
	s := core.NewScene(nil)
	s.AddShader("raster", r)

	camEntity := core.NewEntity("camera")
	camEntity.Position = gem.V3(0.0, 0.0, 5.0)
	cam := DefaultCamera()
	cam.Aspect = 1
	camEntity.AddComponent(cam)
	target := core.NewEntity("cube")
	target.AddComponent(NewCubeRenderer(White))
	cam.Target = target
	s.AddEntity(camEntity)
	s.AddEntity(target)
	require.NoError(t, s.SetMainCameraEntity(camEntity))

	require.NoError(t, s.Render())
	require.NotEmpty(t, sink.batches)
	assert.Equal(t, 12, r.Stats().Submitted)
	assert.Greater(t, r.Stats().Drawn, 0)
}
