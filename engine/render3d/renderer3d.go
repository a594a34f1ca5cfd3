package render3d

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoTarget is returned by Flush when triangles are pending but no target
// was set for the frame.
var ErrNoTarget = errors.New("render3d: rasterizer has no target")

// maxBatchVertices keeps every batch addressable by uint16 indices
const maxBatchVertices = 65000

// Sink receives batched triangles. *ebiten.Image satisfies it.
type Sink interface {
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// Stats counts what happened to the triangles of the last frame
type Stats struct {
	Submitted int
	Drawn     int
	Clipped   int // a vertex behind the eye
	Culled    int // outside the frustum, back-facing or degenerate
	Batches   int
}

type screenTri struct {
	v     [3]ebiten.Vertex
	depth float64
}

// Rasterizer is a software shader: it projects meshes with the bound MVP,
// lights them per vertex, and paints the frame's triangles back to front
// through ebiten's DrawTriangles.
type Rasterizer struct {
	Width, Height int

	// CullBackFaces drops triangles wound clockwise on screen
	CullBackFaces bool
	// Wireframe outlines every material regardless of its own flag
	Wireframe bool
	LineWidth float64

	target   Sink
	whiteImg *ebiten.Image
	tris     []screenTri
	stats    Stats
	last     Stats
}

// NewRasterizer creates the rasterizer for a w x h screen
func NewRasterizer(w, h int) *Rasterizer {
	// 4x4 white image for colored triangle rendering
	img := ebiten.NewImage(4, 4)
	img.Fill(color.White)
	return newRasterizer(w, h, img)
}

func newRasterizer(w, h int, src *ebiten.Image) *Rasterizer {
	return &Rasterizer{
		Width:     w,
		Height:    h,
		LineWidth: 1,
		whiteImg:  src,
	}
}

// SetTarget sets where the next Flush paints
func (r *Rasterizer) SetTarget(s Sink) { r.target = s }

func (r *Rasterizer) Resize(w, h int) {
	r.Width, r.Height = w, h
}

// Stats returns the counters of the last flushed frame
func (r *Rasterizer) Stats() Stats { return r.last }

// Pending returns the number of triangles waiting for Flush
func (r *Rasterizer) Pending() int { return len(r.tris) }

func (r *Rasterizer) Draw(rs *core.RenderState, mesh *core.Mesh, mat core.Material) error {
	if mesh == nil {
		return ErrNoMesh
	}
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("render3d: %w", err)
	}

	mvp := rs.MVP()
	normals := normalMatrix(rs.Model)
	sw, sh := float64(r.Width), float64(r.Height)

	for t := 0; t < mesh.TriangleCount(); t++ {
		r.stats.Submitted++
		a, b, c := mesh.Triangle(t)
		verts := [3]core.Vertex{a, b, c}

		var ndc [3]gem.Vec3f
		behind := false
		for k, v := range verts {
			clip := mvp.MulVec4(v.Position.Vec4(1))
			if clip[3] <= 1e-9 {
				behind = true
				break
			}
			ndc[k] = clip.Vec3().DivScalar(clip[3])
		}
		if behind {
			r.stats.Clipped++
			continue
		}
		if outsideFrustum(ndc) {
			r.stats.Culled++
			continue
		}

		var st screenTri
		for k, v := range verts {
			sx, sy := ndcToScreen(ndc[k][0], ndc[k][1], sw, sh)
			world := rs.Model.TransformPoint(v.Position)
			n := normals.TransformDir(v.Normal).Normalize()
			lit := Shade(rs, world, n, mat)
			st.v[k] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(lit[0]),
				ColorG: float32(lit[1]),
				ColorB: float32(lit[2]),
				ColorA: float32(lit[3]),
			}
		}
		st.depth = (ndc[0][2] + ndc[1][2] + ndc[2][2]) / 3

		// Screen-space winding, Y-down: counter-clockwise front faces are negative
		cross := winding(st.v)
		if math.Abs(cross) < 1e-6 || (r.CullBackFaces && cross > 0) {
			r.stats.Culled++
			continue
		}

		if mat.Wireframe || r.Wireframe {
			r.addEdges(st)
			continue
		}
		r.tris = append(r.tris, st)
	}
	return nil
}

// Flush paints the frame's triangles back to front and starts a new frame
func (r *Rasterizer) Flush() error {
	defer func() {
		r.tris = r.tris[:0]
		r.last = r.stats
		r.stats = Stats{}
	}()
	if len(r.tris) == 0 {
		return nil
	}
	if r.target == nil {
		return ErrNoTarget
	}

	sort.SliceStable(r.tris, func(i, j int) bool {
		return r.tris[i].depth > r.tris[j].depth
	})

	vertices := make([]ebiten.Vertex, 0, min(len(r.tris)*3, maxBatchVertices))
	indices := make([]uint16, 0, cap(vertices))
	for _, t := range r.tris {
		if len(vertices)+3 > maxBatchVertices {
			r.target.DrawTriangles(vertices, indices, r.whiteImg, nil)
			r.stats.Batches++
			vertices = vertices[:0]
			indices = indices[:0]
		}
		base := uint16(len(vertices))
		vertices = append(vertices, t.v[0], t.v[1], t.v[2])
		indices = append(indices, base, base+1, base+2)
		r.stats.Drawn++
	}
	if len(vertices) > 0 {
		r.target.DrawTriangles(vertices, indices, r.whiteImg, nil)
		r.stats.Batches++
	}
	return nil
}

// addEdges queues the outline of t as thin quads
func (r *Rasterizer) addEdges(t screenTri) {
	hw := float32(r.LineWidth / 2)
	for k := 0; k < 3; k++ {
		a, b := t.v[k], t.v[(k+1)%3]
		dx, dy := b.DstX-a.DstX, b.DstY-a.DstY
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw

		a0, a1, b0, b1 := a, a, b, b
		a0.DstX, a0.DstY = a.DstX+nx, a.DstY+ny
		a1.DstX, a1.DstY = a.DstX-nx, a.DstY-ny
		b0.DstX, b0.DstY = b.DstX+nx, b.DstY+ny
		b1.DstX, b1.DstY = b.DstX-nx, b.DstY-ny
		r.tris = append(r.tris,
			screenTri{v: [3]ebiten.Vertex{a0, b0, b1}, depth: t.depth},
			screenTri{v: [3]ebiten.Vertex{a0, b1, a1}, depth: t.depth})
	}
}

func winding(v [3]ebiten.Vertex) float64 {
	ax := float64(v[1].DstX - v[0].DstX)
	ay := float64(v[1].DstY - v[0].DstY)
	bx := float64(v[2].DstX - v[0].DstX)
	by := float64(v[2].DstY - v[0].DstY)
	return ax*by - ay*bx
}

// outsideFrustum reports whether all three vertices lie beyond the same
// clip plane.
func outsideFrustum(ndc [3]gem.Vec3f) bool {
	for axis := 0; axis < 3; axis++ {
		below, above := 0, 0
		for _, p := range ndc {
			if p[axis] < -1 {
				below++
			} else if p[axis] > 1 {
				above++
			}
		}
		if below == 3 || above == 3 {
			return true
		}
	}
	return false
}

// normalMatrix is the inverse transpose of the model matrix. A singular model
// falls back to the model itself.
func normalMatrix(model gem.Mat4f) gem.Mat4f {
	inv, err := model.Inverse()
	if err != nil {
		return model
	}
	return inv.Transpose()
}

// DrawBackdrop fills the screen with a dark vertical gradient
func DrawBackdrop(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	// Draw in bands for efficiency
	bands := 32
	bandH := h / bands
	if bandH < 1 {
		bandH = 1
	}
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		cr := uint8(6 + t*20)
		cg := uint8(8 + t*24)
		cb := uint8(20 + t*40)
		by := i * bandH
		bh := bandH
		if i == bands-1 {
			bh = h - by
		}
		vector.DrawFilledRect(screen, 0, float32(by), float32(w), float32(bh), color.RGBA{cr, cg, cb, 255}, false)
	}
}
