package render3d

import (
	"math"

	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/gem"
)

func vtx(x, y, z, nx, ny, nz, u, v float64) core.Vertex {
	return core.Vertex{
		Position: gem.V3(x, y, z),
		Normal:   gem.V3(nx, ny, nz),
		UV:       gem.V2(u, v),
	}
}

// --- Primitive generators ---

// CubeMesh returns a unit cube centred on the origin with 4 vertices per face
func CubeMesh() *core.Mesh {
	m := &core.Mesh{
		Vertices: []core.Vertex{
			// front (z+)
			vtx(-0.5, -0.5, 0.5, 0, 0, 1, 0, 0),
			vtx(0.5, -0.5, 0.5, 0, 0, 1, 1, 0),
			vtx(0.5, 0.5, 0.5, 0, 0, 1, 1, 1),
			vtx(-0.5, 0.5, 0.5, 0, 0, 1, 0, 1),
			// back (z-)
			vtx(0.5, -0.5, -0.5, 0, 0, -1, 0, 0),
			vtx(-0.5, -0.5, -0.5, 0, 0, -1, 1, 0),
			vtx(-0.5, 0.5, -0.5, 0, 0, -1, 1, 1),
			vtx(0.5, 0.5, -0.5, 0, 0, -1, 0, 1),
			// left (x-)
			vtx(-0.5, -0.5, -0.5, -1, 0, 0, 0, 0),
			vtx(-0.5, -0.5, 0.5, -1, 0, 0, 1, 0),
			vtx(-0.5, 0.5, 0.5, -1, 0, 0, 1, 1),
			vtx(-0.5, 0.5, -0.5, -1, 0, 0, 0, 1),
			// right (x+)
			vtx(0.5, -0.5, 0.5, 1, 0, 0, 0, 0),
			vtx(0.5, -0.5, -0.5, 1, 0, 0, 1, 0),
			vtx(0.5, 0.5, -0.5, 1, 0, 0, 1, 1),
			vtx(0.5, 0.5, 0.5, 1, 0, 0, 0, 1),
			// top (y+)
			vtx(-0.5, 0.5, 0.5, 0, 1, 0, 0, 0),
			vtx(0.5, 0.5, 0.5, 0, 1, 0, 1, 0),
			vtx(0.5, 0.5, -0.5, 0, 1, 0, 1, 1),
			vtx(-0.5, 0.5, -0.5, 0, 1, 0, 0, 1),
			// bottom (y-)
			vtx(-0.5, -0.5, -0.5, 0, -1, 0, 0, 0),
			vtx(0.5, -0.5, -0.5, 0, -1, 0, 1, 0),
			vtx(0.5, -0.5, 0.5, 0, -1, 0, 1, 1),
			vtx(-0.5, -0.5, 0.5, 0, -1, 0, 0, 1),
		},
	}
	for f := uint32(0); f < 6; f++ {
		b := f * 4
		m.Indices = append(m.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	return m
}

// SphereMesh builds a UV sphere. Stacks run from the +Z pole (phi = pi/2) to
// the -Z pole; the pole rows emit a single triangle per sector.
func SphereMesh(radius float64, sectors, stacks int) *core.Mesh {
	m := &core.Mesh{}
	for i := 0; i <= stacks; i++ {
		phi := math.Pi/2 - float64(i)*math.Pi/float64(stacks)
		ring := gem.Polarf{R: radius, Theta: phi}.Cartesian()
		xy, z := ring[0], ring[1]

		for j := 0; j <= sectors; j++ {
			theta := float64(j) * 2 * math.Pi / float64(sectors)
			p := gem.Polarf{R: xy, Theta: theta}.Cartesian()
			x, y := p[0], p[1]
			m.Vertices = append(m.Vertices, vtx(
				x, y, z,
				x/radius, y/radius, z/radius,
				float64(j)/float64(sectors), float64(i)/float64(stacks),
			))
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1
		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}
	return m
}

// PlaneMesh builds a size x size grid in the XZ plane facing +Y
func PlaneMesh(size float64, divisions int) *core.Mesh {
	m := &core.Mesh{}
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		for j := 0; j <= divisions; j++ {
			x := -size/2 + step*float64(j)
			z := -size/2 + step*float64(i)
			m.Vertices = append(m.Vertices, vtx(x, 0, z, 0, 1, 0,
				float64(j)/float64(divisions), float64(i)/float64(divisions)))
		}
	}

	row := uint32(divisions + 1)
	for i := uint32(0); i < uint32(divisions); i++ {
		for j := uint32(0); j < uint32(divisions); j++ {
			topLeft := i*row + j
			topRight := topLeft + 1
			bottomLeft := (i+1)*row + j
			bottomRight := bottomLeft + 1
			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight)
		}
	}
	return m
}

// CircleMesh builds a disc in the XZ plane: a centre vertex plus segments+1 rim
// vertices (first and last coincide).
func CircleMesh(radius float64, segments int) *core.Mesh {
	m := &core.Mesh{}
	m.Vertices = append(m.Vertices, vtx(0, 0, 0, 0, 1, 0, 0.5, 0.5))
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		p := gem.Polarf{R: radius, Theta: theta}.Cartesian()
		m.Vertices = append(m.Vertices, vtx(p[0], 0, p[1], 0, 1, 0,
			0.5+0.5*p[0]/radius, 0.5+0.5*p[1]/radius))
	}
	seg := uint32(segments)
	for i := uint32(1); i <= seg; i++ {
		m.Indices = append(m.Indices, 0, i%seg+1, i)
	}
	return m
}

// CylinderMesh builds a capped cylinder along Y centred on the origin.
// Vertices 0 and 1 are the cap centres; each ring step then adds a bottom cap,
// top cap, side bottom and side top vertex.
func CylinderMesh(radius float64, segments int, height float64) *core.Mesh {
	m := &core.Mesh{}
	hh := height / 2
	m.Vertices = append(m.Vertices,
		vtx(0, -hh, 0, 0, -1, 0, 0.5, 0.5),
		vtx(0, hh, 0, 0, 1, 0, 0.5, 0.5))

	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		p := gem.Polarf{R: radius, Theta: theta}.Cartesian()
		x, z := p[0], p[1]
		c, s := math.Cos(theta), math.Sin(theta)
		u, v := 0.5+0.5*c, 0.5+0.5*s
		side := float64(i) / float64(segments)

		m.Vertices = append(m.Vertices,
			vtx(x, -hh, z, 0, -1, 0, u, v),
			vtx(x, hh, z, 0, 1, 0, u, v),
			vtx(x, -hh, z, c, 0, s, side, 0),
			vtx(x, hh, z, c, 0, s, side, 1))
	}

	const bottomCentre, topCentre, off = 0, 1, 2
	seg := uint32(segments)
	ring := func(i uint32) uint32 { return off + (i%seg)*4 }
	for i := uint32(0); i < seg; i++ {
		m.Indices = append(m.Indices, bottomCentre, ring(i), ring(i+1))
	}
	for i := uint32(0); i < seg; i++ {
		m.Indices = append(m.Indices, topCentre, ring(i+1)+1, ring(i)+1)
	}
	for i := uint32(0); i < seg; i++ {
		b1, t1 := ring(i)+2, ring(i)+3
		b2, t2 := ring(i+1)+2, ring(i+1)+3
		m.Indices = append(m.Indices, b1, t1, b2, t1, t2, b2)
	}
	return m
}

// arcStride is the number of vertices emitted per arc ring step
const arcStride = 8

// ArcMesh builds an annular sector of the given angle in the XZ plane,
// extruded along Y. Each step emits top outer/inner, bottom outer/inner,
// outer face bottom/top and inner face bottom/top. An arc shorter than a full
// turn gets end caps, emitted as one more stride of vertices.
func ArcMesh(inner, outer float64, segments int, height, angle float64) *core.Mesh {
	m := &core.Mesh{}
	hh := height / 2

	for i := 0; i <= segments; i++ {
		theta := angle * float64(i) / float64(segments)
		o := gem.Polarf{R: outer, Theta: theta}.Cartesian()
		in := gem.Polarf{R: inner, Theta: theta}.Cartesian()
		nx, nz := math.Cos(theta), math.Sin(theta)
		u := float64(i) / float64(segments)

		m.Vertices = append(m.Vertices,
			vtx(o[0], hh, o[1], 0, 1, 0, u, 1),
			vtx(in[0], hh, in[1], 0, 1, 0, u, 0),
			vtx(o[0], -hh, o[1], 0, -1, 0, u, 1),
			vtx(in[0], -hh, in[1], 0, -1, 0, u, 0),
			vtx(o[0], -hh, o[1], nx, 0, nz, u, 0),
			vtx(o[0], hh, o[1], nx, 0, nz, u, 1),
			vtx(in[0], -hh, in[1], -nx, 0, -nz, u, 0),
			vtx(in[0], hh, in[1], -nx, 0, -nz, u, 1))
	}

	for i := uint32(0); i < uint32(segments); i++ {
		b, n := i*arcStride, (i+1)*arcStride
		m.Indices = append(m.Indices,
			// top
			b, n, n+1,
			b, n+1, b+1,
			// bottom
			b+2, n+3, n+2,
			b+2, b+3, n+3,
			// outer
			b+4, n+5, n+4,
			b+4, b+5, n+5,
			// inner
			b+6, n+6, n+7,
			b+6, n+7, b+7)
	}

	if !arcClosed(angle) && segments > 0 {
		// caps get their own vertices so they shade as walls facing along
		// the arc's tangent
		c := uint32(len(m.Vertices))
		o := gem.Polarf{R: outer, Theta: angle}.Cartesian()
		in := gem.Polarf{R: inner, Theta: angle}.Cartesian()
		tx, tz := -math.Sin(angle), math.Cos(angle)
		m.Vertices = append(m.Vertices,
			// start: top outer/inner, bottom outer/inner, facing -Z
			vtx(outer, hh, 0, 0, 0, -1, 0, 1),
			vtx(inner, hh, 0, 0, 0, -1, 0, 0),
			vtx(outer, -hh, 0, 0, 0, -1, 1, 1),
			vtx(inner, -hh, 0, 0, 0, -1, 1, 0),
			// end: outer bottom/top, inner bottom/top, facing along the tangent
			vtx(o[0], -hh, o[1], tx, 0, tz, 1, 1),
			vtx(o[0], hh, o[1], tx, 0, tz, 0, 1),
			vtx(in[0], -hh, in[1], tx, 0, tz, 1, 0),
			vtx(in[0], hh, in[1], tx, 0, tz, 0, 0))
		m.Indices = append(m.Indices,
			c, c+2, c+3,
			c, c+3, c+1,
			c+5, c+6, c+4,
			c+5, c+7, c+6)
	}
	return m
}

func arcClosed(angle float64) bool { return angle >= 2*math.Pi }
