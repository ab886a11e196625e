package ocean

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateNormals computes per-vertex normals for mesh, a buffer produced by
// GenerateMesh. The result lives in a scratch buffer owned by the ocean and
// is overwritten by the next call; copy it to keep it.
func (o *Ocean) GenerateNormals(mesh []float32) ([]float32, error) {
	if o.closed {
		return nil, ErrDisposed
	}
	if err := o.GenerateNormalsInto(o.normals, mesh); err != nil {
		return nil, err
	}
	return o.normals, nil
}

// GenerateNormalsInto writes per-vertex normals for mesh into dst.
//
// Each vertex takes the normal of the strip triangle it starts, flipped to
// face up. Vertices shared with the previous strip reuse that strip's
// normal, the last strip's bottom row copies row 0, and the closing column
// of every strip copies column 0, so tiles shade continuously.
func (o *Ocean) GenerateNormalsInto(dst, mesh []float32) error {
	if o.closed {
		return ErrDisposed
	}
	want := 3 * o.VertexCount()
	if len(mesh) != want {
		return fmt.Errorf("%w: mesh has %d floats, want %d", ErrSizeMismatch, len(mesh), want)
	}
	if len(dst) != want {
		return fmt.Errorf("%w: normal buffer has %d floats, want %d", ErrSizeMismatch, len(dst), want)
	}

	ny := o.params.SamplesY
	triangles := 2 * o.params.SamplesX
	stride := triangles + 2

	for i := 0; i < ny; i++ {
		for j := 0; j < triangles; j++ {
			v := stride*i + j

			switch {
			case i == ny-1 && j%2 == 1:
				// Bottom row of the last strip is row 0 of the next tile.
				copyNormal(dst, v, j-1)
			case i > 0 && j%2 == 0:
				// Top row of this strip is the bottom row of the previous one.
				copyNormal(dst, v, v-(triangles+1))
				continue
			default:
				setNormal(dst, v, faceNormal(mesh, v))
			}

			if j == triangles-1 {
				first := v - (triangles - 1)
				copyNormal(dst, v+1, first)
				copyNormal(dst, v+2, first+1)
			}
		}
	}
	return nil
}

// faceNormal returns the upward unit normal of the triangle starting at
// vertex v. Every other triangle in a strip winds the opposite way.
func faceNormal(mesh []float32, v int) mgl32.Vec3 {
	a := vertexAt(mesh, v)
	e1 := vertexAt(mesh, v+1).Sub(a)
	e2 := vertexAt(mesh, v+2).Sub(a)

	n := e1.Cross(e2).Normalize()
	if n.Y() < 0 {
		n = n.Mul(-1)
	}
	return n
}

func vertexAt(buf []float32, v int) mgl32.Vec3 {
	return mgl32.Vec3{buf[3*v], buf[3*v+1], buf[3*v+2]}
}

func setNormal(dst []float32, v int, n mgl32.Vec3) {
	dst[3*v], dst[3*v+1], dst[3*v+2] = n[0], n[1], n[2]
}

func copyNormal(dst []float32, to, from int) {
	copy(dst[3*to:3*to+3], dst[3*from:3*from+3])
}
