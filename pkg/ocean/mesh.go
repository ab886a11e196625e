package ocean

import "fmt"

// vertexCount is the number of vertices in the strip mesh for p.
func vertexCount(p Params) int {
	return 2 * (p.SamplesX + 1) * p.SamplesY
}

// VertexCount returns the number of vertices GenerateMesh produces:
// SamplesY strips of 2*(SamplesX+1) vertices each.
func (o *Ocean) VertexCount() int {
	return vertexCount(o.params)
}

// StripLength returns the number of vertices in one triangle strip.
func (o *Ocean) StripLength() int {
	return 2 * (o.params.SamplesX + 1)
}

// Strips returns the number of triangle strips in the mesh.
func (o *Ocean) Strips() int {
	return o.params.SamplesY
}

// GenerateMesh builds the flat x,y,z position buffer of the ocean tile and
// returns it with its vertex count. Heights start at zero.
//
// Strip i interleaves grid row i and row i+1 column by column, so every
// strip draws on its own without restart indices. The extra column at
// SamplesX and the bottom row of the last strip sit on the tile's far edges,
// where the next tile begins.
func (o *Ocean) GenerateMesh() ([]float32, int) {
	p := o.params
	nx, ny := p.SamplesX, p.SamplesY
	dx := p.DomainWidth / float64(nx)
	dz := p.DomainLength / float64(ny)

	count := vertexCount(p)
	mesh := make([]float32, 3*count)

	for i := 0; i < ny; i++ {
		for j := 0; j <= nx; j++ {
			pos := (i*(nx+1) + j) * 6
			x := float32(dx * float64(j))

			mesh[pos] = x
			mesh[pos+1] = 0
			mesh[pos+2] = float32(dz * float64(i))

			mesh[pos+3] = x
			mesh[pos+4] = 0
			mesh[pos+5] = float32(dz * float64(i+1))
		}
	}

	return mesh, count
}

// SetHeightsAtTime evolves the spectrum to time t (seconds), transforms it
// and writes the resulting heights into the Y component of mesh in place.
// X and Z are never touched. Seam vertices copy row 0 and column 0 so
// tiled copies meet without cracks.
func (o *Ocean) SetHeightsAtTime(mesh []float32, t float64) error {
	if o.closed {
		return ErrDisposed
	}
	if want := 3 * o.VertexCount(); len(mesh) != want {
		return fmt.Errorf("%w: mesh has %d floats, want %d", ErrSizeMismatch, len(mesh), want)
	}

	o.evolve(t)
	o.transform()

	nx, ny := o.params.SamplesX, o.params.SamplesY
	for i := 0; i < ny; i++ {
		for j := 0; j <= nx; j++ {
			pos := (i*(nx+1) + j) * 6
			mesh[pos+1] = float32(o.heightAt(j, i))
			mesh[pos+4] = float32(o.heightAt(j, i+1))
		}
	}
	return nil
}

// HeightAt returns the sign-corrected height of grid sample (col, row) from
// the most recent SetHeightsAtTime. Indices wrap periodically.
func (o *Ocean) HeightAt(col, row int) float64 {
	nx, ny := o.params.SamplesX, o.params.SamplesY
	return o.heightAt(((col%nx)+nx)%nx, ((row%ny)+ny)%ny)
}

// heightAt reads height[col][row] for col <= SamplesX, row <= SamplesY,
// wrapping the seam indices to 0. The FFT leaves every other sample
// negated in a checkerboard; odd cells keep their sign, even ones flip.
func (o *Ocean) heightAt(col, row int) float64 {
	if col == o.params.SamplesX {
		col = 0
	}
	if row == o.params.SamplesY {
		row = 0
	}
	h := real(o.height.At(col, row))
	if (col+row)%2 == 0 {
		return -h
	}
	return h
}
