package ocean

import (
	"math"
	"math/cmplx"
)

// dispersion returns the angular frequency of a wave with squared wave
// number kSq, including the capillary term.
func dispersion(kSq float64) float64 {
	return math.Sqrt(Gravity * math.Sqrt(kSq) * (1 + kSq*SurfaceTension*SurfaceTension))
}

// precomputeDispersion caches omega for every spectrum cell. The evolution
// stage indexes wave vectors without centering.
func (o *Ocean) precomputeDispersion() {
	p := o.params
	for i := 0; i < p.SamplesY; i++ {
		ky := 2 * math.Pi * float64(i) / p.DomainLength
		for j := 0; j < p.SamplesX; j++ {
			kx := 2 * math.Pi * float64(j) / p.DomainWidth
			o.omega[o.h.Index(i, j)] = dispersion(kx*kx + ky*ky)
		}
	}
}

// evolve overwrites h with the spectrum at time t:
//
//	h(k, t) = h0(k) e^{iwt} + conj(h0(flip k)) e^{-iwt}
//
// where flip mirrors both indices across the grid.
func (o *Ocean) evolve(t float64) {
	nx, ny := o.params.SamplesX, o.params.SamplesY
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			idx := o.h.Index(i, j)
			rot := cmplx.Rect(1, t*o.omega[idx])
			mirror := cmplx.Conj(o.h0.At(ny-1-i, nx-1-j))
			o.h.data[idx] = o.h0.data[idx]*rot + mirror*cmplx.Conj(rot)
		}
	}
}
