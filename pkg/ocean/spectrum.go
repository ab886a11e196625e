package ocean

import (
	"math"
	"math/rand/v2"
)

// phillips returns the directional Phillips spectrum energy for the wave
// vector (kx, ky). The wind blows along +X.
func (p Params) phillips(kx, ky float64) float64 {
	kSq := kx*kx + ky*ky
	if kSq == 0 {
		return 0
	}

	// Largest wave that the wind can raise.
	lw := p.WindSpeed * p.WindSpeed / Gravity

	e := p.Amplitude * math.Exp(-1/(kSq*lw*lw))
	// Damp waves shorter than MinWaveSize.
	e *= math.Exp(-kSq * p.MinWaveSize * p.MinWaveSize)

	align := kx * kx / kSq
	e *= align * align
	e /= kSq * kSq
	return e / 2
}

// generateSpectrum fills h0 with Gaussian amplitudes scaled by the Phillips
// spectrum. Wave vectors are centered so that cell (SamplesY/2, SamplesX/2)
// is k = 0, which carries no energy and consumes no random draws.
func (o *Ocean) generateSpectrum(rng *rand.Rand) {
	p := o.params
	nx, ny := p.SamplesX, p.SamplesY

	for i := 0; i < ny; i++ {
		ky := 2 * math.Pi * float64(i-ny/2) / p.DomainLength
		for j := 0; j < nx; j++ {
			kx := 2 * math.Pi * float64(j-nx/2) / p.DomainWidth
			if kx*kx+ky*ky == 0 {
				o.h0.Set(i, j, 0)
				continue
			}
			amp := math.Sqrt(p.phillips(kx, ky))
			re := rng.NormFloat64()
			im := rng.NormFloat64()
			o.h0.Set(i, j, complex(amp*re, amp*im))
		}
	}
}
