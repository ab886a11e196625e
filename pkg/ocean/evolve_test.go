package ocean

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestEvolveAtTimeZero(t *testing.T) {
	p := smallParams()
	p.SamplesX, p.SamplesY = 8, 4
	o := newTestOcean(t, p)

	o.evolve(0)

	nx, ny := p.SamplesX, p.SamplesY
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			want := o.h0.At(i, j) + cmplx.Conj(o.h0.At(ny-1-i, nx-1-j))
			if got := o.h.At(i, j); !complexClose(got, want, 1e-12) {
				t.Errorf("h(%d,%d) at t=0 = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestEvolveMatchesDispersion(t *testing.T) {
	p := smallParams()
	o := newTestOcean(t, p)
	const tm = 2.5

	o.evolve(tm)

	nx, ny := p.SamplesX, p.SamplesY
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			kx := 2 * math.Pi * float64(j) / p.DomainWidth
			ky := 2 * math.Pi * float64(i) / p.DomainLength
			kSq := kx*kx + ky*ky
			theta := tm * math.Sqrt(Gravity*math.Sqrt(kSq)*(1+kSq*0.01))

			fwd := complex(math.Cos(theta), math.Sin(theta))
			back := complex(math.Cos(-theta), math.Sin(-theta))
			want := o.h0.At(i, j)*fwd + cmplx.Conj(o.h0.At(ny-1-i, nx-1-j))*back

			if got := o.h.At(i, j); !complexClose(got, want, 1e-12) {
				t.Errorf("h(%d,%d) at t=%v = %v, want %v", i, j, tm, got, want)
			}
		}
	}
}

func TestEvolveIsPure(t *testing.T) {
	o := newTestOcean(t, smallParams())

	o.evolve(4)
	first := o.h.Clone()
	o.evolve(9)
	o.evolve(4)

	for i, v := range o.h.Cells() {
		if v != first.Cells()[i] {
			t.Fatalf("cell %d differs after re-evolving to the same time", i)
		}
	}
}

func TestDispersion(t *testing.T) {
	if got := dispersion(0); got != 0 {
		t.Errorf("dispersion(0) = %v, want 0", got)
	}
	k := 0.5
	want := math.Sqrt(Gravity * k * (1 + k*k*SurfaceTension*SurfaceTension))
	if got := dispersion(k * k); math.Abs(got-want) > 1e-12 {
		t.Errorf("dispersion(%v) = %v, want %v", k*k, got, want)
	}
}
