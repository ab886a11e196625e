// Package ocean animates a tileable ocean surface with Tessendorf's
// spectral method.
//
// A random wave spectrum is drawn once from the Phillips spectrum when an
// Ocean is built. Every frame the spectrum is advanced with the deep-water
// dispersion relation, turned into a height field by a 2D FFT, and written
// into a triangle-strip vertex buffer whose normals are then rebuilt.
//
// An Ocean is not safe for concurrent use. All work happens on the calling
// goroutine.
package ocean

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Ocean is one simulated sea state. It owns the initial spectrum and the
// per-frame scratch grids, all sized once in New.
type Ocean struct {
	params Params

	seed   uint64
	seeded bool

	h0     *Grid     // initial spectrum, SamplesY x SamplesX
	h      *Grid     // evolved spectrum, same shape as h0
	height *Grid     // FFT output, SamplesX x SamplesY
	omega  []float64 // dispersion frequency per spectrum cell

	fftX *fourier.CmplxFFT // nil when SamplesX == 1
	fftY *fourier.CmplxFFT // nil when SamplesY == 1

	normals []float32

	closed bool
}

// Option configures New.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	seed   uint64
	seeded bool
}

// WithSeed seeds the spectrum's Gaussian draws, making the sea state
// reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
		o.rng = nil
	}
}

// WithRand draws the spectrum from r instead of an internally seeded source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
		o.seeded = false
	}
}

// New validates p and builds an ocean with a freshly generated spectrum.
// Without options the spectrum is seeded from the wall clock.
func New(p Params, opts ...Option) (*Ocean, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		if !cfg.seeded {
			cfg.seed = uint64(time.Now().UnixNano())
			cfg.seeded = true
		}
		cfg.rng = rand.New(rand.NewPCG(cfg.seed, 0))
	}

	o := &Ocean{
		params:  p,
		seed:    cfg.seed,
		seeded:  cfg.seeded,
		h0:      NewGrid(p.SamplesY, p.SamplesX),
		h:       NewGrid(p.SamplesY, p.SamplesX),
		height:  NewGrid(p.SamplesX, p.SamplesY),
		omega:   make([]float64, p.SamplesX*p.SamplesY),
		normals: make([]float32, 3*vertexCount(p)),
	}
	if p.SamplesX > 1 {
		o.fftX = fourier.NewCmplxFFT(p.SamplesX)
	}
	if p.SamplesY > 1 {
		o.fftY = fourier.NewCmplxFFT(p.SamplesY)
	}

	o.generateSpectrum(cfg.rng)
	o.precomputeDispersion()

	return o, nil
}

// Params returns the parameters the ocean was built with.
func (o *Ocean) Params() Params {
	return o.params
}

// Seed returns the seed of the spectrum's random source. ok is false when
// the source was supplied with WithRand.
func (o *Ocean) Seed() (seed uint64, ok bool) {
	return o.seed, o.seeded
}

// InitialSpectrum returns a copy of the spectrum drawn at construction.
func (o *Ocean) InitialSpectrum() *Grid {
	return o.h0.Clone()
}

// Close releases the ocean's grids. Every later per-frame call returns
// ErrDisposed. Close is idempotent.
func (o *Ocean) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.h0, o.h, o.height = nil, nil, nil
	o.omega = nil
	o.normals = nil
	o.fftX, o.fftY = nil, nil
}

// Closed reports whether Close has been called.
func (o *Ocean) Closed() bool {
	return o.closed
}
