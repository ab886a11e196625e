package ocean

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants used by the spectrum and the dispersion relation.
const (
	Gravity        = 9.81 // m/s^2
	SurfaceTension = 0.1  // capillary length scale in the dispersion relation
)

// Errors returned by the ocean simulation.
var (
	ErrInvalidParameter = errors.New("invalid ocean parameter")
	ErrSizeMismatch     = errors.New("buffer size mismatch")
	ErrDisposed         = errors.New("ocean is closed")
)

// Params holds the immutable configuration of one ocean instance.
// Changing any value means building a new Ocean.
type Params struct {
	DomainWidth  float64 // Tile width in world units (X axis)
	DomainLength float64 // Tile length in world units (Z axis)
	SamplesX     int     // Samples along X, power of two
	SamplesY     int     // Samples along Z, power of two
	WindSpeed    float64 // Wind speed in m/s
	MinWaveSize  float64 // Waves shorter than this are damped out
	Amplitude    float64 // Phillips spectrum scale constant
}

// DefaultParams returns the sea state used by the viewer out of the box.
func DefaultParams() Params {
	return Params{
		DomainWidth:  2000,
		DomainLength: 2000,
		SamplesX:     256,
		SamplesY:     256,
		WindSpeed:    50,
		MinWaveSize:  0.1,
		Amplitude:    2e-9,
	}
}

// Validate reports whether p can be used to build an ocean. The returned
// error wraps ErrInvalidParameter.
func (p Params) Validate() error {
	if !IsPowerOfTwo(p.SamplesX) {
		return fmt.Errorf("%w: samples x must be a positive power of two, got %d", ErrInvalidParameter, p.SamplesX)
	}
	if !IsPowerOfTwo(p.SamplesY) {
		return fmt.Errorf("%w: samples y must be a positive power of two, got %d", ErrInvalidParameter, p.SamplesY)
	}
	if !(p.DomainWidth > 0) || math.IsInf(p.DomainWidth, 0) {
		return fmt.Errorf("%w: domain width must be positive, got %g", ErrInvalidParameter, p.DomainWidth)
	}
	if !(p.DomainLength > 0) || math.IsInf(p.DomainLength, 0) {
		return fmt.Errorf("%w: domain length must be positive, got %g", ErrInvalidParameter, p.DomainLength)
	}
	if !nonNegative(p.WindSpeed) {
		return fmt.Errorf("%w: wind speed must be non-negative, got %g", ErrInvalidParameter, p.WindSpeed)
	}
	if !nonNegative(p.MinWaveSize) {
		return fmt.Errorf("%w: min wave size must be non-negative, got %g", ErrInvalidParameter, p.MinWaveSize)
	}
	if !nonNegative(p.Amplitude) {
		return fmt.Errorf("%w: amplitude must be non-negative, got %g", ErrInvalidParameter, p.Amplitude)
	}
	return nil
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nonNegative rejects negative values, NaN and infinities.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
