package ocean

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	if p.SamplesX != 256 || p.SamplesY != 256 {
		t.Errorf("expected 256x256 samples, got %dx%d", p.SamplesX, p.SamplesY)
	}
	if p.WindSpeed != 50 {
		t.Errorf("expected wind speed 50, got %v", p.WindSpeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		valid  bool
	}{
		{"defaults", func(p *Params) {}, true},
		{"one sample", func(p *Params) { p.SamplesX, p.SamplesY = 1, 1 }, true},
		{"rectangular", func(p *Params) { p.SamplesX, p.SamplesY = 8, 2 }, true},
		{"zero samples x", func(p *Params) { p.SamplesX = 0 }, false},
		{"negative samples y", func(p *Params) { p.SamplesY = -4 }, false},
		{"non power of two", func(p *Params) { p.SamplesY = 12 }, false},
		{"zero width", func(p *Params) { p.DomainWidth = 0 }, false},
		{"negative length", func(p *Params) { p.DomainLength = -1 }, false},
		{"nan width", func(p *Params) { p.DomainWidth = math.NaN() }, false},
		{"infinite length", func(p *Params) { p.DomainLength = math.Inf(1) }, false},
		{"negative wind", func(p *Params) { p.WindSpeed = -5 }, false},
		{"calm sea", func(p *Params) { p.WindSpeed = 0 }, true},
		{"negative min wave", func(p *Params) { p.MinWaveSize = -0.1 }, false},
		{"nan amplitude", func(p *Params) { p.Amplitude = math.NaN() }, false},
		{"zero amplitude", func(p *Params) { p.Amplitude = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := smallParams()
			tt.modify(&p)
			err := p.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("expected ErrInvalidParameter, got %v", err)
				}
			}
		})
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-2, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{96, false},
		{1 << 20, true},
	}
	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
