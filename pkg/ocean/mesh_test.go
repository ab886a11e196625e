package ocean

import (
	"errors"
	"slices"
	"testing"
)

func TestVertexCount(t *testing.T) {
	tests := []struct {
		nx, ny int
		want   int
	}{
		{1, 1, 4},
		{2, 2, 12},
		{4, 4, 40},
		{8, 2, 36},
		{256, 256, 2 * 257 * 256},
	}
	for _, tt := range tests {
		p := smallParams()
		p.SamplesX, p.SamplesY = tt.nx, tt.ny
		o := newTestOcean(t, p)

		if got := o.VertexCount(); got != tt.want {
			t.Errorf("%dx%d: VertexCount() = %d, want %d", tt.nx, tt.ny, got, tt.want)
		}
		if got := o.Strips() * o.StripLength(); got != tt.want {
			t.Errorf("%dx%d: strips*length = %d, want %d", tt.nx, tt.ny, got, tt.want)
		}
	}
}

func TestGenerateMeshPositions(t *testing.T) {
	o := newTestOcean(t, smallParams())
	mesh, _ := o.GenerateMesh()

	// 2000 / 4 samples = 500 units between columns and rows.
	nx := o.params.SamplesX
	for i := 0; i < o.params.SamplesY; i++ {
		for j := 0; j <= nx; j++ {
			v := 2 * (i*(nx+1) + j)
			top := vertexAt(mesh, v)
			bottom := vertexAt(mesh, v+1)

			if top.X() != float32(500*j) || top.Z() != float32(500*i) || top.Y() != 0 {
				t.Errorf("strip %d col %d top = %v", i, j, top)
			}
			if bottom.X() != float32(500*j) || bottom.Z() != float32(500*(i+1)) || bottom.Y() != 0 {
				t.Errorf("strip %d col %d bottom = %v", i, j, bottom)
			}
		}
	}
}

func TestSetHeightsKeepsXZ(t *testing.T) {
	o := newTestOcean(t, smallParams())
	mesh, count := o.GenerateMesh()
	flat := slices.Clone(mesh)

	if err := o.SetHeightsAtTime(mesh, 12.5); err != nil {
		t.Fatalf("SetHeightsAtTime failed: %v", err)
	}
	moved := false
	for v := 0; v < count; v++ {
		if mesh[3*v] != flat[3*v] || mesh[3*v+2] != flat[3*v+2] {
			t.Fatalf("vertex %d X/Z changed", v)
		}
		if mesh[3*v+1] != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("expected some vertex heights to change")
	}
}

func TestSetHeightsSeamContinuity(t *testing.T) {
	p := smallParams()
	p.SamplesX, p.SamplesY = 8, 4
	o := newTestOcean(t, p)
	mesh, _ := o.GenerateMesh()
	nx, ny := p.SamplesX, p.SamplesY
	height := func(i, j int, bottom bool) float32 {
		v := 2 * (i*(nx+1) + j)
		if bottom {
			v++
		}
		return mesh[3*v+1]
	}

	for _, tm := range []float64{0, 0.3, 7, 60} {
		if err := o.SetHeightsAtTime(mesh, tm); err != nil {
			t.Fatalf("SetHeightsAtTime failed: %v", err)
		}
		for i := 0; i < ny; i++ {
			if height(i, nx, false) != height(i, 0, false) {
				t.Errorf("t=%v strip %d: wrap column top %v != column 0 %v", tm, i, height(i, nx, false), height(i, 0, false))
			}
			if height(i, nx, true) != height(i, 0, true) {
				t.Errorf("t=%v strip %d: wrap column bottom %v != column 0 %v", tm, i, height(i, nx, true), height(i, 0, true))
			}
		}
		for j := 0; j <= nx; j++ {
			if height(ny-1, j, true) != height(0, j, false) {
				t.Errorf("t=%v col %d: bottom row %v != row 0 %v", tm, j, height(ny-1, j, true), height(0, j, false))
			}
		}
		// Strips share their edge rows.
		for i := 1; i < ny; i++ {
			for j := 0; j <= nx; j++ {
				if height(i, j, false) != height(i-1, j, true) {
					t.Errorf("t=%v strip %d col %d: shared row differs", tm, i, j)
				}
			}
		}
	}
}

func TestSetHeightsCheckerboardSign(t *testing.T) {
	o := newTestOcean(t, smallParams())
	mesh, _ := o.GenerateMesh()
	if err := o.SetHeightsAtTime(mesh, 1); err != nil {
		t.Fatalf("SetHeightsAtTime failed: %v", err)
	}

	nx := o.params.SamplesX
	for i := 0; i < o.params.SamplesY; i++ {
		for j := 0; j < nx; j++ {
			raw := real(o.height.At(j, i))
			want := float32(raw)
			if (i+j)%2 == 0 {
				want = float32(-raw)
			}
			v := 2 * (i*(nx+1) + j)
			if got := mesh[3*v+1]; got != want {
				t.Errorf("row %d col %d: height %v, want %v", i, j, got, want)
			}
			if got := float32(o.HeightAt(j, i)); got != want {
				t.Errorf("HeightAt(%d,%d) = %v, want %v", j, i, got, want)
			}
		}
	}
}

func TestHeightAtWraps(t *testing.T) {
	o := newTestOcean(t, smallParams())
	mesh, _ := o.GenerateMesh()
	if err := o.SetHeightsAtTime(mesh, 2); err != nil {
		t.Fatalf("SetHeightsAtTime failed: %v", err)
	}

	nx, ny := o.params.SamplesX, o.params.SamplesY
	if o.HeightAt(nx, 1) != o.HeightAt(0, 1) {
		t.Error("HeightAt should wrap columns")
	}
	if o.HeightAt(2, ny) != o.HeightAt(2, 0) {
		t.Error("HeightAt should wrap rows")
	}
	if o.HeightAt(-1, -1) != o.HeightAt(nx-1, ny-1) {
		t.Error("HeightAt should wrap negative indices")
	}
}

func TestSetHeightsIdempotent(t *testing.T) {
	o := newTestOcean(t, smallParams())
	mesh, _ := o.GenerateMesh()

	if err := o.SetHeightsAtTime(mesh, 3.25); err != nil {
		t.Fatalf("SetHeightsAtTime failed: %v", err)
	}
	first := slices.Clone(mesh)
	if err := o.SetHeightsAtTime(mesh, 3.25); err != nil {
		t.Fatalf("SetHeightsAtTime failed: %v", err)
	}
	if !slices.Equal(first, mesh) {
		t.Error("expected bit-identical mesh for repeated time")
	}
}

func TestSetHeightsSizeMismatch(t *testing.T) {
	o := newTestOcean(t, smallParams())
	mesh, _ := o.GenerateMesh()

	err := o.SetHeightsAtTime(mesh[:len(mesh)-3], 0)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if err := o.SetHeightsAtTime(nil, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch for nil mesh, got %v", err)
	}
}

func TestCalmSeaIsFlat(t *testing.T) {
	p := smallParams()
	p.Amplitude = 0
	o := newTestOcean(t, p)
	mesh, count := o.GenerateMesh()

	if err := o.SetHeightsAtTime(mesh, 5); err != nil {
		t.Fatalf("SetHeightsAtTime failed: %v", err)
	}
	for v := 0; v < count; v++ {
		if mesh[3*v+1] != 0 {
			t.Fatalf("vertex %d height %v, want 0", v, mesh[3*v+1])
		}
	}
}
