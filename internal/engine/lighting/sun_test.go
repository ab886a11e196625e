package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name               string
		azimuth, elevation float32
		want               mgl32.Vec3
	}{
		{"zenith", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"north horizon", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"east horizon", 90, 0, mgl32.Vec3{1, 0, 0}},
		{"clamped past zenith", 0, 135, mgl32.Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elevation)
			if got.Sub(tt.want).Len() > 1e-5 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.azimuth, tt.elevation, got, tt.want)
			}
		})
	}
}

func TestSunDirectionIsUnit(t *testing.T) {
	for az := float32(-180); az <= 360; az += 45 {
		for el := float32(-60); el <= 90; el += 30 {
			if l := SunDirection(az, el).Len(); l < 0.9999 || l > 1.0001 {
				t.Errorf("SunDirection(%v, %v) has length %v", az, el, l)
			}
		}
	}
}
