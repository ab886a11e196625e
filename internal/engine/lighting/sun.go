// Package lighting provides light direction helpers.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts sun angles in degrees to a unit vector pointing
// towards the sun. Azimuth rotates about +Y starting from +Z; elevation is
// measured up from the horizon and clamped to [-90, 90].
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	elevation = mgl32.Clamp(elevation, -90, 90)

	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}
}
