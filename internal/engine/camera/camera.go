// Package camera provides the free-fly camera used to explore the ocean.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Defaults matching the viewer's initial framing.
const (
	DefaultYaw  = 115.0
	DefaultNear = 1.0
	DefaultFOV  = 45.0
)

// FlyCamera is a first-person camera. Angles are in degrees.
//
// Offset is the world translation applied to the scene, so the eye sits at
// -Offset. Yaw rotates about +Y and wraps to [-180, 180]; Pitch rotates about
// +X and is clamped to [-90, 90].
type FlyCamera struct {
	Offset mgl32.Vec3
	Yaw    float32
	Pitch  float32

	Speed       float32 // World units per move step
	Sensitivity float32 // Degrees per pixel of mouse motion

	FOV  float32 // Vertical, degrees
	Near float32
	Far  float32
}

// NewFlyCamera creates a camera with the scene translated by start.
func NewFlyCamera(start mgl32.Vec3, speed, sensitivity, far float32) *FlyCamera {
	return &FlyCamera{
		Offset:      start,
		Yaw:         DefaultYaw,
		Speed:       speed,
		Sensitivity: sensitivity,
		FOV:         DefaultFOV,
		Near:        DefaultNear,
		Far:         far,
	}
}

// Rotate applies a relative mouse motion.
func (c *FlyCamera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Yaw > 180 {
		c.Yaw -= 360
	} else if c.Yaw < -180 {
		c.Yaw += 360
	}

	if c.Pitch > 90 {
		c.Pitch = 90
	} else if c.Pitch < -90 {
		c.Pitch = -90
	}
}

// Move steps on the XZ plane. angle is relative to the view direction:
// 0 forward, -90 left, 90 right, ±180 back.
func (c *FlyCamera) Move(angle float32) {
	rad := float64(mgl32.DegToRad(c.Yaw + angle))
	c.Offset[0] += float32(-math.Sin(rad)) * c.Speed
	c.Offset[2] += float32(math.Cos(rad)) * c.Speed
}

// Rise moves the eye vertically. Positive dy moves the eye up.
func (c *FlyCamera) Rise(dy float32) {
	c.Offset[1] -= dy
}

// Position returns the eye position in world space.
func (c *FlyCamera) Position() mgl32.Vec3 {
	return c.Offset.Mul(-1)
}

// ViewMatrix returns the world-to-eye transform: translate by Offset, then
// yaw, then pitch.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	pitch := mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch))
	yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw))
	move := mgl32.Translate3D(c.Offset[0], c.Offset[1], c.Offset[2])
	return pitch.Mul4(yaw).Mul4(move)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// TileModels returns one model matrix per patch of an n×n grid of ocean
// tiles, each width×length in size, starting at the world origin.
func TileModels(n int, width, length float32) []mgl32.Mat4 {
	models := make([]mgl32.Mat4, 0, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			models = append(models, mgl32.Translate3D(float32(x)*width, 0, float32(y)*length))
		}
	}
	return models
}
