package tinytracer

import (
	"fmt"
	"math"
)

// Camera sits at Position looking down -z with y up, projecting a vertical
// field of view of FOV radians onto a Width x Height pixel grid.
type Camera struct {
	Width, Height int
	FOV           Real
	Position      Vector3

	halfH Real // tan(FOV/2)
	halfW Real // halfH scaled by the aspect ratio
}

func NewCamera(width, height int, fov Real, position Vector3) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("camera resolution must be positive, got %dx%d", width, height)
	}
	if !(fov > 0 && fov < math.Pi) {
		return nil, fmt.Errorf("camera fov must be in (0, pi) radians, got %g", fov)
	}
	c := &Camera{Width: width, Height: height, FOV: fov, Position: position}
	c.halfH = math.Tan(fov / 2)
	c.halfW = c.halfH * Real(width) / Real(height)
	DebugLog("Created camera: %dx%d fov=%.4g pos=%s", width, height, fov, position)
	return c, nil
}

// PrimaryRay returns the ray for pixel (i, j): the camera position and a
// unit direction through the pixel center. Row j = 0 is the top of the
// image; screen x grows right, screen y grows up.
func (c *Camera) PrimaryRay(i, j int) (orig, dir Vector3) {
	DebugLogOnce("Primary ray grid: halfW=%.6g halfH=%.6g", c.halfW, c.halfH)
	x := (2*(Real(i)+0.5)/Real(c.Width) - 1) * c.halfW
	y := -(2*(Real(j)+0.5)/Real(c.Height) - 1) * c.halfH
	d := Vector3{x, y, -1}
	return c.Position, d.Mul(1 / d.Len()) // the fixed z = -1 keeps d nonzero
}
