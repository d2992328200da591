package tinytracer

import (
	"fmt"
	"math"
)

// Sphere is the only scene primitive: a center, a radius and a material.
type Sphere struct {
	Center   Vector3
	Radius   Real
	Material Material
}

// NewSphere validates the geometry; a non-positive (or NaN) radius and a
// non-finite center have no meaningful intersection.
func NewSphere(center Vector3, radius Real, mat Material) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %g", radius)
	}
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(center.Z) {
		return nil, fmt.Errorf("sphere center must be finite, got %s", center)
	}
	s := &Sphere{Center: center, Radius: radius, Material: mat}
	DebugLog("Created sphere: center=%s r=%g color=%s", center, radius, mat.Color)
	return s, nil
}

// RayIntersect tests the ray (orig, dir) against the sphere with the
// geometric method: project the origin-to-center vector onto the ray, then
// compare the center's squared distance from the ray line with r^2.
// dir must be unit length; this is not checked.
// On a hit it returns the distance along the ray (>= 0) and true.
func (s *Sphere) RayIntersect(orig, dir Vector3) (Real, bool) {
	L := s.Center.Sub(orig)
	tca := L.Dot(dir)
	d2 := L.Dot(L) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}
	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	if t0 < 0 {
		t0 = tca + thc // origin inside the sphere: first hit is the exit point
	}
	if t0 < 0 {
		return 0, false // sphere entirely behind the origin
	}
	return t0, true
}
