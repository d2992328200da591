package tinytracer

// Hit describes the nearest intersection found along a ray.
type Hit struct {
	T        Real    // distance from the ray origin to the surface
	Point    Vector3 // orig + dir*T
	Normal   Vector3 // outward unit surface normal at Point
	Material Material
}

// Intersect scans every sphere in order and keeps the closest hit in front
// of the origin. dir must be unit length. Hits at or beyond FarPlane do not
// count; on equal distances the earlier sphere wins.
func (sc *Scene) Intersect(orig, dir Vector3) (Hit, bool) {
	bestT := Real(FarPlane)
	var best *Sphere
	for _, s := range sc.Spheres {
		if t, ok := s.RayIntersect(orig, dir); ok && t < bestT {
			bestT, best = t, s
		}
	}
	if best == nil {
		return Hit{}, false
	}
	p := orig.Add(dir.Mul(bestT))
	n, err := p.Sub(best.Center).Norm()
	if err != nil {
		// hit point collapsed onto the center (degenerate radius)
		return Hit{}, false
	}
	return Hit{T: bestT, Point: p, Normal: n, Material: best.Material}, true
}
