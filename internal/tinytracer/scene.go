package tinytracer

// DefaultBackground is the color returned for rays that hit nothing.
var DefaultBackground = Vector3{0.2, 0.7, 0.8}

// Scene is an ordered list of spheres plus a background color.
type Scene struct {
	Spheres    []*Sphere
	Background Vector3
}

func NewScene(background Vector3) *Scene {
	s := &Scene{Background: background}
	DebugLog("Created scene: background=%s", background)
	return s
}

func (sc *Scene) AddSphere(s *Sphere) {
	sc.Spheres = append(sc.Spheres, s)
}

// CastRay resolves one ray to a color: the flat material color of the
// nearest sphere, or the background when the ray hits nothing. No shading
// of any kind happens here. dir must be unit length.
func (sc *Scene) CastRay(orig, dir Vector3) Vector3 {
	hit, ok := sc.Intersect(orig, dir)
	if !ok {
		return sc.Background
	}
	return hit.Material.Color
}
