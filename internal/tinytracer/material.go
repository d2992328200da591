package tinytracer

// Material carries the flat diffuse color a ray resolves to when it hits a
// surface. Channels nominally live in [0,1]; the range is not enforced here,
// the image writers clamp on output.
type Material struct {
	Color Vector3
}
