package tinytracer

// Render and output defaults; config values fall back to these.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultFOVDeg = 60
	FarPlane      = 1000.0 // hits at or past this distance are discarded
	DefaultOut    = "out.ppm"
	ThumbWidth    = 256 // thumbnail width in pixels; height keeps the aspect
)
