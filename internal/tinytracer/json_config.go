package tinytracer

import (
	"encoding/json"
	"math"
	"os"
)

type CameraCfg struct {
	Position Vector3 `json:"position"`
	// Vertical field of view in degrees (friendlier than radians).
	FOVDeg Real `json:"fovDeg,omitempty"`
}

type SphereCfg struct {
	Center Vector3 `json:"center"`
	Radius Real    `json:"radius"`
	Color  Vector3 `json:"color"`
}

type Config struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Camera CameraCfg `json:"camera"`
	// Background is a pointer so that an absent field and an explicit
	// black background stay distinguishable.
	Background *Vector3    `json:"background,omitempty"`
	Spheres    []SphereCfg `json:"spheres"`
}

// Build validates the entry and produces the runtime sphere.
func (sc SphereCfg) Build() (*Sphere, error) {
	return NewSphere(sc.Center, sc.Radius, Material{Color: sc.Color})
}

// Build produces the runtime camera for the configured image size.
func (cc CameraCfg) Build(width, height int) (*Camera, error) {
	return NewCamera(width, height, cc.FOVDeg*math.Pi/180, cc.Position)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults; an empty sphere list is a valid scene (background only).
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Camera.FOVDeg <= 0 {
		cfg.Camera.FOVDeg = DefaultFOVDeg
	}
	if cfg.Background == nil {
		bg := DefaultBackground
		cfg.Background = &bg
	}
	DebugLog("Loaded config from %s: %dx%d, fov=%g deg, %d spheres", path, cfg.Width, cfg.Height, cfg.Camera.FOVDeg, len(cfg.Spheres))
	return &cfg, nil
}

// defaultConfig is the scene rendered when no config path is given: the
// classic four-sphere arrangement on the default 1024x768 image. The same
// scene ships as scenes/config.json.
func defaultConfig() *Config {
	bg := DefaultBackground
	ivory := Vector3{0.4, 0.4, 0.3}
	rubber := Vector3{0.3, 0.1, 0.1}
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Camera:     CameraCfg{FOVDeg: DefaultFOVDeg},
		Background: &bg,
		Spheres: []SphereCfg{
			{Center: Vector3{-3, 0, -16}, Radius: 2, Color: ivory},
			{Center: Vector3{-1, -1.5, -12}, Radius: 2, Color: rubber},
			{Center: Vector3{1.5, -0.5, -18}, Radius: 3, Color: rubber},
			{Center: Vector3{7, 5, -18}, Radius: 4, Color: ivory},
		},
	}
}
