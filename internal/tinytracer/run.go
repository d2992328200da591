package tinytracer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// RunOptions selects the outputs of a single Run call.
type RunOptions struct {
	Out        string // primary output path; extension selects PPM or PNG
	Thumb      string // optional thumbnail path (always PNG)
	ThumbWidth int
	Upload     bool // push the written outputs to S3 afterwards
	S3         S3Config
}

// Run renders the scene described by the config file (or the built-in scene
// when cfgPath is empty) and writes the selected outputs.
func Run(cfgPath string, opt RunOptions) error {
	out := opt.Out
	if out == "" {
		out = DefaultOut
	}
	ext := filepath.Ext(out)
	if ext != ".ppm" && ext != ".png" {
		return fmt.Errorf("unsupported output extension %q (want .ppm or .png)", ext)
	}

	var (
		cfg *Config
		err error
	)
	if cfgPath == "" {
		cfg = defaultConfig()
		DebugLog("No config path given, rendering the built-in scene")
	} else {
		cfg, err = loadConfig(cfgPath)
		if err != nil {
			return err
		}
	}

	scene := NewScene(*cfg.Background)
	for i, scfg := range cfg.Spheres {
		s, err := scfg.Build()
		if err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
		scene.AddSphere(s)
	}

	cam, err := cfg.Camera.Build(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	start := time.Now()
	fb := Render(scene, cam)
	elapsed := time.Since(start)
	DebugLog("Rendered %dx%d in %s", cfg.Width, cfg.Height, elapsed)
	if Debug {
		fmt.Printf("[STATS] spheres=%d rays=%d time=%s\n", len(scene.Spheres), cfg.Width*cfg.Height, elapsed)
	}

	if ext == ".png" {
		err = fb.SavePNG(out)
	} else {
		err = fb.SavePPM(out)
	}
	if err != nil {
		return err
	}

	if opt.Thumb != "" {
		if err := fb.SaveThumbPNG(opt.Thumb, opt.ThumbWidth); err != nil {
			return err
		}
	}

	if opt.Upload {
		up, err := NewUploader(opt.S3)
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := up.UploadFile(ctx, out); err != nil {
			return err
		}
		if opt.Thumb != "" {
			if err := up.UploadFile(ctx, opt.Thumb); err != nil {
				return err
			}
		}
	}
	return nil
}
