package tinytracer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scene.json")
	body := `{
  "width": 32,
  "height": 24,
  "camera": { "fovDeg": 60 },
  "spheres": [
    { "center": { "x": 0, "y": 0, "z": -16 }, "radius": 2, "color": { "x": 0.4, "y": 0.4, "z": 0.3 } }
  ]
}`
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.ppm")
	thumb := filepath.Join(dir, "thumb.png")
	if err := Run(cfgPath, RunOptions{Out: out, Thumb: thumb, ThumbWidth: 8}); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	header := "P6\n32 24\n255\n"
	if !strings.HasPrefix(string(data), header) {
		t.Fatalf("output header wrong: %q", data[:len(header)])
	}
	if len(data) != len(header)+32*24*3 {
		t.Fatalf("output size mismatch: got %d want %d", len(data), len(header)+32*24*3)
	}
	if _, err := os.Stat(thumb); err != nil {
		t.Fatalf("thumbnail missing: %v", err)
	}
}

func TestRun_PNGOutput(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(cfgPath, []byte(`{"width":8,"height":8}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.png")
	if err := Run(cfgPath, RunOptions{Out: out}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("png output missing: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("bad extension", func(t *testing.T) {
		if err := Run("", RunOptions{Out: "out.bmp"}); err == nil {
			t.Fatal("expected error for unsupported extension")
		}
	})
	t.Run("invalid sphere", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "scene.json")
		if err := os.WriteFile(cfgPath, []byte(`{"width":8,"height":8,"spheres":[{"center":{},"radius":-1}]}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := Run(cfgPath, RunOptions{Out: filepath.Join(dir, "o.ppm")}); err == nil {
			t.Fatal("expected error for invalid sphere")
		}
	})
	t.Run("missing config", func(t *testing.T) {
		dir := t.TempDir()
		if err := Run(filepath.Join(dir, "nope.json"), RunOptions{Out: filepath.Join(dir, "o.ppm")}); err == nil {
			t.Fatal("expected error for missing config")
		}
	})
}
