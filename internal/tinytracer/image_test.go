package tinytracer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNG_RoundTrip(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.Set(0, 0, Vector3{1, 0, 0})
	fb.Set(3, 1, Vector3{0.2, 0.7, 0.8})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open result file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds wrong: %v", img.Bounds())
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Fatalf("pixel (0,0) wrong: %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
	// 0.2, 0.7, 0.8 scale and truncate to 51, 178, 204.
	r, g, b, _ = img.At(3, 1).RGBA()
	if r>>8 != 51 || g>>8 != 178 || b>>8 != 204 {
		t.Fatalf("pixel (3,1) wrong: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestSaveThumbPNG(t *testing.T) {
	fb := NewFramebuffer(64, 32)
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			fb.Set(i, j, Vector3{1, 1, 0})
		}
	}

	path := filepath.Join(t.TempDir(), "thumb.png")
	if err := fb.SaveThumbPNG(path, 16); err != nil {
		t.Fatalf("SaveThumbPNG error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open result file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Fixed width, height follows the 2:1 aspect.
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Fatalf("thumbnail bounds wrong: %v", img.Bounds())
	}
}
