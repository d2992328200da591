package tinytracer

import "testing"

func TestFramebufferIndexing(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if len(fb.Pix) != 6 {
		t.Fatalf("Pix length wrong: %d", len(fb.Pix))
	}
	fb.Set(2, 1, Vector3{1, 2, 3})
	if fb.At(2, 1) != (Vector3{1, 2, 3}) {
		t.Fatalf("At/Set mismatch: %+v", fb.At(2, 1))
	}
	// Row-major layout: (i, j) lands at i + j*Width.
	if fb.Pix[2+1*3] != (Vector3{1, 2, 3}) {
		t.Fatalf("flat layout wrong: %+v", fb.Pix)
	}
}

func TestNewFramebufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive size")
		}
	}()
	NewFramebuffer(0, 4)
}
