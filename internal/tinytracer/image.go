package tinytracer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// Image converts the framebuffer to an 8-bit NRGBA image, clamping each
// channel to [0,1] and scaling to 0..255. Alpha is fully opaque.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	const pxBytes = 4 // R, G, B, A
	for j := 0; j < fb.Height; j++ {
		rowOff := j * img.Stride
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			p := rowOff + i*pxBytes
			img.Pix[p+0] = toByte(c.X)
			img.Pix[p+1] = toByte(c.Y)
			img.Pix[p+2] = toByte(c.Z)
			img.Pix[p+3] = 0xFF
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePNG writes the framebuffer as a lossless 8-bit PNG.
func (fb *Framebuffer) SavePNG(path string) error {
	if err := writePNG(path, fb.Image()); err != nil {
		return err
	}
	DebugLog("Saved PNG: %s (%dx%d)", path, fb.Width, fb.Height)
	return nil
}

// SaveThumbPNG writes a bilinear-downscaled PNG preview of the framebuffer.
// The thumbnail is width pixels wide; height follows the aspect ratio.
func (fb *Framebuffer) SaveThumbPNG(path string, width int) error {
	if width <= 0 {
		width = ThumbWidth
	}
	thumb := resize.Resize(uint(width), 0, fb.Image(), resize.Bilinear)
	if err := writePNG(path, thumb); err != nil {
		return err
	}
	DebugLog("Saved thumbnail: %s (width=%d)", path, width)
	return nil
}
