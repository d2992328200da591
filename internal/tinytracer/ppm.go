package tinytracer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// SavePPM writes the framebuffer as a binary P6 PPM: the header
// "P6\n{width} {height}\n255\n" followed by one RGB byte triplet per pixel,
// top row first. Channels are clamped to [0,1] and scaled to 0..255.
func (fb *Framebuffer) SavePPM(path string) error {
	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}

	row := make([]byte, fb.Width*3)
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			p := i * 3
			row[p+0] = toByte(c.X)
			row[p+1] = toByte(c.Y)
			row[p+2] = toByte(c.Z)
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	_ = f.Sync()

	DebugLog("Saved PPM: %s (%dx%d)", path, fb.Width, fb.Height)
	return nil
}
