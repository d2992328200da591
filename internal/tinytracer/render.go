package tinytracer

import "fmt"

// Render shoots one primary ray per pixel, top row first, and fills a
// framebuffer with the colors CastRay resolves. The loop is strictly
// sequential; CastRay never mutates the scene.
func Render(sc *Scene, cam *Camera) *Framebuffer {
	fb := NewFramebuffer(cam.Width, cam.Height)

	// Progress print step (~1% of rows).
	step := 1
	if cam.Height >= 100 {
		step = cam.Height / 100
	}

	for j := 0; j < cam.Height; j++ {
		if j%step == 0 {
			fmt.Printf("[RENDER] %.2f%%\n", Real(j+1)*100/Real(cam.Height))
		}
		for i := 0; i < cam.Width; i++ {
			orig, dir := cam.PrimaryRay(i, j)
			fb.Set(i, j, sc.CastRay(orig, dir))
		}
	}
	return fb
}
