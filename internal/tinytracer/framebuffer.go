package tinytracer

import "fmt"

// Framebuffer is a flat row-major grid of linear RGB colors, one Vector3
// per pixel. Row 0 is the top of the image.
type Framebuffer struct {
	Width, Height int
	Pix           []Vector3 // flat: i + j*Width
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("framebuffer size must be positive, got %dx%d", width, height))
	}
	return &Framebuffer{Width: width, Height: height, Pix: make([]Vector3, width*height)}
}

func (fb *Framebuffer) idx(i, j int) int { return i + j*fb.Width }

// At returns the color of pixel (i, j).
func (fb *Framebuffer) At(i, j int) Vector3 { return fb.Pix[fb.idx(i, j)] }

// Set overwrites the color of pixel (i, j).
func (fb *Framebuffer) Set(i, j int, c Vector3) { fb.Pix[fb.idx(i, j)] = c }
