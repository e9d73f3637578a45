package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Depth is "greater wins": the buffer is initialized to -inf and a fragment
// passes when its depth value exceeds the stored one.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		ZBuf:   make([]float64, w*h),
	}
	fb.Clear(0, 0, 0, 0)
	return fb
}

// Clear fills the color buffer with the given RGBA components in [0,1] and
// resets the z-buffer.
func (fb *FrameBuffer) Clear(r, g, b, a float64) {
	cr, cg, cb, ca := clamp255(r*255), clamp255(g*255), clamp255(b*255), clamp255(a*255)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = cr
		fb.Color[i+1] = cg
		fb.Color[i+2] = cb
		fb.Color[i+3] = ca
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
