package raster

import (
	"image"
	"math"
)

// SampleBilinear performs bilinear filtering with UV wrapping (repeat).
// Returns RGBA as uint8. Accesses tex.Pix directly for performance.
func SampleBilinear(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs
	u = u - math.Floor(u)
	v = v - math.Floor(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	fr := float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	fg := float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	fb := float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11
	fa := float64(pix[i00+3])*w00 + float64(pix[i10+3])*w10 + float64(pix[i01+3])*w01 + float64(pix[i11+3])*w11

	return uint8(fr + 0.5), uint8(fg + 0.5), uint8(fb + 0.5), uint8(fa + 0.5)
}

// selectMipLevel picks the pyramid level for a face from the ratio of
// texels covered to pixels covered. texelArea is in level-0 texels,
// pixelArea in screen pixels. Level n halves resolution n times, so one
// level compensates a 4× area ratio.
func selectMipLevel(levels []*image.NRGBA, texelArea, pixelArea float64) *image.NRGBA {
	if len(levels) == 1 || pixelArea <= 0 || texelArea <= 0 {
		return levels[0]
	}
	lvl := int(0.5 * math.Log2(texelArea/pixelArea))
	if lvl < 0 {
		lvl = 0
	}
	if lvl >= len(levels) {
		lvl = len(levels) - 1
	}
	return levels[lvl]
}
