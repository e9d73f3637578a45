package raster

import (
	"image"
	"math"

	"landscape-renderer/internal/mathutil"
	"landscape-renderer/internal/shader"
)

// rasterizeTriangle fills one screen-space triangle with z-buffering and
// flat (per-face) lighting. The base color per pixel is a bilinear texture
// sample when tex is non-nil, otherwise the flat object color; the face's
// lighting terms are applied as rgb = base ⊙ mul + add.
//
// This is the hot path — no allocation in the pixel loop.
func rasterizeTriangle(
	fb *FrameBuffer,
	x, y, z [3]float64,
	uv [3][2]float64,
	tex *image.NRGBA,
	flat shader.RGBA,
	mul, add mathutil.Vec3,
) {
	x0, y0, z0 := x[0], y[0], z[0]
	x1, y1, z1 := x[1], y[1], z[1]
	x2, y2, z2 := x[2], y[2], z[2]

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	flatR := clamp255(flat.R * 255)
	flatG := clamp255(flat.G * 255)
	flatB := clamp255(flat.B * 255)
	flatA := clamp255(flat.A * 255)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			d := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if d <= fb.ZBuf[zIdx] {
				continue
			}

			var cr, cg, cb, ca uint8
			if tex != nil {
				u := w0*uv[0][0] + w1*uv[1][0] + w2*uv[2][0]
				v := w0*uv[0][1] + w1*uv[1][1] + w2*uv[2][1]
				cr, cg, cb, ca = SampleBilinear(tex, u, v)
			} else {
				cr, cg, cb, ca = flatR, flatG, flatB, flatA
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = d

			fr := float64(cr)*mul[0] + add[0]*255
			fg := float64(cg)*mul[1] + add[1]*255
			fbv := float64(cb)*mul[2] + add[2]*255

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr)
			fb.Color[pxIdx+1] = clamp255(fg)
			fb.Color[pxIdx+2] = clamp255(fbv)
			fb.Color[pxIdx+3] = ca
		}
	}
}
