// Package texture loads image files into device-resident textures and
// tracks the tag → slot assignments the scene refers to at draw time.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
)

// Decode reads and decodes a texture image file (JPEG, PNG, BMP or TGA)
// into NRGBA pixels. Only 3- and 4-channel pixel layouts are supported:
// grayscale and gray+alpha files are a declared failure, matching the
// shader's sampling expectations.
func Decode(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	ch := ChannelCount(img)
	if ch != 3 && ch != 4 {
		return nil, fmt.Errorf("texture: %s (%s): unsupported %d-channel image", path, format, ch)
	}

	return toNRGBA(img), nil
}

// ChannelCount classifies a decoded image by channel layout: 3 for opaque
// color sources, 4 for sources carrying alpha, 1 for grayscale, 2 for
// gray+alpha.
func ChannelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return 4
	default:
		return 4
	}
}

// toNRGBA converts any decoded image to NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.CMYK:
		// Opaque sources — draw, then force alpha to 255.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
