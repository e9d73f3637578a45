package texture

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func TestChannelCount(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		want int
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), 1},
		{"gray16", image.NewGray16(image.Rect(0, 0, 1, 1)), 1},
		{"alpha", image.NewAlpha(image.Rect(0, 0, 1, 1)), 2},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), 3},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 1, 1)), 3},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), 4},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ChannelCount(tc.img))
		})
	}
}

func TestChannelCountPaletted(t *testing.T) {
	opaque := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{G: 255, A: 255},
	})
	assert.Equal(t, 3, ChannelCount(opaque))

	translucent := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{},
	})
	assert.Equal(t, 4, ChannelCount(translucent))
}

func TestDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	path := writePNG(t, dir, "solid.png", rgbImage(3, 5, want))

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Rect.Dx())
	assert.Equal(t, 5, img.Rect.Dy())
	assert.Equal(t, want, img.NRGBAAt(0, 0))
}

func TestDecodeGrayscaleRejected(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "gray.png", image.NewGray(image.Rect(0, 0, 2, 2)))

	_, err := Decode(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported 1-channel")
}

func TestDecodeGarbageRejected(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/not-an-image.png"
	require.NoError(t, writeFile(path, []byte("definitely not pixels")))

	_, err := Decode(path)
	assert.Error(t, err)
}

func TestCacheReturnsSameImage(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "c.png", rgbImage(2, 2, color.NRGBA{B: 9, A: 255}))

	c := NewCache()
	a, err := c.Decode(path)
	require.NoError(t, err)
	b, err := c.Decode(path)
	require.NoError(t, err)
	assert.Same(t, a, b, "second decode must come from the cache")
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	c := NewCache()
	_, err := c.Decode(t.TempDir() + "/missing.png")
	assert.Error(t, err)
	_, err = c.Decode(t.TempDir() + "/missing.png")
	assert.Error(t, err)
}
