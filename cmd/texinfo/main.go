// texinfo decodes texture image files and reports their dimensions and
// channel layout, and whether the texture registry would accept them.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"landscape-renderer/internal/texture"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: texinfo <image file> ...")
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := inspect(path); err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	b := img.Bounds()
	ch := texture.ChannelCount(img)
	status := "ok"
	if ch != 3 && ch != 4 {
		status = "unsupported (registry accepts 3- or 4-channel only)"
	}
	fmt.Printf("%s: %s %dx%d, %d channels, %s\n", path, format, b.Dx(), b.Dy(), ch, status)
	return nil
}
