package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"landscape-renderer/internal/config"
	"landscape-renderer/internal/mathutil"
	"landscape-renderer/internal/mesh"
	"landscape-renderer/internal/postprocess"
	"landscape-renderer/internal/raster"
	"landscape-renderer/internal/scene"
	"landscape-renderer/internal/shader"
	"landscape-renderer/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Sky blue used both for the framebuffer clear and the sky backdrop plane.
const skyR, skyG, skyB = 0.416, 0.835, 0.851

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	textureDir := flag.String("textures", "", "Texture directory (default: textures)")
	output := flag.String("output", "", "Output WebP path (default: scene.webp)")
	width := flag.Int("width", 0, "Render width in pixels (default: 960)")
	height := flag.Int("height", 0, "Render height in pixels (default: 540)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		TextureDir:  *textureDir,
		Output:      *output,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
	})

	texIndex := texture.BuildIndex(cfg.TextureDir)
	fmt.Printf("Textures: %d indexed in %s\n", texIndex.Len(), cfg.TextureDir)

	start := time.Now()

	renderW := cfg.Width * cfg.Supersample
	renderH := cfg.Height * cfg.Supersample
	dev := raster.NewDevice(renderW, renderH)
	dev.Clear(skyR, skyG, skyB, 1)

	// Fixed camera: slightly above the ground, looking into the valley.
	eye := mathutil.Vec3{0, 8, 25}
	dev.SetMat4(shader.UView, mathutil.LookAt(eye, mathutil.Vec3{0, 10, -50}, mathutil.Vec3{0, 1, 0}))
	dev.SetMat4(shader.UProjection, mathutil.Perspective(
		80, float64(cfg.Width)/float64(cfg.Height), 0.1, 500))
	dev.SetVec3(shader.UViewPosition, eye)

	mgr := scene.NewManager(dev, texture.NewRegistry(dev), mesh.NewShapes(dev))
	mgr.PrepareScene(texIndex)
	mgr.RenderScene()
	mgr.Release()

	img := dev.Image()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding WebP: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d draw calls at %dx%d in %.2fs\n",
		dev.DrawCallCount(), cfg.Width, cfg.Height, time.Since(start).Seconds())
	fmt.Printf("Output: %s\n", cfg.Output)
}
