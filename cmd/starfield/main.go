// Command starfield renders a scattered field of Gaussian-PSF spots onto a
// pyplanetarium.Canvas and writes the result to a file in one of the
// library's export formats.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ravenexp/pyplanetarium"
)

func main() {
	width := flag.Int("width", 1024, "canvas width in pixels")
	height := flag.Int("height", 768, "canvas height in pixels")
	spots := flag.Int("spots", 200, "number of random spots to draw")
	background := flag.Int("background", 200, "background level (0-65535)")
	format := flag.String("format", "png8", "export format: png8, png16, raw8, raw10, raw12")
	out := flag.String("out", "starfield.png", "output file path")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if err := run(*width, *height, *spots, *background, *format, *out, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "starfield:", err)
		os.Exit(1)
	}
}

func run(width, height, numSpots, background int, format, out string, seed int64) error {
	canvas, err := pyplanetarium.NewCanvas(width, height)
	if err != nil {
		return fmt.Errorf("create canvas: %w", err)
	}
	canvas.SetBackground(uint16(background))

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < numSpots; i++ {
		x := rng.Float64() * float64(width)
		y := rng.Float64() * float64(height)
		radius := 0.75 + rng.Float64()*3.25
		intensity := 0.2 + rng.Float64()*0.8

		canvas.AddSpot(x, y, pyplanetarium.NewSpotShape().Scale(radius), intensity)
	}

	canvas.Draw()

	imgFormat, err := parseFormat(format)
	if err != nil {
		return err
	}

	data, err := canvas.ExportImage(imgFormat)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	return nil
}

func parseFormat(name string) (pyplanetarium.ImageFormat, error) {
	switch name {
	case "png8":
		return pyplanetarium.PngGamma8Bpp, nil
	case "png16":
		return pyplanetarium.PngLinear16Bpp, nil
	case "raw8":
		return pyplanetarium.RawGamma8Bpp, nil
	case "raw10":
		return pyplanetarium.RawLinear10BppLE, nil
	case "raw12":
		return pyplanetarium.RawLinear12BppLE, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}
