package pyplanetarium

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
)

// ImageFormat selects an export codec. The ordinal values are part of the
// public contract (spec.md §6): PngLinear16Bpp=0, RawLinear10BppLE=1,
// RawLinear12BppLE=2, PngGamma8Bpp=3, RawGamma8Bpp=4.
type ImageFormat int

const (
	PngLinear16Bpp ImageFormat = iota
	RawLinear10BppLE
	RawLinear12BppLE
	PngGamma8Bpp
	RawGamma8Bpp
)

// String returns the format's Go identifier, matching the Python crate's
// enum member names.
func (f ImageFormat) String() string {
	switch f {
	case PngLinear16Bpp:
		return "PngLinear16Bpp"
	case RawLinear10BppLE:
		return "RawLinear10BppLE"
	case RawLinear12BppLE:
		return "RawLinear12BppLE"
	case PngGamma8Bpp:
		return "PngGamma8Bpp"
	case RawGamma8Bpp:
		return "RawGamma8Bpp"
	default:
		return fmt.Sprintf("ImageFormat(%d)", int(f))
	}
}

// ExportImage converts the whole accumulator to the given format.
func (c *Canvas) ExportImage(format ImageFormat) ([]byte, error) {
	full, err := NewWindowRect(0, 0, c.width, c.height)
	if err != nil {
		return nil, fmt.Errorf("ExportImage: %w", err)
	}

	return c.ExportWindowImage(full, format)
}

// ExportWindowImage converts the window w of the accumulator to the given
// format. Pixels outside the canvas bounds (possible when w extends past
// an edge) read as 0.
func (c *Canvas) ExportWindowImage(w Window, format ImageFormat) ([]byte, error) {
	x, y, width, height := w.Rect()

	switch format {
	case RawGamma8Bpp:
		return c.exportRawGamma8(x, y, width, height), nil
	case RawLinear10BppLE:
		return c.exportRawLinear(x, y, width, height, 6), nil
	case RawLinear12BppLE:
		return c.exportRawLinear(x, y, width, height, 4), nil
	case PngGamma8Bpp:
		return c.exportPNGGamma8(x, y, width, height)
	case PngLinear16Bpp:
		return c.exportPNGLinear16(x, y, width, height)
	default:
		return nil, fmt.Errorf("%v: %w", format, ErrExport)
	}
}

// pixelAt returns the accumulator value at (x, y), or 0 if out of bounds.
func (c *Canvas) pixelAt(x, y int) uint16 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}

	return c.pixels[y*c.width+x]
}

// exportRawGamma8 packs one gamma-encoded byte per pixel, row-major.
func (c *Canvas) exportRawGamma8(x, y, w, h int) []byte {
	buf := make([]byte, w*h)
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			buf[i] = gammaEncode(c.pixelAt(x+col, y+row))
			i++
		}
	}

	return buf
}

// exportRawLinear packs p>>shift as a little-endian 16-bit word per pixel,
// row-major.
func (c *Canvas) exportRawLinear(x, y, w, h, shift int) []byte {
	buf := make([]byte, 2*w*h)
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := c.pixelAt(x+col, y+row) >> uint(shift)
			buf[i] = byte(v)
			buf[i+1] = byte(v >> 8)
			i += 2
		}
	}

	return buf
}

// exportPNGGamma8 encodes the window as an 8-bit grayscale PNG, sample
// value = gammaEncode(p).
func (c *Canvas) exportPNGGamma8(x, y, w, h int) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, w, h))
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			img.Pix[i] = gammaEncode(c.pixelAt(x+col, y+row))
			i++
		}
	}

	return encodePNG(img)
}

// exportPNGLinear16 encodes the window as a 16-bit grayscale PNG (Go's
// image.Gray16 stores samples big-endian, as the PNG format requires),
// sample value = p.
func (c *Canvas) exportPNGLinear16(x, y, w, h int) ([]byte, error) {
	img := image.NewGray16(image.Rect(0, 0, w, h))
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := c.pixelAt(x+col, y+row)
			img.Pix[i] = byte(v >> 8)
			img.Pix[i+1] = byte(v)
			i += 2
		}
	}

	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	return buf.Bytes(), nil
}

// gammaTable is the sRGB-like linear-to-8-bit transfer function, pinned by
// the 5000/65535 -> 78 witness in spec.md §4.G. Built once at package init
// so gammaEncode is an O(1) lookup rather than a per-pixel math.Pow call.
var gammaTable = buildGammaTable()

func buildGammaTable() [PixelMax + 1]uint8 {
	var table [PixelMax + 1]uint8
	for p := 0; p <= PixelMax; p++ {
		x := float64(p) / float64(PixelMax)

		var v float64
		if x <= 0.0031308 {
			v = 12.92 * x
		} else {
			v = 1.055*math.Pow(x, 1/2.4) - 0.055
		}
		v *= 255
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}

		table[p] = uint8(math.Round(v))
	}

	return table
}

// gammaEncode applies the gamma curve to a linear 16-bit pixel value.
func gammaEncode(p uint16) uint8 {
	return gammaTable[p]
}
