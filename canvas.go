package pyplanetarium

import (
	"fmt"
	"math"
)

// PixelMax is the maximum value representable in the 16-bit pixel
// accumulator; intensities are clamped to [0, PixelMax].
const PixelMax = 65535

// Canvas owns a high-bit-depth pixel accumulator, the list of registered
// spots, and the background/brightness/view state that Draw combines into
// the accumulator. A Canvas is not safe for concurrent mutation: all
// state-mutating operations on one Canvas must form a total order
// established by the caller (spec.md §5).
type Canvas struct {
	width, height int
	pixels        []uint16 // row-major, top-left origin
	scratch       []float64

	background uint16
	brightness float64
	view       Transform

	spots []spot
}

// NewCanvas allocates a width x height canvas with a zero background, unit
// brightness, and the identity view transform. Returns ErrDimension if
// width or height is not positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Canvas.new(%d, %d): %w", width, height, ErrDimension)
	}

	return &Canvas{
		width:      width,
		height:     height,
		pixels:     make([]uint16, width*height),
		brightness: 1.0,
		view:       NewTransform(),
	}, nil
}

// Dimensions returns the canvas's width and height.
func (c *Canvas) Dimensions() (width, height int) {
	return c.width, c.height
}

// String formats the canvas as "Canvas(width, height)".
func (c *Canvas) String() string {
	return fmt.Sprintf("Canvas(%d, %d)", c.width, c.height)
}

// SetBackground stores the background level; it takes effect on the next
// Clear or Draw.
func (c *Canvas) SetBackground(v uint16) {
	c.background = v
}

// Clear fills the pixel buffer with the current background level.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// SetBrightness stores the global illumination multiplier; it does not
// re-rasterize until the next Draw.
func (c *Canvas) SetBrightness(b float64) {
	c.brightness = b
}

// SetViewTransform stores the world-to-canvas view transform; it does not
// re-rasterize until the next Draw.
func (c *Canvas) SetViewTransform(t Transform) {
	c.view = t
}

// AddSpot registers a new spot at canvas-space position (x, y) with the
// given PSF shape and nominal peak intensity, and returns its SpotId. Spot
// offset and illumination start at (0,0) and 1.0 respectively.
func (c *Canvas) AddSpot(x, y float64, shape SpotShape, intensity float64) SpotId {
	c.spots = append(c.spots, newSpot(x, y, shape, intensity))

	return SpotId(len(c.spots) - 1)
}

// SetSpotOffset sets the mutable position delta of the spot id. No-op if
// id does not refer to a registered spot.
func (c *Canvas) SetSpotOffset(id SpotId, dx, dy float64) {
	if !c.validSpot(id) {
		return
	}
	c.spots[id].offset = [2]float64{dx, dy}
}

// SetSpotIllumination sets the mutable illumination multiplier of the spot
// id. No-op if id does not refer to a registered spot.
func (c *Canvas) SetSpotIllumination(id SpotId, k float64) {
	if !c.validSpot(id) {
		return
	}
	c.spots[id].illumination = k
}

// SpotPosition returns view * (position0 + offset) for the spot id. The ok
// result is false if id does not refer to a registered spot.
func (c *Canvas) SpotPosition(id SpotId) (x, y float64, ok bool) {
	if !c.validSpot(id) {
		return 0, 0, false
	}
	wx, wy := c.spots[id].worldPosition()
	x, y = c.view.Apply(wx, wy)

	return x, y, true
}

// SpotIntensity returns intensity0 * illumination * brightness for the spot
// id. The ok result is false if id does not refer to a registered spot.
func (c *Canvas) SpotIntensity(id SpotId) (intensity float64, ok bool) {
	if !c.validSpot(id) {
		return 0, false
	}

	return c.spots[id].effectiveIntensity(c.brightness), true
}

func (c *Canvas) validSpot(id SpotId) bool {
	return id >= 0 && int(id) < len(c.spots)
}

// Draw rebuilds the pixel buffer from scratch: fills it with background,
// then rasterizes every registered spot in insertion order, carrying each
// spot's position and shape through the current view transform and
// saturating-adding its contribution, clamped to [0, PixelMax]. Calling
// Draw again after further mutation recomputes the whole buffer; Draw is
// idempotent if no state changed in between.
func (c *Canvas) Draw() {
	n := c.width * c.height
	if cap(c.scratch) < n {
		c.scratch = make([]float64, n)
	} else {
		c.scratch = c.scratch[:n]
	}

	bg := float64(c.background)
	for i := range c.scratch {
		c.scratch[i] = bg
	}

	vxx, vxy, vyx, vyy := c.view.Linear()

	for i := range c.spots {
		s := &c.spots[i]
		wx, wy := s.worldPosition()
		cx, cy := c.view.Apply(wx, wy)
		effShape := s.shape.mulLinear2x2(vxx, vxy, vyx, vyy)
		amplitude := s.effectiveIntensity(c.brightness) * PixelMax

		rasterizeSpot(c.scratch, c.width, c.height, cx, cy, effShape, amplitude)
	}

	for i, v := range c.scratch {
		c.pixels[i] = clampPixel(v)
	}
}

// clampPixel rounds and saturates a float64 accumulator value to the
// [0, PixelMax] range of a 16-bit pixel.
func clampPixel(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= PixelMax {
		return PixelMax
	}

	return uint16(math.Round(v))
}
