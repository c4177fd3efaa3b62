package pyplanetarium

import "fmt"

// SpotId is an opaque handle to a spot registered on a Canvas: a dense,
// non-negative index assigned in insertion order. It remains valid for the
// lifetime of the Canvas that issued it.
type SpotId int

// String formats the id as "SpotId(N)".
func (id SpotId) String() string {
	return fmt.Sprintf("SpotId(%d)", int(id))
}

// spot is the internal mutable state of one registered light source.
type spot struct {
	position0    [2]float64 // nominal canvas-space position at registration
	shape        SpotShape  // PSF matrix
	intensity0   float64    // nominal peak illumination
	offset       [2]float64 // mutable delta added to position0
	illumination float64    // mutable multiplier applied on top of intensity0
}

func newSpot(x, y float64, shape SpotShape, intensity float64) spot {
	return spot{
		position0:    [2]float64{x, y},
		shape:        shape,
		intensity0:   intensity,
		offset:       [2]float64{0, 0},
		illumination: 1.0,
	}
}

// worldPosition returns position0 + offset, before the view transform.
func (s spot) worldPosition() (x, y float64) {
	return s.position0[0] + s.offset[0], s.position0[1] + s.offset[1]
}

// effectiveIntensity returns intensity0 * illumination * brightness.
func (s spot) effectiveIntensity(brightness float64) float64 {
	return s.intensity0 * s.illumination * brightness
}
