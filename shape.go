package pyplanetarium

import (
	"fmt"
	"math"
)

// SpotShape is a 2x2 real matrix describing a spot's point-spread-function
// footprint:
//
//	[[xx, xy],
//	 [yx, yy]]
//
// The zero value is not identity; use NewSpotShape. Values are immutable:
// every operation returns a new SpotShape rather than mutating the receiver.
type SpotShape struct {
	xx, xy, yx, yy float64
}

// NewSpotShape returns the identity shape.
func NewSpotShape() SpotShape {
	return SpotShape{xx: 1, xy: 0, yx: 0, yy: 1}
}

// NewSpotShapeScalar returns s*I.
func NewSpotShapeScalar(s float64) SpotShape {
	return SpotShape{xx: s, xy: 0, yx: 0, yy: s}
}

// NewSpotShapeDiag returns diag(kx, ky).
func NewSpotShapeDiag(kx, ky float64) SpotShape {
	return SpotShape{xx: kx, xy: 0, yx: 0, yy: ky}
}

// NewSpotShapeMatrix returns the shape with the given coefficients.
func NewSpotShapeMatrix(xx, xy, yx, yy float64) SpotShape {
	return SpotShape{xx: xx, xy: xy, yx: yx, yy: yy}
}

// NewSpotShapeMatrixFromRows builds a SpotShape from a nested 2x2 slice,
// mirroring the Python crate's SpotShape([[xx, xy], [yx, yy]]) constructor.
// Returns ErrArgumentShape if rows is not exactly 2 rows of 2 columns each.
func NewSpotShapeMatrixFromRows(rows [][]float64) (SpotShape, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return SpotShape{}, fmt.Errorf("SpotShape: %w", ErrArgumentShape)
	}

	return NewSpotShapeMatrix(rows[0][0], rows[0][1], rows[1][0], rows[1][1]), nil
}

// Coefficients returns the four matrix entries (xx, xy, yx, yy).
func (s SpotShape) Coefficients() (xx, xy, yx, yy float64) {
	return s.xx, s.xy, s.yx, s.yy
}

// Scale returns a new shape equal to k*I composed after s, i.e. every
// coefficient of s multiplied by k.
func (s SpotShape) Scale(k float64) SpotShape {
	return SpotShape{xx: k * s.xx, xy: k * s.xy, yx: k * s.yx, yy: k * s.yy}
}

// Stretch returns a new shape equal to diag(kx,ky) applied after s: the
// first row of s is scaled by kx, the second row by ky.
func (s SpotShape) Stretch(kx, ky float64) SpotShape {
	return SpotShape{xx: kx * s.xx, xy: kx * s.xy, yx: ky * s.yx, yy: ky * s.yy}
}

// Rotate returns a new shape equal to the rotation by deg degrees applied
// after s (left-multiplication by the rotation matrix).
func (s SpotShape) Rotate(deg float64) SpotShape {
	rad := deg * math.Pi / 180
	c, sn := math.Cos(rad), math.Sin(rad)

	return SpotShape{
		xx: c*s.xx - sn*s.yx,
		xy: c*s.xy - sn*s.yy,
		yx: sn*s.xx + c*s.yx,
		yy: sn*s.xy + c*s.yy,
	}
}

// mulLinear2x2 returns a*s, the 2x2 product of a (the matrix given by the
// arguments, the linear part of a Transform) with this shape s, used by
// Canvas.Draw to carry a spot's shape through the current view transform.
func (s SpotShape) mulLinear2x2(xx, xy, yx, yy float64) SpotShape {
	return SpotShape{
		xx: xx*s.xx + xy*s.yx,
		xy: xx*s.xy + xy*s.yy,
		yx: yx*s.xx + yy*s.yx,
		yy: yx*s.xy + yy*s.yy,
	}
}

// String formats the shape as "[[xx, xy], [yx, yy]]", omitting trailing
// zeros in each coefficient (e.g. "1" not "1.0", "3.5" preserved).
func (s SpotShape) String() string {
	return fmt.Sprintf("[[%s, %s], [%s, %s]]",
		formatTrimmed(s.xx), formatTrimmed(s.xy), formatTrimmed(s.yx), formatTrimmed(s.yy))
}

// GoString formats the shape for debugging, always showing at least one
// fractional digit: "SpotShape { xx: 1.0, xy: 0.0, yx: 0.0, yy: 1.0 }".
func (s SpotShape) GoString() string {
	return fmt.Sprintf("SpotShape { xx: %s, xy: %s, yx: %s, yy: %s }",
		formatDebug(s.xx), formatDebug(s.xy), formatDebug(s.yx), formatDebug(s.yy))
}

// formatTrimmed formats a float without a trailing ".0" for whole numbers,
// but preserves meaningful fractional digits. Go's "%g" verb already drops
// trailing zeros, which is exactly the behavior spec.md §4.A asks for.
func formatTrimmed(v float64) string {
	return fmt.Sprintf("%g", v)
}

// formatDebug formats a float with at least one fractional digit.
func formatDebug(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%.1f", v)
	}

	return fmt.Sprintf("%g", v)
}
