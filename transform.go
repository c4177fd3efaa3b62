package pyplanetarium

import (
	"fmt"
	"math"
)

// Transform is a 2x3 real affine map from world coordinates to canvas pixel
// coordinates:
//
//	[[xx, xy, tx],
//	 [yx, yy, ty]]
//
// Applying a Transform to a point (x, y) yields (xx*x + xy*y + tx,
// yx*x + yy*y + ty). The zero value is not identity; use NewTransform.
type Transform struct {
	xx, xy, tx float64
	yx, yy, ty float64
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{xx: 1, xy: 0, tx: 0, yx: 0, yy: 1, ty: 0}
}

// NewTransformScalar returns diag(s,s) with zero translation.
func NewTransformScalar(s float64) Transform {
	return Transform{xx: s, xy: 0, tx: 0, yx: 0, yy: s, ty: 0}
}

// NewTransformTranslation returns the identity linear part with the given
// translation.
func NewTransformTranslation(tx, ty float64) Transform {
	return Transform{xx: 1, xy: 0, tx: tx, yx: 0, yy: 1, ty: ty}
}

// NewTransformLinear returns the given 2x2 linear part with zero
// translation.
func NewTransformLinear(xx, xy, yx, yy float64) Transform {
	return Transform{xx: xx, xy: xy, tx: 0, yx: yx, yy: yy, ty: 0}
}

// NewTransformFull returns the full 2x3 transform.
func NewTransformFull(xx, xy, tx, yx, yy, ty float64) Transform {
	return Transform{xx: xx, xy: xy, tx: tx, yx: yx, yy: yy, ty: ty}
}

// NewTransformLinearFromRows builds a Transform's linear part from a nested
// 2x2 slice (zero translation), mirroring the Python crate's
// Transform([[xx, xy], [yx, yy]]) constructor.
func NewTransformLinearFromRows(rows [][]float64) (Transform, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return Transform{}, fmt.Errorf("Transform: %w", ErrArgumentShape)
	}

	return NewTransformLinear(rows[0][0], rows[0][1], rows[1][0], rows[1][1]), nil
}

// NewTransformFullFromRows builds a Transform from a nested 2x3 slice,
// mirroring Transform([[xx, xy, tx], [yx, yy, ty]]).
func NewTransformFullFromRows(rows [][]float64) (Transform, error) {
	if len(rows) != 2 || len(rows[0]) != 3 || len(rows[1]) != 3 {
		return Transform{}, fmt.Errorf("Transform: %w", ErrArgumentShape)
	}

	return NewTransformFull(rows[0][0], rows[0][1], rows[0][2], rows[1][0], rows[1][1], rows[1][2]), nil
}

// Linear returns the 2x2 linear part (xx, xy, yx, yy), dropping translation.
func (t Transform) Linear() (xx, xy, yx, yy float64) {
	return t.xx, t.xy, t.yx, t.yy
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.xx*x + t.xy*y + t.tx, t.yx*x + t.yy*y + t.ty
}

// Scale returns a new transform equal to k*I applied after t: every
// coefficient of t (linear part and translation) multiplied by k.
func (t Transform) Scale(k float64) Transform {
	return Transform{
		xx: k * t.xx, xy: k * t.xy, tx: k * t.tx,
		yx: k * t.yx, yy: k * t.yy, ty: k * t.ty,
	}
}

// Stretch returns a new transform equal to diag(kx,ky) applied after t: the
// first row of t (xx, xy, tx) is scaled by kx, the second row (yx, yy, ty)
// by ky.
func (t Transform) Stretch(kx, ky float64) Transform {
	return Transform{
		xx: kx * t.xx, xy: kx * t.xy, tx: kx * t.tx,
		yx: ky * t.yx, yy: ky * t.yy, ty: ky * t.ty,
	}
}

// Rotate returns a new transform equal to the rotation by deg degrees
// applied after t (left-multiplication by the rotation matrix).
func (t Transform) Rotate(deg float64) Transform {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)

	return Transform{
		xx: c*t.xx - s*t.yx,
		xy: c*t.xy - s*t.yy,
		tx: c*t.tx - s*t.ty,
		yx: s*t.xx + c*t.yx,
		yy: s*t.xy + c*t.yy,
		ty: s*t.tx + c*t.ty,
	}
}

// Translate returns a new transform with (dx, dy) added to the translation
// component; the linear part is unchanged.
func (t Transform) Translate(dx, dy float64) Transform {
	return Transform{
		xx: t.xx, xy: t.xy, tx: t.tx + dx,
		yx: t.yx, yy: t.yy, ty: t.ty + dy,
	}
}

// Compose returns a new transform representing t applied first, then other
// applied on top: Compose(other).Apply(p) == other.Apply(t.Apply(p)).
//
// This is the pipeline order a fluent builder chain reads in, not the
// textbook (A∘B)(p)=A(B(p)) convention — see SPEC_FULL.md §3 for the
// numeric witness that pins this direction.
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		xx: other.xx*t.xx + other.xy*t.yx,
		xy: other.xx*t.xy + other.xy*t.yy,
		tx: other.xx*t.tx + other.xy*t.ty + other.tx,
		yx: other.yx*t.xx + other.yy*t.yx,
		yy: other.yx*t.xy + other.yy*t.yy,
		ty: other.yx*t.tx + other.yy*t.ty + other.ty,
	}
}

// String formats the transform as "[[xx, xy, tx], [yx, yy, ty]]", omitting
// trailing zeros in each coefficient.
func (t Transform) String() string {
	return fmt.Sprintf("[[%s, %s, %s], [%s, %s, %s]]",
		formatTrimmed(t.xx), formatTrimmed(t.xy), formatTrimmed(t.tx),
		formatTrimmed(t.yx), formatTrimmed(t.yy), formatTrimmed(t.ty))
}

// GoString formats the transform for debugging, always showing at least one
// fractional digit.
func (t Transform) GoString() string {
	return fmt.Sprintf("Transform { xx: %s, xy: %s, yx: %s, yy: %s, tx: %s, ty: %s }",
		formatDebug(t.xx), formatDebug(t.xy), formatDebug(t.yx), formatDebug(t.yy),
		formatDebug(t.tx), formatDebug(t.ty))
}
