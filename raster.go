package pyplanetarium

import "math"

// psfCutoffSigma bounds the PSF footprint: pixels farther than this many
// "sigmas" (in the metric induced by S*S^T) from the spot center are left
// untouched. At 6 sigma the contribution is exp(-18), about 1.5e-8 of the
// peak, well under any quantization step of a 16-bit accumulator.
const psfCutoffSigma = 6.0

// degenerateDet is the determinant threshold below which a shape matrix is
// treated as singular (e.g. produced by Scale(0) or a rank-1 stretch) and
// rasterized as a single-pixel delta rather than an elliptical Gaussian.
const degenerateDet = 1e-12

// rasterizeSpot accumulates one spot's point-spread function into acc, a
// row-major float64 buffer of size width*height, centered at (cx, cy) with
// shape matrix effShape and peak amplitude amplitude.
//
// The PSF is a 2-D Gaussian with covariance effShape*effShape^T: its value
// at an offset Δ from the center is amplitude * exp(-0.5 * Δ^T M^-1 Δ),
// where M = effShape*effShape^T. This satisfies the peak, monotone
// falloff, locality and determinism contracts of spec.md §4.F without
// depending on any particular implementation beyond those externally
// observable properties.
func rasterizeSpot(acc []float64, width, height int, cx, cy float64, effShape SpotShape, amplitude float64) {
	xx, xy, yx, yy := effShape.Coefficients()

	// M = S * S^T (symmetric positive semi-definite).
	m11 := xx*xx + xy*xy
	m12 := xx*yx + xy*yy
	m22 := yx*yx + yy*yy
	det := m11*m22 - m12*m12

	if det <= degenerateDet {
		rasterizeDelta(acc, width, height, cx, cy, amplitude)
		return
	}

	// Inverse of M, for the Mahalanobis-distance falloff.
	inv11 := m22 / det
	inv12 := -m12 / det
	inv22 := m11 / det

	// Largest eigenvalue of M bounds the PSF's spatial extent.
	tr := m11 + m22
	disc := math.Sqrt(math.Max(0, (m11-m22)*(m11-m22)/4+m12*m12))
	maxEig := tr/2 + disc
	if maxEig < 0 {
		maxEig = 0
	}
	sigmaMax := math.Sqrt(maxEig)
	radius := int(math.Ceil(psfCutoffSigma*sigmaMax)) + 1

	cutoffMahal := psfCutoffSigma * psfCutoffSigma

	ixCenter := int(math.Floor(cx))
	iyCenter := int(math.Floor(cy))

	xLo, xHi := clampRange(ixCenter-radius, ixCenter+radius, width)
	yLo, yHi := clampRange(iyCenter-radius, iyCenter+radius, height)

	for iy := yLo; iy < yHi; iy++ {
		py := float64(iy) + 0.5
		dy := py - cy
		row := iy * width
		for ix := xLo; ix < xHi; ix++ {
			px := float64(ix) + 0.5
			dx := px - cx

			mahal := inv11*dx*dx + 2*inv12*dx*dy + inv22*dy*dy
			if mahal > cutoffMahal {
				continue
			}

			acc[row+ix] += amplitude * math.Exp(-0.5*mahal)
		}
	}
}

// rasterizeDelta handles a singular shape matrix by depositing the full
// amplitude into the single pixel nearest the spot center.
func rasterizeDelta(acc []float64, width, height int, cx, cy, amplitude float64) {
	ix := int(math.Floor(cx))
	iy := int(math.Floor(cy))
	if ix < 0 || ix >= width || iy < 0 || iy >= height {
		return
	}

	acc[iy*width+ix] += amplitude
}

// clampRange clips [lo, hi] to [0, limit), returning a half-open range
// suitable for a for-loop (lo <= i < hi).
func clampRange(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi+1 > limit {
		hi = limit - 1
	}

	return lo, hi + 1
}
