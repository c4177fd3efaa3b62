// Package pyplanetarium synthesizes grayscale images of small, diffuse
// light spots (e.g. stars) on a rectangular canvas, at sub-pixel precision
// and 16-bit depth, then exports the result as raw or PNG pixel streams.
//
// It is built for simulation and testing tools that need reproducible,
// physically-plausible star-field frames, including windowed crops as
// would be read out by a region-of-interest sensor.
//
// The package is organized around five types:
//
//	SpotShape — a 2x2 matrix describing a spot's point-spread-function footprint
//	Transform — a 2x3 affine map from world space to canvas pixel space
//	Window    — an integer rectangle describing an export crop
//	SpotId    — an opaque handle to a spot registered on a Canvas
//	Canvas    — the pixel accumulator: owns spots, background, brightness and view
//
// A typical session adds one or more spots to a Canvas, optionally mutates
// their offset/illumination or the canvas view transform, calls Draw, and
// exports the accumulator with one of the ImageFormat codecs.
//
//	canvas, _ := pyplanetarium.NewCanvas(256, 256)
//	shape := pyplanetarium.NewSpotShape().Scale(3.5)
//	canvas.AddSpot(100.5, 200.7, shape, 0.8)
//	canvas.SetBackground(5000)
//	canvas.Draw()
//	png, _ := canvas.ExportImage(pyplanetarium.PngGamma8Bpp)
package pyplanetarium
