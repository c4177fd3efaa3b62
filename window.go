package pyplanetarium

import "fmt"

// Window is an integer rectangle describing an export crop: x,y is the
// top-left corner in canvas pixel coordinates, w,h is the size. A Window
// may extend partially outside the canvas; pixels outside read as 0 in the
// exported stream.
type Window struct {
	x, y, w, h int
}

// NewWindow returns a window of size w x h placed at the origin. Returns
// ErrArgumentShape if w or h is not positive.
func NewWindow(w, h int) (Window, error) {
	if w <= 0 || h <= 0 {
		return Window{}, fmt.Errorf("Window: %w", ErrArgumentShape)
	}

	return Window{x: 0, y: 0, w: w, h: h}, nil
}

// NewWindowRect returns a window with the given position and size,
// mirroring the Python crate's Window(((x,y),(w,h))) constructor. Returns
// ErrArgumentShape if w or h is not positive.
func NewWindowRect(x, y, w, h int) (Window, error) {
	if w <= 0 || h <= 0 {
		return Window{}, fmt.Errorf("Window: %w", ErrArgumentShape)
	}

	return Window{x: x, y: y, w: w, h: h}, nil
}

// At returns a new window with the same size at the given position.
func (w Window) At(x, y int) Window {
	return Window{x: x, y: y, w: w.w, h: w.h}
}

// Rect returns the window's position and size.
func (w Window) Rect() (x, y, width, height int) {
	return w.x, w.y, w.w, w.h
}

// String formats the window as "(x, y)+(w, h)".
func (w Window) String() string {
	return fmt.Sprintf("(%d, %d)+(%d, %d)", w.x, w.y, w.w, w.h)
}

// GoString formats the window for debugging.
func (w Window) GoString() string {
	return fmt.Sprintf("Window { x: %d, y: %d, w: %d, h: %d }", w.x, w.y, w.w, w.h)
}
