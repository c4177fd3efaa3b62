package pyplanetarium_test

import (
	"testing"

	"github.com/ravenexp/pyplanetarium"
	"github.com/stretchr/testify/require"
)

// TestWindowRect mirrors test_window.py's test_init.
func TestWindowRect(t *testing.T) {
	w, err := pyplanetarium.NewWindowRect(10, 20, 100, 200)
	require.NoError(t, err)
	require.Equal(t, "(10, 20)+(100, 200)", w.String())
	require.Equal(t, "Window { x: 10, y: 20, w: 100, h: 200 }", w.GoString())

	x, y, width, height := w.Rect()
	require.Equal(t, 10, x)
	require.Equal(t, 20, y)
	require.Equal(t, 100, width)
	require.Equal(t, 200, height)
}

// TestWindowNewAt mirrors test_window.py's test_new_at.
func TestWindowNewAt(t *testing.T) {
	w, err := pyplanetarium.NewWindow(100, 200)
	require.NoError(t, err)
	require.Equal(t, "(0, 0)+(100, 200)", w.String())

	moved := w.At(10, 20)
	require.Equal(t, "(10, 20)+(100, 200)", moved.String())

	// At must not mutate the receiver.
	require.Equal(t, "(0, 0)+(100, 200)", w.String())
}

// TestWindowShapeErrors checks the non-positive dimension rejection.
func TestWindowShapeErrors(t *testing.T) {
	_, err := pyplanetarium.NewWindow(0, 10)
	require.ErrorIs(t, err, pyplanetarium.ErrArgumentShape)

	_, err = pyplanetarium.NewWindow(10, -1)
	require.ErrorIs(t, err, pyplanetarium.ErrArgumentShape)

	_, err = pyplanetarium.NewWindowRect(5, 5, 0, 10)
	require.ErrorIs(t, err, pyplanetarium.ErrArgumentShape)
}
