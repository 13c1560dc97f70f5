//go:build darwin || windows

package displayq

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// robotBackend delegates to robotgo, which wraps CoreGraphics on macOS
// and the Win32 API on Windows. robotgo normalizes DPI scaling itself,
// so Scale is always 1.
type robotBackend struct{}

func newRobotBackend() *robotBackend { return &robotBackend{} }

func (r *robotBackend) Name() string { return "robotgo" }

func (r *robotBackend) ScreenInfo() (ScreenInfo, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return ScreenInfo{}, fmt.Errorf("no display reported: %w", ErrEnvironmentUnavailable)
	}
	return ScreenInfo{Width: w, Height: h, Scale: 1.0}, nil
}

func (r *robotBackend) CursorPosition() (CursorPosition, error) {
	x, y := robotgo.Location()
	return CursorPosition{X: x, Y: y}, nil
}

func (r *robotBackend) Displays() ([]DisplayBounds, error) {
	return enumDisplays()
}
