//go:build !linux && !darwin && !windows

package displayq

// Detect fails on platforms without a display backend.
func Detect() (Backend, error) {
	return nil, ErrUnsupportedPlatform
}
