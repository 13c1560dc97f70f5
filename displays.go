//go:build linux || darwin || windows

package displayq

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// enumDisplays lists every active display's bounds in virtual-desktop
// coordinates. Display 0 is the primary.
func enumDisplays() ([]DisplayBounds, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, fmt.Errorf("no active displays: %w", ErrEnvironmentUnavailable)
	}
	out := make([]DisplayBounds, n)
	for i := 0; i < n; i++ {
		r := screenshot.GetDisplayBounds(i)
		out[i] = DisplayBounds{
			Index:   i,
			X:       r.Min.X,
			Y:       r.Min.Y,
			Width:   r.Dx(),
			Height:  r.Dy(),
			Primary: i == 0,
		}
	}
	return out, nil
}
