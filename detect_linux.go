package displayq

import (
	"fmt"
	"os"
)

// Detect returns the backend for the current session. Hyprland is
// reached over its IPC socket; every other session goes through the X
// server, including XWayland when only DISPLAY is set. Non-Hyprland
// Wayland compositors expose no portable cursor query and are rejected.
func Detect() (Backend, error) {
	switch os.Getenv("XDG_SESSION_TYPE") {
	case "wayland":
		if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
			return newHyprBackend()
		}
		return nil, fmt.Errorf("wayland session without a Hyprland instance: %w", ErrEnvironmentUnavailable)
	case "x11":
		return newX11Backend(), nil
	default:
		// Session type unset (ssh, cron, bare console). An X server may
		// still be reachable through DISPLAY, e.g. Xvfb.
		if os.Getenv("DISPLAY") != "" {
			return newX11Backend(), nil
		}
		return nil, fmt.Errorf("no display session detected: %w", ErrEnvironmentUnavailable)
	}
}
