// Package displayq queries the primary display's geometry and the
// current cursor position through the host's own display stack:
// Hyprland's IPC socket on Wayland, the X server on X11, and robotgo on
// macOS and Windows.
//
// Every query is an independent snapshot taken at call time. Nothing is
// cached between calls, no goroutines are spawned, and there is no
// lifecycle beyond process start and stop. When no display session is
// reachable, queries fail with an error wrapping
// ErrEnvironmentUnavailable instead of returning defaults.
//
// All primary queries report the operating system's primary display
// (Hyprland monitor ID 0, the X default screen, robotgo's main
// display). Displays lists the basic bounds of every connected display
// for callers that need more than the primary.
package displayq
