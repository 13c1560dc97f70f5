package displayq

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// hyprBackend talks to Hyprland over its request socket, the same
// channel hyprctl uses. Monitor geometry comes from `j/monitors`
// (JSON), the cursor from `/cursorpos`.
type hyprBackend struct {
	socketPath string

	// stored is the screen info used to scale cursor coordinates from
	// global layout space to physical pixels, kept so a cursor query
	// costs one socket round trip instead of two. Refresh re-reads it
	// after a monitor reconfiguration.
	stored ScreenInfo
}

func newHyprBackend() (*hyprBackend, error) {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return nil, fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE not set: %w", ErrEnvironmentUnavailable)
	}
	b := &hyprBackend{
		socketPath: filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), "hypr", sig, ".socket.sock"),
	}
	info, err := b.ScreenInfo()
	if err != nil {
		return nil, err
	}
	b.stored = info
	return b, nil
}

func (b *hyprBackend) Name() string { return "hyprland" }

// request dials the socket, sends one command, and reads the full
// reply. Hyprland closes the connection after answering.
func (b *hyprBackend) request(cmd string) ([]byte, error) {
	conn, err := net.Dial("unix", b.socketPath)
	if err != nil {
		return nil, fmt.Errorf("hyprland socket %s: %v: %w", b.socketPath, err, ErrEnvironmentUnavailable)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(cmd)); err != nil {
		return nil, fmt.Errorf("hyprland request %q: %w", cmd, err)
	}
	data, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("hyprland reply for %q: %w", cmd, err)
	}
	return data, nil
}

// hyprMonitor is the subset of Hyprland's monitor JSON we consume.
type hyprMonitor struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   float64 `json:"scale"`
	Focused bool    `json:"focused"`
}

func (b *hyprBackend) monitors() ([]hyprMonitor, error) {
	data, err := b.request("j/monitors")
	if err != nil {
		return nil, err
	}
	var monitors []hyprMonitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return nil, fmt.Errorf("parse hyprland monitors: %w", err)
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("hyprland reported no monitors: %w", ErrEnvironmentUnavailable)
	}
	return monitors, nil
}

// ScreenInfo reports the monitor with ID 0. Width and height are the
// configured display resolution, not the scaled layout size.
func (b *hyprBackend) ScreenInfo() (ScreenInfo, error) {
	monitors, err := b.monitors()
	if err != nil {
		return ScreenInfo{}, err
	}
	found := 0
	var primary hyprMonitor
	for _, m := range monitors {
		if m.ID == 0 {
			primary = m
			found++
		}
	}
	switch found {
	case 0:
		return ScreenInfo{}, fmt.Errorf("no monitor with id 0: %w", ErrEnvironmentUnavailable)
	case 1:
		return ScreenInfo{Width: primary.Width, Height: primary.Height, Scale: primary.Scale}, nil
	default:
		return ScreenInfo{}, fmt.Errorf("expected exactly one monitor with id 0, found %d", found)
	}
}

// CursorPosition converts Hyprland's global layout coordinates to
// physical pixels. A monitor with a 2x scale occupies half its pixel
// size in layout space, so the raw coordinates are multiplied by the
// stored scale factor.
func (b *hyprBackend) CursorPosition() (CursorPosition, error) {
	data, err := b.request("/cursorpos")
	if err != nil {
		return CursorPosition{}, err
	}
	p, err := parsePoint(string(data))
	if err != nil {
		return CursorPosition{}, err
	}
	return scalePoint(p, b.stored.Scale), nil
}

func (b *hyprBackend) Displays() ([]DisplayBounds, error) {
	monitors, err := b.monitors()
	if err != nil {
		return nil, err
	}
	out := make([]DisplayBounds, len(monitors))
	for i, m := range monitors {
		out[i] = DisplayBounds{
			Index:   m.ID,
			X:       m.X,
			Y:       m.Y,
			Width:   m.Width,
			Height:  m.Height,
			Primary: m.ID == 0,
		}
	}
	return out, nil
}

// Refresh re-reads the stored screen info used for cursor scaling.
func (b *hyprBackend) Refresh() error {
	info, err := b.ScreenInfo()
	if err != nil {
		return err
	}
	b.stored = info
	return nil
}

// parsePoint parses Hyprland's "x, y" cursor reply.
func parsePoint(s string) (CursorPosition, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return CursorPosition{}, fmt.Errorf("malformed cursor reply %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return CursorPosition{}, fmt.Errorf("malformed cursor reply %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return CursorPosition{}, fmt.Errorf("malformed cursor reply %q: %w", s, err)
	}
	return CursorPosition{X: x, Y: y}, nil
}

// scalePoint converts layout coordinates to physical pixels.
func scalePoint(p CursorPosition, scale float64) CursorPosition {
	if scale == 0 {
		scale = 1
	}
	return CursorPosition{
		X: int(math.Round(float64(p.X) * scale)),
		Y: int(math.Round(float64(p.Y) * scale)),
	}
}
