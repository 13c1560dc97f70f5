package displayq

// ScreenSize is the primary display's addressable resolution in pixels,
// captured at the instant of the query.
type ScreenSize struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// CursorPosition is the pointer location in physical pixels, origin at
// the top-left corner of the primary display.
type CursorPosition struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Within reports whether the position falls inside a screen of the
// given size.
func (p CursorPosition) Within(s ScreenSize) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// ScreenInfo is the primary display's resolution plus the compositor's
// configured scale factor, where 1 means no scaling. Scale is 1.0 on
// platforms whose automation layer already reports physical pixels.
type ScreenInfo struct {
	Width  int     `yaml:"width"  json:"width"`
	Height int     `yaml:"height" json:"height"`
	Scale  float64 `yaml:"scale"  json:"scale"`
}

// Size returns the resolution part of the info.
func (i ScreenInfo) Size() ScreenSize {
	return ScreenSize{Width: i.Width, Height: i.Height}
}

// DisplayBounds describes one connected display's rectangle within the
// virtual desktop.
type DisplayBounds struct {
	Index   int  `yaml:"index"             json:"index"`
	X       int  `yaml:"x"                 json:"x"`
	Y       int  `yaml:"y"                 json:"y"`
	Width   int  `yaml:"width"             json:"width"`
	Height  int  `yaml:"height"            json:"height"`
	Primary bool `yaml:"primary,omitempty" json:"primary,omitempty"`
}

// Backend answers display queries for one kind of session. Every call
// performs a live round trip to the OS; results are independent
// snapshots with no freshness guarantee beyond the instant of the call.
type Backend interface {
	// Name identifies the backend, e.g. "hyprland", "x11", "robotgo".
	Name() string

	// ScreenInfo returns the primary display's resolution and scale.
	ScreenInfo() (ScreenInfo, error)

	// CursorPosition returns the pointer location in physical pixels.
	CursorPosition() (CursorPosition, error)

	// Displays lists the basic bounds of every connected display.
	Displays() ([]DisplayBounds, error)
}

// Refresher is implemented by backends that keep a stored copy of the
// screen info for coordinate scaling (currently Hyprland only).
type Refresher interface {
	Refresh() error
}
