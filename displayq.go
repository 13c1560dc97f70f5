package displayq

// Size queries the live resolution of the primary display.
func Size() (ScreenSize, error) {
	backend, err := Detect()
	if err != nil {
		return ScreenSize{}, err
	}
	info, err := backend.ScreenInfo()
	if err != nil {
		return ScreenSize{}, err
	}
	return info.Size(), nil
}

// Cursor queries the current pointer position in physical pixels.
func Cursor() (CursorPosition, error) {
	backend, err := Detect()
	if err != nil {
		return CursorPosition{}, err
	}
	return backend.CursorPosition()
}

// Info queries the primary display's resolution and scale factor.
func Info() (ScreenInfo, error) {
	backend, err := Detect()
	if err != nil {
		return ScreenInfo{}, err
	}
	return backend.ScreenInfo()
}

// Displays lists the basic bounds of every connected display.
func Displays() ([]DisplayBounds, error) {
	backend, err := Detect()
	if err != nil {
		return nil, err
	}
	return backend.Displays()
}

// RefreshScreenInfo re-reads the stored screen info on backends that
// cache it for coordinate scaling, after a monitor reconfiguration.
// It is a no-op for stateless backends.
func RefreshScreenInfo(b Backend) error {
	if r, ok := b.(Refresher); ok {
		return r.Refresh()
	}
	return nil
}
