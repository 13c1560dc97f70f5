package displayq

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// x11Backend queries the X server directly. A connection is opened per
// call so the backend carries no state and needs no teardown.
type x11Backend struct{}

func newX11Backend() *x11Backend { return &x11Backend{} }

func (x *x11Backend) Name() string { return "x11" }

func (x *x11Backend) connect() (*xgb.Conn, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %v: %w", err, ErrEnvironmentUnavailable)
	}
	return conn, nil
}

func (x *x11Backend) ScreenInfo() (ScreenInfo, error) {
	conn, err := x.connect()
	if err != nil {
		return ScreenInfo{}, err
	}
	defer conn.Close()
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return ScreenInfo{
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
		Scale:  1.0,
	}, nil
}

func (x *x11Backend) CursorPosition() (CursorPosition, error) {
	conn, err := x.connect()
	if err != nil {
		return CursorPosition{}, err
	}
	defer conn.Close()
	screen := xproto.Setup(conn).DefaultScreen(conn)
	reply, err := xproto.QueryPointer(conn, screen.Root).Reply()
	if err != nil {
		return CursorPosition{}, fmt.Errorf("query pointer: %w", err)
	}
	return CursorPosition{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

func (x *x11Backend) Displays() ([]DisplayBounds, error) {
	return enumDisplays()
}
