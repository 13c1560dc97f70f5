package displayq

import (
	"errors"
	"testing"
)

// requireUnavailable accepts the two legitimate failure modes for a
// machine with no display: the environment error contract or an
// unsupported GOOS.
func requireUnavailable(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrEnvironmentUnavailable) && !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected environment error, got: %v", err)
	}
}

func TestSize_LiveOrUnavailable(t *testing.T) {
	size, err := Size()
	if err != nil {
		requireUnavailable(t, err)
		return
	}
	if size.Width <= 0 || size.Height <= 0 {
		t.Errorf("screen size must be positive, got %+v", size)
	}
}

func TestSize_StableAcrossCalls(t *testing.T) {
	first, err := Size()
	if err != nil {
		requireUnavailable(t, err)
		return
	}
	second, err := Size()
	if err != nil {
		t.Fatalf("second query failed after first succeeded: %v", err)
	}
	if first != second {
		t.Errorf("back-to-back size queries differ: %+v vs %+v", first, second)
	}
}

func TestCursor_WithinPrimaryBounds(t *testing.T) {
	pos, err := Cursor()
	if err != nil {
		requireUnavailable(t, err)
		return
	}
	if pos.X < 0 || pos.Y < 0 {
		t.Errorf("cursor coordinates must be non-negative, got %+v", pos)
	}

	size, err := Size()
	if err != nil {
		t.Fatalf("size query failed after cursor succeeded: %v", err)
	}
	if displays, err := Displays(); err == nil && len(displays) > 1 {
		t.Skip("cursor may legitimately sit outside the primary display on multi-monitor setups")
	}
	if !pos.Within(size) {
		t.Errorf("cursor %+v outside screen %+v", pos, size)
	}
}

func TestDisplays_ExactlyOnePrimary(t *testing.T) {
	displays, err := Displays()
	if err != nil {
		requireUnavailable(t, err)
		return
	}
	if len(displays) == 0 {
		t.Fatal("Displays returned an empty list without an error")
	}
	primaries := 0
	for _, d := range displays {
		if d.Primary {
			primaries++
		}
		if d.Width <= 0 || d.Height <= 0 {
			t.Errorf("display %d has non-positive bounds: %+v", d.Index, d)
		}
	}
	if primaries != 1 {
		t.Errorf("expected exactly one primary display, got %d", primaries)
	}
}

type staticBackend struct{}

func (staticBackend) Name() string { return "static" }

func (staticBackend) ScreenInfo() (ScreenInfo, error) {
	return ScreenInfo{Width: 1920, Height: 1080, Scale: 1}, nil
}

func (staticBackend) CursorPosition() (CursorPosition, error) { return CursorPosition{}, nil }

func (staticBackend) Displays() ([]DisplayBounds, error) { return nil, nil }

func TestRefreshScreenInfo_StatelessBackend(t *testing.T) {
	if err := RefreshScreenInfo(staticBackend{}); err != nil {
		t.Errorf("refresh on a stateless backend should be a no-op, got: %v", err)
	}
}
