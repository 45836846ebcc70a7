package robot

import (
	"github.com/pkg/errors"
)

// Bounds is the room size. Valid coordinates are x in [0, Width) and
// y in [0, Height).
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return errors.Errorf("room size must be positive, got %dx%d", b.Width, b.Height)
	}
	return nil
}

func (b Bounds) InBounds(x, y int) bool {
	return b.inX(x) && b.inY(y)
}

func (b Bounds) inX(x int) bool { return x >= 0 && x < b.Width }

func (b Bounds) inY(y int) bool { return y >= 0 && y < b.Height }
