package robot

import "fmt"

// Robot represents robot orientation and position inside a room.
// A Robot is not safe for concurrent use.
type Robot struct {
	bounds      Bounds
	orientation Orientation
	x, y        int
}

// New places a robot facing north at (0,0). The bounds are trusted to be
// valid; callers parsing user input should check Bounds.Validate first.
func New(bounds Bounds) *Robot {
	return &Robot{bounds: bounds, orientation: North}
}

func (r *Robot) Apply(cmd Command) {
	switch cmd {
	case MoveForward:
		r.walk(1)
	case MoveBackward:
		r.walk(-1)
	case TurnRight:
		r.orientation = r.orientation.Right()
	case TurnLeft:
		r.orientation = r.orientation.Left()
	}
}

func (r *Robot) ApplyAll(cmds []Command) {
	for _, cmd := range cmds {
		r.Apply(cmd)
	}
}

// walk moves the robot step cells along its orientation. Each axis is
// clamped on its own: an out-of-room coordinate is dropped and the other
// axis is still taken.
func (r *Robot) walk(step int) {
	vec := steps[r.orientation]
	x := r.x + vec.dx*step
	y := r.y + vec.dy*step

	if r.bounds.inX(x) {
		r.x = x
	}
	if r.bounds.inY(y) {
		r.y = y
	}
}

func (r *Robot) Orientation() Orientation {
	return r.orientation
}

func (r *Robot) Position() (int, int) {
	return r.x, r.y
}

func (r *Robot) Bounds() Bounds {
	return r.bounds
}

// String formats the robot as "<code> <x> <y>", e.g. "L 3 4".
func (r *Robot) String() string {
	return fmt.Sprintf("%c %d %d", r.orientation.Code(), r.x, r.y)
}
