package robot

// Orientation is the direction the robot is facing.
type Orientation int

const (
	North Orientation = iota
	South
	East
	West
)

// turns[o] holds the orientation after a right and a left turn from o.
var turns = map[Orientation]struct{ right, left Orientation }{
	North: {right: East, left: West},
	East:  {right: South, left: North},
	South: {right: West, left: East},
	West:  {right: North, left: South},
}

// step vector for a forward move
var steps = map[Orientation]struct{ dx, dy int }{
	North: {0, 1},
	South: {0, -1},
	East:  {1, 0},
	West:  {-1, 0},
}

// output codes; East and West are L and O
var codes = map[Orientation]byte{
	North: 'N',
	South: 'S',
	East:  'L',
	West:  'O',
}

func (o Orientation) Right() Orientation { return turns[o].right }

func (o Orientation) Left() Orientation { return turns[o].left }

// Code returns the single-letter output code.
func (o Orientation) Code() byte {
	return codes[o]
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}
