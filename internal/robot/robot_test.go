package robot

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, log string) []Command {
	t.Helper()
	cmds, err := ParseCommands(log)
	require.NoError(t, err)
	return cmds
}

func TestNewRobot(t *testing.T) {
	r := New(Bounds{Width: 5, Height: 7})
	assert.Equal(t, North, r.Orientation())
	x, y := r.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, Bounds{Width: 5, Height: 7}, r.Bounds())
	assert.Equal(t, "N 0 0", r.String())
}

func TestTurns(t *testing.T) {
	tests := []struct {
		from        Orientation
		right, left Orientation
	}{
		{North, East, West},
		{East, South, North},
		{South, West, East},
		{West, North, South},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.right, tt.from.Right())
			assert.Equal(t, tt.left, tt.from.Left())
		})
	}
}

func TestRotationClosure(t *testing.T) {
	for _, cmd := range []Command{TurnRight, TurnLeft} {
		for _, start := range []Command{TurnRight, TurnLeft, MoveForward} {
			r := New(Bounds{Width: 3, Height: 3})
			r.Apply(start)
			want := r.Orientation()
			r.ApplyAll([]Command{cmd, cmd, cmd, cmd})
			assert.Equal(t, want, r.Orientation(), "four %s turns from %s", cmd, want)
		}
	}
}

func TestRotationInverse(t *testing.T) {
	for _, o := range []Orientation{North, East, South, West} {
		assert.Equal(t, o, o.Right().Left())
		assert.Equal(t, o, o.Left().Right())
	}

	r := New(Bounds{Width: 3, Height: 3})
	r.ApplyAll(mustParse(t, "DDDE"))
	assert.Equal(t, South, r.Orientation())
	r.ApplyAll(mustParse(t, "ED"))
	assert.Equal(t, South, r.Orientation())
}

func TestTurnsKeepPosition(t *testing.T) {
	r := New(Bounds{Width: 4, Height: 4})
	r.ApplyAll(mustParse(t, "FDF"))
	r.ApplyAll(mustParse(t, "DDEEDE"))
	x, y := r.Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestMoves(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want string
	}{
		{"north forward", "FF", "N 0 2"},
		{"north backward", "FFT", "N 0 1"},
		{"east forward", "DFFF", "L 3 0"},
		{"east backward", "DFFFT", "L 2 0"},
		{"south backward", "DDTT", "S 0 2"},
		{"south forward", "DDTTF", "S 0 1"},
		{"west backward", "ETT", "O 2 0"},
		{"west forward", "ETTF", "O 1 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Bounds{Width: 5, Height: 5})
			r.ApplyAll(mustParse(t, tt.log))
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestBoundaryAbsorption(t *testing.T) {
	r := New(Bounds{Width: 4, Height: 4})
	r.ApplyAll(mustParse(t, "DD"))
	require.Equal(t, South, r.Orientation())

	r.Apply(MoveForward)
	x, y := r.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	// same wall hit by walking backwards while facing north
	r = New(Bounds{Width: 4, Height: 4})
	r.Apply(MoveBackward)
	assert.Equal(t, "N 0 0", r.String())

	// west wall
	r = New(Bounds{Width: 4, Height: 4})
	r.ApplyAll(mustParse(t, "EF"))
	assert.Equal(t, "O 0 0", r.String())
}

func TestEdgeSaturation(t *testing.T) {
	r := New(Bounds{Width: 3, Height: 6})
	r.ApplyAll(mustParse(t, "FFDFF"))
	require.Equal(t, "L 2 2", r.String())

	r.Apply(MoveForward)
	assert.Equal(t, "L 2 2", r.String())

	r.ApplyAll(mustParse(t, "EFFFFFFF"))
	assert.Equal(t, "N 2 5", r.String())
}

func TestSingleCellRoom(t *testing.T) {
	r := New(Bounds{Width: 1, Height: 1})
	r.ApplyAll(mustParse(t, "FTDFTDFTDFT"))
	assert.Equal(t, "O 0 0", r.String())
}

func TestPositionStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	all := []Command{MoveForward, MoveBackward, TurnRight, TurnLeft}

	for i := 0; i < 50; i++ {
		b := Bounds{Width: 1 + rng.Intn(8), Height: 1 + rng.Intn(8)}
		r := New(b)
		for j := 0; j < 500; j++ {
			r.Apply(all[rng.Intn(len(all))])
			x, y := r.Position()
			require.Truef(t, b.InBounds(x, y), "(%d,%d) outside %dx%d", x, y, b.Width, b.Height)
		}
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	r := New(Bounds{Width: 10, Height: 10})
	r.ApplyAll(mustParse(t, "FFDFT"))

	o := r.Orientation()
	x, y := r.Position()
	for i := 0; i < 3; i++ {
		assert.Equal(t, o, r.Orientation())
		x2, y2 := r.Position()
		assert.Equal(t, x, x2)
		assert.Equal(t, y, y2)
		assert.Equal(t, "L 0 2", r.String())
	}
}

func TestScenarioA(t *testing.T) {
	data, err := os.ReadFile("testdata/scenario_a.log")
	require.NoError(t, err)

	r := New(Bounds{Width: 50, Height: 50})
	r.ApplyAll(mustParse(t, strings.TrimSpace(string(data))))

	assert.Equal(t, South, r.Orientation())
	x, y := r.Position()
	assert.Equal(t, 11, x)
	assert.Equal(t, 13, y)
	assert.Equal(t, "S 11 13", r.String())
}

func TestScenarioB(t *testing.T) {
	log := strings.Repeat("F", 20) + "DFE" + strings.Repeat("T", 28)

	r := New(Bounds{Width: 15, Height: 36})
	r.ApplyAll(mustParse(t, log))

	assert.Equal(t, North, r.Orientation())
	x, y := r.Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
}
