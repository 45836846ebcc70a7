package input

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	loglexer "robotlog/internal/lexer"
	"robotlog/internal/robot"
)

// ErrRoomSize is wrapped by every malformed room size error.
var ErrRoomSize = errors.New("invalid room size")

type RoomSize struct {
	Width  int `parser:"@Int"`
	Height int `parser:"@Int"`
}

var roomLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parser = participle.MustBuild[RoomSize](
	participle.Lexer(roomLexer),
	participle.Elide("Whitespace"),
)

// ParseRoomSize parses a line holding exactly two positive integers,
// width then height.
func ParseRoomSize(line string) (robot.Bounds, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return robot.Bounds{}, fmt.Errorf("%w: empty line", ErrRoomSize)
	}
	size, err := parser.ParseString("room size", line)
	if err != nil {
		return robot.Bounds{}, fmt.Errorf("%w %q: %v", ErrRoomSize, line, err)
	}
	b := robot.Bounds{Width: size.Width, Height: size.Height}
	if err := b.Validate(); err != nil {
		return robot.Bounds{}, fmt.Errorf("%w: %v", ErrRoomSize, err)
	}
	return b, nil
}

// ParseLog turns a command log into commands. Surrounding whitespace is
// trimmed, anything else that is not a command code is an error.
func ParseLog(line string) ([]robot.Command, error) {
	toks, err := loglexer.Tokenize([]byte(strings.TrimSpace(line)))
	if err != nil {
		return nil, errors.Wrap(err, "command log")
	}
	cmds := make([]robot.Command, len(toks))
	for i, tok := range toks {
		cmds[i] = tok.Command
	}
	return cmds, nil
}
