package robot

import (
	"github.com/pkg/errors"
)

// ErrUnknownCommand is returned for any code outside the command table.
var ErrUnknownCommand = errors.New("unknown command code")

type Command int

const (
	MoveForward Command = iota
	MoveBackward
	TurnRight
	TurnLeft
)

var commandCodes = map[rune]Command{
	'F': MoveForward,
	'T': MoveBackward,
	'D': TurnRight,
	'E': TurnLeft,
}

// ParseCommand maps a log code to its command. Codes are case-sensitive.
func ParseCommand(code rune) (Command, error) {
	cmd, ok := commandCodes[code]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownCommand, "%q", code)
	}
	return cmd, nil
}

// ParseCommands parses a log where every character is one command.
func ParseCommands(log string) ([]Command, error) {
	cmds := make([]Command, 0, len(log))
	for i, c := range log {
		cmd, err := ParseCommand(c)
		if err != nil {
			return nil, errors.Wrapf(err, "offset %d", i)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Code returns the log code of the command.
func (c Command) Code() rune {
	for code, cmd := range commandCodes {
		if cmd == c {
			return code
		}
	}
	return '?'
}

func (c Command) String() string {
	switch c {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case TurnRight:
		return "right"
	case TurnLeft:
		return "left"
	}
	return "unknown"
}
