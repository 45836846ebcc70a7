package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"robotlog/internal/logging"
	"robotlog/internal/robot"
)

// Session stores what a run needs: the room and the commands to replay.
type Session struct {
	Bounds   robot.Bounds
	Commands []robot.Command
}

// StepFunc is called after each command is applied.
type StepFunc func(step int, cmd robot.Command, r *robot.Robot)

// Replay applies every command to a fresh robot and returns it.
func (s *Session) Replay(fn StepFunc) *robot.Robot {
	r := robot.New(s.Bounds)
	for i, cmd := range s.Commands {
		r.Apply(cmd)
		if fn != nil {
			fn(i+1, cmd, r)
		}
	}
	return r
}

// Read reads a session from r.
// Format:
// first line: room width and height
// second line: command log, one code per character
// A missing second line is an empty log. Further lines are ignored.
// When prompt is not nil the interactive prompts are written to it before
// each line is read.
func Read(r io.Reader, prompt io.Writer) (*Session, error) {
	br := bufio.NewReader(r)

	ask(prompt, "Enter room size:")
	sizeLine, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "read room size")
	}
	bounds, err := ParseRoomSize(sizeLine)
	if err != nil {
		return nil, err
	}

	ask(prompt, "Enter Robot Logs:")
	logLine, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "read command log")
	}
	cmds, err := ParseLog(logLine)
	if err != nil {
		return nil, err
	}

	// only peek at the rest when it is not an interactive session
	if prompt == nil {
		if extra := countLines(br); extra > 0 {
			logging.Warn().Int("lines", extra).Msg("ignoring input after command log")
		}
	}

	logging.Debug().
		Int("width", bounds.Width).
		Int("height", bounds.Height).
		Int("commands", len(cmds)).
		Msg("session loaded")

	return &Session{Bounds: bounds, Commands: cmds}, nil
}

// LoadFile reads a session from the file at path.
func LoadFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open session file")
	}
	defer f.Close()

	s, err := Read(f, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

func ask(w io.Writer, msg string) {
	if w != nil {
		fmt.Fprintln(w, msg)
	}
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func countLines(br *bufio.Reader) int {
	n := 0
	for {
		line, err := br.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			n++
		}
		if err != nil {
			return n
		}
	}
}
