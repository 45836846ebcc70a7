// Package lexer splits a robot command log into positioned command tokens.
package lexer

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"robotlog/internal/robot"
)

type Token struct {
	Command robot.Command
	Literal string
	Line    int
	Column  int
}

// IllegalCodeError reports a byte in the log that is not a command code.
type IllegalCodeError struct {
	Code   string
	Line   int
	Column int
}

func (e *IllegalCodeError) Error() string {
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Column, robot.ErrUnknownCommand, e.Code)
}

func (e *IllegalCodeError) Unwrap() error {
	return robot.ErrUnknownCommand
}

type Lexer struct {
	scanner *lexmachine.Scanner
	input   []byte
}

var (
	compiled   *lexmachine.Lexer
	compileErr error
	compileOnce  sync.Once
)

// commands are matched one byte at a time; there is no skip rule, so
// whitespace inside a log is illegal like any other unknown code.
func build() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		lm := lexmachine.NewLexer()
		lm.Add([]byte(`F`), tokAction(robot.MoveForward))
		lm.Add([]byte(`T`), tokAction(robot.MoveBackward))
		lm.Add([]byte(`D`), tokAction(robot.TurnRight))
		lm.Add([]byte(`E`), tokAction(robot.TurnLeft))
		if err := lm.Compile(); err != nil {
			compileErr = errors.Wrap(err, "compile command lexer")
			return
		}
		compiled = lm
	})
	return compiled, compileErr
}

func New(input []byte) (*Lexer, error) {
	lm, err := build()
	if err != nil {
		return nil, err
	}
	scanner, err := lm.Scanner(input)
	if err != nil {
		return nil, errors.Wrap(err, "start command scanner")
	}
	return &Lexer{scanner: scanner, input: input}, nil
}

// Next returns the next token, io.EOF once the log is drained, or an
// *IllegalCodeError.
func (l *Lexer) Next() (Token, error) {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{}, io.EOF
	}
	if err != nil {
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			return Token{}, &IllegalCodeError{
				Code:   illegalCode(l.input, ui.StartTC),
				Line:   ui.StartLine,
				Column: ui.StartColumn,
			}
		}
		return Token{}, errors.Wrap(err, "scan command log")
	}
	return tok.(Token), nil
}

// Tokenize drains a lexer over input.
func Tokenize(input []byte) ([]Token, error) {
	l, err := New(input)
	if err != nil {
		return nil, err
	}
	toks := make([]Token, 0, len(input))
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func illegalCode(input []byte, tc int) string {
	if tc < 0 || tc >= len(input) {
		return ""
	}
	r, _ := utf8.DecodeRune(input[tc:])
	return string(r)
}

func tokAction(cmd robot.Command) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Command: cmd,
			Literal: string(m.Bytes),
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}
