// Package shell runs the read-eval-print loop of the calculator.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"

	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/parser"
)

const (
	banner = "Type an arithmetic expression and press Enter to evaluate. Press Ctrl+C to exit."
	prompt = "> "
)

// Options controls the shell behavior.
type Options struct {
	Interactive bool // Print the banner and prompts.
	Color       bool // Highlight errors.
	Debug       bool // Dump the parsed tree to stderr before evaluating.
	Digits      int  // Maximum fractional digits, see Format.
}

type session struct {
	opts     Options
	stdout   io.Writer
	stderr   io.Writer
	errLabel string
}

func newSession(stdout, stderr io.Writer, opts Options) *session {
	errColor := color.New(color.FgRed, color.Bold)
	if opts.Color {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}
	return &session{
		opts:     opts,
		stdout:   stdout,
		stderr:   stderr,
		errLabel: errColor.Sprint("error:"),
	}
}

// Eval evaluates a single line, printing the result to stdout or the error to stderr.
// The error is also returned.
func Eval(line string, stdout, stderr io.Writer, opts Options) error {
	return newSession(stdout, stderr, opts).evalLine(line)
}

// Run evaluates stdin line by line until EOF or until ctx is done.
// Results go to stdout, errors to stderr. Evaluation errors never stop the loop.
func Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, opts Options) error {
	s := newSession(stdout, stderr, opts)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		// No line length limit, unlike bufio.Scanner.
		reader := bufio.NewReader(stdin)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				readErr <- err
				return
			}
		}
	}()

	if opts.Interactive {
		fmt.Fprintf(stdout, "%s\n\n", banner)
	}
	for {
		if opts.Interactive {
			fmt.Fprint(stdout, prompt)
		}
		select {
		case <-ctx.Done():
			s.bye()
			return nil
		case line, ok := <-lines:
			if !ok {
				s.bye()
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default: // Reader stopped on ctx.
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			_ = s.evalLine(line) // Already reported.
		}
	}
}

func (s *session) evalLine(line string) error {
	expr, err := parser.Parse(line)
	if err == nil {
		if s.opts.Debug {
			pretty.Fprintf(s.stderr, "%# v\n", expr)
		}
		var result float64
		if result, err = evaluator.Evaluate(expr); err == nil {
			fmt.Fprintln(s.stdout, Format(result, s.opts.Digits))
			return nil
		}
	}
	fmt.Fprintf(s.stderr, "%s %s\n", s.errLabel, err)
	return err
}

// bye terminates the pending prompt line.
func (s *session) bye() {
	if s.opts.Interactive {
		fmt.Fprintln(s.stdout)
	}
}
