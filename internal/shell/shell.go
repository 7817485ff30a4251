package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/term"
)

const Prompt = "rustShell > "

// Status is what every builtin and launch hands back to the loop.
type Status int

const (
	Terminate Status = 0
	Continue  Status = 1
)

// type Builtin
type Builtin func(args []string, s *Shell) Status

// type Shell
type Shell struct {
	stdin       io.Reader
	in          *bufio.Reader
	Out         io.Writer
	Err         io.Writer
	interactive bool
	builtins    map[string]Builtin
	executor    Executor
	parser      Parser
	fs          FileSystem
}

// func New
func New(reader io.Reader, out, errw io.Writer) *Shell {
	s := &Shell{
		stdin:    reader,
		in:       bufio.NewReader(reader),
		Out:      out,
		Err:      errw,
		builtins: make(map[string]Builtin),
		executor: &DefaultExecutor{},
		parser:   NewDefaultParser(),
		fs:       osFileSystem{},
	}

	if f, ok := reader.(*os.File); ok {
		s.interactive = term.IsTerminal(int(f.Fd()))
	}

	s.registerBuiltins()
	return s
}

// Run prompts, reads and executes lines until exit or end of input. It only
// returns an error when the input or output stream itself fails.
func (s *Shell) Run() error {
	for {
		if _, err := fmt.Fprint(s.Out, Prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		line, err := s.readLine()
		eof := errors.Is(err, io.EOF)

		if err != nil && !eof {
			return fmt.Errorf("read line: %w", err)
		}

		// end of input is an implicit exit, after running any last
		// unterminated line
		if eof && line == "" {
			s.finishSession()
			return nil
		}

		fields, err := s.parser.Parse(line)
		if err != nil {
			return fmt.Errorf("parse line: %w", err)
		}

		if s.Execute(fields) == Terminate {
			return nil
		}

		if eof {
			s.finishSession()
			return nil
		}
	}
}

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (s *Shell) finishSession() {
	glog.V(1).Info("end of input")
	if s.interactive {
		fmt.Fprintln(s.Out)
	}
}

// Execute runs one tokenized line. Builtins win over programs of the same
// name; anything else goes to the executor unchanged.
func (s *Shell) Execute(tokens []string) Status {
	if len(tokens) == 0 {
		return Continue
	}

	if fn, ok := s.builtins[tokens[0]]; ok {
		glog.V(1).Infof("builtin %q", tokens[0])
		return fn(tokens, s)
	}

	return s.launch(tokens)
}

func (s *Shell) launch(tokens []string) Status {
	glog.V(1).Infof("launching %q", tokens)

	if _, err := s.executor.Execute(context.Background(), tokens[0], tokens[1:], s.ioBindings()); err != nil {
		glog.V(1).Infof("launch %s: %v", tokens[0], err)
		fmt.Fprintf(s.Err, "lsh: %v\n", err)
	}

	return Continue
}

// ioBindings hands the shell's own streams to a child. Only a real file is
// passed as stdin; anything else would let the child drain buffered shell
// input.
func (s *Shell) ioBindings() IOBindings {
	bindings := IOBindings{
		Stdout: s.Out,
		Stderr: s.Err,
	}

	if f, ok := s.stdin.(*os.File); ok {
		bindings.Stdin = f
	}

	return bindings
}
