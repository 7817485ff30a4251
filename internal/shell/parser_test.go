package shell

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParser_Parse(t *testing.T) {

	// Table-driven test: each test case has a name, input and expected output.
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "command with multiple arguments",
			input:    "ls -la /home/user",
			expected: []string{"ls", "-la", "/home/user"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only whitespace",
			input:    "   \t  \n  ",
			expected: []string{},
		},
		{
			name:     "multiple spaces between arguments",
			input:    "echo    hello     world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "leading and trailing whitespace",
			input:    "\t cp a b \r\n",
			expected: []string{"cp", "a", "b"},
		},
		{
			name:     "quotes are ordinary characters",
			input:    `echo 'hello world' "x y"`,
			expected: []string{"echo", "'hello", "world'", `"x`, `y"`},
		},
		{
			name:     "backslash does not escape",
			input:    `echo hello\ world`,
			expected: []string{"echo", `hello\`, "world"},
		},
		{
			name:     "operators are not split out",
			input:    "cat a>b | wc &",
			expected: []string{"cat", "a>b", "|", "wc", "&"},
		},
		{
			name:     "unicode whitespace",
			input:    "touch\u00a0file\u2003other",
			expected: []string{"touch", "file", "other"},
		},
		{
			name:     "non ascii tokens",
			input:    "mkdir répertoire 目录",
			expected: []string{"mkdir", "répertoire", "目录"},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			parser := NewDefaultParser()
			res, err := parser.Parse(tt.input)

			if err != nil {
				t.Errorf("Expected no error got %v", err)
				return
			}

			if res == nil {
				t.Errorf("Expected non-nil slice for %q", tt.input)
				return
			}

			if !equalStringSlices(res, tt.expected) {
				t.Errorf("input:  %q\nexpected: %v\ngot:       %v", tt.input, tt.expected, res)
			}

		})

	}

}

func TestParser_RejoinIsStable(t *testing.T) {
	inputs := []string{
		"ls",
		"cp  src\tdst",
		"  a b   c d e f  ",
		"cat ./some/path/file.txt",
		"x y\nz",
	}

	parser := NewDefaultParser()

	for _, input := range inputs {
		first, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}

		second, err := parser.Parse(strings.Join(first, " "))
		if err != nil {
			t.Fatalf("parse rejoined %q: %v", input, err)
		}

		if !equalStringSlices(first, second) {
			t.Errorf("input %q: first %v, after rejoin %v", input, first, second)
		}
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type failingRuneReader struct {
	err error
}

func (r failingRuneReader) ReadRune() (rune, int, error) {
	return 0, 0, r.err
}

func TestParser_ReaderError(t *testing.T) {
	readErr := errors.New("read failed")

	parser := NewDefaultParser()
	parser.newReader = func(string) io.RuneReader {
		return failingRuneReader{err: readErr}
	}

	res, err := parser.Parse("echo hello")
	if !errors.Is(err, readErr) {
		t.Errorf("Expected error: %v got %v", readErr, err)
	}
	if res != nil {
		t.Errorf("Expected nil tokens got %v", res)
	}
}
