package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/glog"
)

const helpText = `Rust Shell
Enter program names and arguments, and press enter.
Built-in commands:
  cd <directory>: Change the current working directory
  help: Display this help message
  exit: Exit the shell
  ls: List files and directories
  mkdir <name>: Create a directory
  cat <file>: Print the contents of a file
  cp <source> <destination>: Copy a file
  touch <file>: Create an empty file or truncate an existing one
`

func (s *Shell) registerBuiltins() {
	s.builtins["cd"] = cdBuiltin
	s.builtins["help"] = helpBuiltin
	s.builtins["exit"] = exitBuiltin
	s.builtins["ls"] = lsBuiltin
	s.builtins["mkdir"] = mkdirBuiltin
	s.builtins["cat"] = catBuiltin
	s.builtins["cp"] = cpBuiltin
	s.builtins["touch"] = touchBuiltin
}

func cdBuiltin(args []string, s *Shell) Status {
	if len(args) < 2 {
		fmt.Fprintln(s.Err, `lsh: expected argument to "cd"`)
		return Continue
	}

	if len(args) > 2 {
		fmt.Fprintln(s.Err, `lsh: too many arguments to "cd"`)
		return Continue
	}

	target := args[1]

	if err := s.fs.Chdir(target); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}

		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(s.Err, "lsh: cd: %s: No such file or directory\n", target)
		} else if errors.Is(err, fs.ErrPermission) {
			fmt.Fprintf(s.Err, "lsh: cd: %s: Permission denied\n", target)
		} else {
			fmt.Fprintf(s.Err, "lsh: cd: %s: %v\n", target, err)
		}
	}

	return Continue
}

func helpBuiltin(args []string, s *Shell) Status {
	fmt.Fprint(s.Out, helpText)
	return Continue
}

func exitBuiltin(args []string, s *Shell) Status {
	return Terminate
}

// ls defers to the system ls so its output matches what the user expects.
func lsBuiltin(args []string, s *Shell) Status {
	code, err := s.executor.Execute(context.Background(), "ls", nil, s.ioBindings())

	if err != nil {
		glog.V(1).Infof("ls: %v", err)
		fmt.Fprintf(s.Err, "Error executing ls command: %v\n", err)
		return Continue
	}

	if code != 0 {
		glog.V(1).Infof("ls exited with code %d", code)
		fmt.Fprintf(s.Err, "ls command failed with exit code: %d\n", code)
	}

	return Continue
}

func mkdirBuiltin(args []string, s *Shell) Status {
	if len(args) < 2 {
		fmt.Fprintln(s.Err, "Directory name not found.")
		return Continue
	}

	if len(args) > 2 {
		fmt.Fprintln(s.Err, "Too many arguments.")
		return Continue
	}

	if err := s.fs.Mkdir(args[1], 0755); err != nil {
		fmt.Fprintf(s.Err, "Error executing mkdir command: %v\n", err)
		return Continue
	}

	fmt.Fprintln(s.Out, "Directory created successfully")
	return Continue
}

func catBuiltin(args []string, s *Shell) Status {
	if len(args) != 2 {
		fmt.Fprintln(s.Err, "Usage: cat <file>")
		return Continue
	}

	path := args[1]

	contents, err := s.fs.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(s.Err, "Error: File '%s' does not exist.\n", path)
		case errors.Is(err, fs.ErrPermission):
			fmt.Fprintf(s.Err, "Error: Permission denied to read file '%s'.\n", path)
		default:
			fmt.Fprintf(s.Err, "An unexpected error occurred while reading file '%s': %v\n", path, err)
		}
		return Continue
	}

	if _, err := s.Out.Write(contents); err != nil {
		glog.V(1).Infof("cat %s: write: %v", path, err)
		return Continue
	}

	if len(contents) > 0 && !bytes.HasSuffix(contents, []byte("\n")) {
		fmt.Fprintln(s.Out)
	}

	return Continue
}

func cpBuiltin(args []string, s *Shell) Status {
	if len(args) != 3 {
		fmt.Fprintln(s.Err, "Usage: cp <source_file> <destination_file>")
		return Continue
	}

	source, destination := args[1], args[2]

	contents, err := s.fs.ReadFile(source)
	if err != nil {
		fmt.Fprintf(s.Err, "Error reading source file '%s': %v\n", source, err)
		return Continue
	}

	if err := s.fs.WriteFile(destination, contents, 0644); err != nil {
		fmt.Fprintf(s.Err, "Error writing to destination file '%s': %v\n", destination, err)
	}

	return Continue
}

func touchBuiltin(args []string, s *Shell) Status {
	if len(args) < 2 {
		fmt.Fprintln(s.Err, "Too few arguments")
		return Continue
	}

	if len(args) > 2 {
		fmt.Fprintln(s.Err, "Too many arguments")
		return Continue
	}

	path := args[1]

	file, err := s.fs.OpenWrite(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(s.Err, "Error creating file '%s': %v\n", path, err)
		return Continue
	}
	file.Close()

	fmt.Fprintln(s.Out, "File created successfully: "+path)
	return Continue
}
