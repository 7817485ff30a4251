package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/golang/glog"
)

// Executor starts an external program and waits for it. The returned int is
// the child's exit code; a non-nil error means the child never ran.
type Executor interface {
	Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error)
}

type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type DefaultExecutor struct{}

func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error) {

	// Dir stays empty so the child sees the shell's current directory as it
	// is now, including any earlier cd.
	externalCmd := exec.CommandContext(ctx, name, args...)
	externalCmd.Stdin = io.Stdin
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	if err := externalCmd.Start(); err != nil {
		return -1, err
	}

	err := externalCmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		glog.V(1).Infof("%s exited with code %d", name, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}

	if err != nil {
		// stdio copy failed after the child was started; it still ran
		glog.V(1).Infof("%s: %v", name, err)
		return externalCmd.ProcessState.ExitCode(), nil
	}

	return 0, nil
}
