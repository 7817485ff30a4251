package shell

import (
	"io"
	"os"
)

// FileSystem is what the file builtins touch. Paths are resolved by the OS
// against the live working directory.
type FileSystem interface {
	Chdir(dir string) error
	Mkdir(name string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	OpenWrite(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
}

// osFileSystem uses the real file system of the device
type osFileSystem struct{}

func (osFileSystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (osFileSystem) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

func (osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osFileSystem) OpenWrite(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, flag, perm)
}
