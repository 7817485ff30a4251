package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/Neev4n/lsh/internal/shell"
)

func main() {
	// glog registers -v, -logtostderr and -log_dir on the default flag set.
	// Logs go to stderr unless -logtostderr=false is given.
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	s := shell.New(os.Stdin, os.Stdout, os.Stderr)

	if err := s.Run(); err != nil {
		glog.Exitf("lsh: %v", err)
	}
}
