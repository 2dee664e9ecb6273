package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	pyext "github.com/contriboss/python-extension-go"
	"github.com/contriboss/python-extension-go/internal/cli"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		// The toolchain already reported its own failure.
		var stageErr *pyext.StageError
		if !errors.As(err, &stageErr) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(mg.ExitStatus(err))
	}
}
