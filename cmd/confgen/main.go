// Command confgen edits, validates and generates lottery service
// configuration files.
package main

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/0xalexb/confgen"

	"github.com/charmbracelet/fang"
)

func main() {
	err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(confgen.VersionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		os.Exit(1)
	}
}
