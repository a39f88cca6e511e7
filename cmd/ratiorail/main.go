package main

import (
	"fmt"
	"os"

	"github.com/ib-77/ratiorail/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil && err.Error() != "" {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
