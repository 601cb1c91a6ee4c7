package main

import (
	"fmt"
	"os"

	"lcsubstr/command"
	"lcsubstr/command/batch"
	"lcsubstr/command/find"
	"lcsubstr/command/interactive"
	"lcsubstr/command/version"

	"github.com/hashicorp/cli"
)

func main() {

	commands := map[string]cli.CommandFactory{
		"find":        command.NewCommand(find.NewFindCommand()),
		"batch":       command.NewCommand(batch.NewBatchCommand()),
		"interactive": command.NewCommand(interactive.NewInteractiveCommand()),
		"version":     command.NewCommand(version.NewVersionCommand()),
	}

	cli := &cli.CLI{
		Name:                       "lcsubstr",
		Version:                    version.VersionNumber(),
		Args:                       os.Args[1:],
		Commands:                   commands,
		Autocomplete:               true,
		AutocompleteNoDefaultFlags: false,
	}

	exitCode, err := cli.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
	}

	os.Exit(exitCode)
}
