package version

import (
	"context"
	"fmt"
	"io"
	"os"

	"lcsubstr/config"

	"github.com/spf13/pflag"
)

// set with -ldflags "-X lcsubstr/command/version.version=..."
var version = "dev"

func VersionNumber() string {
	return version
}

type VersionCommand struct {
	out io.Writer
}

func NewVersionCommand() *VersionCommand {
	return &VersionCommand{out: os.Stdout}
}

func (c *VersionCommand) Synopsis() string {
	return "Print the version"
}

func (c *VersionCommand) Flags() *pflag.FlagSet {
	return pflag.NewFlagSet("version", pflag.ContinueOnError)
}

func (c *VersionCommand) Execute(ctx context.Context, cfg *config.Config, args []string) error {
	_, err := fmt.Fprintln(c.out, VersionNumber())
	return err
}
