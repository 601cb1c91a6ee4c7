package find

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"lcsubstr/command/output"
	"lcsubstr/config"
	"lcsubstr/lcs"
	"lcsubstr/tracing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type FindCommand struct {
	files bool
	json  bool
	watch bool

	out    io.Writer
	errOut io.Writer
}

func NewFindCommand() *FindCommand {
	return &FindCommand{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *FindCommand) Synopsis() string {
	return "Print the longest common substring of two strings or files"
}

func (c *FindCommand) Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("find", pflag.ContinueOnError)
	flags.BoolVar(&c.files, "files", false, "treat both arguments as file paths; a trailing newline in each file is ignored")
	flags.BoolVar(&c.json, "json", false, "print the result as json")
	flags.BoolVar(&c.watch, "watch", false, "with --files, print a new result whenever either file changes")

	return flags
}

func (c *FindCommand) Execute(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("find needs exactly two arguments, got %d", len(args))
	}

	if !c.watch {
		return c.find(ctx, cfg, args)
	}

	if !c.files {
		return errors.New("--watch can only be used with --files")
	}

	return c.watchFiles(ctx, cfg, args)
}

func (c *FindCommand) find(ctx context.Context, cfg *config.Config, args []string) error {
	ctx, span := otel.Tracer("lcsubstr/find").Start(ctx, "find")
	defer span.End()

	first, second, err := c.inputs(args)
	if err != nil {
		return tracing.Error(span, err)
	}

	if err := cfg.CheckLength("first input", first); err != nil {
		return tracing.Error(span, err)
	}
	if err := cfg.CheckLength("second input", second); err != nil {
		return tracing.Error(span, err)
	}

	span.SetAttributes(tracing.InputAttributes("first", first)...)
	span.SetAttributes(tracing.InputAttributes("second", second)...)

	match := lcs.LongestCommonSubstring(first, second)
	span.SetAttributes(attribute.Int("match.length", utf8.RuneCountInString(match)))

	if c.json {
		return output.NewWriter(c.out, true).Write(output.NewResult(first, second, match))
	}

	_, err = fmt.Fprintln(c.out, match)
	return err
}

func (c *FindCommand) inputs(args []string) (string, string, error) {
	if !c.files {
		return args[0], args[1], nil
	}

	first, err := readInput(args[0])
	if err != nil {
		return "", "", err
	}

	second, err := readInput(args[1])
	if err != nil {
		return "", "", err
	}

	return first, second, nil
}

func readInput(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}

	s := strings.TrimSuffix(string(content), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// watchFiles watches the parent directories rather than the files themselves,
// so editors which replace a file on save are still seen.
func (c *FindCommand) watchFiles(ctx context.Context, cfg *config.Config, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(args))
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			return err
		}
		watched[path] = true

		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("error watching %s: %w", arg, err)
		}
	}

	if err := c.find(ctx, cfg, args); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := c.find(ctx, cfg, args); err != nil {
				fmt.Fprintln(c.errOut, err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
