package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"lcsubstr/command/output"
	"lcsubstr/config"
	"lcsubstr/lcs"
	"lcsubstr/memo"
	"lcsubstr/stats"
	"lcsubstr/tracing"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type BatchCommand struct {
	json    bool
	metrics bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func NewBatchCommand() *BatchCommand {
	return &BatchCommand{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *BatchCommand) Synopsis() string {
	return "Find the longest common substring of every tab separated pair in a file or stdin"
}

func (c *BatchCommand) Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	flags.BoolVar(&c.json, "json", false, "print one json object per pair")
	flags.BoolVar(&c.metrics, "metrics", false, "print prometheus metrics to stderr when done")

	return flags
}

func (c *BatchCommand) Execute(ctx context.Context, cfg *config.Config, args []string) error {
	ctx, span := otel.Tracer("lcsubstr/batch").Start(ctx, "batch")
	defer span.End()

	if len(args) > 1 {
		return tracing.Errorf(span, "batch takes at most one file, got %d", len(args))
	}

	in := c.in
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return tracing.Error(span, err)
		}
		defer f.Close()
		in = f
	}

	pairs, err := readPairs(in)
	if err != nil {
		return tracing.Error(span, err)
	}
	span.SetAttributes(attribute.Int("batch.pairs", len(pairs)))

	st := stats.New()
	if c.metrics {
		defer st.WritePrometheus(c.errOut)
	}

	matches, err := compute(ctx, cfg, pairs, memo.New(cfg.CacheBytes), st)
	if err != nil {
		return tracing.Error(span, err)
	}
	span.SetAttributes(
		attribute.Int64("batch.cache_hits", int64(st.CacheHits.Get())),
		attribute.Int64("batch.cache_misses", int64(st.CacheMisses.Get())),
	)

	w := output.NewWriter(c.out, c.json)
	for i, p := range pairs {
		if err := w.Write(output.NewResult(p.first, p.second, matches[i])); err != nil {
			return tracing.Error(span, err)
		}
	}

	return nil
}

// compute returns the match for each pair, in the order given.
func compute(ctx context.Context, cfg *config.Config, pairs []pair, cache *memo.Cache, st *stats.Stats) ([]string, error) {
	matches := make([]string, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := p.check(cfg); err != nil {
				st.Failures.Inc()
				return err
			}
			st.Pairs.Inc()

			match, found := cache.Get(p.first, p.second)
			if found {
				st.CacheHits.Inc()
			} else {
				st.CacheMisses.Inc()
				match = lcs.LongestCommonSubstring(p.first, p.second)
				cache.Set(p.first, p.second, match)
			}

			st.MatchLength.Update(float64(utf8.RuneCountInString(match)))
			matches[i] = match

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return matches, nil
}

func (p pair) check(cfg *config.Config) error {
	if err := cfg.CheckLength("first input", p.first); err != nil {
		return fmt.Errorf("line %d: %w", p.line, err)
	}
	if err := cfg.CheckLength("second input", p.second); err != nil {
		return fmt.Errorf("line %d: %w", p.line, err)
	}

	return nil
}
