// Package stats counts batch work in Prometheus text format.
package stats

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

type Stats struct {
	set *metrics.Set

	Pairs       *metrics.Counter
	CacheHits   *metrics.Counter
	CacheMisses *metrics.Counter
	Failures    *metrics.Counter
	MatchLength *metrics.Histogram
}

func New() *Stats {
	set := metrics.NewSet()

	return &Stats{
		set:         set,
		Pairs:       set.NewCounter("lcs_pairs_total"),
		CacheHits:   set.NewCounter("lcs_cache_hits_total"),
		CacheMisses: set.NewCounter("lcs_cache_misses_total"),
		Failures:    set.NewCounter("lcs_pair_failures_total"),
		MatchLength: set.NewHistogram("lcs_match_length"),
	}
}

func (s *Stats) WritePrometheus(w io.Writer) {
	s.set.WritePrometheus(w)
}
