package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := fromEnvironment([]string{"HOME=/root", "PATH=/bin"})
	require.NoError(t, err)

	require.Equal(t, &Config{
		Workers:    runtime.NumCPU(),
		CacheBytes: 32 * 1024 * 1024,
	}, cfg)
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg, err := fromEnvironment([]string{
		"LCS_WORKERS=3",
		"LCS_CACHE_BYTES=1024",
		"LCS_MAX_INPUT_LENGTH=50",
		"LCS_TRACING=true",
		"LCS_UNKNOWN=ignored",
	})
	require.NoError(t, err)

	require.Equal(t, &Config{
		Workers:        3,
		CacheBytes:     1024,
		MaxInputLength: 50,
		Tracing:        true,
	}, cfg)
}

func TestInvalidEnvironment(t *testing.T) {
	cases := [][]string{
		{"LCS_WORKERS=0"},
		{"LCS_WORKERS=many"},
		{"LCS_CACHE_BYTES=-1"},
		{"LCS_MAX_INPUT_LENGTH=-5"},
	}

	for _, tc := range cases {
		t.Run(tc[0], func(t *testing.T) {
			_, err := fromEnvironment(tc)
			require.Error(t, err)
		})
	}
}

func TestCheckLength(t *testing.T) {
	cfg := &Config{MaxInputLength: 3}

	require.NoError(t, cfg.CheckLength("first", "abc"))
	require.NoError(t, cfg.CheckLength("first", "äöü"))
	require.ErrorIs(t, cfg.CheckLength("first", "abcd"), ErrInputTooLong)

	unlimited := &Config{}
	require.NoError(t, unlimited.CheckLength("first", "abcdefghijklmnop"))
}
