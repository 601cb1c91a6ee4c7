package config

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const envPrefix = "LCS_"

type Config struct {
	Workers        int  `mapstructure:"workers"`
	CacheBytes     int  `mapstructure:"cache_bytes"`
	MaxInputLength int  `mapstructure:"max_input_length"`
	Tracing        bool `mapstructure:"tracing"`
}

func CreateConfig(ctx context.Context) (*Config, error) {
	return fromEnvironment(os.Environ())
}

func fromEnvironment(environ []string) (*Config, error) {
	cfg := &Config{
		Workers:    runtime.NumCPU(),
		CacheBytes: 32 * 1024 * 1024,
	}

	values := map[string]any{}
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, envPrefix) {
			continue
		}

		values[strings.ToLower(strings.TrimPrefix(key, envPrefix))] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("error reading %s environment: %w", envPrefix, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%sWORKERS must be at least 1, got %d", envPrefix, c.Workers)
	}
	if c.CacheBytes < 0 {
		return fmt.Errorf("%sCACHE_BYTES must not be negative, got %d", envPrefix, c.CacheBytes)
	}
	if c.MaxInputLength < 0 {
		return fmt.Errorf("%sMAX_INPUT_LENGTH must not be negative, got %d", envPrefix, c.MaxInputLength)
	}

	return nil
}

// CheckLength reports an error wrapping ErrInputTooLong when s has more runes
// than MaxInputLength allows.
func (c *Config) CheckLength(name, s string) error {
	if c.MaxInputLength == 0 {
		return nil
	}

	if n := len([]rune(s)); n > c.MaxInputLength {
		return fmt.Errorf("%s is %d characters: %w (limit %d)", name, n, ErrInputTooLong, c.MaxInputLength)
	}

	return nil
}
