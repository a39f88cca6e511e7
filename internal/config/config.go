// Package config loads the optional YAML file that tunes the ratiorail CLI.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/ratiorail/pkg/ratio"
	"github.com/ib-77/ratiorail/pkg/rop"
	"github.com/ib-77/ratiorail/pkg/rop/chain"
	"github.com/ib-77/ratiorail/pkg/rop/solo"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Planner PlannerConfig `yaml:"planner"`
	Log     LogConfig     `yaml:"log"`
}

type PlannerConfig struct {
	// FallbackThreshold is the threshold source reported when no hint is given.
	FallbackThreshold string `yaml:"fallback_threshold"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Planner: PlannerConfig{FallbackThreshold: ratio.DefaultThresholdSource},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Parse(chain.ThenTry(
		chain.FromValue(context.Background(), path),
		func(_ context.Context, p string) ([]byte, error) { return os.ReadFile(p) },
	).Result())
}

// Parse decodes raw YAML on top of Default and validates the outcome.
// Unknown keys are rejected; every validation problem is reported at once.
func Parse(raw rop.Result[[]byte]) (Config, error) {
	ctx := context.Background()
	decoded := solo.Try(ctx, raw, func(_ context.Context, data []byte) (Config, error) {
		cfg := Default()
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return cfg, nil
	})
	if decoded.IsFailure() {
		return Config{}, decoded.Err()
	}

	cfg := decoded.Result()
	return solo.ValidateAll(ctx, decoded, false,
		validateFallback(cfg),
		validateLogLevel(cfg),
	).Get()
}

func validateFallback(cfg Config) func(context.Context, rop.Result[Config]) rop.Result[Config] {
	return func(ctx context.Context, _ rop.Result[Config]) rop.Result[Config] {
		return solo.Validate(ctx, cfg, func(_ context.Context, cfg Config) (bool, string) {
			return cfg.Planner.FallbackThreshold != "",
				ErrInvalidConfig.Error() + ": planner.fallback_threshold must not be empty"
		})
	}
}

func validateLogLevel(cfg Config) func(context.Context, rop.Result[Config]) rop.Result[Config] {
	return func(ctx context.Context, _ rop.Result[Config]) rop.Result[Config] {
		return solo.FailOnError(ctx, solo.Succeed(cfg), func(_ context.Context, cfg Config) error {
			if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
				return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
			}
			return nil
		})
	}
}
