package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ratiorail/pkg/ratio"
	"github.com/ib-77/ratiorail/pkg/rop"
)

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ratio.DefaultThresholdSource, cfg.Planner.FallbackThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Planner: PlannerConfig{FallbackThreshold: "config file"},
		Log:     LogConfig{Level: "debug", Development: true},
	}, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "unknown_key.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "fallback")
}

func TestParse_EmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Parse(rop.Success([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_PartialOverride(t *testing.T) {
	cfg, err := Parse(rop.Success([]byte("log:\n  level: warn\n")))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ratio.DefaultThresholdSource, cfg.Planner.FallbackThreshold)
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	_, err := Parse(rop.Success([]byte("planner:\n  fallback_threshold: \"\"\nlog:\n  level: loud\n")))
	require.Error(t, err)
	assert.Len(t, rop.GetErrors(err), 2)
	assert.Contains(t, err.Error(), "planner.fallback_threshold must not be empty")
	assert.Contains(t, err.Error(), "log.level")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParse_FailedInput(t *testing.T) {
	cause := errors.New("read failed")
	_, err := Parse(rop.Fail[[]byte](cause))
	assert.ErrorIs(t, err, cause)
}
