package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalgraph/chronosolve/config"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestValidate_RejectsEpsilonGreaterThanMu(t *testing.T) {
	c := config.Default()
	c.Epsilon = 2
	c.Mu = 1
	err := c.Validate()
	require.ErrorIs(t, err, config.ErrInvalidEpsilonMu)
}

func TestValidate_RejectsNonPositiveEpsilon(t *testing.T) {
	c := config.Default()
	c.Epsilon = 0
	require.ErrorIs(t, c.Validate(), config.ErrInvalidEpsilonMu)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronosolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: 2000\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, cfg.Scale)
	assert.Equal(t, config.Default().Pad, cfg.Pad) // untouched field keeps its default
}

func TestLoad_RejectsInvalidConstants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronosolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epsilon: 5\nmu: 1\n"), 0o644))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidEpsilonMu)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
