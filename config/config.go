// Package config holds chronosolve's compile-time tuning constants — the
// ones spec.md §6 calls out as "compile-time, not request-time": strict-
// inequality slack (epsilon), minimum interval duration (mu), display
// scale and padding, minimum display width, and the relaxer's iteration
// cap. It loads them from an optional YAML file via gopkg.in/yaml.v3,
// falling back to documented defaults when no file is given.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEpsilonMu indicates the Design Note "Floating-point ε policy"
// was violated: epsilon must be strictly positive and strictly less than
// mu, or the strict-inequality and minimum-duration encodings collide.
var ErrInvalidEpsilonMu = errors.New("config: epsilon must satisfy 0 < epsilon < mu")

// Constants are chronosolve's tuning knobs. Field names mirror spec.md §6
// exactly so a reviewer can check this struct against it line by line.
type Constants struct {
	// Epsilon is the slack subtracted from a difference-constraint bound to
	// encode a strict Allen inequality (<) as a non-strict one (<=).
	Epsilon float64 `yaml:"epsilon"`
	// Mu is the minimum duration enforced for interval events, in
	// constraint units.
	Mu float64 `yaml:"mu"`
	// Scale is the configured display width in output coordinate units.
	Scale float64 `yaml:"scale"`
	// Pad is the edge padding reserved on both ends of the display range.
	Pad float64 `yaml:"pad"`
	// MinDisplayWidth is the minimum end-start span enforced for interval
	// placements after normalization.
	MinDisplayWidth float64 `yaml:"min_display_width"`
	// RelaxIterationCap bounds the Relaxer's main loop, independent of
	// (but never exceeding) the number of assertions in the request.
	RelaxIterationCap int `yaml:"relax_iteration_cap"`
}

// Default returns chronosolve's documented default Constants:
// epsilon=2^-20, mu=1, scale=1000, pad=50, minimum display width=20,
// relax iteration cap=100.
func Default() Constants {
	return Constants{
		Epsilon:           1.0 / 1048576, // 2^-20, spec.md's documented floor
		Mu:                1.0,
		Scale:             1000,
		Pad:               50,
		MinDisplayWidth:   20,
		RelaxIterationCap: 100,
	}
}

// Validate asserts 0 < Epsilon < Mu, per the Design Note that the strict-
// inequality slack must stay well clear of the minimum-duration bound.
func (c Constants) Validate() error {
	if !(c.Epsilon > 0 && c.Epsilon < c.Mu) {
		return fmt.Errorf("%w (got epsilon=%g, mu=%g)", ErrInvalidEpsilonMu, c.Epsilon, c.Mu)
	}

	return nil
}

// Load reads Constants from a YAML file at path, starting from Default()
// so a partial file only overrides the fields it sets, then validates the
// result. A programmer-misconfigured file (epsilon >= mu) is reported as an
// error wrapping ErrInvalidEpsilonMu rather than silently clamped, because a caller
// that ignores it would get a pipeline that compiles but cannot reason
// about the encoded inequalities correctly.
func Load(path string) (Constants, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Constants{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Constants{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Constants{}, err
	}

	return cfg, nil
}
