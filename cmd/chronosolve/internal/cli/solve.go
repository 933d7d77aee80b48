package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/temporalgraph/chronosolve/config"
	"github.com/temporalgraph/chronosolve/internal/timeline"
	"github.com/temporalgraph/chronosolve/solver"
	"github.com/temporalgraph/chronosolve/temporal"
)

var svgOutPath string

// solveRequest mirrors spec.md §6's "Solve request": an ordered events list
// and an ordered assertions list, nothing else.
type solveRequest struct {
	Events     []temporal.Event     `json:"events" yaml:"events"`
	Assertions []temporal.Assertion `json:"assertions" yaml:"assertions"`
}

var solveCmd = &cobra.Command{
	Use:   "solve <request-file>",
	Short: "Solve a temporal constraint request and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&svgOutPath, "svg", "", "also write an SVG timeline to this path")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	req, err := readSolveRequest(args[0])
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	result := solver.Solve(req.Events, req.Assertions, solver.WithConstants(cfg))
	slog.Info("solve completed",
		slog.String("status", string(result.Status)),
		slog.Int("violations", len(result.Violations)),
		slog.Float64("elapsed_ms", result.ElapsedMS),
	)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if svgOutPath != "" {
		if err := writeTimelineSVG(svgOutPath, result); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
	}

	return nil
}

func readSolveRequest(path string) (solveRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return solveRequest{}, err
	}

	var req solveRequest
	if isYAMLPath(path) {
		err = yaml.Unmarshal(raw, &req)
	} else {
		err = json.Unmarshal(raw, &req)
	}

	return req, err
}

func writeTimelineSVG(path string, result *temporal.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	timeline.Render(f, result)

	return nil
}

func isYAMLPath(path string) bool {
	for _, suffix := range []string{".yaml", ".yml"} {
		if len(path) >= len(suffix) && path[len(path)-len(suffix):] == suffix {
			return true
		}
	}

	return false
}
