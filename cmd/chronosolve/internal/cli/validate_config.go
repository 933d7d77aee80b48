package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalgraph/chronosolve/config"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config <file>",
	Short: "Load a tuning-constants YAML file and report whether it is valid",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateConfig,
}

func init() {
	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: epsilon=%g mu=%g scale=%g pad=%g min_display_width=%g relax_iteration_cap=%d\n",
		cfg.Epsilon, cfg.Mu, cfg.Scale, cfg.Pad, cfg.MinDisplayWidth, cfg.RelaxIterationCap)

	return nil
}
