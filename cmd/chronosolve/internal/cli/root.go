package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "chronosolve",
	Short: "A qualitative temporal constraint solver",
	Long: `chronosolve translates Allen's Interval Algebra assertions between
dated events into a difference-constraint graph, repairs infeasible
networks by discarding low-confidence assertions, and places events on a
1-D display axis.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML file overriding the default tuning constants")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
