package commands

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nestegg/retirement-simulator/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Monte Carlo retirement simulator",
	Long: `nestegg projects portfolio growth with a Monte Carlo simulation:
thousands of stochastic trajectories, percentile bands, target
probabilities, safe-withdrawal income and retirement readiness.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
