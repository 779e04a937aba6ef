// Package cli provides the quorum command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quorumhq/quorum/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "quorum",
	Short: "Meeting transcript query service",
	Long: `quorum answers natural-language questions about meeting transcripts.
It combines vector and keyword retrieval over indexed transcript chunks and
grounds a generated answer in the retrieved fragments.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
