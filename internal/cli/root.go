package cli

import (
	"github.com/mgpai22/tarang/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tarang",
	Short: "Waveform segment editor for the terminal",
	Long: `Tarang renders an audio waveform in the terminal and lets you
mark, label, and drag time segments over it.

Segments are stored as a JSON file that can be bootstrapped from an
SRT subtitle track or from AI transcription.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
