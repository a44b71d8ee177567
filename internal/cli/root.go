package cli

import (
	"github.com/spf13/cobra"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyricsmaster",
	Short: "Generate and validate subtitles from aligned transcription data",
	Long: `Lyrics Master turns word-aligned transcription data into subtitle
files (SRT, VTT, ASS with karaoke highlighting, and JSON) and checks the
timing and text quality of both the alignment and the generated output.

Alignment data is read from the JSON documents the aligner produces:
segments and word segments with start/end times and confidence scores.`,
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
