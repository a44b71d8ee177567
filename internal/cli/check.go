package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check [alignment_file]",
	Short: "Validate the quality of an alignment JSON document",
	Long: `Check timing consistency and text quality of word-aligned
transcription data and print a scored report.

The exit status is non-zero when the data has Error or Critical findings.

Examples:
  lyricsmaster check song.alignment.json
  lyricsmaster check song.alignment.json --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	alignmentPath := args[0]

	if _, err := os.Stat(alignmentPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", alignmentPath)
	}

	data, err := align.Load(alignmentPath)
	if err != nil {
		return err
	}

	result := validate.NewQuality().AlignmentData(data)

	fmt.Printf("Quality report for %s\n", alignmentPath)
	fmt.Printf("  Segments: %d\n", len(data.Segments))
	fmt.Printf("  Words:    %d\n", len(data.WordSegments))
	fmt.Printf("  Score:    %.2f\n", result.Score)
	fmt.Printf("  Issues:   %d\n\n", len(result.Issues))

	for _, issue := range result.Issues {
		line := fmt.Sprintf("[%s] %s: %s", issue.Severity, issue.Category, issue.Message)
		if issue.Location != "" {
			line += fmt.Sprintf(" (%s)", issue.Location)
		}
		fmt.Println(line)
		if issue.Suggestion != "" {
			fmt.Printf("  suggestion: %s\n", issue.Suggestion)
		}
	}

	if !result.IsValid {
		return fmt.Errorf("alignment data has blocking quality issues")
	}

	fmt.Println("\nAlignment data is valid.")
	return nil
}
