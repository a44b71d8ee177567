package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/media"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/subtitle"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/validate"
)

var generateCmd = &cobra.Command{
	Use:   "generate [alignment_file]",
	Short: "Generate subtitle files from an alignment JSON document",
	Long: `Generate subtitle files from word-aligned transcription data.

The input is the alignment JSON document produced by the aligner: sentence
segments and word segments with start/end times and confidence scores.
One output file is written per requested format.

Word-level mode emits one subtitle per word (karaoke highlighting in ASS);
--words-per-subtitle groups consecutive words instead.

Examples:
  lyricsmaster generate song.alignment.json
  lyricsmaster generate song.alignment.json --formats srt,vtt,ass
  lyricsmaster generate song.alignment.json --formats ass --word-level
  lyricsmaster generate song.alignment.json --words-per-subtitle 3 -o out/song.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringSliceP("formats", "f", []string{"srt"}, "Output formats (srt, vtt, ass, json)")
	generateCmd.Flags().
		Bool("word-level", false, "One subtitle per word (karaoke tags in ASS)")
	generateCmd.Flags().
		Int("words-per-subtitle", 0, "Group this many consecutive words per subtitle")
	generateCmd.Flags().
		String("media", "", "Media file to probe for audio duration")
	generateCmd.Flags().
		Bool("force", false, "Generate even when quality validation fails")
	generateCmd.Flags().String("font", "", "Override ASS font name")
	generateCmd.Flags().Int("font-size", 0, "Override ASS font size")
	generateCmd.Flags().
		String("primary-color", "", "Override ASS primary color (#RRGGBB)")
	generateCmd.Flags().
		String("highlight-color", "", "Override ASS karaoke highlight color (#RRGGBB)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	alignmentPath := args[0]

	if _, err := os.Stat(alignmentPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", alignmentPath)
	}

	formatNames, _ := cmd.Flags().GetStringSlice("formats")
	wordLevel, _ := cmd.Flags().GetBool("word-level")
	wordsPerSubtitle, _ := cmd.Flags().GetInt("words-per-subtitle")
	mediaPath, _ := cmd.Flags().GetString("media")
	force, _ := cmd.Flags().GetBool("force")
	outputPath, _ := cmd.Flags().GetString("output")

	formats := make([]subtitle.Format, 0, len(formatNames))
	for _, name := range formatNames {
		format, err := subtitle.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	data, err := align.Load(alignmentPath)
	if err != nil {
		return err
	}

	if mediaPath != "" {
		duration, err := media.Duration(mediaPath)
		if err != nil {
			return fmt.Errorf("failed to probe media duration: %w", err)
		}
		data.AudioDuration = duration
	}

	logger.Infow("Loaded alignment data",
		"segments", len(data.Segments),
		"words", len(data.WordSegments),
		"duration", data.AudioDuration,
	)

	result := validate.NewQuality().AlignmentData(data)
	for _, issue := range result.Issues {
		if issue.Severity >= validate.SeverityWarning {
			logger.Warnw("Quality issue",
				"severity", issue.Severity.String(),
				"category", issue.Category,
				"message", issue.Message,
				"location", issue.Location,
			)
		}
	}
	logger.Infow("Quality check complete",
		"score", fmt.Sprintf("%.2f", result.Score),
		"issues", len(result.Issues),
	)

	if !result.IsValid && !force {
		return fmt.Errorf(
			"alignment data failed quality validation (score %.2f); use --force to generate anyway",
			result.Score,
		)
	}

	opts := subtitle.Options{
		WordLevel:        wordLevel,
		WordsPerSubtitle: wordsPerSubtitle,
		Style:            styleOverridesFromFlags(cmd),
	}

	generator := subtitle.NewGenerator()
	for _, format := range formats {
		opts.OutputPath = outputPathFor(outputPath, alignmentPath, format, len(formats))

		file, err := generator.Generate(data, format, opts)
		if err != nil {
			return fmt.Errorf("failed to generate %s subtitles: %w", format, err)
		}
		if err := generator.Save(file); err != nil {
			return fmt.Errorf("failed to write %s subtitles: %w", format, err)
		}

		absPath, _ := filepath.Abs(file.Path)
		fmt.Printf("Subtitles generated: %s\n", absPath)
		fmt.Printf("  Words: %d\n", file.WordCount)
		fmt.Printf("  Duration: %.2fs\n", file.Duration)
	}

	return nil
}

// outputPathFor derives one output path per format. An explicit --output is
// honored as-is for a single format and used as a base name otherwise.
func outputPathFor(
	outputPath, alignmentPath string,
	format subtitle.Format,
	formatCount int,
) string {
	if outputPath != "" {
		if formatCount == 1 {
			return outputPath
		}
		return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) +
			format.Extension()
	}

	base := strings.TrimSuffix(alignmentPath, filepath.Ext(alignmentPath))
	base = strings.TrimSuffix(base, ".alignment")
	return base + format.Extension()
}

func styleOverridesFromFlags(cmd *cobra.Command) *subtitle.StyleOverrides {
	overrides := &subtitle.StyleOverrides{}
	used := false

	if font, _ := cmd.Flags().GetString("font"); font != "" {
		overrides.FontName = &font
		used = true
	}
	if size, _ := cmd.Flags().GetInt("font-size"); size > 0 {
		overrides.FontSize = &size
		used = true
	}
	if color, _ := cmd.Flags().GetString("primary-color"); color != "" {
		overrides.PrimaryColor = &color
		used = true
	}
	if color, _ := cmd.Flags().GetString("highlight-color"); color != "" {
		overrides.SecondaryColor = &color
		used = true
	}

	if !used {
		return nil
	}
	return overrides
}
