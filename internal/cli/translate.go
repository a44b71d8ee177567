package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/subtitle"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [alignment_file]",
	Short: "Translate segment texts and generate bilingual subtitles",
	Long: `Translate the segment texts of an alignment JSON document with an
LLM provider and emit bilingual subtitles, with the original line stacked
above its translation.

API keys come from --api-key or the provider's environment variable
(GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY).

Examples:
  lyricsmaster translate song.alignment.json --target-language Spanish
  lyricsmaster translate song.alignment.json -t Japanese --provider anthropic
  lyricsmaster translate song.alignment.json -t French --formats ass,json`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language (required)")
	translateCmd.Flags().
		String("source-language", "", "Source language hint for the model")
	translateCmd.Flags().
		String("provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().StringP("api-key", "k", "", "Provider API key")
	translateCmd.Flags().String("model", "", "Model to use for translation")
	translateCmd.Flags().
		StringSliceP("formats", "f", []string{"srt"}, "Output formats (srt, vtt, ass, json)")
	translateCmd.Flags().Int("concurrency", 3, "Parallel translation requests")
	translateCmd.Flags().
		Bool("save-alignment", false, "Also write the bilingual alignment JSON next to the input")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	alignmentPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(alignmentPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", alignmentPath)
	}

	targetLanguage, _ := cmd.Flags().GetString("target-language")
	if targetLanguage == "" {
		return fmt.Errorf("target language is required: use --target-language")
	}

	sourceLanguage, _ := cmd.Flags().GetString("source-language")
	providerName, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	formatNames, _ := cmd.Flags().GetStringSlice("formats")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	saveAlignment, _ := cmd.Flags().GetBool("save-alignment")
	outputPath, _ := cmd.Flags().GetString("output")

	provider := translate.Provider(strings.ToLower(providerName))
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key or set %s",
			apiKeyEnvVar(provider),
		)
	}

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

	logger.Infow("Translating segments",
		"segments", len(data.Segments),
		"provider", providerName,
		"target_language", targetLanguage,
	)

	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
		Model:          model,
		Concurrency:    concurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	items := make([]translate.Item, 0, len(data.Segments))
	for _, seg := range data.Segments {
		items = append(items, translate.Item{
			Index: seg.SegmentID,
			Text:  seg.Text,
		})
	}

	results, err := translator.Translate(ctx, items)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	translations := make(map[int]string, len(results))
	for _, r := range results {
		translations[r.Index] = r.Text
	}

	translated := 0
	for i, seg := range data.Segments {
		translation, ok := translations[seg.SegmentID]
		if !ok || strings.TrimSpace(translation) == "" {
			logger.Warnw("Segment has no translation",
				"segment_id", seg.SegmentID,
			)
			continue
		}
		data.Segments[i].Text = seg.Text + "\n" + translation
		translated++
	}

	logger.Infow("Translation complete",
		"translated", translated,
		"total", len(data.Segments),
	)

	if saveAlignment {
		bilingualPath := strings.TrimSuffix(alignmentPath, ".json") +
			".bilingual.json"
		if err := align.Save(data, bilingualPath); err != nil {
			return err
		}
		fmt.Printf("Bilingual alignment written: %s\n", bilingualPath)
	}

	opts := subtitle.Options{
		Bilingual:      true,
		TargetLanguage: targetLanguage,
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

		fmt.Printf("Bilingual subtitles generated: %s\n", file.Path)
	}

	return nil
}

func apiKeyEnvVar(provider translate.Provider) string {
	switch provider {
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "GEMINI_API_KEY"
	}
}
