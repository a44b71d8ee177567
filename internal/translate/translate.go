package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// single segment text to translate, indexed by its segment ID
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated segment text
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for segment text translation
type Translator interface {
	Translate(ctx context.Context, items []Item) ([]Result, error)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const DefaultBatchSize = 50

type Options struct {
	SourceLanguage string
	TargetLanguage string
	Model          string
	Prompt         string
	BatchSize      int // items per API request (default 50)
	Concurrency    int // parallel API requests (default 3)
}

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return 3
}

// Factory creates a Translator for the given provider.
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt creates the translation prompt shared by all providers.
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	if opts.SourceLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s lyric lines to %s.\n\n",
			opts.SourceLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following lyric lines to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Translate ONLY the text content, preserving the meaning and tone.\n")
	sb.WriteString("2. These are song lyrics; keep the register poetic where the source is.\n")
	sb.WriteString("3. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("4. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("5. The 'index' values must match the input indices exactly.\n")
	sb.WriteString("6. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt))
	}

	sb.WriteString("Input JSON:\n")
	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)
	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// batchFunc translates one batch with a single API request.
type batchFunc func(ctx context.Context, items []Item) ([]Result, error)

// translateAll splits items into batches and runs them through fn with up
// to concurrency workers. The first batch error cancels the remaining work.
// Results come back sorted by index.
func translateAll(
	ctx context.Context,
	items []Item,
	opts Options,
	fn batchFunc,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	batchSize := opts.batchSize()
	var batches [][]Item
	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}

	if len(batches) == 1 {
		return fn(ctx, batches[0])
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type batchResult struct {
		Index   int
		Results []Result
		Error   error
	}

	concurrency := opts.concurrency()
	workChan := make(chan int)
	resultChan := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < concurrency && i < len(batches); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case batchIdx, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					results, err := fn(ctx, batches[batchIdx])
					if err != nil {
						cancel()
					}
					resultChan <- batchResult{
						Index:   batchIdx,
						Results: results,
						Error:   err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range batches {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var allResults []Result
	var firstErr error
	for result := range resultChan {
		if result.Error != nil && firstErr == nil {
			firstErr = fmt.Errorf("batch %d failed: %w", result.Index, result.Error)
			cancel()
		}
		if result.Error == nil {
			allResults = append(allResults, result.Results...)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Index < allResults[j].Index
	})

	return allResults, nil
}
