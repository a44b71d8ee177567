package align

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads an alignment JSON document from path.
func Load(path string) (*AlignmentData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alignment file: %w", err)
	}

	var data AlignmentData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse alignment file: %w", err)
	}

	if len(data.Segments) == 0 {
		return nil, fmt.Errorf("alignment file %s contains no segments", path)
	}

	return &data, nil
}

// Save writes an alignment JSON document to path.
func Save(data *AlignmentData, path string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode alignment data: %w", err)
	}

	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write alignment file: %w", err)
	}

	return nil
}
