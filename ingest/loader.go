package ingest

import (
	"fmt"
	"os"

	"github.com/halcyonlabs/textindex/core"
)

// LoadTextFile reads one source file into a Document. The file's path is
// recorded as "source" metadata and travels with every fragment produced
// from the document.
func LoadTextFile(path string) (core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	return core.NewDocument(string(data), map[string]any{"source": path}), nil
}
