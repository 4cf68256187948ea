package puzzlescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PuzzleEntry represents a discoverable puzzle in the data directory
type PuzzleEntry struct {
	Name string // Display name (file name without extension)
	Path string // Full path to the puzzle file
}

// ScanDataDirectory scans a directory for puzzle files.
// Returns one PuzzleEntry per JSON file, sorted by name.
func ScanDataDirectory(dataPath string) ([]PuzzleEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var puzzles []PuzzleEntry
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		// Skip hidden files
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		ext := filepath.Ext(name)
		if strings.ToLower(ext) != ".json" {
			continue
		}

		puzzles = append(puzzles, PuzzleEntry{
			Name: strings.TrimSuffix(name, ext),
			Path: filepath.Join(dataPath, name),
		})
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].Name < puzzles[j].Name
	})

	return puzzles, nil
}
