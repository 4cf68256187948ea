package puzzlescanner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanDataDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b-second.json", "a-first.JSON", "notes.txt", ".hidden.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	puzzles, err := ScanDataDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDataDirectory: %v", err)
	}
	if len(puzzles) != 2 {
		t.Fatalf("got %d puzzles, want 2: %+v", len(puzzles), puzzles)
	}
	if puzzles[0].Name != "a-first" || puzzles[1].Name != "b-second" {
		t.Errorf("names = %q, %q", puzzles[0].Name, puzzles[1].Name)
	}
	if puzzles[1].Path != filepath.Join(dir, "b-second.json") {
		t.Errorf("path = %q", puzzles[1].Path)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := ScanDataDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
