package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/mirrormaze/internal/preview"
)

func main() {
	dataDir := flag.String("data", "data/puzzles", "Directory of puzzle files")
	outDir := flag.String("out", "previews", "Directory to write PNG previews to")
	flag.Parse()

	fmt.Println("Mirror Maze Puzzle Preview Generator")
	fmt.Println("====================================")
	fmt.Println()

	written, err := preview.GenerateAll(*dataDir, *outDir)
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! %d previews written to %s\n", len(written), *outDir)
}
