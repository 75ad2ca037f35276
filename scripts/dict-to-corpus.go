//go:build ignore

// Turn a community dictionary into a benchmark corpus whose expected codes
// are the community codes. Running rolema-bench on the result shows how
// often the generated code already agrees with what people chose.
// Usage: go run ./scripts/dict-to-corpus.go community.json > cmd/rolema-bench/testdata/corpus/community.tsv
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/rolema/dictionary"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./scripts/dict-to-corpus.go DICTIONARY")
		os.Exit(2)
	}
	path := os.Args[1]

	d, err := dictionary.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "# Source: %s\n", filepath.Base(path))
	fmt.Fprintf(w, "# Title: Community codes (digest %s)\n\n", d.Digest()[:12])

	var skipped int
	for _, e := range d.Entries() {
		// Corpus lines are tab separated
		if strings.ContainsAny(e.Name, "\t\n") {
			skipped++
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Code)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%d entries written, %d skipped\n", d.Len()-skipped, skipped)
}
