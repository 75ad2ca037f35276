// Command rolema-bench measures code collisions and expected-code agreement
// over a corpus of names.
//
//	rolema-bench --corpus testdata/corpus
//	rolema-bench --corpus testdata/corpus --sweep
//	rolema-bench --corpus testdata/corpus --collisions --dict community.json
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jamesainslie/rolema"
	"github.com/jamesainslie/rolema/internal/bench"
	"github.com/jamesainslie/rolema/internal/logging"
)

// CLI defines the rolema-bench flags.
type CLI struct {
	Corpus     string   `default:"testdata/corpus" type:"existingdir" help:"Directory containing corpus files (.txt, .tsv)."`
	Dict       []string `short:"d" sep:"," help:"Community dictionary files; later files win."`
	StopWords  bool     `name:"stop-words" help:"Evaluate with stop words dropped."`
	WordCodes  bool     `name:"word-codes" help:"Evaluate with well-known word codes."`
	Sweep      bool     `help:"Evaluate every encoder variant and rank them."`
	Collisions bool     `help:"List every code shared by two or more names."`
	Mismatches bool     `help:"List entries whose code differs from the expected one."`
	LogLevel   string   `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})."`
}

type exitCode int

func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("rolema-bench"),
		kong.Description("Measure RO-LE-MA code collisions over a corpus of names."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	_, err = parser.Parse(args)
	parser.FatalIfErrorf(err)

	if err := cli.run(stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (c *CLI) run(stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, level, logging.FormatText)

	corpora, err := bench.LoadCorpus(c.Corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	entries := bench.Flatten(corpora)
	fmt.Fprintf(stdout, "Loaded %d names from %d files in %s\n\n", len(entries), len(corpora), c.Corpus)

	var dict rolema.Dictionary
	if len(c.Dict) > 0 {
		d, err := rolema.OpenDictionaries(c.Dict...)
		if err != nil {
			return err
		}
		logger.Info("dictionary loaded", "entries", d.Len(), "digest", d.Digest())
		dict = d
	}

	if c.Sweep {
		printSweep(stdout, bench.Sweep(entries, dict, bench.DefaultVariants()))
		return nil
	}

	opts := []rolema.Option{rolema.WithLogger(logger)}
	if c.StopWords {
		opts = append(opts, rolema.WithDefaultStopWords())
	}
	if c.WordCodes {
		opts = append(opts, rolema.WithDefaultWordCodes())
	}
	report := bench.Evaluate(rolema.New(opts...), dict, entries)

	printMetrics(stdout, report.Metrics)
	if c.Collisions {
		printCollisions(stdout, report.Collisions)
	}
	if c.Mismatches {
		printMismatches(stdout, report.Mismatches)
	}
	return nil
}

func printMetrics(w io.Writer, m bench.Metrics) {
	fmt.Fprintf(w, "Names: %d  Codes: %d  Colliding codes: %d  Colliding names: %d\n",
		m.Names, m.Codes, m.CollidingCodes, m.CollidingNames)
	fmt.Fprintf(w, "Collision rate: %.3f  Mean groups: %.2f  Dictionary hits: %d\n",
		m.CollisionRate, m.MeanGroups, m.DictionaryHits)
	if m.Expected > 0 {
		fmt.Fprintf(w, "Accuracy: %.3f (%d/%d expected codes matched)\n", m.Accuracy, m.Matches, m.Expected)
	}
}

func printSweep(w io.Writer, results []bench.SweepResult) {
	fmt.Fprintln(w, "Variant Sweep Results")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-24s %-10s %-10s %-8s %-8s\n", "Variant", "Collide", "Accuracy", "Codes", "Groups")
	for _, r := range results {
		fmt.Fprintf(w, "%-24s %-10.3f %-10.3f %-8d %-8.2f\n",
			r.Variant, r.Metrics.CollisionRate, r.Metrics.Accuracy, r.Metrics.Codes, r.Metrics.MeanGroups)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))
	if len(results) > 0 {
		fmt.Fprintf(w, "Best: %s (collision rate %.3f)\n", results[0].Variant, results[0].Metrics.CollisionRate)
	}
}

func printCollisions(w io.Writer, collisions []bench.Collision) {
	fmt.Fprintf(w, "\nCollisions (%d)\n", len(collisions))
	for _, c := range collisions {
		fmt.Fprintf(w, "  %-12s %s\n", c.Code, strings.Join(c.Names, " | "))
	}
}

func printMismatches(w io.Writer, mismatches []bench.Mismatch) {
	fmt.Fprintf(w, "\nMismatches (%d)\n", len(mismatches))
	for _, m := range mismatches {
		fmt.Fprintf(w, "  line %-4d %-30s expected %-12s got %s\n", m.Entry.Line, m.Entry.Name, m.Entry.Expected, m.Got)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
