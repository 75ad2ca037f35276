package bench

import (
	"sort"

	"github.com/jamesainslie/rolema"
)

// Variant is a named encoder configuration.
type Variant struct {
	Name    string
	Options []rolema.Option
}

// DefaultVariants returns the plain encoder and the stop-word and word-code
// variants in every combination.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "plain"},
		{Name: "stop-words", Options: []rolema.Option{rolema.WithDefaultStopWords()}},
		{Name: "word-codes", Options: []rolema.Option{rolema.WithDefaultWordCodes()}},
		{Name: "stop-words+word-codes", Options: []rolema.Option{
			rolema.WithDefaultStopWords(),
			rolema.WithDefaultWordCodes(),
		}},
	}
}

// SweepResult holds metrics for one variant.
type SweepResult struct {
	Variant string
	Metrics Metrics
}

// Sweep evaluates every variant and returns results sorted by collision
// rate ascending, then accuracy descending. Ties keep variant order.
func Sweep(entries []Entry, dict rolema.Dictionary, variants []Variant) []SweepResult {
	results := make([]SweepResult, 0, len(variants))
	for _, v := range variants {
		report := Evaluate(rolema.New(v.Options...), dict, entries)
		results = append(results, SweepResult{Variant: v.Name, Metrics: report.Metrics})
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Metrics, results[j].Metrics
		if a.CollisionRate != b.CollisionRate {
			return a.CollisionRate < b.CollisionRate
		}
		return a.Accuracy > b.Accuracy
	})

	return results
}
