package bench

import (
	"testing"
)

func TestSweep(t *testing.T) {
	entries := []Entry{
		{Name: "The Tower", Expected: "TOW"},
		{Name: "Tower"},
		{Name: "Bank of England", Expected: "BAN-ENG"},
		{Name: "UK Parliament", Expected: "UKX-PAR"},
	}

	results := Sweep(entries, nil, DefaultVariants())
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	// Dropping "The" makes "The Tower" collide with "Tower", so variants
	// without stop words must rank first.
	for i, r := range results[:2] {
		if r.Metrics.CollisionRate != 0 {
			t.Errorf("result %d (%s): expected no collisions, got %.2f", i, r.Variant, r.Metrics.CollisionRate)
		}
	}
	for i, r := range results[2:] {
		if r.Metrics.CollisionRate == 0 {
			t.Errorf("result %d (%s): expected collisions", i+2, r.Variant)
		}
	}

	// Among the stop-word variants, word codes add the UK match.
	if results[2].Variant != "stop-words+word-codes" {
		t.Errorf("expected stop-words+word-codes ahead of stop-words, got %s", results[2].Variant)
	}
}

func TestSweep_StableOnTies(t *testing.T) {
	results := Sweep(nil, nil, DefaultVariants())
	want := []string{"plain", "stop-words", "word-codes", "stop-words+word-codes"}
	for i, r := range results {
		if r.Variant != want[i] {
			t.Errorf("result %d: expected %s, got %s", i, want[i], r.Variant)
		}
	}
}
