package bench

import (
	"sort"

	"github.com/samber/lo"

	"github.com/jamesainslie/rolema"
)

// Metrics holds evaluation results for one encoder over a set of entries.
type Metrics struct {
	Names          int     // distinct names evaluated
	Codes          int     // distinct codes produced
	CollidingCodes int     // codes shared by two or more names
	CollidingNames int     // names whose code is shared
	CollisionRate  float64 // CollidingNames / Names
	Expected       int     // entries carrying an expected code
	Matches        int
	Mismatches     int
	Accuracy       float64 // Matches / Expected
	MeanGroups     float64
	DictionaryHits int
}

// Collision lists the names that share one code.
type Collision struct {
	Code  string
	Names []string
}

// Mismatch is an entry whose code differs from the expected one.
type Mismatch struct {
	Entry Entry
	Got   string
}

// Report is the full outcome of Evaluate.
type Report struct {
	Metrics    Metrics
	Collisions []Collision
	Mismatches []Mismatch
}

// Evaluate encodes every entry and measures collisions and agreement with
// the expected codes. Duplicate names are counted once.
func Evaluate(enc *rolema.Encoder, dict rolema.Dictionary, entries []Entry) Report {
	var r Report
	codes := make(map[string]string) // name -> code
	var totalGroups int

	for _, e := range entries {
		conv := enc.Convert(e.Name, dict)

		if e.Expected != "" {
			r.Metrics.Expected++
			if conv.Code == e.Expected {
				r.Metrics.Matches++
			} else {
				r.Mismatches = append(r.Mismatches, Mismatch{Entry: e, Got: conv.Code})
			}
		}

		if _, seen := codes[e.Name]; seen {
			continue
		}
		codes[e.Name] = conv.Code
		totalGroups += len(conv.Groups)
		if conv.FromDictionary {
			r.Metrics.DictionaryHits++
		}
	}
	r.Metrics.Mismatches = len(r.Mismatches)

	names := lo.Keys(codes)
	sort.Strings(names)
	byCode := lo.GroupBy(names, func(name string) string { return codes[name] })

	for code, group := range byCode {
		if len(group) < 2 {
			continue
		}
		r.Collisions = append(r.Collisions, Collision{Code: code, Names: group})
		r.Metrics.CollidingNames += len(group)
	}
	sort.Slice(r.Collisions, func(i, j int) bool {
		return r.Collisions[i].Code < r.Collisions[j].Code
	})

	r.Metrics.Names = len(names)
	r.Metrics.Codes = len(byCode)
	r.Metrics.CollidingCodes = len(r.Collisions)
	if r.Metrics.Names > 0 {
		r.Metrics.CollisionRate = float64(r.Metrics.CollidingNames) / float64(r.Metrics.Names)
		r.Metrics.MeanGroups = float64(totalGroups) / float64(r.Metrics.Names)
	}
	if r.Metrics.Expected > 0 {
		r.Metrics.Accuracy = float64(r.Metrics.Matches) / float64(r.Metrics.Expected)
	}

	return r
}
