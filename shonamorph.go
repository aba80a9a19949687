// Package shonamorph analyzes Shona noun morphology. It maps a word
// segmented into prefix and stem onto Fortune's noun-class system:
// candidate classes come from a hand-authored prefix table,
// ambiguous prefixes are settled by stem-shape heuristics, and the
// chosen class yields the lemma and the companion (plural or
// singular) form.
//
// Segmentation itself is an external concern behind the Segmenter
// interface; internal/segmenter provides a backend running the
// pretrained splitting model.
package shonamorph

import (
	"context"
	"fmt"
	"sync"
)

// ErrNoSegmenter is returned by Analyze when the analyzer was built
// without a segmenter. Resolve remains usable with pre-segmented
// input.
var ErrNoSegmenter = fmt.Errorf("shonamorph: no segmenter configured")

// Analyzer holds the class table, stem pattern sets and irregular
// forms, all initialized once and read-only afterwards. A single
// Analyzer is safe for concurrent use.
type Analyzer struct {
	table              ClassTable
	irregularLocatives map[string]string
	segmenter          Segmenter
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSegmenter attaches the segmenter used by Analyze.
func WithSegmenter(s Segmenter) Option {
	return func(a *Analyzer) { a.segmenter = s }
}

// New builds an Analyzer over the built-in Fortune class table,
// validating the table invariants.
func New(opts ...Option) (*Analyzer, error) {
	table := defaultClassTable()
	if err := table.validate(); err != nil {
		return nil, err
	}
	irregs := make(map[string]string, len(irregularLocativePlurals))
	for k, v := range irregularLocativePlurals {
		irregs[k] = v
	}
	a := &Analyzer{
		table:              table,
		irregularLocatives: irregs,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

var (
	defaultAnalyzer *Analyzer
	defaultOnce     sync.Once
)

// Default returns a process-wide Analyzer without a segmenter, for
// callers that only need Resolve and the table accessors.
func Default() *Analyzer {
	defaultOnce.Do(func() {
		a, err := New()
		if err != nil {
			// The built-in table failed its own invariants; the
			// binary is unusable.
			panic(err)
		}
		defaultAnalyzer = a
	})
	return defaultAnalyzer
}

// Analyze runs the full pipeline on a raw word: normalize, segment,
// resolve. Errors come only from the segmenter boundary (missing
// segmenter, backend failure, contract violation); an unknown prefix
// is reported inside the Analysis, not as an error.
func (a *Analyzer) Analyze(ctx context.Context, word string) (Analysis, error) {
	if a.segmenter == nil {
		return Analysis{}, ErrNoSegmenter
	}
	w := NormalizeWord(word)
	if w == "" {
		return Analysis{}, fmt.Errorf("shonamorph: empty word")
	}

	seg, err := a.segmenter.Segment(ctx, w)
	if err != nil {
		return Analysis{}, fmt.Errorf("segment %q: %w", w, err)
	}
	if err := checkSegmentation(w, seg); err != nil {
		return Analysis{}, err
	}

	if seg.Prefix == "" {
		// No confident split: zero-prefix noun, unresolvable at the
		// prefix level.
		return Analysis{
			Word:            w,
			Stem:            seg.Stem,
			Lemma:           w,
			FallbackClasses: FallbackClasses(),
		}, nil
	}
	return a.Resolve(seg.Prefix, seg.Stem), nil
}

// KnownPrefixes returns every prefix in the class table, sorted.
func (a *Analyzer) KnownPrefixes() []string {
	return a.table.Prefixes()
}

// Entries returns the class entries declared for prefix, in priority
// order, or nil for an unknown prefix.
func (a *Analyzer) Entries(prefix string) []ClassEntry {
	return a.table.Lookup(prefix)
}
