package shonamorph

import (
	"context"
	"fmt"
	"strings"
)

// Segmentation is the output of a word segmenter: the single split of
// a word into class prefix and lexical stem. An empty Prefix means
// the segmenter found no confident split and the whole word is the
// stem (a zero-prefix noun, from the resolver's point of view).
type Segmentation struct {
	Prefix string
	Stem   string
}

// Segmenter splits a raw word into prefix and stem. Implementations
// must uphold Prefix+Stem == word. The interface is satisfied by the
// pretrained model backend in internal/segmenter; the resolver never
// second-guesses a segmenter's split.
type Segmenter interface {
	Segment(ctx context.Context, word string) (Segmentation, error)
}

// SegmenterFunc adapts a plain function to the Segmenter interface.
type SegmenterFunc func(ctx context.Context, word string) (Segmentation, error)

// Segment calls f.
func (f SegmenterFunc) Segment(ctx context.Context, word string) (Segmentation, error) {
	return f(ctx, word)
}

// checkSegmentation verifies the segmenter contract for word.
func checkSegmentation(word string, seg Segmentation) error {
	if seg.Prefix+seg.Stem != word {
		return fmt.Errorf("segmenter contract violation: %q + %q != %q", seg.Prefix, seg.Stem, word)
	}
	return nil
}

// LongestPrefixSegmenter splits words by the longest class prefix the
// table knows, leaving at least one character of stem. It is a crude
// stand-in for the trained model — it cannot tell mu+nhu from a word
// that merely starts with "mu" — but it keeps the pipeline usable
// when the model assets are not deployed, and serves as the test
// double for pipeline tests.
type LongestPrefixSegmenter struct {
	prefixes []string
}

// NewLongestPrefixSegmenter builds a fallback segmenter over the
// analyzer's known prefixes.
func NewLongestPrefixSegmenter(a *Analyzer) *LongestPrefixSegmenter {
	return &LongestPrefixSegmenter{prefixes: a.KnownPrefixes()}
}

// Segment splits word at the longest known prefix, or returns the
// whole word as stem when none applies.
func (s *LongestPrefixSegmenter) Segment(_ context.Context, word string) (Segmentation, error) {
	w := lowerASCII(word)
	best := ""
	for _, p := range s.prefixes {
		if len(p) > len(best) && len(p) < len(w) && strings.HasPrefix(w, p) {
			best = p
		}
	}
	if best == "" {
		return Segmentation{Stem: w}, nil
	}
	return Segmentation{Prefix: best, Stem: w[len(best):]}, nil
}
