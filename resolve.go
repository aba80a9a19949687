package shonamorph

import "fmt"

// selectBest picks the single best class interpretation for a
// segmented word. candidates must be non-empty and in declared
// priority order, as returned by ClassTable.Lookup; calling it with
// an empty list is a defect in the caller and panics.
//
// The policy is a fixed precedence, not a score:
//
//  1. A lone candidate wins outright.
//  2. For "mu", stem-shape evidence is consulted first, in muRules
//     order. Pattern evidence always overrides declared priority; a
//     matching rule whose class the table does not actually list for
//     "mu" falls through instead of crashing. With no pattern match
//     the default is the first candidate, class 1, the statistically
//     dominant reading of "mu".
//  3. For "ku", the infinitive reading (class 15) dominates the
//     locative regardless of stem content, so the first candidate
//     always wins.
//  4. Everywhere else the lowest declared priority wins, first
//     occurrence breaking ties.
func selectBest(prefix, stem string, candidates []ClassEntry) ClassEntry {
	if len(candidates) == 0 {
		panic(fmt.Sprintf("shonamorph: selectBest(%q, %q) called with no candidates", prefix, stem))
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	switch lowerASCII(prefix) {
	case "mu":
		for _, rule := range muRules {
			if !rule.set.Matches(stem) {
				continue
			}
			if e, ok := findClass(candidates, rule.classID); ok {
				return e
			}
		}
		return candidates[0]
	case "ku":
		return candidates[0]
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Priority < best.Priority {
			best = c
		}
	}
	return best
}

// findClass returns the candidate with the given class ID, if listed.
func findClass(candidates []ClassEntry, id string) (ClassEntry, bool) {
	for _, c := range candidates {
		if c.ID == id {
			return c, true
		}
	}
	return ClassEntry{}, false
}

// Resolve maps a segmented word to its grammatical analysis. The
// prefix is matched case-insensitively. An unknown prefix is a
// first-class outcome, not an error: the returned Analysis has a nil
// Entry and carries the fallback class disjunction.
func (a *Analyzer) Resolve(prefix, stem string) Analysis {
	pfx := lowerASCII(prefix)
	stem = lowerASCII(stem)
	word := pfx + stem

	candidates := a.table.Lookup(pfx)
	if len(candidates) == 0 {
		return Analysis{
			Word:            word,
			Prefix:          pfx,
			Stem:            stem,
			Lemma:           word,
			FallbackClasses: FallbackClasses(),
		}
	}

	entry := selectBest(pfx, stem, candidates)
	return Analysis{
		Word:          word,
		Prefix:        pfx,
		Stem:          stem,
		Entry:         &entry,
		Candidates:    candidates,
		Lemma:         deriveLemma(word, stem, entry),
		CompanionForm: a.deriveCompanionForm(stem, entry),
	}
}
