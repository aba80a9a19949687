package shonamorph

// deriveLemma computes the citation form for a word analyzed as
// entry. Plurals with a known source prefix are reduced to their
// singular (zvi+bage → chibage); every other case — singulars,
// abstracts, invariants, and plurals whose source is unknown — keeps
// the word itself as lemma.
func deriveLemma(word, stem string, entry ClassEntry) string {
	if entry.Number == NumberPlural {
		if src, ok := entry.Pairing.Source(); ok {
			return src + stem
		}
	}
	return word
}

// irregularLocativePlurals maps class 18 stems to their plural
// locative forms. Class 18 declares no companion prefix, because the
// plural is formed inside the embedded noun (mu+munda → mu+minda),
// so the known forms are listed literally. The table is closed;
// adding a form is a data change, not a logic change.
var irregularLocativePlurals = map[string]string{
	"munda": "muminda",
	"musha": "mumisha",
	"gomo":  "mumakomo",
	"bako":  "mumapako",
}

// deriveCompanionForm computes the paired number form. Entries with
// a declared companion prefix prepend it to the stem; class 18
// consults the irregular table; everything else has no companion
// form and returns the empty string. (For plural entries the paired
// singular is already the lemma, so no companion is declared.)
func (a *Analyzer) deriveCompanionForm(stem string, entry ClassEntry) string {
	if companion, ok := entry.Pairing.Companion(); ok {
		return companion + stem
	}
	if entry.ID == "18" {
		return a.irregularLocatives[stem]
	}
	return ""
}
