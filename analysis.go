package shonamorph

// fallbackClasses are the noun classes with no overt prefix. A word
// whose prefix is absent from the class table can belong to any of
// them; the table cannot tell them apart, so they are reported
// together.
var fallbackClasses = []string{"1a", "5", "9", "10"}

// FallbackClasses returns the classes reported for words whose prefix
// is not in the table: 1a (kinship), 5 (zero prefix), 9 and 10
// (nasal prefix).
func FallbackClasses() []string {
	out := make([]string, len(fallbackClasses))
	copy(out, fallbackClasses)
	return out
}

// Analysis is the grammatical analysis of one segmented word. It is a
// value produced per query; nothing in this package retains it.
type Analysis struct {
	// Word is the analyzed surface form (prefix + stem).
	Word string `json:"word"`
	// Prefix and Stem are the two morphological parts.
	Prefix string `json:"prefix"`
	Stem   string `json:"stem"`

	// Entry is the chosen class interpretation. Nil when the prefix
	// is unknown; FallbackClasses then lists the possible classes.
	Entry *ClassEntry `json:"entry,omitempty"`
	// Candidates holds every class interpretation the table declares
	// for the prefix, in priority order. Empty when unresolved.
	Candidates []ClassEntry `json:"candidates,omitempty"`

	// Lemma is the citation form: the singular form for plurals with
	// a known source prefix, otherwise the word itself.
	Lemma string `json:"lemma"`
	// CompanionForm is the paired plural or singular form, when one
	// can be derived. Empty otherwise.
	CompanionForm string `json:"companion_form,omitempty"`

	// FallbackClasses is set instead of Entry when the prefix is
	// unknown.
	FallbackClasses []string `json:"fallback_classes,omitempty"`
}

// Resolved reports whether a single class was chosen for the word.
func (a Analysis) Resolved() bool {
	return a.Entry != nil
}
