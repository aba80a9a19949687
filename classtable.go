package shonamorph

import (
	"fmt"
	"sort"
)

// Number is the grammatical number of a class entry.
type Number int

const (
	// NumberNone marks entries where number does not apply
	// (locatives, infinitives, honorifics).
	NumberNone Number = iota
	NumberSingular
	NumberPlural
	NumberAbstract
)

// String returns the display name of the number category.
func (n Number) String() string {
	switch n {
	case NumberSingular:
		return "singular"
	case NumberPlural:
		return "plural"
	case NumberAbstract:
		return "abstract"
	default:
		return "n/a"
	}
}

// MarshalText encodes the number as its display name.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// pairingKind discriminates the Pairing variants.
type pairingKind int

const (
	pairingNone pairingKind = iota
	pairingCompanion
	pairingSource
)

// Pairing records how an entry relates to its number counterpart.
// An entry is either a base form with a known companion (plural)
// prefix, a derived form with a known source (singular) prefix, or
// neither. The zero value is "neither"; the constructors are the only
// way to build the other two variants, so a single entry can never
// carry both prefixes.
type Pairing struct {
	kind   pairingKind
	prefix string
}

// CompanionPrefix builds a Pairing for a base form whose counterpart
// is formed with prefix p.
func CompanionPrefix(p string) Pairing {
	return Pairing{kind: pairingCompanion, prefix: p}
}

// SourcePrefix builds a Pairing for a derived form whose base is
// formed with prefix p.
func SourcePrefix(p string) Pairing {
	return Pairing{kind: pairingSource, prefix: p}
}

// NoPairing builds the empty Pairing.
func NoPairing() Pairing {
	return Pairing{kind: pairingNone}
}

// Companion returns the companion prefix, if this entry declares one.
func (p Pairing) Companion() (string, bool) {
	return p.prefix, p.kind == pairingCompanion
}

// Source returns the source prefix, if this entry declares one.
func (p Pairing) Source() (string, bool) {
	return p.prefix, p.kind == pairingSource
}

// MarshalJSON encodes the pairing as the prefix it declares, keyed by
// role, or null for unpaired entries.
func (p Pairing) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case pairingCompanion:
		return []byte(fmt.Sprintf("{%q:%q}", "companion_prefix", p.prefix)), nil
	case pairingSource:
		return []byte(fmt.Sprintf("{%q:%q}", "source_prefix", p.prefix)), nil
	default:
		return []byte("null"), nil
	}
}

// ClassEntry is one candidate grammatical interpretation of a prefix,
// following Fortune's noun-class numbering.
type ClassEntry struct {
	// ID is the class label, e.g. "1", "2a", "18".
	ID string `json:"class"`
	// Meaning is a free-text gloss of the class semantics.
	Meaning string `json:"meaning"`
	// Number is the grammatical number of the class.
	Number Number `json:"number"`
	// Pairing links the entry to its singular/plural counterpart.
	Pairing Pairing `json:"pairing"`
	// Priority is the declared disambiguation rank; lower wins.
	// Entries under one prefix are stored in priority order, so the
	// first entry is always the default choice.
	Priority int `json:"priority"`
}

// ClassTable maps a lowercase noun prefix to its candidate class
// entries, in declared priority order. Built once and never mutated,
// so concurrent reads are safe without locking.
type ClassTable map[string][]ClassEntry

// Lookup returns the candidate entries for prefix, matched
// case-insensitively. An unknown prefix yields an empty slice, never
// an error: zero-prefix classes (1a, 5, 9, 10) are indistinguishable
// at the prefix level and are reported by the caller as a fixed
// disjunction.
func (t ClassTable) Lookup(prefix string) []ClassEntry {
	entries := t[lowerASCII(prefix)]
	if len(entries) == 0 {
		return nil
	}
	out := make([]ClassEntry, len(entries))
	copy(out, entries)
	return out
}

// Prefixes returns all known prefixes in sorted order.
func (t ClassTable) Prefixes() []string {
	out := make([]string, 0, len(t))
	for p := range t {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// validate checks the table invariants: every key maps to a non-empty
// list, class IDs under one prefix are pairwise distinct, and entries
// are stored in strictly increasing priority order.
func (t ClassTable) validate() error {
	for prefix, entries := range t {
		if prefix != lowerASCII(prefix) {
			return fmt.Errorf("class table: prefix %q is not lowercase", prefix)
		}
		if len(entries) == 0 {
			return fmt.Errorf("class table: prefix %q has no entries", prefix)
		}
		seen := make(map[string]bool, len(entries))
		for i, e := range entries {
			if e.ID == "" {
				return fmt.Errorf("class table: prefix %q entry %d has empty class ID", prefix, i)
			}
			if seen[e.ID] {
				return fmt.Errorf("class table: prefix %q declares class %q twice", prefix, e.ID)
			}
			seen[e.ID] = true
			if i > 0 && entries[i-1].Priority >= e.Priority {
				return fmt.Errorf("class table: prefix %q entries not in priority order", prefix)
			}
		}
	}
	return nil
}

// defaultClassTable builds the table from Fortune's "Shona
// Grammatical Constructions". Classes 1a, 5 (zero prefix) and the
// nasal-prefix classes 9/10 have no overt prefix and are deliberately
// absent; Lookup misses resolve to the fallback disjunction.
func defaultClassTable() ClassTable {
	return ClassTable{
		"mu": {
			{ID: "1", Meaning: "Person", Number: NumberSingular, Pairing: CompanionPrefix("va"), Priority: 1},
			{ID: "3", Meaning: "Tree/Atmospheric", Number: NumberSingular, Pairing: CompanionPrefix("mi"), Priority: 2},
			{ID: "18", Meaning: "Locative (Inside)", Number: NumberNone, Pairing: NoPairing(), Priority: 3},
		},
		"va": {
			{ID: "2", Meaning: "People (Plural of 1)", Number: NumberPlural, Pairing: SourcePrefix("mu"), Priority: 1},
			{ID: "2a", Meaning: "Honorific/Respect", Number: NumberNone, Pairing: NoPairing(), Priority: 2},
		},
		"mi": {
			{ID: "4", Meaning: "Trees/Miscellaneous (Plural of 3)", Number: NumberPlural, Pairing: SourcePrefix("mu"), Priority: 1},
		},
		"chi": {
			{ID: "7", Meaning: "Object/Language/Short Person", Number: NumberSingular, Pairing: CompanionPrefix("zvi"), Priority: 1},
		},
		"zvi": {
			{ID: "8", Meaning: "Objects (Plural of 7)", Number: NumberPlural, Pairing: SourcePrefix("chi"), Priority: 1},
		},
		"ma": {
			{ID: "6", Meaning: "Liquids/Plurals of Cl 5", Number: NumberPlural, Pairing: SourcePrefix("ri"), Priority: 1},
		},
		"ri": {
			{ID: "5", Meaning: "Large Object/Fruit", Number: NumberSingular, Pairing: CompanionPrefix("ma"), Priority: 1},
		},
		"ru": {
			{ID: "11", Meaning: "Long/Thin Object or Abstract", Number: NumberSingular, Pairing: CompanionPrefix("n"), Priority: 1},
		},
		"ka": {
			{ID: "12", Meaning: "Diminutive (Small)", Number: NumberSingular, Pairing: CompanionPrefix("tu"), Priority: 1},
		},
		"tu": {
			{ID: "13", Meaning: "Diminutive (Plural of 12)", Number: NumberPlural, Pairing: SourcePrefix("ka"), Priority: 1},
		},
		"hu": {
			{ID: "14", Meaning: "Abstract Quality", Number: NumberAbstract, Pairing: NoPairing(), Priority: 1},
		},
		"ku": {
			{ID: "15", Meaning: "Infinitive (To do)", Number: NumberNone, Pairing: NoPairing(), Priority: 1},
			{ID: "17", Meaning: "Locative (At/To)", Number: NumberNone, Pairing: NoPairing(), Priority: 2},
		},
		"pa": {
			{ID: "16", Meaning: "Locative (At/On)", Number: NumberNone, Pairing: NoPairing(), Priority: 1},
		},
	}
}
