package shonamorph

import "strings"

// StemPatternSet is a named set of literal stem openings used to
// disambiguate prefixes with several candidate classes. A stem
// matches when it equals a pattern or begins with one. Loaded once
// with the class table and never mutated.
type StemPatternSet struct {
	// Name identifies the set in diagnostics, e.g. "person stems".
	Name     string
	Patterns []string
}

// Matches reports whether stem equals or begins with any pattern.
func (s StemPatternSet) Matches(stem string) bool {
	for _, p := range s.Patterns {
		if strings.HasPrefix(stem, p) {
			return true
		}
	}
	return false
}

// stemRule ties a pattern set to the class it selects when the set
// matches and that class is among the candidates.
type stemRule struct {
	set     StemPatternSet
	classID string
}

// muRules is the ordered disambiguation policy for the "mu" prefix.
// Order is the precedence: locative evidence beats person evidence
// beats tree/body-part evidence. A rule whose preferred class is
// missing from the candidate list falls through to the next rule
// rather than failing. Stems are listed as they appear after the
// prefix is stripped, so locative stems are whole nouns (mu+munda
// "in the field") while person and tree stems are bare openings
// (mu+nhu "person", mu+ti "tree").
var muRules = []stemRule{
	{
		set: StemPatternSet{
			Name:     "locative stems",
			Patterns: []string{"munda", "musha", "gomo", "bako", "dziva"},
		},
		classID: "18",
	},
	{
		set: StemPatternSet{
			Name:     "person stems",
			Patterns: []string{"nhu", "kadzi", "rume", "komana", "sikana", "dzidzisi", "rimi", "shandi", "eni"},
		},
		classID: "1",
	},
	{
		set: StemPatternSet{
			Name:     "tree/body-part stems",
			Patterns: []string{"ti", "sana", "soro", "romo", "nwe", "tumbu"},
		},
		classID: "3",
	},
}

// StemPatterns returns the pattern sets consulted for prefix, in
// precedence order. Only "mu" currently carries any; the accessor
// exists for help text alongside Prefixes.
func StemPatterns(prefix string) []StemPatternSet {
	if lowerASCII(prefix) != "mu" {
		return nil
	}
	out := make([]StemPatternSet, len(muRules))
	for i, r := range muRules {
		out[i] = r.set
	}
	return out
}
