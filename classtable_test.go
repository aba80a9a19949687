package shonamorph

import "testing"

func TestTableInvariants(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	prefixes := a.KnownPrefixes()
	if len(prefixes) == 0 {
		t.Fatal("KnownPrefixes returned nothing")
	}
	for _, p := range prefixes {
		entries := a.Entries(p)
		if len(entries) == 0 {
			t.Errorf("Entries(%q) is empty", p)
			continue
		}
		seen := map[string]bool{}
		for _, e := range entries {
			if seen[e.ID] {
				t.Errorf("prefix %q lists class %q twice", p, e.ID)
			}
			seen[e.ID] = true
		}
	}
}

func TestLookupUnknownPrefix(t *testing.T) {
	a, _ := New()
	if got := a.Entries("xyz"); got != nil {
		t.Errorf("Entries(\"xyz\") = %v, want nil", got)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	a, _ := New()
	upper := a.Entries("ZVI")
	lower := a.Entries("zvi")
	if len(upper) != len(lower) || len(upper) == 0 {
		t.Fatalf("Entries(\"ZVI\") = %v, Entries(\"zvi\") = %v", upper, lower)
	}
	if upper[0].ID != "8" {
		t.Errorf("Entries(\"ZVI\")[0].ID = %q, want \"8\"", upper[0].ID)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	a, _ := New()
	first := a.Entries("mu")
	first[0].ID = "mutated"
	if again := a.Entries("mu"); again[0].ID != "1" {
		t.Error("Entries exposes internal table storage")
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		table ClassTable
	}{
		{"empty entry list", ClassTable{"mu": {}}},
		{"duplicate class id", ClassTable{"mu": {
			{ID: "1", Priority: 1},
			{ID: "1", Priority: 2},
		}}},
		{"uppercase key", ClassTable{"Mu": {{ID: "1", Priority: 1}}}},
		{"priority out of order", ClassTable{"mu": {
			{ID: "1", Priority: 2},
			{ID: "3", Priority: 1},
		}}},
	}
	for _, tt := range tests {
		if err := tt.table.validate(); err == nil {
			t.Errorf("%s: validate() = nil, want error", tt.name)
		}
	}
}

func TestPairing(t *testing.T) {
	c := CompanionPrefix("va")
	if p, ok := c.Companion(); !ok || p != "va" {
		t.Errorf("CompanionPrefix(\"va\").Companion() = %q, %v", p, ok)
	}
	if _, ok := c.Source(); ok {
		t.Error("companion pairing reports a source prefix")
	}

	s := SourcePrefix("mu")
	if p, ok := s.Source(); !ok || p != "mu" {
		t.Errorf("SourcePrefix(\"mu\").Source() = %q, %v", p, ok)
	}

	var zero Pairing
	if _, ok := zero.Companion(); ok {
		t.Error("zero Pairing reports a companion prefix")
	}
	if _, ok := NoPairing().Source(); ok {
		t.Error("NoPairing reports a source prefix")
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{NumberSingular, "singular"},
		{NumberPlural, "plural"},
		{NumberAbstract, "abstract"},
		{NumberNone, "n/a"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.n, got, tt.want)
		}
	}
}
