package shonamorph

import "testing"

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zvibage", "zvibage"},
		{"Zvibage", "zvibage"},
		{"  mukadzi\n", "mukadzi"},
		{"MUNHU", "munhu"},
		{"mu\x00nhu", "munhu"},
		// NFKC: fullwidth letters fold to ASCII
		{"ｍｕ", "mu"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.in); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerASCII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MuNhu", "munhu"},
		{"zvi", "zvi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := lowerASCII(tt.in); got != tt.want {
			t.Errorf("lowerASCII(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStemPatternSetMatches(t *testing.T) {
	set := StemPatternSet{Name: "person stems", Patterns: []string{"nhu", "kadzi"}}
	tests := []struct {
		stem string
		want bool
	}{
		{"nhu", true},
		{"nhundu", true},
		{"kadzi", true},
		{"ti", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := set.Matches(tt.stem); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.stem, got, tt.want)
		}
	}
}

func TestStemPatterns(t *testing.T) {
	sets := StemPatterns("mu")
	if len(sets) != 3 {
		t.Fatalf("StemPatterns(\"mu\") returned %d sets, want 3", len(sets))
	}
	if sets[0].Name != "locative stems" {
		t.Errorf("first set = %q, want locative stems first", sets[0].Name)
	}
	if StemPatterns("chi") != nil {
		t.Error("StemPatterns(\"chi\") should be nil")
	}
}
