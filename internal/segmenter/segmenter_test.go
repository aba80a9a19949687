package segmenter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocab(t *testing.T) {
	vocab, err := ParseVocab([]byte(`{"a":2,"b":3,"u":4,"z":5,"<OOV>":1}`), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, vocab.Size(), "multi-character keys are skipped")
}

func TestParseVocabRejectsBadInput(t *testing.T) {
	_, err := ParseVocab([]byte(`{}`), 1)
	assert.Error(t, err, "empty index")

	_, err = ParseVocab([]byte(`{"a":0}`), 1)
	assert.Error(t, err, "non-positive index")

	_, err = ParseVocab([]byte(`not json`), 1)
	assert.Error(t, err)
}

func TestLoadVocab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"z":2,"v":3,"i":4}`), 0o644))

	vocab, err := LoadVocab(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, vocab.Size())

	_, err = LoadVocab(filepath.Join(t.TempDir(), "missing.json"), 1)
	assert.Error(t, err)
}

func TestVocabEncode(t *testing.T) {
	vocab, err := ParseVocab([]byte(`{"z":2,"v":3,"i":4}`), 1)
	require.NoError(t, err)

	// Known chars, OOV fallback, post-padding.
	assert.Equal(t, []int64{2, 3, 4, 1, 0, 0}, vocab.Encode("zvix", 6))
	// Truncation past maxLen.
	assert.Equal(t, []int64{2, 3}, vocab.Encode("zvi", 2))
	// Empty word is all padding.
	assert.Equal(t, []int64{0, 0, 0}, vocab.Encode("", 3))
}

func TestSplitFromScores(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		scores []float32
		prefix string
		stem   string
	}{
		{
			name:   "split after third char",
			word:   "zvibage",
			scores: []float32{0.1, 0.2, 0.9, 0.8, 0.1, 0.1, 0.1},
			prefix: "zvi",
			stem:   "bage",
		},
		{
			name:   "first crossing wins",
			word:   "mukadzi",
			scores: []float32{0.3, 0.7, 0.6, 0.9, 0.1, 0.1, 0.1},
			prefix: "mu",
			stem:   "kadzi",
		},
		{
			name:   "no confident split",
			word:   "sadza",
			scores: []float32{0.1, 0.2, 0.3, 0.4, 0.2},
			prefix: "",
			stem:   "sadza",
		},
		{
			name:   "never split after the last char",
			word:   "mu",
			scores: []float32{0.1, 0.99},
			prefix: "",
			stem:   "mu",
		},
		{
			name:   "scores shorter than word",
			word:   "zvibage",
			scores: []float32{0.1, 0.2},
			prefix: "",
			stem:   "zvibage",
		},
		{
			name:   "padded scores longer than word",
			word:   "kuda",
			scores: []float32{0.1, 0.8, 0.0, 0.0, 0.9, 0.9},
			prefix: "ku",
			stem:   "da",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := SplitFromScores(tt.word, tt.scores, 0.5)
			assert.Equal(t, tt.prefix, seg.Prefix)
			assert.Equal(t, tt.stem, seg.Stem)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.applyDefaults()
	assert.Equal(t, 30, cfg.MaxLen)
	assert.Equal(t, "input", cfg.InputName)
	assert.Equal(t, "output", cfg.OutputName)
	assert.InDelta(t, 0.5, cfg.Threshold, 1e-6)
	assert.Equal(t, int64(1), cfg.OOVIndex)
}

func TestNewRequiresPaths(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
