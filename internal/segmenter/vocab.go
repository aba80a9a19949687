package segmenter

import (
	"encoding/json"
	"fmt"
	"os"
)

// Vocab is the character index of the splitting model: the word_index
// of the Keras tokenizer the model was trained with, exported as a
// flat JSON object {"a": 2, "b": 15, ...}. Index 0 is padding;
// out-of-vocabulary characters map to OOVIndex.
type Vocab struct {
	index map[rune]int64
	oov   int64
}

// LoadVocab reads a character-index JSON file.
func LoadVocab(path string, oovIndex int64) (*Vocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}
	return ParseVocab(data, oovIndex)
}

// ParseVocab decodes a character-index JSON document.
func ParseVocab(data []byte, oovIndex int64) (*Vocab, error) {
	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse vocab: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("parse vocab: empty index")
	}
	index := make(map[rune]int64, len(raw))
	for k, v := range raw {
		runes := []rune(k)
		if len(runes) != 1 {
			// Multi-character keys (e.g. an "<OOV>" token) carry no
			// positional information for a character model.
			continue
		}
		if v <= 0 {
			return nil, fmt.Errorf("parse vocab: %q has non-positive index %d", k, v)
		}
		index[runes[0]] = v
	}
	return &Vocab{index: index, oov: oovIndex}, nil
}

// Encode turns a word into a fixed-length, post-padded index
// sequence. Words longer than maxLen are truncated, matching the
// padding the model saw in training.
func (v *Vocab) Encode(word string, maxLen int) []int64 {
	out := make([]int64, maxLen)
	for i, r := range []rune(word) {
		if i >= maxLen {
			break
		}
		if id, ok := v.index[r]; ok {
			out[i] = id
		} else {
			out[i] = v.oov
		}
	}
	return out
}

// Size returns the number of known characters.
func (v *Vocab) Size() int {
	return len(v.index)
}
