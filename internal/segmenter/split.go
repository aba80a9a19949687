package segmenter

import "github.com/shona-nlp/shonamorph"

// SplitFromScores reconstructs a segmentation from the model's
// per-character split scores. scores[i] is the probability that the
// prefix ends after character i. The first position above the
// threshold wins — a noun has a single class prefix — and a split
// after the final character is never taken, so the stem is never
// empty. No position above the threshold means no confident split:
// the whole word is the stem.
func SplitFromScores(word string, scores []float32, threshold float32) shonamorph.Segmentation {
	runes := []rune(word)
	for i := range runes {
		if i >= len(scores) {
			break
		}
		if scores[i] > threshold && i < len(runes)-1 {
			return shonamorph.Segmentation{
				Prefix: string(runes[:i+1]),
				Stem:   string(runes[i+1:]),
			}
		}
	}
	return shonamorph.Segmentation{Stem: word}
}
