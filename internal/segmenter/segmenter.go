// Package segmenter splits normalized text into bounded, overlapping
// passages suitable for independent relevance scoring.
package segmenter

import (
	internalErrors "github.com/subinsoman/pdf/internal/errors"
)

// Segment converts a whitespace-normalized text blob into an ordered
// sequence of passages. Each passage holds at most maxChars runes; every
// passage after the first starts overlap runes before the previous
// passage's end. The final passage ends exactly at the text's end and may
// be shorter than maxChars. Empty input produces an empty slice.
//
// Lengths are measured in runes so multi-byte UTF-8 text never splits in
// the middle of a character.
func Segment(text string, maxChars, overlap int) ([]string, error) {
	if maxChars <= 0 {
		return nil, internalErrors.NewSegmentationError(maxChars, overlap, "max_chars must be positive")
	}
	if overlap < 0 {
		return nil, internalErrors.NewSegmentationError(maxChars, overlap, "overlap cannot be negative")
	}
	if overlap >= maxChars {
		return nil, internalErrors.NewSegmentationError(maxChars, overlap, "overlap must be smaller than max_chars")
	}

	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return []string{}, nil
	}

	passages := make([]string, 0, 1+n/(maxChars-overlap))
	start := 0
	for start < n {
		end := start + maxChars
		if end > n {
			end = n
		}
		passages = append(passages, string(runes[start:end]))
		if end == n {
			break
		}
		start = end - overlap
		if start < 0 {
			start = 0
		}
	}
	return passages, nil
}
