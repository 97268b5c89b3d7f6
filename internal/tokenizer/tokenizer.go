// Package tokenizer converts free text into the terms used by the
// TF-IDF vector space.
package tokenizer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// englishStopWords lists high-frequency English function words excluded
// from the vector space. They carry no topical signal and would otherwise
// dominate term frequencies in prose passages.
var englishStopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a about above after again against all am an and any are as at be because been before being below between both " +
			"but by can cannot could did do does doing down during each few for from further had has have having he her here " +
			"hers herself him himself his how i if in into is it its itself just me more most my myself no nor not now of off " +
			"on once only or other our ours ourselves out over own same she should so some such than that the their theirs " +
			"them themselves then there these they this those through to too under until up very was we were what when where " +
			"which while who whom why will with would you your yours yourself yourselves") {
		englishStopWords[w] = struct{}{}
	}
}

// Tokenize converts a string into a slice of terms. It lowercases the
// input, splits on non-alphanumeric characters, and drops single-character
// tokens and English stop words.
func Tokenize(text string) []string {
	lowerText := strings.ToLower(text)
	split := nonAlphanumericRegex.Split(lowerText, -1)

	tokens := make([]string, 0, len(split))
	for _, s := range split {
		if len(s) < 2 { // Single characters carry no retrieval signal
			continue
		}
		if _, stop := englishStopWords[s]; stop {
			continue
		}
		tokens = append(tokens, s)
	}
	return tokens
}

// IsStopWord reports whether the given lowercase term is an English stop word.
func IsStopWord(term string) bool {
	_, ok := englishStopWords[term]
	return ok
}
