// Package vectorizer implements a per-document TF-IDF vector space over
// passages, with cosine similarity for ranking.
package vectorizer

import (
	"math"

	"github.com/subinsoman/pdf/internal/tokenizer"
)

// Vector is a sparse term-weight mapping. Terms absent from the map carry
// zero weight.
type Vector map[string]float64

// Vectorizer is a TF-IDF model fitted over a single document's passages.
// The vocabulary is local to the document, not shared globally; a
// re-indexed document always gets a freshly fitted Vectorizer.
type Vectorizer struct {
	idf         map[string]float64
	numPassages int
}

// Fit builds a Vectorizer over the given passages and returns it together
// with one sparse vector per passage, row-aligned with the input.
//
// Weighting is smoothed TF-IDF: idf(t) = ln((1+N)/(1+df(t))) + 1 where N
// is the passage count and df(t) the number of passages containing t. The
// smoothing keeps every in-vocabulary term strictly positive, so a passage
// matching more query terms, weighted by rarity, never scores below one
// matching fewer.
func Fit(passages []string) (*Vectorizer, []Vector) {
	termFreqs := make([]map[string]float64, len(passages))
	docFreq := make(map[string]int)

	for i, passage := range passages {
		tf := make(map[string]float64)
		for _, term := range tokenizer.Tokenize(passage) {
			tf[term]++
		}
		termFreqs[i] = tf
		for term := range tf {
			docFreq[term]++
		}
	}

	n := float64(len(passages))
	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		idf[term] = math.Log((1+n)/(1+float64(df))) + 1
	}

	v := &Vectorizer{idf: idf, numPassages: len(passages)}

	vectors := make([]Vector, len(passages))
	for i, tf := range termFreqs {
		vec := make(Vector, len(tf))
		for term, freq := range tf {
			vec[term] = freq * idf[term]
		}
		vectors[i] = vec
	}
	return v, vectors
}

// Transform maps free text into the fitted vector space. Terms outside the
// document's vocabulary contribute zero weight and are dropped, not an error.
func (v *Vectorizer) Transform(text string) Vector {
	tf := make(map[string]float64)
	for _, term := range tokenizer.Tokenize(text) {
		if _, known := v.idf[term]; known {
			tf[term]++
		}
	}

	vec := make(Vector, len(tf))
	for term, freq := range tf {
		vec[term] = freq * v.idf[term]
	}
	return vec
}

// VocabularySize returns the number of distinct terms the model was fitted over.
func (v *Vectorizer) VocabularySize() int {
	return len(v.idf)
}

// Cosine computes the cosine similarity between two sparse vectors.
// It returns 0 when either vector has zero magnitude.
func Cosine(a, b Vector) float64 {
	// Iterate the smaller vector for the dot product
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	if dot == 0 {
		return 0
	}

	normA := norm(a)
	normB := norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

func norm(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
