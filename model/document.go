// Package model defines the data types shared across the retrieval engine.
package model

// Document is a logical knowledgebase unit: a caller-assigned identifier
// plus the ordered passages segmented from its text. Passage order carries
// no ranking meaning but is preserved for reproducibility.
type Document struct {
	ID       string   `json:"document_id"`
	Passages []string `json:"passages"`
}

// PassageHit is a single ranked passage returned from a query, carrying
// the passage text and its cosine similarity against the query vector.
type PassageHit struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// DocumentStats summarizes the persisted state of one document.
type DocumentStats struct {
	DocumentID   string `json:"document_id"`
	PassageCount int    `json:"passage_count"`
}
