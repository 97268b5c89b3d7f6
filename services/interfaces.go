package services

import (
	"github.com/subinsoman/pdf/model"
)

// QueryResult represents the response to a passage query, including the
// ranked hits and query metadata.
type QueryResult struct {
	Hits    []model.PassageHit `json:"hits"`
	Total   int                `json:"total"`
	Took    int64              `json:"took"`     // milliseconds
	QueryID string             `json:"query_id"` // unique UUID for this query
}

// Segmenter defines the operation of splitting normalized text into passages.
type Segmenter interface {
	Segment(text string, maxChars, overlap int) ([]string, error)
}

// Indexer defines operations for adding and removing document passages.
type Indexer interface {
	IndexDocument(documentID string, passages []string) error
	IndexText(documentID, text string) error
	DeleteDocument(documentID string) error
}

// Retriever defines operations for querying a document's passages.
type Retriever interface {
	Query(documentID, question string, topK int) (QueryResult, error)
}

// DocumentManager exposes the persisted document inventory.
type DocumentManager interface {
	ListDocuments() []string
	GetDocument(documentID string) (model.Document, error)
	DocumentStats(documentID string) (model.DocumentStats, error)
}

// EngineAccessor combines every operation the engine exposes to a host
// application.
type EngineAccessor interface {
	Segmenter
	Indexer
	Retriever
	DocumentManager
}
