// Package engine wires the passage store, segmenter, and retrieval index
// into the engine a host application embeds.
package engine

import (
	"fmt"
	"log"

	"github.com/subinsoman/pdf/config"
	internalErrors "github.com/subinsoman/pdf/internal/errors"
	"github.com/subinsoman/pdf/internal/retrieval"
	"github.com/subinsoman/pdf/internal/segmenter"
	"github.com/subinsoman/pdf/model"
	"github.com/subinsoman/pdf/services"
	"github.com/subinsoman/pdf/store"
)

// Engine exposes the three core operations — segment, index, query — plus
// the document lifecycle around them. It implements the
// services.EngineAccessor interface. Storage paths come from the injected
// settings; no process-wide state exists outside the Engine value.
type Engine struct {
	settings  config.EngineSettings
	store     *store.PassageStore
	retriever *retrieval.Service
}

// NewEngine creates a retrieval engine rooted at the settings' data
// directory.
func NewEngine(settings config.EngineSettings) (*Engine, error) {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid engine settings: %v", conflicts)
	}

	passageStore, err := store.NewPassageStore(settings.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create passage store in %s: %w", settings.DataDir, err)
	}

	retriever, err := retrieval.NewService(passageStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create retrieval service: %w", err)
	}

	return &Engine{
		settings:  settings,
		store:     passageStore,
		retriever: retriever,
	}, nil
}

// Settings returns a copy of the engine's effective settings.
func (e *Engine) Settings() config.EngineSettings {
	return e.settings
}

// Segment splits normalized text into passages. Non-positive maxChars
// falls back to the configured segmenter settings (both length and
// overlap); an explicit maxChars uses the given overlap as-is.
func (e *Engine) Segment(text string, maxChars, overlap int) ([]string, error) {
	if maxChars <= 0 {
		maxChars = e.settings.Segmenter.MaxChars
		if overlap <= 0 {
			overlap = e.settings.Segmenter.Overlap
		}
	}
	return segmenter.Segment(text, maxChars, overlap)
}

// IndexDocument persists the passage sequence for documentID and rebuilds
// its in-memory index entry. Prior content is fully replaced, never merged.
func (e *Engine) IndexDocument(documentID string, passages []string) error {
	if err := e.retriever.IndexDocument(documentID, passages); err != nil {
		return err
	}
	log.Printf("Indexed document '%s' (%d passages).", documentID, len(passages))
	return nil
}

// IndexText segments text with the configured defaults and indexes the
// resulting passages, mirroring the upload flow of a host application
// (external text extraction happens before this call).
func (e *Engine) IndexText(documentID, text string) error {
	passages, err := segmenter.Segment(text, e.settings.Segmenter.MaxChars, e.settings.Segmenter.Overlap)
	if err != nil {
		return err
	}
	return e.IndexDocument(documentID, passages)
}

// Query returns the topK passages of documentID ranked against question.
// Non-positive topK falls back to the configured default before the
// retrieval service clamps it to the available passages.
func (e *Engine) Query(documentID, question string, topK int) (services.QueryResult, error) {
	if topK <= 0 {
		topK = e.settings.TopK
	}
	return e.retriever.Query(documentID, question, topK)
}

// DeleteDocument removes the persisted passages for documentID and evicts
// its cached index entry.
func (e *Engine) DeleteDocument(documentID string) error {
	if !e.store.Exists(documentID) {
		return internalErrors.NewDocumentNotFoundError(documentID)
	}
	if err := e.store.Delete(documentID); err != nil {
		return err
	}
	e.retriever.Evict(documentID)
	log.Printf("Document '%s' deleted from store and cache.", documentID)
	return nil
}

// ListDocuments returns the identifiers of all persisted documents.
func (e *Engine) ListDocuments() []string {
	return e.store.List()
}

// GetDocument returns documentID together with its persisted passages.
func (e *Engine) GetDocument(documentID string) (model.Document, error) {
	if !e.store.Exists(documentID) {
		return model.Document{}, internalErrors.NewDocumentNotFoundError(documentID)
	}
	return model.Document{
		ID:       documentID,
		Passages: e.store.Load(documentID),
	}, nil
}

// DocumentStats returns the persisted passage count for documentID.
func (e *Engine) DocumentStats(documentID string) (model.DocumentStats, error) {
	if !e.store.Exists(documentID) {
		return model.DocumentStats{}, internalErrors.NewDocumentNotFoundError(documentID)
	}
	return model.DocumentStats{
		DocumentID:   documentID,
		PassageCount: len(e.store.Load(documentID)),
	}, nil
}

// DropCache discards every in-memory index entry. Queries after a drop
// rebuild transparently from the persisted passages; tests use this to
// simulate a process restart.
func (e *Engine) DropCache() {
	e.retriever.DropCache()
}
