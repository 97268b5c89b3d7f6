// Package store provides durable, per-document persistence of segmented
// text passages.
package store

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	internalErrors "github.com/subinsoman/pdf/internal/errors"
	"github.com/subinsoman/pdf/internal/persistence"
)

const passageFileExt = ".json"

// PassageStore maps document identifiers to their current passage
// sequence, one JSON array-of-strings file per document under dir.
// Saves replace the whole sequence atomically; documents never interfere
// with each other's durability because each owns its own file.
type PassageStore struct {
	dir string
}

// NewPassageStore creates a store rooted at dir, creating the directory
// if needed.
func NewPassageStore(dir string) (*PassageStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, internalErrors.NewValidationError("dir", "storage directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, internalErrors.NewPersistenceError("", err)
	}
	return &PassageStore{dir: dir}, nil
}

// Dir returns the directory holding the passage files.
func (s *PassageStore) Dir() string {
	return s.dir
}

func (s *PassageStore) passagePath(documentID string) string {
	return filepath.Join(s.dir, documentID+passageFileExt)
}

// validateDocumentID rejects identifiers that cannot serve as a file name.
// Document ids are opaque caller-assigned strings, but they become the
// persisted artifact's name, so path separators and traversal are refused.
func validateDocumentID(documentID string) error {
	if strings.TrimSpace(documentID) == "" {
		return internalErrors.NewValidationError("document_id", "cannot be empty or whitespace-only")
	}
	if strings.ContainsAny(documentID, `/\`) || documentID == "." || documentID == ".." {
		return internalErrors.NewValidationError("document_id", "cannot contain path separators")
	}
	return nil
}

// Save persists the full passage sequence for documentID, atomically
// replacing any prior content. A failed save leaves the previous artifact
// intact and propagates the error: the caller decided to index, it must
// know if persistence failed.
func (s *PassageStore) Save(documentID string, passages []string) error {
	if err := validateDocumentID(documentID); err != nil {
		return err
	}
	if passages == nil {
		passages = []string{}
	}
	if err := persistence.SaveJSON(s.passagePath(documentID), passages); err != nil {
		return internalErrors.NewPersistenceError(documentID, err)
	}
	return nil
}

// Load returns the persisted passages for documentID, or an empty sequence
// if the document has never been saved or its artifact is unreadable.
// Absence is a valid, silent state: from the retrieval engine's
// perspective a load failure is observably identical to "never indexed".
func (s *PassageStore) Load(documentID string) []string {
	if err := validateDocumentID(documentID); err != nil {
		return []string{}
	}

	var passages []string
	if err := persistence.LoadJSON(s.passagePath(documentID), &passages); err != nil {
		if err != os.ErrNotExist {
			log.Printf("Warning: failed to load passages for document '%s', treating as empty: %v", documentID, err)
		}
		return []string{}
	}
	if passages == nil {
		passages = []string{}
	}
	return passages
}

// Exists reports whether a passage artifact is persisted for documentID.
func (s *PassageStore) Exists(documentID string) bool {
	if err := validateDocumentID(documentID); err != nil {
		return false
	}
	_, err := os.Stat(s.passagePath(documentID))
	return err == nil
}

// Delete removes the persisted passages for documentID. Deleting a
// document that was never saved is not an error.
func (s *PassageStore) Delete(documentID string) error {
	if err := validateDocumentID(documentID); err != nil {
		return err
	}
	if err := os.Remove(s.passagePath(documentID)); err != nil && !os.IsNotExist(err) {
		return internalErrors.NewPersistenceError(documentID, err)
	}
	return nil
}

// List returns the identifiers of all documents with persisted passages,
// in directory order.
func (s *PassageStore) List() []string {
	items, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("Warning: failed to read passage directory %s: %v", s.dir, err)
		return []string{}
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsDir() || !strings.HasSuffix(item.Name(), passageFileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(item.Name(), passageFileExt))
	}
	return ids
}
