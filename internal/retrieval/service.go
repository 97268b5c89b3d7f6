// Package retrieval builds and queries per-document TF-IDF vector spaces,
// caching one index entry per document in memory.
package retrieval

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	internalErrors "github.com/subinsoman/pdf/internal/errors"
	"github.com/subinsoman/pdf/internal/vectorizer"
	"github.com/subinsoman/pdf/model"
	"github.com/subinsoman/pdf/services"
	"github.com/subinsoman/pdf/store"
)

// indexEntry is the cached retrieval structure for one document: the
// passages as persisted, the vector space fitted over them, and one sparse
// vector per passage, row-aligned with passages. An entry is always
// replaced as a whole; its fields never mix versions.
type indexEntry struct {
	passages   []string
	vectorizer *vectorizer.Vectorizer
	vectors    []vectorizer.Vector
}

// Service implements passage indexing and querying for all documents.
// The in-memory cache is keyed per document id: rebuilding one document's
// entry never invalidates or blocks access to another's. The persisted
// passages are the source of truth; the cache is rebuilt from the store
// whenever a queried document has no entry.
type Service struct {
	mu      sync.RWMutex
	entries map[string]*indexEntry
	store   *store.PassageStore
}

// NewService creates a retrieval Service backed by the given passage store.
func NewService(passageStore *store.PassageStore) (*Service, error) {
	if passageStore == nil {
		return nil, fmt.Errorf("passage store cannot be nil")
	}
	return &Service{
		entries: make(map[string]*indexEntry),
		store:   passageStore,
	}, nil
}

// buildEntry fits a fresh vector space over the passages. An empty passage
// sequence is fitted over a single placeholder empty passage so the model
// is always constructible; the entry still reports zero passages and
// queries against it return no hits.
func buildEntry(passages []string) *indexEntry {
	fitPassages := passages
	if len(fitPassages) == 0 {
		fitPassages = []string{""}
	}
	v, vectors := vectorizer.Fit(fitPassages)
	return &indexEntry{
		passages:   passages,
		vectorizer: v,
		vectors:    vectors[:len(passages)],
	}
}

// IndexDocument persists the passage sequence for documentID and replaces
// its cached index entry. The cache is not touched if the durable write
// fails, preserving the invariant that "indexed" implies "durably saved".
func (s *Service) IndexDocument(documentID string, passages []string) error {
	if passages == nil {
		passages = []string{}
	}
	if err := s.store.Save(documentID, passages); err != nil {
		return err
	}

	entry := buildEntry(passages)
	s.mu.Lock()
	s.entries[documentID] = entry
	s.mu.Unlock()
	return nil
}

// ensureEntry returns the cached entry for documentID, lazily building one
// from the persisted passages when absent. A missing or unreadable
// artifact yields an entry with zero passages rather than an error.
func (s *Service) ensureEntry(documentID string) *indexEntry {
	s.mu.RLock()
	entry, ok := s.entries[documentID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	// Build outside the lock: fitting is CPU-bound and must not block
	// queries against other documents.
	entry = buildEntry(s.store.Load(documentID))

	s.mu.Lock()
	if existing, ok := s.entries[documentID]; ok {
		// A concurrent call built (or re-indexed) this document first;
		// keep the entry already visible to readers.
		entry = existing
	} else {
		s.entries[documentID] = entry
	}
	s.mu.Unlock()
	return entry
}

// Query ranks the passages of documentID against the question by cosine
// similarity in the document's TF-IDF space and returns the topK best.
// topK is clamped to at least 1 and at most the number of passages; equal
// scores keep original passage order. A document with zero passages
// answers with an empty hit list, never an error.
func (s *Service) Query(documentID, question string, topK int) (services.QueryResult, error) {
	startTime := time.Now()

	if err := validateQueryInput(documentID); err != nil {
		return services.QueryResult{}, err
	}

	entry := s.ensureEntry(documentID)

	result := services.QueryResult{
		Hits:    []model.PassageHit{},
		QueryID: uuid.New().String(),
	}
	if len(entry.passages) == 0 {
		result.Took = time.Since(startTime).Milliseconds()
		return result, nil
	}

	queryVec := entry.vectorizer.Transform(question)

	scores := make([]float64, len(entry.vectors))
	for i, passageVec := range entry.vectors {
		scores[i] = vectorizer.Cosine(queryVec, passageVec)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if topK < 1 {
		topK = 1
	}
	if topK > len(entry.passages) {
		topK = len(entry.passages)
	}

	for _, idx := range order[:topK] {
		result.Hits = append(result.Hits, model.PassageHit{
			Text:  entry.passages[idx],
			Score: scores[idx],
		})
	}
	result.Total = len(result.Hits)
	result.Took = time.Since(startTime).Milliseconds()
	return result, nil
}

func validateQueryInput(documentID string) error {
	if documentID == "" {
		return internalErrors.NewValidationError("document_id", "cannot be empty")
	}
	return nil
}

// Evict drops the cached entry for documentID, forcing the next query to
// rebuild from the persisted passages.
func (s *Service) Evict(documentID string) {
	s.mu.Lock()
	delete(s.entries, documentID)
	s.mu.Unlock()
}

// DropCache discards every cached entry, simulating a process restart.
// Persisted passages are untouched.
func (s *Service) DropCache() {
	s.mu.Lock()
	s.entries = make(map[string]*indexEntry)
	s.mu.Unlock()
}

// CachedDocuments returns the ids of documents with an in-memory entry.
func (s *Service) CachedDocuments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}
