package retrieval

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subinsoman/pdf/store"
)

func newTestService(t *testing.T) (*Service, *store.PassageStore) {
	t.Helper()
	passageStore, err := store.NewPassageStore(t.TempDir())
	require.NoError(t, err, "Failed to create passage store")
	svc, err := NewService(passageStore)
	require.NoError(t, err, "Failed to create retrieval service")
	return svc, passageStore
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func TestIndexAndQuery(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{
		"the cat sat",
		"the cat sat on the mat",
		"dog",
	}))

	result, err := svc.Query("d1", "cat mat", 3)
	require.NoError(t, err)

	require.Len(t, result.Hits, 3)
	assert.Equal(t, "the cat sat on the mat", result.Hits[0].Text,
		"passage containing both query terms should rank first")
	assert.Equal(t, "the cat sat", result.Hits[1].Text)
	assert.Equal(t, "dog", result.Hits[2].Text, "passage sharing no query terms ranks last")
	assert.InDelta(t, 0, result.Hits[2].Score, 1e-9)

	// Scores never increase down the ranking
	for i := 1; i < len(result.Hits); i++ {
		assert.GreaterOrEqual(t, result.Hits[i-1].Score, result.Hits[i].Score)
	}

	assert.Equal(t, 3, result.Total)
	assert.NotEmpty(t, result.QueryID)
}

func TestLazyRebuildFromStore(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{"alpha beta", "gamma"}))

	// Simulate a process restart: cache gone, persisted passages intact
	svc.DropCache()
	assert.Empty(t, svc.CachedDocuments())

	result, err := svc.Query("d1", "alpha", 1)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "alpha beta", result.Hits[0].Text,
		"querying a previously indexed document must transparently rebuild from the store")
	assert.Contains(t, svc.CachedDocuments(), "d1")
}

func TestQueryNeverIndexedDocument(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Query("never-seen", "anything", 3)
	require.NoError(t, err, "querying an unknown document must not error")
	assert.Empty(t, result.Hits)
	assert.Equal(t, 0, result.Total)
}

func TestEmptyDocumentQuery(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("empty", []string{}))

	result, err := svc.Query("empty", "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, result.Hits, "a zero-passage document answers with an empty result, never an error")
}

func TestTopKClamping(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{"one fish", "two fish", "red fish"}))

	t.Run("top_k larger than passage count", func(t *testing.T) {
		result, err := svc.Query("d1", "fish", 100)
		require.NoError(t, err)
		assert.Len(t, result.Hits, 3)
	})

	t.Run("top_k of zero clamps up to one", func(t *testing.T) {
		result, err := svc.Query("d1", "fish", 0)
		require.NoError(t, err)
		assert.Len(t, result.Hits, 1)
	})

	t.Run("negative top_k clamps up to one", func(t *testing.T) {
		result, err := svc.Query("d1", "fish", -5)
		require.NoError(t, err)
		assert.Len(t, result.Hits, 1)
	})
}

func TestTiesKeepPassageOrder(t *testing.T) {
	svc, _ := newTestService(t)

	// Same term bag in both passages: identical scores, original order wins
	require.NoError(t, svc.IndexDocument("d1", []string{"apple pie", "pie apple"}))

	result, err := svc.Query("d1", "apple", 2)
	require.NoError(t, err)
	require.Len(t, result.Hits, 2)
	assert.Equal(t, result.Hits[0].Score, result.Hits[1].Score)
	assert.Equal(t, "apple pie", result.Hits[0].Text)
	assert.Equal(t, "pie apple", result.Hits[1].Text)
}

func TestReindexReplacesEntry(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{"old content about cats"}))
	require.NoError(t, svc.IndexDocument("d1", []string{"new content about dogs"}))

	result, err := svc.Query("d1", "content", 5)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1, "re-indexing replaces, never merges")
	assert.Equal(t, "new content about dogs", result.Hits[0].Text)
}

func TestDocumentIsolation(t *testing.T) {
	svc, passageStore := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{"alpha content"}))
	require.NoError(t, svc.IndexDocument("d2", []string{"beta content"}))

	// Re-index d2; d1's cache entry and persisted passages must be untouched
	require.NoError(t, svc.IndexDocument("d2", []string{"replaced beta"}))

	assert.Equal(t, []string{"alpha content"}, passageStore.Load("d1"))

	result, err := svc.Query("d1", "alpha", 1)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "alpha content", result.Hits[0].Text)
}

func TestFailedSaveLeavesCacheUntouched(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{"original passage"}))

	// An invalid id fails validation inside the store before any write;
	// the cache for existing documents must be unaffected.
	err := svc.IndexDocument("bad/id", []string{"should not land anywhere"})
	require.Error(t, err)

	result, err := svc.Query("d1", "original", 1)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "original passage", result.Hits[0].Text)

	assert.NotContains(t, svc.CachedDocuments(), "bad/id",
		"a failed durable write must not create a cache entry")
}

func TestEvict(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.IndexDocument("d1", []string{"alpha"}))
	require.Contains(t, svc.CachedDocuments(), "d1")

	svc.Evict("d1")
	assert.NotContains(t, svc.CachedDocuments(), "d1")

	// Still answerable from the store
	result, err := svc.Query("d1", "alpha", 1)
	require.NoError(t, err)
	assert.Len(t, result.Hits, 1)
}

func TestConcurrentQueriesAcrossDocuments(t *testing.T) {
	svc, _ := newTestService(t)

	const docs = 8
	for i := 0; i < docs; i++ {
		id := fmt.Sprintf("doc-%d", i)
		require.NoError(t, svc.IndexDocument(id, []string{
			fmt.Sprintf("passage mentioning topic%d", i),
			"shared filler passage",
		}))
	}

	var wg sync.WaitGroup
	for i := 0; i < docs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("doc-%d", i)
			for j := 0; j < 20; j++ {
				result, err := svc.Query(id, fmt.Sprintf("topic%d", i), 1)
				assert.NoError(t, err)
				if assert.Len(t, result.Hits, 1) {
					assert.Equal(t, fmt.Sprintf("passage mentioning topic%d", i), result.Hits[0].Text)
				}
			}
		}(i)
	}

	// Concurrent re-indexing of a separate document must not disturb readers
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			assert.NoError(t, svc.IndexDocument("churner", []string{fmt.Sprintf("version %d", j)}))
		}
	}()

	wg.Wait()
}
