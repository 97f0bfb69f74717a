package testsupport

import (
	"context"
	"testing"

	"tubetag/internal/config"
	"tubetag/internal/history"
	"tubetag/internal/titleparse"
)

// MustOpenHistory opens the history database configured in cfg and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordTitles parses each title/channel pair and records the results as one run.
func RecordTitles(t testing.TB, store *history.Store, runID string, pairs ...[2]string) []titleparse.Metadata {
	t.Helper()

	results := make([]titleparse.Metadata, 0, len(pairs))
	for _, p := range pairs {
		results = append(results, titleparse.Parse(p[0], p[1]))
	}
	if err := store.Record(context.Background(), runID, results); err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return results
}
