package testsupport

import (
	"context"
	"testing"

	"rune/internal/config"
	"rune/internal/history"
)

// MustOpenHistory opens the run ledger named by cfg and registers cleanup.
// It enables history on cfg first when the path is empty.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	if !cfg.HistoryEnabled() {
		WithHistory()(&configBuilder{t: t, baseDir: BaseDir(cfg), cfg: cfg})
	}
	store, err := history.Open(context.Background(), cfg.Paths.HistoryDB)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
