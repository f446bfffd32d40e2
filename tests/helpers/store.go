// Package helpers provides shared test fixtures.
package helpers

import (
	"testing"

	"github.com/lidorubov/neurosales/store"
)

// NewSQLiteStore returns a throwaway in-memory SQLite conversation store.
func NewSQLiteStore(t *testing.T, systemPrompt string) *store.SQLite {
	t.Helper()

	s, err := store.NewSQLite(":memory:", systemPrompt)
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}
