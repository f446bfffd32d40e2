// Package store defines conversation storage and its implementations.
package store

import (
	"context"

	"github.com/lidorubov/neurosales/domain"
)

// Conversations is the interface for per-session transcript storage.
//
// GetOrCreate seeds unknown sessions with a single system message, so a
// stored history always starts with exactly one system entry. Histories are
// returned in insertion order. Callers must GetOrCreate a session before
// appending to it.
type Conversations interface {
	GetOrCreate(ctx context.Context, sessionID string) ([]domain.Message, error)
	Append(ctx context.Context, sessionID, role, content string) error
	Close() error
}
