package store

import (
	"context"
	"sync"
	"time"

	"github.com/lidorubov/neurosales/domain"
)

// Memory is the default in-memory conversation store. Sessions live for the
// process's uptime and histories grow without bound; that is an accepted
// limitation of this deployment mode.
type Memory struct {
	systemPrompt string

	mu       sync.RWMutex
	sessions map[string][]domain.Message
}

// NewMemory creates an in-memory store that seeds new sessions with
// systemPrompt.
func NewMemory(systemPrompt string) *Memory {
	return &Memory{
		systemPrompt: systemPrompt,
		sessions:     make(map[string][]domain.Message),
	}
}

// GetOrCreate returns a copy of the session history, creating the session
// with its system message when the id is unknown.
func (m *Memory) GetOrCreate(ctx context.Context, sessionID string) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history, ok := m.sessions[sessionID]
	if !ok {
		history = []domain.Message{{
			Role:      domain.RoleSystem,
			Content:   m.systemPrompt,
			CreatedAt: time.Now().UTC(),
		}}
		m.sessions[sessionID] = history
	}

	out := make([]domain.Message, len(history))
	copy(out, history)
	return out, nil
}

// Append adds one message to the end of the session history.
func (m *Memory) Append(ctx context.Context, sessionID, role, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sessionID] = append(m.sessions[sessionID], domain.Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error { return nil }
