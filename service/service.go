// Package service implements the chat orchestration pipeline.
package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lidorubov/neurosales/domain"
	"github.com/lidorubov/neurosales/store"
)

// FallbackReply is returned when the completion service is unavailable. The
// chat contract guarantees a non-empty reply, never a bare failure.
const FallbackReply = "Прошу прощения, произошёл технический сбой. Повторите, пожалуйста, ваше сообщение чуть позже."

// Completer generates the assistant reply for a transcript.
type Completer interface {
	Complete(ctx context.Context, history []domain.Message) (string, error)
}

// LeadDispatcher delivers lead notifications.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, sig domain.LeadSignal)
}

// Service drives one chat turn end to end.
type Service struct {
	conversations store.Conversations
	completer     Completer
	dispatcher    LeadDispatcher
	notifyTimeout time.Duration
	logger        *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	dispatches sync.WaitGroup
}

// New creates a Service.
func New(conversations store.Conversations, completer Completer, dispatcher LeadDispatcher, notifyTimeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		conversations: conversations,
		completer:     completer,
		dispatcher:    dispatcher,
		notifyTimeout: notifyTimeout,
		logger:        logger,
		locks:         make(map[string]*sync.Mutex),
	}
}

// sessionLock serializes turns on one session. Two near-simultaneous messages
// from the same tab must not interleave their history appends.
func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// Close waits for in-flight lead dispatches to settle.
func (s *Service) Close() error {
	s.dispatches.Wait()
	return nil
}
