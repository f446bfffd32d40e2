package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lidorubov/neurosales/domain"
	"github.com/lidorubov/neurosales/lead"
)

// recentHistorySize is how many trailing messages a lead notification quotes.
const recentHistorySize = 3

// Result is the outcome of one chat turn.
type Result struct {
	Reply    string
	IsLead   bool
	Stage    string // empty when no stage was detected
	Fallback bool   // true when Reply is the completion-failure fallback
}

// Chat runs one turn: append the user message, generate a reply, detect lead
// signals on the user message, and notify when warranted.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (*Result, error) {
	if sessionID == "" || message == "" {
		return nil, domain.ErrInvalidRequest
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	history, err := s.conversations.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.conversations.Append(ctx, sessionID, domain.RoleUser, message); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}
	history = append(history, domain.Message{Role: domain.RoleUser, Content: message})

	result := &Result{}

	reply, err := s.completer.Complete(ctx, history)
	if err != nil {
		// The user always gets a reply; the failed turn is not stored as an
		// assistant message.
		s.logger.Error("completion failed, using fallback reply",
			zap.String("session_id", sessionID),
			zap.Error(err))
		result.Reply = FallbackReply
		result.Fallback = true
	} else {
		result.Reply = reply
		if err := s.conversations.Append(ctx, sessionID, domain.RoleAssistant, reply); err != nil {
			return nil, fmt.Errorf("failed to store assistant reply: %w", err)
		}
		history = append(history, domain.Message{Role: domain.RoleAssistant, Content: reply})
	}

	result.Stage = lead.DetectStage(message, len(history))
	contacts := lead.ExtractContacts(message)
	result.IsLead = result.Stage != "" || contacts.HasContacts()

	if result.IsLead {
		s.notifyLead(domain.LeadSignal{
			Stage:         result.Stage,
			Contacts:      contacts,
			SourceMessage: message,
			RecentHistory: recentNonSystem(history, recentHistorySize),
		})
	}

	return result, nil
}

// notifyLead hands the signal to the dispatcher without blocking the chat
// response. Delivery problems are the dispatcher's to log, never the
// caller's.
func (s *Service) notifyLead(sig domain.LeadSignal) {
	if sig.Stage == "" {
		sig.Stage = lead.StageLeftContacts
	}

	s.dispatches.Add(1)
	go func() {
		defer s.dispatches.Done()

		// Detached from the request context: cancelling the HTTP request
		// must not abort an in-flight notification.
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		s.dispatcher.Dispatch(ctx, sig)
	}()
}

func recentNonSystem(history []domain.Message, n int) []domain.Message {
	var recent []domain.Message
	for _, msg := range history {
		if msg.Role != domain.RoleSystem {
			recent = append(recent, msg)
		}
	}
	if len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	return recent
}
