// Package domain defines the core domain models for the sales agent.
package domain

import "time"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a session transcript.
type Message struct {
	Role      string    `json:"role"` // system, user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Contacts holds contact details extracted from a user message.
type Contacts struct {
	Phones []string `json:"phones"`
	Emails []string `json:"emails"`
}

// HasContacts reports whether at least one phone or email was found.
func (c Contacts) HasContacts() bool {
	return len(c.Phones) > 0 || len(c.Emails) > 0
}

// LeadSignal captures everything an operator needs to follow up on a lead.
// It is computed per request and never stored.
type LeadSignal struct {
	Stage         string
	Contacts      Contacts
	SourceMessage string
	// RecentHistory holds the last messages of the conversation, system
	// prompt excluded.
	RecentHistory []Message
}
