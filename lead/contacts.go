package lead

import (
	"regexp"

	"github.com/lidorubov/neurosales/domain"
)

// The phone pattern is deliberately loose: anything that looks like a number
// with optional separators, parentheses, or a leading + is reported.
// Validation is left to the humans reading the notification.
var (
	phonePattern = regexp.MustCompile(`\+?[0-9]{1,4}?[-.\s]?\(?[0-9]{1,4}?\)?[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,9}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ExtractContacts scans text for phone numbers and email addresses. Matches
// are reported in order of first occurrence in the text.
func ExtractContacts(text string) domain.Contacts {
	return domain.Contacts{
		Phones: phonePattern.FindAllString(text, -1),
		Emails: emailPattern.FindAllString(text, -1),
	}
}
