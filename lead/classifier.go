// Package lead turns user messages into lead signals: a keyword-based stage
// classifier and a contact extractor. Both are pure functions; a miss is a
// normal outcome, not an error.
package lead

import "strings"

// Stage labels reported to operators.
const (
	StageMeetingAgreed  = "agreed to meeting"
	StageLeftContacts   = "left contact info"
	StageCallRequested  = "requested call"
	StageWantsToThink   = "objection: wants to think it over"
	StageNoTime         = "objection: no time"
	StageShowedInterest = "showed interest"
	StagePositiveAnswer = "positive answer"
)

// minHistoryForYes gates the bare affirmative triggers: a lone "да" at the
// very start of a conversation is a greeting, not a buying signal. The count
// is the raw transcript length, system message included.
const minHistoryForYes = 3

type trigger struct {
	keyword string
	stage   string
	gated   bool // only fires once the conversation is underway
}

// Table order is load-bearing: the first matching keyword in this list wins,
// not the first occurrence in the text. Several keywords map to the same
// stage ("email"/"почта", "zoom"/"встреча").
var triggers = []trigger{
	{keyword: "zoom", stage: StageMeetingAgreed},
	{keyword: "встреча", stage: StageMeetingAgreed},
	{keyword: "телефон", stage: StageLeftContacts},
	{keyword: "позвоните", stage: StageCallRequested},
	{keyword: "email", stage: StageLeftContacts},
	{keyword: "почта", stage: StageLeftContacts},
	{keyword: "подумать", stage: StageWantsToThink},
	{keyword: "нет времени", stage: StageNoTime},
	{keyword: "интересует", stage: StageShowedInterest},
	{keyword: "готов обсудить", stage: StageShowedInterest},
	{keyword: "да", stage: StagePositiveAnswer, gated: true},
	{keyword: "yes", stage: StagePositiveAnswer, gated: true},
}

// DetectStage classifies userMessage against the trigger table. historyLen is
// the current transcript length of the session. The empty string means no
// stage was detected: the conversation simply continues along the script.
func DetectStage(userMessage string, historyLen int) string {
	message := strings.ToLower(userMessage)

	for _, t := range triggers {
		if t.gated && historyLen < minHistoryForYes {
			continue
		}
		if strings.Contains(message, t.keyword) {
			return t.stage
		}
	}

	return ""
}
