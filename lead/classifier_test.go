package lead

import "testing"

func TestDetectStageZoom(t *testing.T) {
	stage := DetectStage("давай zoom", 1)
	if stage != StageMeetingAgreed {
		t.Fatalf("expected %q, got %q", StageMeetingAgreed, stage)
	}

	// History length is irrelevant for ungated triggers.
	if got := DetectStage("давай zoom", 10); got != StageMeetingAgreed {
		t.Fatalf("expected %q, got %q", StageMeetingAgreed, got)
	}
}

func TestDetectStageCaseInsensitive(t *testing.T) {
	if got := DetectStage("ZOOM подходит", 1); got != StageMeetingAgreed {
		t.Fatalf("expected %q, got %q", StageMeetingAgreed, got)
	}
	if got := DetectStage("ДА", 5); got != StagePositiveAnswer {
		t.Fatalf("expected %q, got %q", StagePositiveAnswer, got)
	}
}

func TestDetectStageTableOrderWins(t *testing.T) {
	// "почта" occurs first in the text, but "zoom" comes first in the
	// trigger table and the table order decides.
	stage := DetectStage("почта не вариант, давайте zoom", 1)
	if stage != StageMeetingAgreed {
		t.Fatalf("expected %q, got %q", StageMeetingAgreed, stage)
	}
}

func TestDetectStageYesGatedOnHistory(t *testing.T) {
	if got := DetectStage("да", 2); got != "" {
		t.Fatalf("expected no stage for early affirmative, got %q", got)
	}
	if got := DetectStage("да", 3); got != StagePositiveAnswer {
		t.Fatalf("expected %q, got %q", StagePositiveAnswer, got)
	}
	if got := DetectStage("yes", 2); got != "" {
		t.Fatalf("expected no stage for early affirmative, got %q", got)
	}
	if got := DetectStage("yes, sounds good", 4); got != StagePositiveAnswer {
		t.Fatalf("expected %q, got %q", StagePositiveAnswer, got)
	}
}

func TestDetectStageGatedTriggerDoesNotMaskOthers(t *testing.T) {
	// The gated "да" is skipped early in the conversation, but scanning
	// continues through the rest of the table.
	stage := DetectStage("да, напишу на email", 2)
	if stage != StageLeftContacts {
		t.Fatalf("expected %q, got %q", StageLeftContacts, stage)
	}
}

func TestDetectStageObjections(t *testing.T) {
	if got := DetectStage("мне нужно подумать", 5); got != StageWantsToThink {
		t.Fatalf("expected %q, got %q", StageWantsToThink, got)
	}
	if got := DetectStage("у меня нет времени", 5); got != StageNoTime {
		t.Fatalf("expected %q, got %q", StageNoTime, got)
	}
}

func TestDetectStageNoMatch(t *testing.T) {
	if got := DetectStage("расскажите подробнее", 5); got != "" {
		t.Fatalf("expected no stage, got %q", got)
	}
}
