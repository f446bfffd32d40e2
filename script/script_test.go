package script

import (
	"strings"
	"testing"
)

func TestSystemInterpolatesCompany(t *testing.T) {
	prompt := System("acme.io")

	if !strings.Contains(prompt, "нейропродавец компании acme.io") {
		t.Fatalf("company name not interpolated:\n%s", prompt)
	}
	if strings.Contains(prompt, "%!") {
		t.Fatalf("broken format verb in prompt:\n%s", prompt)
	}
}

func TestSystemHasSixStages(t *testing.T) {
	prompt := System("acme.io")

	for _, stage := range []string{
		"1. ПРИВЕТСТВИЕ", "2. АВТОРИТЕТ", "3. ДИАГНОСТИКА",
		"4. ПРЕЗЕНТАЦИЯ", "5. ZOOM", "6. ВОЗРАЖЕНИЯ",
	} {
		if !strings.Contains(prompt, stage) {
			t.Fatalf("missing stage %q", stage)
		}
	}
}
