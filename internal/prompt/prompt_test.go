package prompt

import (
	"strings"
	"testing"

	"cattalk-v0/internal/pet"
	"cattalk-v0/internal/plan"
	"cattalk-v0/internal/score"
)

func buildFor(t *testing.T, st pet.State, hour int, interaction, userText string) string {
	t.Helper()
	p := plan.Plan(st, hour, interaction)
	ctl := score.BuildControl(st, hour, interaction, p)
	return Build("", ctl, p, userText)
}

func TestBuildCarriesTheContract(t *testing.T) {
	st := pet.State{Hunger: 50, Energy: 60, Stress: 10, Fun: 50, Affection: 50, Trust: 20, AgeDays: 400}
	out := buildFor(t, st, 10, "pet", "이리 와봐")

	if !strings.Contains(out, DefaultCatName) {
		t.Fatalf("empty cat name should fall back to %q", DefaultCatName)
	}
	for _, section := range []string{"[시스템]", "[규칙]", "[상태]", "[대화]"} {
		if !strings.Contains(out, section) {
			t.Fatalf("prompt missing section %s:\n%s", section, out)
		}
	}
	// low trust plan: required/forbidden tag lines must appear
	if !strings.Contains(out, "반드시 담을 것") || !strings.Contains(out, "distant") {
		t.Fatalf("required tags not rendered:\n%s", out)
	}
	if !strings.Contains(out, "절대 담지 말 것") || !strings.Contains(out, "purr") {
		t.Fatalf("forbidden tags not rendered:\n%s", out)
	}
	if !strings.Contains(out, "주인: 이리 와봐") {
		t.Fatalf("user line missing:\n%s", out)
	}
}

func TestBuildOmitsEmptyBlocks(t *testing.T) {
	st := pet.State{Hunger: 50, Energy: 60, Stress: 10, Fun: 50, Affection: 50, Trust: 50}
	p := plan.Plan(st, 10, "none")
	ctl := score.BuildControl(st, 10, "none", p)

	out := Build("나비", ctl, p, "안녕")
	if strings.Contains(out, "[기억]") {
		t.Fatalf("memory block should be omitted when empty:\n%s", out)
	}
	if !strings.Contains(out, "나비") {
		t.Fatal("explicit cat name not used")
	}

	ctl.MemoryRecentSummary = "츄르 먹음"
	out = Build("나비", ctl, p, "안녕")
	if !strings.Contains(out, "[기억]") || !strings.Contains(out, "츄르 먹음") {
		t.Fatalf("memory block missing:\n%s", out)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	st := pet.State{Hunger: 80, Energy: 20, Stress: 75, Fun: 10, Affection: 10, Trust: 90}
	a := buildFor(t, st, 4, "talk", "왜 그래?")
	b := buildFor(t, st, 4, "talk", "왜 그래?")
	if a != b {
		t.Fatal("same input should render the same prompt")
	}
}
