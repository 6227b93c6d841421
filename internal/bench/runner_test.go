package bench

import (
	"testing"
)

func hungryCase() Case {
	return Case{
		Key:      "hungry_morning",
		UserText: "밥 먹었어?",
		Hour:     8,
		AgeDays:  200,
		LastType: "talk",
		Hunger:   85, Energy: 60, Stress: 10, Fun: 50, Affect: 50, Trust: 60,
	}
}

func TestPrepareDerivesPlanAndControl(t *testing.T) {
	c := hungryCase()
	c.MemoryRecentSummary = "츄르 먹고 좋아했음"

	p, ctl := Prepare(c)
	if p.BehaviorHint != "food_seek" {
		t.Fatalf("hunger 85 should plan food seeking, got %q", p.BehaviorHint)
	}
	if ctl.NeedTop1 != "food" || ctl.TimeBlock != "morning" || !ctl.IsFeedingWindow {
		t.Fatalf("control classifications wrong: %+v", ctl)
	}
	if ctl.MemoryRecentSummary != "츄르 먹고 좋아했음" {
		t.Fatalf("memory fields should be carried into the control: %+v", ctl)
	}
}

func TestScoreResponseCombined(t *testing.T) {
	row := ScoreResponse(hungryCase(), "배고파… 밥 줘")
	if row.CaseKey != "hungry_morning" {
		t.Fatalf("case key lost: %+v", row)
	}
	want := float64(row.Cat.Total) + float64(row.Tag.TagScore)
	if row.Combined != want {
		t.Fatalf("combined = %v, want cat+tag = %v", row.Combined, want)
	}
	if row.Cat.Breakdown.Need != 25 {
		t.Fatalf("food talk should max the need category, got %d", row.Cat.Breakdown.Need)
	}
}

func TestScoreResponseClampsWildInput(t *testing.T) {
	c := hungryCase()
	c.Hunger = 900
	c.Energy = -40
	row := ScoreResponse(c, "밥")
	if row.Control.Hunger != 100 || row.Control.Energy != 0 {
		t.Fatalf("drives should be clamped in the control: %+v", row.Control)
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, 0, 0)
	if r.Workers != 1 {
		t.Fatalf("worker floor should be 1, got %d", r.Workers)
	}
	if r.Limiter == nil {
		t.Fatal("limiter must always be set")
	}
}

func TestSummarizeOrdersByCombined(t *testing.T) {
	rows := []Row{
		{Model: "a", CaseKey: "c1", Combined: 40},
		{Model: "a", CaseKey: "c2", Combined: 60, Err: "timeout"},
		{Model: "b", CaseKey: "c1", Combined: 90},
		{Model: "b", CaseKey: "c2", Combined: 70},
	}
	sums := Summarize(rows)
	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	if sums[0].Model != "b" || sums[0].MeanCombined != 80 {
		t.Fatalf("best model should sort first: %+v", sums[0])
	}
	if sums[1].Errors != 1 || sums[1].Cases != 2 {
		t.Fatalf("error accounting wrong: %+v", sums[1])
	}
}
