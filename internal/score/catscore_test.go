package score

import (
	"strings"
	"testing"
)

func TestScoreCatLikenessNeutralBaseline(t *testing.T) {
	r := ScoreCatLikeness(Control{}, "")
	// base awards only: 6+12+10+4+5+0+0+5+5+6+5 = 58
	if r.Raw != 58 {
		t.Fatalf("neutral baseline raw should be 58, got %d (breakdown %+v)", r.Raw, r.Breakdown)
	}
	if r.Total != 41 {
		t.Fatalf("58/140 rescales to 41, got %d", r.Total)
	}
	if len(r.ReasonsUser) != 0 {
		t.Fatalf("base-only trace should produce no user reasons, got %v", r.ReasonsUser)
	}
	if len(r.ReasonsDebug) == 0 {
		t.Fatal("debug trace should keep the base entries")
	}
}

func TestScoreCatLikenessDeterministic(t *testing.T) {
	ctl := Control{TimeBlock: "afternoon", NeedTop1: "rest", TrustTier: "mid", MoodTag: "tired"}
	text := "하암… 졸려. 그냥 잠깐만 쉬자"
	a := ScoreCatLikeness(ctl, text)
	b := ScoreCatLikeness(ctl, text)
	if a.Total != b.Total || a.Raw != b.Raw {
		t.Fatalf("same input should score identically: %d/%d vs %d/%d", a.Total, a.Raw, b.Total, b.Raw)
	}
}

func TestRoutineAfternoonMatchAndContradiction(t *testing.T) {
	ctl := Control{TimeBlock: "afternoon"}

	r := ScoreCatLikeness(ctl, "졸려… 좀 잘래")
	if r.Breakdown.Routine < 16 {
		t.Fatalf("sleepy talk in the afternoon should score >=16, got %d", r.Breakdown.Routine)
	}

	r = ScoreCatLikeness(ctl, "우다다! 지금 놀자!")
	if r.Breakdown.Routine > 4 {
		t.Fatalf("zoomies talk in the afternoon should score <=4, got %d", r.Breakdown.Routine)
	}
}

func TestRoutineFeedingWindow(t *testing.T) {
	ctl := Control{IsFeedingWindow: true}
	with := ScoreCatLikeness(ctl, "밥 줘! 배고파")
	without := ScoreCatLikeness(Control{}, "밥 줘! 배고파")
	if with.Breakdown.Routine <= without.Breakdown.Routine {
		t.Fatalf("food talk should score higher inside the feeding window: %d vs %d",
			with.Breakdown.Routine, without.Breakdown.Routine)
	}
}

func TestNeedCategoryMatchMismatchNeutral(t *testing.T) {
	ctl := Control{NeedTop1: "food"}

	if r := ScoreCatLikeness(ctl, "밥 줘 배고파"); r.Breakdown.Need != 25 {
		t.Fatalf("addressing the need should max the category, got %d", r.Breakdown.Need)
	}
	if r := ScoreCatLikeness(ctl, "놀자! 산책 가자"); r.Breakdown.Need != 5 {
		t.Fatalf("contradicting the need should floor to 5, got %d", r.Breakdown.Need)
	}
	if r := ScoreCatLikeness(ctl, "흠."); r.Breakdown.Need != 12 {
		t.Fatalf("ignoring the need should give the neutral 12, got %d", r.Breakdown.Need)
	}
	if r := ScoreCatLikeness(Control{NeedTop1: "totally-new-need"}, "밥"); r.Breakdown.Need != 12 {
		t.Fatalf("unknown need should degrade to the neutral award, got %d", r.Breakdown.Need)
	}
}

func TestTrustCategoryPerTier(t *testing.T) {
	low := Control{TrustTier: "low"}
	if r := ScoreCatLikeness(low, "저리 가! 하악"); r.Breakdown.Trust != 20 {
		t.Fatalf("guarded tone at low trust should cap at 20, got %d", r.Breakdown.Trust)
	}
	if r := ScoreCatLikeness(low, "사랑해 평생 같이 있자"); r.Breakdown.Trust != 0 {
		t.Fatalf("affectionate tone at low trust should floor, got %d", r.Breakdown.Trust)
	}

	high := Control{TrustTier: "high"}
	// one harsh word is tolerated at high trust
	if r := ScoreCatLikeness(high, "나가."); r.Breakdown.Trust != 10 {
		t.Fatalf("a single rejection at high trust should keep the base, got %d", r.Breakdown.Trust)
	}
	if r := ScoreCatLikeness(high, "나가! 싫어!"); r.Breakdown.Trust != 4 {
		t.Fatalf("repeated rejection at high trust should penalize, got %d", r.Breakdown.Trust)
	}
}

func TestSensitivityOnlyScoresInContext(t *testing.T) {
	text := "싫어, 만지지마"

	hot := Control{Energy: 20, LastInteractionType: "pet"}
	if r := ScoreCatLikeness(hot, text); r.Breakdown.Sensitivity != 10 {
		t.Fatalf("rejection while tired+pet should score 10, got %d", r.Breakdown.Sensitivity)
	}

	cold := Control{Energy: 80, LastInteractionType: "pet"}
	if r := ScoreCatLikeness(cold, text); r.Breakdown.Sensitivity != 5 {
		t.Fatalf("same text outside the context should stay at base, got %d", r.Breakdown.Sensitivity)
	}
}

func TestHumanLikePenalty(t *testing.T) {
	clean := ScoreCatLikeness(Control{}, "")
	smarmy := ScoreCatLikeness(Control{}, "고객님, 상담 결과를 요약하면 다음과 같습니다")

	if smarmy.HumanPenalty != 15 {
		t.Fatalf("three assistant phrases should cap the penalty at 15, got %d", smarmy.HumanPenalty)
	}
	if clean.Total-smarmy.Total < 10 {
		t.Fatalf("full penalty should cost at least 10 final points: %d -> %d", clean.Total, smarmy.Total)
	}
}

func TestTotalRescaleBounds(t *testing.T) {
	if got := clampInt((0*100+rawCeiling/2)/rawCeiling, 0, 100); got != 0 {
		t.Fatalf("raw 0 should rescale to 0, got %d", got)
	}
	if got := clampInt((140*100+rawCeiling/2)/rawCeiling, 0, 100); got != 100 {
		t.Fatalf("raw 140 should rescale to 100, got %d", got)
	}
}

func TestMoodAliasFolding(t *testing.T) {
	angry := ScoreCatLikeness(Control{MoodTag: "angry"}, "짜증나, 건들지마")
	stressed := ScoreCatLikeness(Control{MoodTag: "stressed"}, "짜증나, 건들지마")
	if angry.Breakdown.Emotion != stressed.Breakdown.Emotion {
		t.Fatalf("angry should alias to stressed: %d vs %d",
			angry.Breakdown.Emotion, stressed.Breakdown.Emotion)
	}
	if angry.Breakdown.Emotion != 10 {
		t.Fatalf("matching tone should score 10, got %d", angry.Breakdown.Emotion)
	}
}

func TestMemoryEcho(t *testing.T) {
	ctl := Control{MemoryRecentSummary: "츄르 먹고 좋아했음", MemoryHabit: "창밖 구경"}
	r := ScoreCatLikeness(ctl, "츄르 또 줘! 창밖 보면서 먹을래")
	if r.Breakdown.Memory != 10 {
		t.Fatalf("echoing both memories should max the category, got %d", r.Breakdown.Memory)
	}

	r = ScoreCatLikeness(ctl, "흠.")
	if r.Breakdown.Memory != 5 {
		t.Fatalf("no echo should keep the base, got %d", r.Breakdown.Memory)
	}
}

func TestUserReasonsFiltered(t *testing.T) {
	ctl := Control{TimeBlock: "afternoon", NeedTop1: "rest", TrustTier: "high", MoodTag: "tired"}
	r := ScoreCatLikeness(ctl, "졸려… 나른하게 옆에 있어줘. 골골")

	if len(r.ReasonsUser) > 6 {
		t.Fatalf("user reasons capped at 6, got %d", len(r.ReasonsUser))
	}
	for _, reason := range r.ReasonsUser {
		if strings.Contains(reason, "base") {
			t.Fatalf("base entries must not leak into user reasons: %q", reason)
		}
	}
	if len(r.ReasonsDebug) <= len(r.ReasonsUser) {
		t.Fatalf("debug trace should be the superset: %d vs %d",
			len(r.ReasonsDebug), len(r.ReasonsUser))
	}
}
