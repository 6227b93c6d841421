package score

import (
	"fmt"
	"strings"
)

// Category caps. The 140-point raw ceiling is the rubric's normalization
// anchor; it is a constant of the scale, not a derived sum.
const (
	capRoutine     = 20
	capNeed        = 25
	capTrust       = 20
	capTsundere    = 10
	capSensitivity = 10
	capMonologue   = 5
	capAction      = 10
	capMemory      = 10
	capAge         = 10
	capEmotion     = 10
	capContext     = 10

	capHumanPenalty = 15
	rawCeiling      = 140
)

// Breakdown carries the eleven capped sub-scores.
type Breakdown struct {
	Routine     int `json:"routine"`
	Need        int `json:"need"`
	Trust       int `json:"trust"`
	Tsundere    int `json:"tsundere"`
	Sensitivity int `json:"sensitivity"`
	Monologue   int `json:"monologue"`
	Action      int `json:"action"`
	Memory      int `json:"memory"`
	Age         int `json:"ageExpression"`
	Emotion     int `json:"emotionCoherence"`
	Context     int `json:"contextAwareness"`
}

// Result is the full grading of one response.
type Result struct {
	Total        int       `json:"scoreTotal"` // 0..100
	Raw          int       `json:"scoreRaw"`   // 0..140, before rescale
	Breakdown    Breakdown `json:"breakdown"`
	HumanPenalty int       `json:"humanPenalty"`

	MatchedKeywords []string `json:"matchedKeywords"`
	ReasonsUser     []string `json:"scoreReasons"`
	ReasonsDebug    []string `json:"scoreReasonsDebug"`
}

// evalState accumulates trace output across the category evaluators.
type evalState struct {
	reasons  []Reason
	keywords []string
}

func (e *evalState) add(category string, delta int, msg string) {
	e.reasons = append(e.reasons, Reason{Category: category, Delta: delta, Message: msg})
}

func (e *evalState) addBase(category string, delta int, msg string) {
	e.reasons = append(e.reasons, Reason{Category: category, Delta: delta, Message: msg, IsBase: true})
}

func (e *evalState) matched(text string, keywords []string) {
	e.keywords = append(e.keywords, matchedKeywords(text, keywords)...)
}

// ScoreCatLikeness grades a response against the flattened control. It is
// stateless and safe to call concurrently; the keyword tables are
// read-only. Unknown enum strings in the control degrade to flat base
// awards instead of failing, so batches of historical data score through.
func ScoreCatLikeness(ctl Control, responseText string) Result {
	text := normalize(responseText)
	var e evalState
	var b Breakdown

	b.Routine = evalRoutine(ctl, text, &e)
	b.Need = evalNeed(ctl, text, &e)
	b.Trust = evalTrust(ctl, text, &e)
	b.Tsundere = evalTsundere(text, &e)
	b.Sensitivity = evalSensitivity(ctl, text, &e)
	b.Monologue = evalMonologue(text, &e)
	b.Action = evalAction(text, &e)
	b.Memory = evalMemory(ctl, text, &e)
	b.Age = evalAge(ctl, text, &e)
	b.Emotion = evalEmotion(ctl, text, &e)
	b.Context = evalContext(ctl, text, &e)

	// The human-likeness penalty (capped at 15) is subtracted from the raw
	// sum BEFORE the 140->100 rescale, so the 0..100 total drops by ~11,
	// not 15. Historical exports depend on this order; do not move the
	// subtraction below the rescale.
	penalty := evalHumanLike(text, &e)

	raw := b.Routine + b.Need + b.Trust + b.Tsundere + b.Sensitivity +
		b.Monologue + b.Action + b.Memory + b.Age + b.Emotion + b.Context -
		penalty
	raw = clampInt(raw, 0, rawCeiling)

	total := clampInt((raw*100+rawCeiling/2)/rawCeiling, 0, 100)

	return Result{
		Total:           total,
		Raw:             raw,
		Breakdown:       b,
		HumanPenalty:    penalty,
		MatchedKeywords: e.keywords,
		ReasonsUser:     userReasons(e.reasons),
		ReasonsDebug:    debugReasons(e.reasons),
	}
}

// 1. Routine (0..20): does the tone fit the time of day? The feeding
// window is checked first, independently of the block.
func evalRoutine(ctl Control, text string, e *evalState) int {
	const cat = "routine"
	score := 6
	e.addBase(cat, 6, "routine base")

	if ctl.IsFeedingWindow {
		if countMatches(text, kwFeeding.Strong) > 0 {
			score += 6
			e.add(cat, 6, "food talk at feeding time")
			e.matched(text, kwFeeding.Strong)
		} else if countMatches(text, kwFeeding.Contradiction) > 0 {
			score -= 6
			e.add(cat, -6, "indifferent to food at feeding time")
		}
	}

	var set keywordSet
	contraPenalty := 6
	switch parseBlockLabel(ctl.TimeBlock) {
	case "morning":
		set = kwMorning
	case "afternoon":
		set = kwAfternoon
		contraPenalty = 10
	case "evening":
		set = kwEvening
	case "night", "dawn":
		set = kwNightDawn
	case "deepnight":
		set = kwDeepNight
	default:
		// unknown block: no time signal, keep the base
		return clampInt(score, 0, capRoutine)
	}

	if countMatches(text, set.Strong) > 0 {
		score += 12
		e.add(cat, 12, "strong time-of-day tone")
		e.matched(text, set.Strong)
	} else if countMatches(text, set.Weak) > 0 {
		score += 8
		e.add(cat, 8, "weak time-of-day tone")
		e.matched(text, set.Weak)
	}
	if countMatches(text, set.Contradiction) > 0 {
		score -= contraPenalty
		e.add(cat, -contraPenalty, "tone contradicts time of day")
	}

	return clampInt(score, 0, capRoutine)
}

// 2. Need (0..25): the dominant need should surface in the response.
func evalNeed(ctl Control, text string, e *evalState) int {
	const cat = "need"
	need := strings.ToLower(strings.TrimSpace(ctl.NeedTop1))
	pair, ok := needKeywords[need]
	if !ok {
		e.addBase(cat, 12, "no dominant need")
		return 12
	}

	if countMatches(text, pair.Match) > 0 {
		e.add(cat, capNeed, fmt.Sprintf("need=%s addressed", need))
		e.matched(text, pair.Match)
		return capNeed
	}
	if countMatches(text, pair.Mismatch) > 0 {
		e.add(cat, -20, fmt.Sprintf("need=%s contradicted", need))
		return 5
	}
	e.addBase(cat, 12, fmt.Sprintf("need=%s not addressed", need))
	return 12
}

// 3. Trust (0..20): closeness language must match the trust tier. High
// tier tolerates a single harsh rejection before penalizing.
func evalTrust(ctl Control, text string, e *evalState) int {
	const cat = "trust"
	score := 10
	e.addBase(cat, 10, "trust base")

	tier := strings.ToLower(strings.TrimSpace(ctl.TrustTier))
	pair, ok := trustKeywords[tier]
	if !ok {
		return clampInt(score, 0, capTrust)
	}

	switch tier {
	case "low":
		if countMatches(text, pair.Match) > 0 {
			score += 10
			e.add(cat, 10, "guarded tone at low trust")
			e.matched(text, pair.Match)
		}
		if countMatches(text, pair.Mismatch) > 0 {
			score -= 12
			e.add(cat, -12, "overly affectionate at low trust")
		}
	case "mid":
		if countMatches(text, pair.Match) > 0 {
			score += 6
			e.add(cat, 6, "neutral allowance at mid trust")
			e.matched(text, pair.Match)
		}
	case "high":
		if countMatches(text, pair.Match) > 0 {
			score += 10
			e.add(cat, 10, "attachment language at high trust")
			e.matched(text, pair.Match)
		}
		if countMatches(text, pair.Mismatch) > 1 {
			score -= 6
			e.add(cat, -6, "repeated harsh rejection at high trust")
		}
	}

	return clampInt(score, 0, capTrust)
}

// 4. Tsundere / independence (0..10).
func evalTsundere(text string, e *evalState) int {
	const cat = "tsundere"
	score := 4
	e.addBase(cat, 4, "tsundere base")

	if countMatches(text, kwTsundere) > 0 {
		score += 3
		e.add(cat, 3, "reluctant-affection phrasing")
		e.matched(text, kwTsundere)
	}
	if countMatches(text, kwIndependence) > 0 {
		score += 3
		e.add(cat, 3, "independence phrasing")
		e.matched(text, kwIndependence)
	}
	if countMatches(text, kwTsundereMismatch) > 0 {
		score -= 4
		e.add(cat, -4, "over-the-top declaration")
	}

	return clampInt(score, 0, capTsundere)
}

// 5. Sensitivity (0..10): only scores beyond base when the context
// itself is sensitive.
func evalSensitivity(ctl Control, text string, e *evalState) int {
	const cat = "sensitivity"
	score := 5
	e.addBase(cat, 5, "sensitivity base")

	last := strings.ToLower(ctl.LastInteractionType)
	tiredPet := ctl.Energy < 30 && strings.Contains(last, "pet")
	stressedTalk := ctl.Stress > 70 && strings.Contains(last, "talk")

	if tiredPet && countMatches(text, kwTiredPetReject) > 0 {
		score += 5
		e.add(cat, 5, "rejects touch while tired")
		e.matched(text, kwTiredPetReject)
	}
	if stressedTalk && countMatches(text, kwStressedTalkReject) > 0 {
		score += 5
		e.add(cat, 5, "snaps at talk while stressed")
		e.matched(text, kwStressedTalkReject)
	}
	if (tiredPet || stressedTalk) && countMatches(text, kwTooFriendly) > 0 {
		score -= 5
		e.add(cat, -5, "too friendly for a sensitive moment")
	}

	return clampInt(score, 0, capSensitivity)
}

// 6. Monologue / observation (0..5): additive, no penalties.
func evalMonologue(text string, e *evalState) int {
	const cat = "monologue"
	score := 0

	if countMatches(text, kwMonologue) > 0 {
		score += 2
		e.add(cat, 2, "self-directed mutter")
		e.matched(text, kwMonologue)
	}
	if countMatches(text, kwObservation) > 0 {
		score += 3
		e.add(cat, 3, "environment observation")
		e.matched(text, kwObservation)
	}

	return clampInt(score, 0, capMonologue)
}

// 7. Action language (0..10): four independent, stackable families.
func evalAction(text string, e *evalState) int {
	const cat = "action"
	score := 0

	if countMatches(text, kwActionIgnore) > 0 {
		score += 3
		e.add(cat, 3, "ignore/withdraw action")
		e.matched(text, kwActionIgnore)
	}
	if countMatches(text, kwActionSleepy) > 0 {
		score += 3
		e.add(cat, 3, "sleepy action")
		e.matched(text, kwActionSleepy)
	}
	if countMatches(text, kwActionActive) > 0 {
		score += 2
		e.add(cat, 2, "active action")
		e.matched(text, kwActionActive)
	}
	if countMatches(text, kwActionGrooming) > 0 {
		score += 2
		e.add(cat, 2, "grooming action")
		e.matched(text, kwActionGrooming)
	}

	return clampInt(score, 0, capAction)
}

// 8. Memory (0..10): does the response echo anything from the memory
// summaries?
func evalMemory(ctl Control, text string, e *evalState) int {
	const cat = "memory"
	score := 5
	e.addBase(cat, 5, "memory base")

	if tok := echoedToken(text, ctl.MemoryRecentSummary); tok != "" {
		score += 3
		e.add(cat, 3, "echoes recent memory")
		e.keywords = append(e.keywords, tok)
	}
	if tok := echoedToken(text, ctl.MemoryHabit); tok != "" {
		score += 2
		e.add(cat, 2, "echoes known habit")
		e.keywords = append(e.keywords, tok)
	}

	return clampInt(score, 0, capMemory)
}

// 9. Age expression (0..10): speech style per age tier, symmetric
// reward/penalty.
func evalAge(ctl Control, text string, e *evalState) int {
	const cat = "age"
	score := 5
	e.addBase(cat, 5, "age base")

	tier := strings.ToLower(strings.TrimSpace(ctl.AgeLevel))
	pair, ok := ageKeywords[tier]
	if !ok {
		return clampInt(score, 0, capAge)
	}

	if countMatches(text, pair.Match) > 0 {
		score += 5
		e.add(cat, 5, fmt.Sprintf("fits %s speech style", tier))
		e.matched(text, pair.Match)
	}
	if countMatches(text, pair.Mismatch) > 0 {
		score -= 5
		e.add(cat, -5, fmt.Sprintf("clashes with %s speech style", tier))
	}

	return clampInt(score, 0, capAge)
}

// 10. Emotion coherence (0..10): tonal agreement with the mood label.
func evalEmotion(ctl Control, text string, e *evalState) int {
	const cat = "emotion"
	score := 6
	e.addBase(cat, 6, "emotion base")

	mood := strings.ToLower(strings.TrimSpace(ctl.MoodTag))
	if canon, ok := moodAliases[mood]; ok {
		mood = canon
	}
	pair, ok := moodKeywords[mood]
	if !ok {
		return clampInt(score, 0, capEmotion)
	}

	if countMatches(text, pair.Match) > 0 {
		score += 4
		e.add(cat, 4, fmt.Sprintf("tone agrees with mood=%s", mood))
		e.matched(text, pair.Match)
	}
	if countMatches(text, pair.Mismatch) > 0 {
		score -= 6
		e.add(cat, -6, fmt.Sprintf("tone conflicts with mood=%s", mood))
	}

	return clampInt(score, 0, capEmotion)
}

// 11. Context awareness (0..10): the response should echo the planned
// hint and/or the behavior-type family.
func evalContext(ctl Control, text string, e *evalState) int {
	const cat = "context"
	score := 5
	e.addBase(cat, 5, "context base")

	hint := strings.ToLower(strings.TrimSpace(ctl.BehaviorHint))
	if syn := tagKeywords[hint]; syn != nil && countMatches(text, syn) > 0 {
		score += 3
		e.add(cat, 3, fmt.Sprintf("echoes hint %q", hint))
		e.matched(text, syn)
	}

	typ := strings.ToLower(strings.TrimSpace(ctl.BehaviorType))
	switch typ {
	case "avoiding", "affectionate", "seeking":
		if syn := tagKeywords[typ]; countMatches(text, syn) > 0 {
			score += 2
			e.add(cat, 2, fmt.Sprintf("echoes %s behavior", typ))
			e.matched(text, syn)
		}
	}

	return clampInt(score, 0, capContext)
}

// Human-likeness penalty (0..15): 5 per distinct assistant-speak phrase.
func evalHumanLike(text string, e *evalState) int {
	n := countMatches(text, kwHumanLike)
	if n == 0 {
		return 0
	}
	penalty := n * 5
	if penalty > capHumanPenalty {
		penalty = capHumanPenalty
	}
	e.add("humanlike", -penalty, "reads like an assistant, not a cat")
	e.matched(text, kwHumanLike)
	return penalty
}

func parseBlockLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// echoedToken returns the first whitespace token of summary (length >= 2
// runes) that occurs in text, or "".
func echoedToken(text, summary string) string {
	if summary == "" {
		return ""
	}
	for _, tok := range strings.Fields(strings.ToLower(summary)) {
		tok = strings.Trim(tok, ".,!?…~")
		if len([]rune(tok)) < 2 {
			continue
		}
		if strings.Contains(text, tok) {
			return tok
		}
	}
	return ""
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
