package score

import (
	"encoding/json"
	"strings"

	"cattalk-v0/internal/pet"
	"cattalk-v0/internal/plan"
)

// Control is the flattened, serializable snapshot of the planner's
// inputs. It exists so a score can be re-run independently of a live
// plan, including from historical benchmark logs. Enum-ish fields are
// plain strings at this boundary; the evaluators parse them with an
// unknown-goes-neutral fallback so one malformed record cannot abort a
// batch.
type Control struct {
	AgeLevel string `json:"ageLevel"`
	AgeDays  int    `json:"ageDays"`

	Hunger    float64 `json:"hunger"`
	Energy    float64 `json:"energy"`
	Stress    float64 `json:"stress"`
	Fun       float64 `json:"fun"`
	Affection float64 `json:"affection"`
	Trust     float64 `json:"trust"`

	MoodTag       string `json:"moodTag"`
	AffectionTier string `json:"affectionTier"`
	TrustTier     string `json:"trustTier"`

	TimeBlock       string `json:"timeBlock"`
	IsFeedingWindow bool   `json:"isFeedingWindow"`

	NeedTop1      string `json:"needTop1"`
	BehaviorHint  string `json:"behaviorHint"`
	BehaviorState string `json:"behaviorState"`
	BehaviorType  string `json:"behaviorType,omitempty"`

	LastInteractionType string `json:"lastInteractionType"`

	MemoryRecentSummary string `json:"memoryRecentSummary,omitempty"`
	MemoryHabit         string `json:"memoryHabit,omitempty"`
	PrevResponse        string `json:"prevResponse,omitempty"`
}

// BuildControl flattens the same state + context a planner call consumed,
// so that plan and score agree on every derived classification.
func BuildControl(state pet.State, hour int, interaction string, p plan.BehaviorPlan) Control {
	state = state.Clamped()
	return Control{
		AgeLevel: pet.AgeLevelOf(state.AgeDays),
		AgeDays:  state.AgeDays,

		Hunger:    state.Hunger,
		Energy:    state.Energy,
		Stress:    state.Stress,
		Fun:       state.Fun,
		Affection: state.Affection,
		Trust:     state.Trust,

		MoodTag:       state.MoodSummary(),
		AffectionTier: plan.TrustTierOf(state.Affection).String(),
		TrustTier:     plan.TrustTierOf(state.Trust).String(),

		TimeBlock:       plan.TimeBlockOf(hour).String(),
		IsFeedingWindow: plan.IsFeedingWindow(hour),

		NeedTop1:      plan.NeedOf(state).String(),
		BehaviorHint:  p.BehaviorHint,
		BehaviorState: p.BehaviorState,
		BehaviorType:  p.Type.String(),

		LastInteractionType: interaction,
	}
}

// ParseControl decodes a control record from JSON. Missing optional
// fields stay empty; numeric drives are clamped rather than rejected.
func ParseControl(data []byte) (Control, error) {
	var c Control
	if err := json.Unmarshal(data, &c); err != nil {
		return Control{}, err
	}
	c.Hunger = clamp100(c.Hunger)
	c.Energy = clamp100(c.Energy)
	c.Stress = clamp100(c.Stress)
	c.Fun = clamp100(c.Fun)
	c.Affection = clamp100(c.Affection)
	c.Trust = clamp100(c.Trust)
	return c, nil
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// normalize lowercases and trims response text once before matching.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// countMatches counts how many keywords occur in text as substrings.
func countMatches(text string, keywords []string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, k := range keywords {
		if k != "" && strings.Contains(text, strings.ToLower(k)) {
			n++
		}
	}
	return n
}

// matchedKeywords returns the keywords that occur in text, in dictionary
// order.
func matchedKeywords(text string, keywords []string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, k := range keywords {
		if k != "" && strings.Contains(text, strings.ToLower(k)) {
			out = append(out, k)
		}
	}
	return out
}
