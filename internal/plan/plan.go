package plan

import (
	"encoding/json"
	"strings"
)

// BehaviorType is the coarse category a plan falls into.
type BehaviorType int

const (
	Neutral BehaviorType = iota
	Active
	Passive
	Seeking
	Avoiding
	Affectionate
	Defensive
)

func (t BehaviorType) String() string {
	switch t {
	case Active:
		return "active"
	case Passive:
		return "passive"
	case Seeking:
		return "seeking"
	case Avoiding:
		return "avoiding"
	case Affectionate:
		return "affectionate"
	case Defensive:
		return "defensive"
	default:
		return "neutral"
	}
}

func ParseBehaviorType(s string) BehaviorType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return Active
	case "passive":
		return Passive
	case "seeking":
		return Seeking
	case "avoiding":
		return Avoiding
	case "affectionate":
		return Affectionate
	case "defensive":
		return Defensive
	default:
		return Neutral
	}
}

func (t BehaviorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *BehaviorType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ParseBehaviorType(s)
	return nil
}

// Behavior hint tokens. A downstream prompt builder and the scorers key
// off these, so they are fixed vocabulary, not free text.
const (
	HintZoomies = "zoomies"
	HintWalk    = "walk"
	HintPlay    = "play"
	HintJump    = "jump"

	HintYawn    = "yawn"
	HintSleep   = "sleep"
	HintRest    = "rest"
	HintStretch = "stretch"

	HintFoodSeek      = "food_seek"
	HintWaterSeek     = "water_seek"
	HintAttentionSeek = "attention_seek"

	HintTurnAway = "turn_away"
	HintIgnore   = "ignore"
	HintHiss     = "hiss"
	HintHide     = "hide"

	HintObserveWindow = "observe_window"
	HintObserveSound  = "observe_sound"
	HintCurious       = "curious"

	HintApproach = "approach"
	HintCuddle   = "cuddle"
	HintPurr     = "purr"
	HintRub      = "rub"

	HintGroom = "groom"
	HintLick  = "lick"
)

// BehaviorPlan is the decision artifact produced once per tick. It is
// never mutated after tag synthesis and has no persistent identity.
type BehaviorPlan struct {
	BehaviorState string       `json:"behaviorState"`
	BehaviorHint  string       `json:"behaviorHint"`
	ActionTokens  []string     `json:"actionTokens"`
	Tags          []string     `json:"tags"`
	RequiredTags  []string     `json:"requiredTags"`
	ForbiddenTags []string     `json:"forbiddenTags"`
	Priority      int          `json:"priority"`
	Reason        string       `json:"reason"`
	Type          BehaviorType `json:"type"`
}
