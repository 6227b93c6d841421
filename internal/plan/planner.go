package plan

import (
	"fmt"
	"strings"

	"cattalk-v0/internal/pet"
)

// Interaction labels accepted by the planner. Anything else is treated
// as "none" by the trust pass (it only reacts to pet/play/talk anyway).
const (
	InteractionNone = "none"
	InteractionPet  = "pet"
	InteractionPlay = "play"
	InteractionTalk = "talk"
	InteractionFeed = "feed"
)

// Plan runs the decision cascade and returns the behavior plan for this
// tick. Five passes mutate one plan value in order; a later pass wins
// whenever it fires, which is the whole precedence scheme. The literal
// priority numbers per branch are product behavior, not tuning knobs.
func Plan(state pet.State, hour int, interaction string) BehaviorPlan {
	state = state.Clamped()

	block := TimeBlockOf(hour)
	tier := TrustTierOf(state.Trust)
	need := NeedOf(state)

	var p BehaviorPlan
	p.BehaviorState = "Idle"

	applyTimeBase(&p, block, state)
	applyNeedOverride(&p, need, state)
	applyTrustAdjust(&p, tier, interaction)
	applySensitivity(&p, state, interaction)
	synthesizeTags(&p, block, tier, need, state)

	return p
}

// Pass 1: time-of-day base behavior. Priority stays 0 except for the
// afternoon nap (1) and the dawn zoomies (2).
func applyTimeBase(p *BehaviorPlan, block TimeBlock, state pet.State) {
	switch block {
	case Morning:
		p.BehaviorState = "Idle"
		p.BehaviorHint = HintStretch
		p.Type = Neutral
		p.Reason = "morning stretch"
	case Afternoon:
		p.BehaviorState = "Sleeping"
		p.BehaviorHint = HintYawn
		p.Type = Passive
		p.Priority = 1
		p.Reason = "afternoon drowsiness"
	case Evening:
		p.BehaviorState = "Walking"
		p.BehaviorHint = HintFoodSeek
		p.Type = Seeking
		p.Reason = "expecting the evening meal"
	case Night:
		p.BehaviorState = "Walking"
		p.BehaviorHint = HintCurious
		p.Type = Active
		p.Reason = "nocturnal activity picking up"
	case Dawn:
		p.BehaviorState = "Playing"
		p.BehaviorHint = HintZoomies
		p.Type = Active
		p.Priority = 2
		p.Reason = "dawn zoomies"
	case DeepNight:
		if state.Energy <= 50 {
			p.BehaviorState = "Sleeping"
			p.BehaviorHint = HintSleep
			p.Type = Passive
			p.Reason = "deep-night rest"
		} else {
			p.BehaviorState = "Idle"
			p.BehaviorHint = HintObserveWindow
			p.Type = Neutral
			p.Reason = "deep-night window watching"
		}
	}
}

// Pass 2: unmet needs outrank the clock.
func applyNeedOverride(p *BehaviorPlan, need Need, state pet.State) {
	switch need {
	case NeedFood:
		p.BehaviorState = "Walking"
		p.BehaviorHint = HintFoodSeek
		p.Type = Seeking
		p.Priority = 3
		p.Reason = fmt.Sprintf("hungry (hunger=%.0f)", state.Hunger)
	case NeedRest:
		p.BehaviorState = "Sleeping"
		p.BehaviorHint = HintRest
		p.Type = Passive
		p.Priority = 2
		p.Reason = fmt.Sprintf("worn out (energy=%.0f)", state.Energy)
	case NeedPlay:
		p.BehaviorState = "Playing"
		p.BehaviorHint = HintPlay
		p.Type = Active
		p.Priority = 2
		p.Reason = fmt.Sprintf("bored (fun=%.0f)", state.Fun)
	case NeedAffection:
		p.BehaviorState = "Idle"
		p.BehaviorHint = HintAttentionSeek
		p.Type = Seeking
		p.Priority = 1
		p.Reason = "wants attention"
	case NeedNone:
		// keep the time-based plan
	}
}

// Pass 3: trust colors the reaction to the user's last action. Does
// nothing when there was no interaction.
func applyTrustAdjust(p *BehaviorPlan, tier TrustTier, interaction string) {
	if interaction == InteractionNone || interaction == "" {
		return
	}

	switch tier {
	case TrustLow:
		if interaction == InteractionPet || interaction == InteractionPlay {
			p.BehaviorState = "Idle"
			p.BehaviorHint = HintTurnAway
			p.Type = Avoiding
			p.Priority = 4
			p.Reason = "low trust - guarded"
		} else if interaction == InteractionTalk {
			p.BehaviorHint = HintIgnore
			p.Type = Avoiding
			p.Reason = "low trust - ignoring"
		}
	case TrustMid:
		// tsundere: tolerates contact but the plan itself stays as-is
		if interaction == InteractionPet {
			p.Reason += " (reluctantly)"
		}
	case TrustHigh:
		if interaction == InteractionPet || interaction == InteractionPlay {
			p.BehaviorState = "Happy"
			p.BehaviorHint = HintPurr
			p.Type = Affectionate
			p.Priority = 3
			p.Reason = "high trust - showing affection"
		} else if interaction == InteractionTalk {
			p.BehaviorHint = HintApproach
			p.Type = Affectionate
			p.Reason = "high trust - coming closer"
		}
	}
}

// Pass 4: sensitivity overrides. Three independent checks, each may fire
// on top of whatever the earlier passes decided.
func applySensitivity(p *BehaviorPlan, state pet.State, interaction string) {
	if state.IsTired() && interaction == InteractionPet {
		p.BehaviorState = "Idle"
		p.BehaviorHint = HintTurnAway
		p.Type = Avoiding
		p.Priority = 5
		p.Reason = "hates being touched when tired"
	}

	if state.IsStressed() && interaction == InteractionTalk {
		p.BehaviorHint = HintHiss
		p.Type = Defensive
		p.Priority = 5
		p.Reason = "too stressed to be talked at"
	}

	if state.IsHungry() && interaction == InteractionPlay {
		p.BehaviorHint = HintFoodSeek
		p.Type = Seeking
		p.Priority = 4
		p.Reason = "too hungry to play"
	}
}

// Pass 5: derive descriptive, required and forbidden tags from the final
// plan plus the classifications.
func synthesizeTags(p *BehaviorPlan, block TimeBlock, tier TrustTier, need Need, state pet.State) {
	tags := []string{
		p.Type.String(),
		strings.ToLower(p.BehaviorState),
		"time_" + block.String(),
	}
	var required, forbidden []string

	if need != NeedNone {
		tags = append(tags, "need_"+need.String())
	}

	switch tier {
	case TrustLow:
		forbidden = append(forbidden, "affection", "purr", "cuddle", "happy")
		required = append(required, "distant")
	case TrustMid:
		tags = append(tags, "tsundere")
	case TrustHigh:
		forbidden = append(forbidden, "hiss", "ignore", "avoid")
		required = append(required, "friendly")
	}

	if p.BehaviorHint != "" {
		required = append(required, p.BehaviorHint)
	}

	switch {
	case state.IsHappy():
		tags = append(tags, "mood_happy")
	case state.IsStressed():
		tags = append(tags, "mood_stressed")
		required = append(required, "annoyed")
	case state.IsTired():
		tags = append(tags, "mood_tired")
	}

	p.Tags = tags
	p.RequiredTags = required
	p.ForbiddenTags = forbidden
	p.ActionTokens = []string{p.BehaviorHint}
}
