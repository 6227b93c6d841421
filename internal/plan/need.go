package plan

import (
	"strings"

	"cattalk-v0/internal/pet"
)

// Need is the single most urgent unmet drive.
type Need int

const (
	NeedNone Need = iota
	NeedFood
	NeedRest
	NeedPlay
	NeedAffection
)

// NeedOf resolves the dominant need. Strict precedence, first hit wins:
// food > rest > play > affection. Affection additionally requires enough
// trust to want contact at all.
func NeedOf(s pet.State) Need {
	switch {
	case s.Hunger >= 70:
		return NeedFood
	case s.Energy <= 30:
		return NeedRest
	case s.Fun <= 30:
		return NeedPlay
	case s.Affection <= 30 && s.Trust >= 50:
		return NeedAffection
	default:
		return NeedNone
	}
}

func (n Need) String() string {
	switch n {
	case NeedFood:
		return "food"
	case NeedRest:
		return "rest"
	case NeedPlay:
		return "play"
	case NeedAffection:
		return "affection"
	default:
		return "none"
	}
}

func ParseNeed(s string) Need {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food":
		return NeedFood
	case "rest":
		return NeedRest
	case "play":
		return NeedPlay
	case "affection":
		return NeedAffection
	default:
		return NeedNone
	}
}
