package pet

// MoodSummary collapses the drive state into the one-word mood label the
// prompt and scoring control carry. Precedence mirrors the state manager
// of the game: distress first, then tiredness, then contentment.
func (s State) MoodSummary() string {
	switch {
	case s.IsStressed():
		return "stressed"
	case s.IsHungry():
		return "hungry"
	case s.IsTired():
		return "tired"
	case s.IsHappy():
		return "happy"
	case s.Fun <= 30:
		return "bored"
	default:
		return "neutral"
	}
}

// AgeLevelOf buckets an age in days into the three speech-style tiers.
func AgeLevelOf(days int) string {
	switch {
	case days < 90:
		return "child"
	case days <= 365:
		return "teen"
	default:
		return "adult"
	}
}
