package pet

// State is the cat's numeric internal state. All six drives live on a
// 0..100 scale and are clamped on every write; the planner and scorer
// only ever read a snapshot.
type State struct {
	Hunger    float64 `json:"hunger"`
	Energy    float64 `json:"energy"`
	Stress    float64 `json:"stress"`
	Fun       float64 `json:"fun"`
	Affection float64 `json:"affection"`
	Trust     float64 `json:"trust"`

	AgeDays int `json:"ageDays"`
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Clamped returns a copy with every drive forced back into 0..100.
// Callers feeding the planner from untrusted data go through this.
func (s State) Clamped() State {
	s.Hunger = clamp(s.Hunger)
	s.Energy = clamp(s.Energy)
	s.Stress = clamp(s.Stress)
	s.Fun = clamp(s.Fun)
	s.Affection = clamp(s.Affection)
	s.Trust = clamp(s.Trust)
	return s
}

func (s *State) SetHunger(v float64)    { s.Hunger = clamp(v) }
func (s *State) SetEnergy(v float64)    { s.Energy = clamp(v) }
func (s *State) SetStress(v float64)    { s.Stress = clamp(v) }
func (s *State) SetFun(v float64)       { s.Fun = clamp(v) }
func (s *State) SetAffection(v float64) { s.Affection = clamp(v) }
func (s *State) SetTrust(v float64)     { s.Trust = clamp(v) }

// Derived predicates. The thresholds line up with the need resolver and
// the sensitivity scoring context on purpose.
func (s State) IsTired() bool    { return s.Energy <= 30 }
func (s State) IsStressed() bool { return s.Stress >= 70 }
func (s State) IsHungry() bool   { return s.Hunger >= 70 }
func (s State) IsHappy() bool    { return s.Fun >= 70 && s.Stress < 30 }
