package bench

import (
	"time"

	"cattalk-v0/internal/plan"
	"cattalk-v0/internal/score"
)

// Case is one benchmark test case: a context the planner runs on plus
// the user line handed to the model.
type Case struct {
	Key      string  `json:"caseKey" toml:"key"`
	UserText string  `json:"userText" toml:"user_text"`
	Hour     int     `json:"hour" toml:"hour"`
	AgeDays  int     `json:"ageDays" toml:"age_days"`
	LastType string  `json:"lastInteractionType" toml:"last_interaction"`
	Hunger   float64 `json:"hunger" toml:"hunger"`
	Energy   float64 `json:"energy" toml:"energy"`
	Stress   float64 `json:"stress" toml:"stress"`
	Fun      float64 `json:"fun" toml:"fun"`
	Affect   float64 `json:"affection" toml:"affection"`
	Trust    float64 `json:"trust" toml:"trust"`

	MemoryRecentSummary string `json:"memoryRecentSummary,omitempty" toml:"memory_recent"`
	MemoryHabit         string `json:"memoryHabit,omitempty" toml:"memory_habit"`
}

// Suite is a named collection of cases plus the models to compare.
type Suite struct {
	Name    string   `toml:"name"`
	CatName string   `toml:"cat_name"`
	Models  []string `toml:"models"`
	Cases   []Case   `toml:"case"`
}

// Row is the detailed result of one (model, case) pair: everything the
// exporters flatten and the store persists.
type Row struct {
	Model     string    `json:"model"`
	CaseKey   string    `json:"caseKey"`
	CreatedAt time.Time `json:"createdAt"`

	Control  score.Control     `json:"control"`
	Plan     plan.BehaviorPlan `json:"plan"`
	UserText string            `json:"userText"`
	Response string            `json:"response"`

	Cat score.Result         `json:"catScore"`
	Tag score.TagScoreResult `json:"tagScore"`

	// Combined is the one-glance column: likeness total plus the
	// (possibly negative) tag score.
	Combined float64 `json:"combinedScore"`

	Err string `json:"error,omitempty"`
}

// Store is where the runner drops finished rows. Implemented by the
// sqlite benchstore; a nil Store is allowed and means in-memory only.
type Store interface {
	SaveRow(Row) error
}
