package score

import "fmt"

// Reason is one scoring delta in the diagnostic trace. Base entries are
// default/no-signal awards; they stay in the debug log but are dropped
// from the user-facing list.
type Reason struct {
	Category string `json:"category"`
	Delta    int    `json:"delta"`
	Message  string `json:"message"`
	IsBase   bool   `json:"isBase"`
}

func (r Reason) String() string {
	sign := "+"
	if r.Delta < 0 {
		sign = ""
	}
	return fmt.Sprintf("[%s] %s (%s%d)", r.Category, r.Message, sign, r.Delta)
}

const (
	userReasonCap         = 6
	userReasonPerCategory = 2
	userReasonMinDelta    = 4
)

// userReasons derives the deduplicated, capped user-facing list: no base
// entries, no tiny deltas, at most two entries per category, at most six
// overall.
func userReasons(all []Reason) []string {
	perCat := map[string]int{}
	var out []string
	for _, r := range all {
		if r.IsBase {
			continue
		}
		if r.Delta < userReasonMinDelta && r.Delta > -userReasonMinDelta {
			continue
		}
		if perCat[r.Category] >= userReasonPerCategory {
			continue
		}
		perCat[r.Category]++
		out = append(out, r.String())
		if len(out) >= userReasonCap {
			break
		}
	}
	return out
}

func debugReasons(all []Reason) []string {
	out := make([]string, 0, len(all))
	for _, r := range all {
		out = append(out, r.String())
	}
	return out
}
