package score

import (
	"fmt"
	"strings"
)

const (
	requiredTagReward  = 5
	requiredTagPenalty = 3
	forbiddenTagFine   = 8
)

// TagScoreResult grades a response against a plan's required/forbidden
// tag sets.
type TagScoreResult struct {
	TagScore            int      `json:"tagScore"`
	RequiredTagScore    int      `json:"requiredTagScore"`
	ForbiddenTagPenalty int      `json:"forbiddenTagPenalty"`
	MatchedRequired     []string `json:"matchedRequiredTags"`
	MissedRequired      []string `json:"missedRequiredTags"`
	MatchedForbidden    []string `json:"matchedForbiddenTags"`
	Reasons             []string `json:"reasons"`

	// RequiredCompliance is 1.0 when nothing was required.
	RequiredCompliance float64 `json:"requiredTagCompliance"`
	// ForbiddenViolationRate is 0.0 when nothing was forbidden.
	ForbiddenViolationRate float64 `json:"forbiddenTagViolationRate"`
}

// ScoreTags evaluates text against tag constraints. Each required tag is
// worth +5 when its keyword family (or the tag itself, when the family
// is unknown) appears, -3 when missed; each forbidden hit costs 8.
func ScoreTags(text string, requiredTags, forbiddenTags []string) TagScoreResult {
	var r TagScoreResult
	t := normalize(text)

	for _, tag := range requiredTags {
		if tag == "" {
			continue
		}
		if tagMatched(t, tag) {
			r.MatchedRequired = append(r.MatchedRequired, tag)
			r.RequiredTagScore += requiredTagReward
			r.Reasons = append(r.Reasons, fmt.Sprintf("[required+] %q matched (+%d)", tag, requiredTagReward))
		} else {
			r.MissedRequired = append(r.MissedRequired, tag)
			r.RequiredTagScore -= requiredTagPenalty
			r.Reasons = append(r.Reasons, fmt.Sprintf("[required-] %q missed (-%d)", tag, requiredTagPenalty))
		}
	}

	for _, tag := range forbiddenTags {
		if tag == "" {
			continue
		}
		if tagMatched(t, tag) {
			r.MatchedForbidden = append(r.MatchedForbidden, tag)
			r.ForbiddenTagPenalty += forbiddenTagFine
			r.Reasons = append(r.Reasons, fmt.Sprintf("[forbidden!] %q violated (-%d)", tag, forbiddenTagFine))
		}
	}

	r.TagScore = r.RequiredTagScore - r.ForbiddenTagPenalty

	r.RequiredCompliance = 1.0
	if n := countNonEmpty(requiredTags); n > 0 {
		r.RequiredCompliance = float64(len(r.MatchedRequired)) / float64(n)
	}
	r.ForbiddenViolationRate = 0.0
	if n := countNonEmpty(forbiddenTags); n > 0 {
		r.ForbiddenViolationRate = float64(len(r.MatchedForbidden)) / float64(n)
	}

	return r
}

func tagMatched(text, tag string) bool {
	if syn := tagKeywords[strings.ToLower(tag)]; syn != nil {
		return countMatches(text, syn) > 0
	}
	// no dictionary row: the tag token itself is the keyword
	return strings.Contains(text, strings.ToLower(tag))
}

func countNonEmpty(tags []string) int {
	n := 0
	for _, t := range tags {
		if t != "" {
			n++
		}
	}
	return n
}
