package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cattalk-v0/internal/bench"
)

// RunInfo captures the run-level metadata written next to the rows.
type RunInfo struct {
	Timestamp   time.Time `json:"timestamp"`
	SuiteName   string    `json:"suiteName"`
	TotalModels int       `json:"totalModels"`
	TotalCases  int       `json:"totalCases"`
	TotalRows   int       `json:"totalRows"`
}

// Detailed is the full export payload: one result row per model × case.
type Detailed struct {
	RunInfo   RunInfo              `json:"runInfo"`
	Models    []string             `json:"models"`
	Summaries []bench.ModelSummary `json:"summaries"`
	Results   []bench.Row          `json:"results"`
}

// Build assembles the export payload from a finished run.
func Build(suiteName string, models []string, rows []bench.Row) Detailed {
	return Detailed{
		RunInfo: RunInfo{
			Timestamp:   time.Now(),
			SuiteName:   suiteName,
			TotalModels: len(models),
			TotalCases:  len(rows) / max(len(models), 1),
			TotalRows:   len(rows),
		},
		Models:    models,
		Summaries: bench.Summarize(rows),
		Results:   rows,
	}
}

// Paths returns the timestamped json and csv file names in dir.
func Paths(dir string, t time.Time) (jsonPath, csvPath string) {
	stamp := t.Format("20060102_1504")
	return filepath.Join(dir, fmt.Sprintf("benchmark_detailed_%s.json", stamp)),
		filepath.Join(dir, fmt.Sprintf("benchmark_detailed_%s.csv", stamp))
}

// WriteJSON writes the indented payload to path.
func WriteJSON(path string, d Detailed) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// csvHeader is the flattened column set, one row per model × case.
var csvHeader = []string{
	"timestamp", "model", "caseKey",
	"ageLevel", "ageDays", "moodTag", "affectionTier", "trustTier",
	"timeBlock", "needTop1",
	"energy", "stress", "hunger", "fun", "affection", "trust",
	"isFeedingWindow", "lastInteractionType",
	"userText", "response",
	"catScoreTotal", "catScoreRaw",
	"catRoutine", "catNeed", "catTrust", "catTsundere", "catSensitivity",
	"catMonologue", "catAction", "catMemory", "catAgeExpression",
	"catEmotionCoherence", "catContextAwareness", "humanPenalty",
	"behaviorState", "behaviorHint", "behaviorType", "behaviorReason", "priority",
	"requiredTags", "forbiddenTags",
	"memoryRecentSummary", "memoryHabit",
	"tagScoreTotal", "tagRequiredScore", "tagForbiddenPenalty",
	"tagMatchedRequired", "tagMissedRequired", "tagMatchedForbidden",
	"tagCompliance", "tagViolationRate",
	"parsedAction", "parsedText", "hasActTextFormat",
	"combinedScore",
	"scoreReasonsUser", "debug_reasons_joined", "matchedKeywords",
	"error",
}

// WriteCSV writes the spreadsheet-friendly flat file. The leading BOM
// keeps Excel decoding the Korean text as UTF-8.
func WriteCSV(path string, d Detailed) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("\uFEFF"); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	stamp := d.RunInfo.Timestamp.Format("2006-01-02 15:04:05")
	for _, row := range d.Results {
		if err := w.Write(flatten(stamp, row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func flatten(stamp string, row bench.Row) []string {
	c := row.Control
	b := row.Cat.Breakdown
	action, text, hasFmt := ParseActText(row.Response)
	return []string{
		stamp, row.Model, row.CaseKey,
		c.AgeLevel, strconv.Itoa(c.AgeDays), c.MoodTag, c.AffectionTier, c.TrustTier,
		c.TimeBlock, c.NeedTop1,
		f1(c.Energy), f1(c.Stress), f1(c.Hunger), f1(c.Fun), f1(c.Affection), f1(c.Trust),
		boolCell(c.IsFeedingWindow), c.LastInteractionType,
		row.UserText, row.Response,
		strconv.Itoa(row.Cat.Total), strconv.Itoa(row.Cat.Raw),
		strconv.Itoa(b.Routine), strconv.Itoa(b.Need), strconv.Itoa(b.Trust),
		strconv.Itoa(b.Tsundere), strconv.Itoa(b.Sensitivity),
		strconv.Itoa(b.Monologue), strconv.Itoa(b.Action), strconv.Itoa(b.Memory),
		strconv.Itoa(b.Age), strconv.Itoa(b.Emotion), strconv.Itoa(b.Context),
		strconv.Itoa(row.Cat.HumanPenalty),
		row.Plan.BehaviorState, row.Plan.BehaviorHint, row.Plan.Type.String(),
		row.Plan.Reason, strconv.Itoa(row.Plan.Priority),
		strings.Join(row.Plan.RequiredTags, ";"), strings.Join(row.Plan.ForbiddenTags, ";"),
		c.MemoryRecentSummary, c.MemoryHabit,
		strconv.Itoa(row.Tag.TagScore), strconv.Itoa(row.Tag.RequiredTagScore),
		strconv.Itoa(row.Tag.ForbiddenTagPenalty),
		strings.Join(row.Tag.MatchedRequired, ";"), strings.Join(row.Tag.MissedRequired, ";"),
		strings.Join(row.Tag.MatchedForbidden, ";"),
		f2(row.Tag.RequiredCompliance), f2(row.Tag.ForbiddenViolationRate),
		action, text, boolCell(hasFmt),
		f2(row.Combined),
		strings.Join(row.Cat.ReasonsUser, " | "), strings.Join(row.Cat.ReasonsDebug, " | "),
		strings.Join(row.Cat.MatchedKeywords, " | "),
		row.Err,
	}
}

// ParseActText splits an [ACT]...[/ACT][TEXT]...[/TEXT] response into
// its action and spoken parts. ok reports whether both markers were
// present; callers fall back to the raw response when they were not.
func ParseActText(response string) (action, text string, ok bool) {
	action = between(response, "[ACT]", "[/ACT]")
	text = between(response, "[TEXT]", "[/TEXT]")
	return action, text, action != "" && text != ""
}

func between(s, openTag, closeTag string) string {
	start := strings.Index(s, openTag)
	if start < 0 {
		return ""
	}
	rest := s[start+len(openTag):]
	end := strings.Index(rest, closeTag)
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

func boolCell(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func f1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
