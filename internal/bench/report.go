package bench

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var reportStyles = struct {
	title  lipgloss.Style
	header lipgloss.Style
	row    lipgloss.Style
	winner lipgloss.Style
	errs   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#AFAFAF")),

	row: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D0D0D0")),

	winner: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),

	errs: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")),
}

// ModelSummary aggregates every row of one model.
type ModelSummary struct {
	Model        string  `json:"model"`
	Cases        int     `json:"cases"`
	Errors       int     `json:"errors"`
	MeanCombined float64 `json:"meanCombined"`
	MeanCat      float64 `json:"meanCat"`
	MeanTag      float64 `json:"meanTag"`
	Compliance   float64 `json:"meanCompliance"`
	Violation    float64 `json:"meanViolation"`
}

// Summarize folds rows into one summary per model, best combined score
// first.
func Summarize(rows []Row) []ModelSummary {
	byModel := map[string]*ModelSummary{}
	var order []string
	for _, row := range rows {
		s, ok := byModel[row.Model]
		if !ok {
			s = &ModelSummary{Model: row.Model}
			byModel[row.Model] = s
			order = append(order, row.Model)
		}
		s.Cases++
		if row.Err != "" {
			s.Errors++
		}
		s.MeanCombined += row.Combined
		s.MeanCat += float64(row.Cat.Total)
		s.MeanTag += float64(row.Tag.TagScore)
		s.Compliance += row.Tag.RequiredCompliance
		s.Violation += row.Tag.ForbiddenViolationRate
	}

	out := make([]ModelSummary, 0, len(order))
	for _, m := range order {
		s := byModel[m]
		n := float64(s.Cases)
		s.MeanCombined /= n
		s.MeanCat /= n
		s.MeanTag /= n
		s.Compliance /= n
		s.Violation /= n
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeanCombined > out[j].MeanCombined
	})
	return out
}

// Report renders the per-model comparison table for the terminal.
func Report(suiteName string, rows []Row) string {
	sums := Summarize(rows)

	var b strings.Builder
	b.WriteString(reportStyles.title.Render("benchmark: "+suiteName) + "\n\n")
	b.WriteString(reportStyles.header.Render(fmt.Sprintf(
		"%-28s %8s %8s %8s %6s %6s %6s",
		"model", "combined", "cat", "tag", "comp", "viol", "err")) + "\n")

	for i, s := range sums {
		style := reportStyles.row
		if i == 0 && len(sums) > 1 {
			style = reportStyles.winner
		}
		line := fmt.Sprintf("%-28s %8.1f %8.1f %8.1f %6.2f %6.2f %6d",
			s.Model, s.MeanCombined, s.MeanCat, s.MeanTag,
			s.Compliance, s.Violation, s.Errors)
		b.WriteString(style.Render(line) + "\n")
	}

	if errs := failedRows(rows); len(errs) > 0 {
		b.WriteString("\n" + reportStyles.errs.Render(
			fmt.Sprintf("%d generation failures:", len(errs))) + "\n")
		for _, row := range errs {
			b.WriteString(reportStyles.errs.Render(
				fmt.Sprintf("  %s / %s: %s", row.Model, row.CaseKey, row.Err)) + "\n")
		}
	}
	return b.String()
}

func failedRows(rows []Row) []Row {
	var out []Row
	for _, row := range rows {
		if row.Err != "" {
			out = append(out, row)
		}
	}
	return out
}
