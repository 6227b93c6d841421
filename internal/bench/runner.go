package bench

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"cattalk-v0/internal/ollama"
	"cattalk-v0/internal/pet"
	"cattalk-v0/internal/plan"
	"cattalk-v0/internal/prompt"
	"cattalk-v0/internal/score"
)

// Runner fans a suite out over models × cases, generates one response
// per pair and grades it with both scorers. Scoring itself is pure; the
// only shared state across workers is the rate limiter in front of the
// model server.
type Runner struct {
	Client  *ollama.Client
	Store   Store // optional
	Workers int
	// Limiter throttles generation requests across all workers.
	Limiter *rate.Limiter
}

func NewRunner(client *ollama.Client, workers int, rps float64) *Runner {
	if workers < 1 {
		workers = 1
	}
	if rps <= 0 {
		rps = 1
	}
	return &Runner{
		Client:  client,
		Workers: workers,
		Limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// stateOf rebuilds the pet state a case describes.
func stateOf(c Case) pet.State {
	return pet.State{
		Hunger:    c.Hunger,
		Energy:    c.Energy,
		Stress:    c.Stress,
		Fun:       c.Fun,
		Affection: c.Affect,
		Trust:     c.Trust,
		AgeDays:   c.AgeDays,
	}.Clamped()
}

// Prepare runs the planner for a case and flattens the matching control.
// Exposed separately so a case can be inspected without generating.
func Prepare(c Case) (plan.BehaviorPlan, score.Control) {
	st := stateOf(c)
	p := plan.Plan(st, c.Hour, c.LastType)
	ctl := score.BuildControl(st, c.Hour, c.LastType, p)
	ctl.MemoryRecentSummary = c.MemoryRecentSummary
	ctl.MemoryHabit = c.MemoryHabit
	return p, ctl
}

// ScoreResponse grades an already-generated response for a case. This is
// the offline path: no model server involved.
func ScoreResponse(c Case, response string) Row {
	p, ctl := Prepare(c)
	cat := score.ScoreCatLikeness(ctl, response)
	tag := score.ScoreTags(response, p.RequiredTags, p.ForbiddenTags)
	return Row{
		CaseKey:   c.Key,
		CreatedAt: time.Now(),
		Control:   ctl,
		Plan:      p,
		UserText:  c.UserText,
		Response:  response,
		Cat:       cat,
		Tag:       tag,
		Combined:  float64(cat.Total) + float64(tag.TagScore),
	}
}

// Run executes the whole suite. Rows come back grouped per model in
// case order; generation failures land as rows with Err set so a run
// summary still accounts for every pair.
func (r *Runner) Run(ctx context.Context, s Suite) ([]Row, error) {
	type job struct {
		model string
		idx   int
	}

	jobs := make(chan job)
	results := make([]Row, len(s.Models)*len(s.Cases))

	var wg sync.WaitGroup
	for w := 0; w < r.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c := s.Cases[j.idx]
				row := r.runOne(ctx, s.CatName, j.model, c)
				results[slot(s, j.model, j.idx)] = row
			}
		}()
	}

	for _, model := range s.Models {
		for i := range s.Cases {
			select {
			case <-ctx.Done():
				close(jobs)
				wg.Wait()
				return nil, ctx.Err()
			case jobs <- job{model: model, idx: i}:
			}
		}
	}
	close(jobs)
	wg.Wait()

	if r.Store != nil {
		for _, row := range results {
			if err := r.Store.SaveRow(row); err != nil {
				log.Printf("benchstore: save row %s/%s: %v", row.Model, row.CaseKey, err)
			}
		}
	}
	return results, nil
}

func slot(s Suite, model string, caseIdx int) int {
	for mi, m := range s.Models {
		if m == model {
			return mi*len(s.Cases) + caseIdx
		}
	}
	return 0
}

func (r *Runner) runOne(ctx context.Context, catName, model string, c Case) Row {
	p, ctl := Prepare(c)

	var text string
	var genErr error
	if err := r.Limiter.Wait(ctx); err != nil {
		genErr = err
	} else {
		text, genErr = r.Client.Generate(ctx, model, prompt.Build(catName, ctl, p, c.UserText))
	}

	cat := score.ScoreCatLikeness(ctl, text)
	tag := score.ScoreTags(text, p.RequiredTags, p.ForbiddenTags)

	row := Row{
		Model:     model,
		CaseKey:   c.Key,
		CreatedAt: time.Now(),
		Control:   ctl,
		Plan:      p,
		UserText:  c.UserText,
		Response:  text,
		Cat:       cat,
		Tag:       tag,
		Combined:  float64(cat.Total) + float64(tag.TagScore),
	}
	if genErr != nil {
		row.Err = genErr.Error()
	}
	return row
}
