package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cattalk-v0/internal/bench"
	"cattalk-v0/internal/pet"
	"cattalk-v0/internal/plan"
	"cattalk-v0/internal/prompt"
	"cattalk-v0/internal/score"
)

// Server is the local debug surface: poke the planner and the scorers
// over HTTP without going through a benchmark run.
type Server struct {
	addr    string
	catName string

	// callbacks into the store; nil is allowed and disables /api/rows
	LatestRows func() ([]bench.Row, error)
	Status     func() (any, error)
}

func New(addr, catName string) *Server {
	if catName == "" {
		catName = prompt.DefaultCatName
	}
	return &Server{addr: addr, catName: catName}
}

type planRequest struct {
	Hour        int       `json:"hour"`
	Interaction string    `json:"lastInteractionType"`
	State       pet.State `json:"state"`
}

type planResponse struct {
	Plan    plan.BehaviorPlan `json:"plan"`
	Control score.Control     `json:"control"`
	Prompt  string            `json:"prompt,omitempty"`
}

type scoreRequest struct {
	Case     bench.Case `json:"case"`
	Response string     `json:"response"`
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.handler(),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	return srv.ListenAndServe()
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexHTML)
	})

	mux.HandleFunc("/api/plan", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		var body planRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		st := body.State.Clamped()
		p := plan.Plan(st, body.Hour, body.Interaction)
		ctl := score.BuildControl(st, body.Hour, body.Interaction, p)
		writeJSON(w, planResponse{
			Plan:    p,
			Control: ctl,
			Prompt:  prompt.Build(s.catName, ctl, p, ""),
		})
	})

	mux.HandleFunc("/api/score", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		var body scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(body.Response) == "" {
			http.Error(w, "empty response", http.StatusBadRequest)
			return
		}
		writeJSON(w, bench.ScoreResponse(body.Case, body.Response))
	})

	mux.HandleFunc("/api/rows", func(w http.ResponseWriter, r *http.Request) {
		if s.LatestRows == nil {
			http.Error(w, "no store configured", http.StatusInternalServerError)
			return
		}
		rows, err := s.LatestRows()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, rows)
	})

	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		if s.Status == nil {
			writeJSON(w, map[string]string{"catName": s.catName})
			return
		}
		st, err := s.Status()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, st)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>catdev</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #0b0b0c; color: #eaeaea; }
    .wrap { display: grid; grid-template-columns: 420px 1fr; height: 100vh; }
    .side { border-right: 1px solid #222; padding: 16px; overflow: auto; background: #0f0f11; }
    .main { padding: 16px; overflow: auto; }
    label { display: block; font-size: 12px; opacity: 0.8; margin-top: 10px; }
    input, select, textarea { width: 100%; background:#101012; border:1px solid #2b2b33; border-radius:8px; padding:8px; color:#eaeaea; box-sizing: border-box; }
    textarea { min-height: 70px; }
    button { background:#1b1b20; border:1px solid #2b2b33; color:#eaeaea; border-radius:10px; padding:8px 14px; cursor:pointer; margin-top: 14px; }
    button:hover { background:#24242a; }
    pre { white-space: pre-wrap; font-size: 12px; opacity: 0.95; }
    h3 { font-size: 13px; margin: 18px 0 4px 0; opacity: 0.9; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="side">
      <h3>state</h3>
      <label>hunger <input id="hunger" type="number" value="50" /></label>
      <label>energy <input id="energy" type="number" value="50" /></label>
      <label>stress <input id="stress" type="number" value="20" /></label>
      <label>fun <input id="fun" type="number" value="50" /></label>
      <label>affection <input id="affection" type="number" value="50" /></label>
      <label>trust <input id="trust" type="number" value="50" /></label>
      <label>ageDays <input id="ageDays" type="number" value="200" /></label>
      <h3>context</h3>
      <label>hour <input id="hour" type="number" value="14" /></label>
      <label>last interaction
        <select id="last">
          <option>none</option><option>pet</option><option>play</option>
          <option>talk</option><option>feed</option>
        </select>
      </label>
      <button id="planBtn">plan</button>
      <h3>score a response</h3>
      <label>user text <input id="userText" value="밥 먹었어?" /></label>
      <label>response <textarea id="response">야옹! (꼬리를 살랑이며 다가간다)</textarea></label>
      <button id="scoreBtn">score</button>
    </div>
    <div class="main"><pre id="out">(결과가 여기 표시됩니다)</pre></div>
  </div>
<script>
  const out = document.getElementById('out');
  const num = id => parseFloat(document.getElementById(id).value) || 0;

  function state(){
    return { hunger:num('hunger'), energy:num('energy'), stress:num('stress'),
      fun:num('fun'), affection:num('affection'), trust:num('trust'),
      ageDays:num('ageDays') };
  }

  async function post(url, body){
    const res = await fetch(url, {method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify(body)});
    out.textContent = await res.text();
  }

  document.getElementById('planBtn').addEventListener('click', ()=>{
    post('/api/plan', { hour:num('hour'), lastInteractionType:document.getElementById('last').value, state:state() });
  });

  document.getElementById('scoreBtn').addEventListener('click', ()=>{
    const s = state();
    post('/api/score', { case: Object.assign({}, s, {
        caseKey:'adhoc', hour:num('hour'),
        lastInteractionType:document.getElementById('last').value,
        userText:document.getElementById('userText').value }),
      response: document.getElementById('response').value });
  });
</script>
</body>
</html>`
