package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("%s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

func TestStatusWithoutStore(t *testing.T) {
	s := New(":0", "")
	srv := httptest.NewServer(s.handler())
	defer srv.Close()

	var got map[string]string
	getJSON(t, srv, "/api/status", &got)
	if got["catName"] != "망고" {
		t.Fatalf("nil status callback should fall back to the cat name, got %v", got)
	}
}

func TestStatusWired(t *testing.T) {
	s := New(":0", "망고")
	s.Status = func() (any, error) {
		return map[string]any{"version": "v0.2.0", "latestRun": int64(7)}, nil
	}
	srv := httptest.NewServer(s.handler())
	defer srv.Close()

	var got map[string]any
	getJSON(t, srv, "/api/status", &got)
	if got["version"] != "v0.2.0" || got["latestRun"] != float64(7) {
		t.Fatalf("status callback not served, got %v", got)
	}
}

func TestPlanEndpoint(t *testing.T) {
	s := New(":0", "망고")
	srv := httptest.NewServer(s.handler())
	defer srv.Close()

	body := `{"hour":14,"lastInteractionType":"pet",
		"state":{"hunger":50,"energy":80,"stress":10,"fun":75,"affection":60,"trust":80}}`
	resp, err := srv.Client().Post(srv.URL+"/api/plan", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var got planResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Plan.BehaviorState != "Happy" {
		t.Fatalf("high-trust pet should plan Happy, got %+v", got.Plan)
	}
	if !strings.Contains(got.Prompt, "망고") {
		t.Fatalf("prompt should mention the cat, got %q", got.Prompt)
	}
}

func TestScoreEndpointRejectsEmpty(t *testing.T) {
	s := New(":0", "")
	srv := httptest.NewServer(s.handler())
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/api/score", "application/json",
		strings.NewReader(`{"case":{"hour":14},"response":"  "}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty response should 400, got %d", resp.StatusCode)
	}
}
