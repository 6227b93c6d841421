// Package ollama is the thin HTTP client for the local model server the
// benchmark runner talks to. Generation happens entirely outside the
// core: the runner sends a prompt, gets text back, and both scorers
// grade that text offline.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Chat sends one non-streaming chat request and returns the reply text.
func (c *Client) Chat(ctx context.Context, model string, messages []Message) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errors.New("ollama chat http status: " + resp.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Message.Content, nil
}

// Generate is the single-prompt convenience used by the benchmark
// runner: one user message, one utterance back.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	return c.Chat(ctx, model, []Message{{Role: "user", Content: prompt}})
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama status %d", resp.StatusCode)
	}
	return nil
}

// ListModels returns the set of locally installed model names.
func (c *Client) ListModels(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, len(parsed.Models))
	for _, m := range parsed.Models {
		name := strings.TrimSpace(m.Name)
		if name != "" {
			out[name] = struct{}{}
		}
	}
	return out, nil
}

// MissingModels reports which of the requested models are not installed.
func (c *Client) MissingModels(ctx context.Context, want []string) ([]string, error) {
	have, err := c.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, m := range want {
		if _, ok := have[m]; !ok {
			missing = append(missing, m)
		}
	}
	return missing, nil
}
