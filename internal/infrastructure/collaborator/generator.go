// Package collaborator talks to the external task-generation and
// risk-analysis service. The service is opaque to the core: a prompt goes
// out, drafts or a text summary come back, and any failure is reported to
// the caller instead of being retried here.
package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Client is an HTTP implementation of ports.TaskGenerator.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Tasks []ports.DraftTask `json:"tasks"`
}

type risksRequest struct {
	Prompt    string `json:"prompt"`
	TaskCount int    `json:"task_count"`
}

type risksResponse struct {
	Summary string `json:"summary"`
}

// GenerateTasks asks the collaborator to break a description into drafts.
func (c *Client) GenerateTasks(ctx context.Context, prompt string) ([]ports.DraftTask, error) {
	var resp generateResponse
	if err := c.post(ctx, "/v1/tasks:generate", generateRequest{Prompt: prompt}, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// AnalyzeRisks asks the collaborator for a free-text risk summary.
func (c *Client) AnalyzeRisks(ctx context.Context, prompt string, taskCount int) (string, error) {
	var resp risksResponse
	if err := c.post(ctx, "/v1/risks:analyze", risksRequest{Prompt: prompt, TaskCount: taskCount}, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", res.StatusCode).Str("path", path).Msg("collaborator returned non-200")
		return fmt.Errorf("collaborator %s: unexpected status %d", path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
