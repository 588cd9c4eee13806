// Package llm talks to a locally hosted Ollama server.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/metrics"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner executes a command on a remote host over ssh
type Runner interface {
	Run(ctx context.Context, user, host, command string) (string, error)
}

// gpuQuery lists installed gpu names, one per line
const gpuQuery = "nvidia-smi --query-gpu=name --format=csv,noheader"

// Client calls the Ollama http api and collects gpu inventory from the
// gpu box over ssh. All methods are safe for concurrent use.
type Client struct {
	host            string
	httpClient      *http.Client
	checkTimeout    time.Duration
	generateTimeout time.Duration
	gpuHost         string
	gpuUser         string
	runner          Runner
	tracker         *metrics.Tracker
}

// NewClient creates a client for the configured Ollama host. The runner may
// be nil when no gpu host is configured, GPUs then reports an empty inventory.
func NewClient(cfg config.LLMConfig, runner Runner, tracker *metrics.Tracker) *Client {
	if cfg.CheckTimeout == 0 {
		cfg.CheckTimeout = 5 * time.Second
	}
	if cfg.GenerateTimeout == 0 {
		cfg.GenerateTimeout = 120 * time.Second
	}

	return &Client{
		host:            strings.TrimRight(cfg.Host, "/"),
		httpClient:      &http.Client{},
		checkTimeout:    cfg.CheckTimeout,
		generateTimeout: cfg.GenerateTimeout,
		gpuHost:         cfg.GPU.Host,
		gpuUser:         cfg.GPU.User,
		runner:          runner,
		tracker:         tracker,
	}
}

// Check reports whether the Ollama server answers its tags endpoint.
// The second value is a short status line meant for display.
func (c *Client) Check(ctx context.Context) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", http.NoBody)
	if err != nil {
		return false, err.Error()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Sprintf("Status Code: %d", resp.StatusCode)
	}
	return true, "Connected"
}

// Models returns the names of models available on the server
func (c *Client) Models(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create tags request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list models: unexpected status %d", resp.StatusCode)
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("parse tags response: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// generateRequest is the Ollama generate payload
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Generate asks model to complete prompt and returns the response text.
// Failures never surface as errors, the returned string carries the problem
// so callers can show it in place of a summary.
func (c *Client) Generate(ctx context.Context, prompt, model string) string {
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	payload, err := json.Marshal(generateRequest{Model: model, Prompt: prompt})
	if err != nil {
		return fmt.Sprintf("Error generating response: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return fmt.Sprintf("Error generating response: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	lgr.Printf("[INFO] sending generate request to %s, model %s", c.host, model)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		lgr.Printf("[WARN] generate failed for model %s: %v", model, err)
		return fmt.Sprintf("Error generating response: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		lgr.Printf("[WARN] generate returned status %d for model %s: %s", resp.StatusCode, model, string(b))
		return fmt.Sprintf("Error generating response: unexpected status %d", resp.StatusCode)
	}

	c.tracker.AddTx(int64(len(payload)))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Error generating response: %v", err)
	}
	c.tracker.AddRx(int64(len(body)))

	var gen struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &gen); err != nil {
		return fmt.Sprintf("Error generating response: %v", err)
	}
	return gen.Response
}

// GPUs returns gpu names installed on the gpu host, empty when the host is
// unreachable, answers garbage or is not configured at all
func (c *Client) GPUs(ctx context.Context) []string {
	if c.runner == nil || c.gpuHost == "" {
		return nil
	}

	out, err := c.runner.Run(ctx, c.gpuUser, c.gpuHost, gpuQuery)
	if err != nil {
		lgr.Printf("[WARN] gpu query on %s failed: %v", c.gpuHost, err)
		return nil
	}

	var gpus []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			gpus = append(gpus, line)
		}
	}
	return gpus
}
