package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/llm/mocks"
	"github.com/homedeck/homedeck/pkg/metrics"
)

func TestClient_Check(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
		ok, msg := client.Check(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "Connected", msg)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
		ok, msg := client.Check(context.Background())
		assert.False(t, ok)
		assert.Equal(t, "Status Code: 503", msg)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient(config.LLMConfig{Host: "http://127.0.0.1:1"}, nil, nil)
		ok, msg := client.Check(context.Background())
		assert.False(t, ok)
		assert.NotEmpty(t, msg)
	})
}

func TestClient_Models(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3:8b"},{"name":"qwen2:7b"}]}`))
	}))
	defer server.Close()

	client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
	models, err := client.Models(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"llama3:8b", "qwen2:7b"}, models)
}

func TestClient_Models_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
		_, err := client.Models(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 500")
	})

	t.Run("invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
		_, err := client.Models(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse tags response")
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient(config.LLMConfig{Host: "http://127.0.0.1:1"}, nil, nil)
		_, err := client.Models(context.Background())
		require.Error(t, err)
	})
}

func TestClient_Generate(t *testing.T) {
	const response = `{"response":"- point one\n- point two\n- point three"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3:8b", req.Model)
		assert.Equal(t, "Summarize this", req.Prompt)
		assert.False(t, req.Stream)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	defer server.Close()

	tracker := metrics.NewTracker()
	client := NewClient(config.LLMConfig{Host: server.URL}, nil, tracker)

	text := client.Generate(context.Background(), "Summarize this", "llama3:8b")
	assert.Equal(t, "- point one\n- point two\n- point three", text)

	payload, err := json.Marshal(generateRequest{Model: "llama3:8b", Prompt: "Summarize this"})
	require.NoError(t, err)
	usage := tracker.Snapshot()
	assert.Equal(t, int64(len(payload)), usage.TxBytes)
	assert.Equal(t, int64(len(response)), usage.RxBytes)
}

func TestClient_Generate_Failures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
		text := client.Generate(context.Background(), "prompt", "llama3:8b")
		assert.Equal(t, "Error generating response: unexpected status 502", text)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient(config.LLMConfig{Host: "http://127.0.0.1:1"}, nil, nil)
		text := client.Generate(context.Background(), "prompt", "llama3:8b")
		assert.Contains(t, text, "Error generating response:")
	})

	t.Run("invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(config.LLMConfig{Host: server.URL}, nil, nil)
		text := client.Generate(context.Background(), "prompt", "llama3:8b")
		assert.Contains(t, text, "Error generating response:")
	})

	t.Run("failure not tracked", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		tracker := metrics.NewTracker()
		client := NewClient(config.LLMConfig{Host: server.URL}, nil, tracker)
		client.Generate(context.Background(), "prompt", "llama3:8b")

		usage := tracker.Snapshot()
		assert.Zero(t, usage.TxBytes)
		assert.Zero(t, usage.RxBytes)
	})
}

func TestClient_GPUs(t *testing.T) {
	t.Run("two gpus", func(t *testing.T) {
		runner := &mocks.RunnerMock{
			RunFunc: func(_ context.Context, _, _, _ string) (string, error) {
				return "GeForce RTX 2080 Ti\nGeForce RTX 2080 Ti\n", nil
			},
		}
		cfg := config.LLMConfig{Host: "http://localhost:11434", GPU: config.GPUConfig{Host: "2080ti", User: "ross"}}
		client := NewClient(cfg, runner, nil)

		gpus := client.GPUs(context.Background())
		assert.Equal(t, []string{"GeForce RTX 2080 Ti", "GeForce RTX 2080 Ti"}, gpus)

		calls := runner.RunCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "ross", calls[0].User)
		assert.Equal(t, "2080ti", calls[0].Host)
		assert.Equal(t, "nvidia-smi --query-gpu=name --format=csv,noheader", calls[0].Command)
	})

	t.Run("runner error", func(t *testing.T) {
		runner := &mocks.RunnerMock{
			RunFunc: func(_ context.Context, _, _, _ string) (string, error) {
				return "", assert.AnError
			},
		}
		cfg := config.LLMConfig{Host: "http://localhost:11434", GPU: config.GPUConfig{Host: "2080ti"}}
		client := NewClient(cfg, runner, nil)
		assert.Empty(t, client.GPUs(context.Background()))
	})

	t.Run("blank output", func(t *testing.T) {
		runner := &mocks.RunnerMock{
			RunFunc: func(_ context.Context, _, _, _ string) (string, error) {
				return "  \n\n", nil
			},
		}
		cfg := config.LLMConfig{Host: "http://localhost:11434", GPU: config.GPUConfig{Host: "2080ti"}}
		client := NewClient(cfg, runner, nil)
		assert.Empty(t, client.GPUs(context.Background()))
	})

	t.Run("no gpu host configured", func(t *testing.T) {
		client := NewClient(config.LLMConfig{Host: "http://localhost:11434"}, nil, nil)
		assert.Empty(t, client.GPUs(context.Background()))
	})
}
