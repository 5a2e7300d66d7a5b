package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"property-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"model":    "qwen2.5:1.5b",
			"response": "  Hello there.  ",
			"done":     true,
		})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "qwen2.5:1.5b", 5*time.Second)

	reply, err := provider.Generate(context.Background(), "Say hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", reply, "reply must be trimmed")

	assert.Equal(t, "qwen2.5:1.5b", captured["model"])
	assert.Equal(t, "Say hello", captured["prompt"])
	assert.Equal(t, false, captured["stream"])
}

func TestGenerateWithOptions(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]interface{}{"response": "ok", "done": true})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "default-model", 5*time.Second)

	_, err := provider.Generate(context.Background(), "prompt",
		llm.WithModel("other-model"),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(128),
	)
	require.NoError(t, err)

	assert.Equal(t, "other-model", captured["model"])
	options := captured["options"].(map[string]interface{})
	assert.InDelta(t, 0.2, options["temperature"].(float64), 1e-9)
	assert.EqualValues(t, 128, options["num_predict"])
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "missing", 5*time.Second)

	_, err := provider.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerateUnreachable(t *testing.T) {
	provider := NewOllamaProvider("http://127.0.0.1:1", "model", 500*time.Millisecond)

	_, err := provider.Generate(context.Background(), "prompt")
	require.Error(t, err)
}

func TestGenerateContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "model", 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := provider.Generate(ctx, "prompt")
	require.Error(t, err)
}
