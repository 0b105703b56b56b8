package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "carevo/internal/errors"
)

func geminiResponse(text string) string {
	payload := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": []map[string]string{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestClient_Complete(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiResponse("You could explore data science.")))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: srv.URL,
	})

	completion, err := client.Complete(context.Background(), "quiz answers")

	assert.NoError(t, err)
	assert.Equal(t, "You could explore data science.", completion)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "quiz answers", gotBody.Contents[0].Parts[0].Text)
}

func TestClient_CompleteStripsCodeFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiResponse("```json\n{\"career\": \"engineer\"}\n```")))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	completion, err := client.Complete(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, `{"career": "engineer"}`, completion)
}

func TestClient_CompleteProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, apperrors.ErrAIProvider)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_CompleteEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, apperrors.ErrAIProvider)
}

func TestClient_CompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(geminiResponse("too late")))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		APIKey:  "k",
		Model:   "m",
		BaseURL: srv.URL,
		Timeout: 50 * time.Millisecond,
	})
	_, err := client.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, apperrors.ErrAITimeout)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain text", in: "hello", expected: "hello"},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "bare fence", in: "```\nsome text\n```", expected: "some text"},
		{name: "surrounding whitespace", in: "  reply  \n", expected: "reply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.in))
		})
	}
}
