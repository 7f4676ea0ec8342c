package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the first choice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatCompletionRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "model-a", req.Model)
			assert.Len(t, req.Messages, 2)

			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":" hello there "}}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-key")
		text, err := c.Complete(ctx, "model-a", []Message{
			{Role: "system", Content: "persona"},
			{Role: "user", Content: "hi"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "hello there", text)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "")
		_, err := c.Complete(ctx, "model-a", []Message{{Role: "user", Content: "hi"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "slow down")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "")
		_, err := c.Complete(ctx, "model-a", []Message{{Role: "user", Content: "hi"}})
		assert.Error(t, err)
	})

	t.Run("blank answer is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  "}}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "")
		_, err := c.Complete(ctx, "model-a", []Message{{Role: "user", Content: "hi"}})
		assert.Error(t, err)
	})
}
