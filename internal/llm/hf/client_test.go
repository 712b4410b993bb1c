package hf

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"advisor-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("", "test-model")
	c.baseURL = srv.URL + "/models/"
	return c, srv
}

func TestCompleteReturnsGeneratedText(t *testing.T) {
	var gotBody generateRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode([]generateResponse{{GeneratedText: "  build an MVP first  "}})
	})

	text, err := c.Complete(context.Background(), "How do I start?")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "build an MVP first" {
		t.Fatalf("expected trimmed completion, got %q", text)
	}
	if gotBody.Parameters.MaxNewTokens != 300 {
		t.Fatalf("expected max_new_tokens 300, got %d", gotBody.Parameters.MaxNewTokens)
	}
	if gotBody.Parameters.ReturnFullText {
		t.Fatal("expected return_full_text false")
	}
}

func TestCompleteEmbedsPersonaAndUserMessage(t *testing.T) {
	var gotBody generateRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode([]generateResponse{{GeneratedText: "ok"}})
	})

	if _, err := c.Complete(context.Background(), "What about pricing?"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(gotBody.Inputs, "startup mentor") {
		t.Fatalf("expected persona in inputs, got %q", gotBody.Inputs)
	}
	if !strings.Contains(gotBody.Inputs, "User: What about pricing?") {
		t.Fatalf("expected user message in inputs, got %q", gotBody.Inputs)
	}
}

func TestCompleteMapsErrorStatusToUnavailable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(errorResponse{Error: "model loading"})
	})

	_, err := c.Complete(context.Background(), "hello")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCompleteMapsEmptyGenerationToUnavailable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]generateResponse{{GeneratedText: "   "}})
	})

	_, err := c.Complete(context.Background(), "hello")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
