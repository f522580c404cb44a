package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"niko-backend/internal/models"
	"niko-backend/internal/prompts"
)

func completionJSON(content string) string {
	resp := map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "llama-3.3-70b-versatile",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]string{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGenerate_Success(t *testing.T) {
	var captured chatCompletionsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path '/chat/completions', got %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer auth header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("Failed to decode upstream request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("  How can I help with your wallet?  ")))
	}))
	defer server.Close()

	svc := NewGroqService("test-key", server.URL, "llama-3.3-70b-versatile", 0.7, 1000, 2)

	reply, err := svc.Generate(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "How do I top up?"},
	}, "user-1")
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if reply != "How can I help with your wallet?" {
		t.Errorf("Expected trimmed reply, got %q", reply)
	}

	if captured.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Expected configured model in request, got %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("Expected 2 messages (system + user), got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != prompts.SystemPrompt {
		t.Error("Expected the system prompt as the first message")
	}
	if captured.Messages[1].Content != "How do I top up?" {
		t.Errorf("Expected user message forwarded, got %q", captured.Messages[1].Content)
	}
	if captured.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %v", captured.Temperature)
	}
	if captured.MaxTokens != 1000 {
		t.Errorf("Expected max_tokens 1000, got %d", captured.MaxTokens)
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	svc := NewGroqService("", "http://localhost:1", "m", 0.7, 100, 1)

	_, err := svc.Generate(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "hi"},
	}, "user-1")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("Expected ErrAPIKeyMissing, got %v", err)
	}
}

func TestGenerate_EmptyMessages(t *testing.T) {
	svc := NewGroqService("key", "http://localhost:1", "m", 0.7, 100, 1)

	if _, err := svc.Generate(context.Background(), nil, "user-1"); err == nil {
		t.Error("Expected error for empty message list")
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached"}}`))
	}))
	defer server.Close()

	svc := NewGroqService("key", server.URL, "m", 0.7, 100, 1)

	_, err := svc.Generate(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "hi"},
	}, "user-1")
	if err == nil {
		t.Fatal("Expected error for upstream 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("Expected status code in error, got %v", err)
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer server.Close()

	svc := NewGroqService("key", server.URL, "m", 0.7, 100, 1)

	_, err := svc.Generate(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "hi"},
	}, "user-1")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Errorf("Expected empty response error, got %v", err)
	}
}

func TestSummarize_UsesSummaryParameters(t *testing.T) {
	var captured chatCompletionsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(completionJSON("User asked about withdrawals.")))
	}))
	defer server.Close()

	svc := NewGroqService("key", server.URL, "m", 0.7, 1000, 1)

	summary, err := svc.Summarize(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "How long do withdrawals take?"},
		{Role: "assistant", Content: "Up to 24 hours."},
	}, "thread_user-1")
	if err != nil {
		t.Fatalf("Summarize() returned unexpected error: %v", err)
	}
	if summary != "User asked about withdrawals." {
		t.Errorf("Unexpected summary %q", summary)
	}

	if captured.Temperature != 0.3 {
		t.Errorf("Expected summary temperature 0.3, got %v", captured.Temperature)
	}
	if captured.MaxTokens != 300 {
		t.Errorf("Expected summary max_tokens 300, got %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("Expected system + user messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Content != prompts.SummaryPrompt {
		t.Error("Expected the summary prompt as the system message")
	}
	if !strings.Contains(captured.Messages[1].Content, "USER: How long do withdrawals take?") {
		t.Errorf("Expected flattened conversation in prompt, got %q", captured.Messages[1].Content)
	}
	if !strings.Contains(captured.Messages[1].Content, "ASSISTANT: Up to 24 hours.") {
		t.Error("Expected assistant turn in flattened conversation")
	}
}
