package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"niko-backend/internal/logging"
	"niko-backend/internal/models"
	"niko-backend/internal/prompts"
)

// ErrAPIKeyMissing is returned when the service is asked to call Groq without
// a configured API key.
var ErrAPIKeyMissing = errors.New("API key is not configured")

// GroqService calls Groq's OpenAI-compatible chat completions endpoint.
type GroqService struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	rateChan    chan struct{} // caps concurrent upstream calls
}

func NewGroqService(apiKey, baseURL, model string, temperature float64, maxTokens, concurrentReqs int) *GroqService {
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	if concurrentReqs < 1 {
		concurrentReqs = 1
	}

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GroqService{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		rateChan: rateChan,
	}
}

// Model reports the configured model name (used by /health).
func (s *GroqService) Model() string {
	return s.model
}

// acquireRate blocks until an upstream slot is available.
func (s *GroqService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Minute):
		return fmt.Errorf("timeout waiting for Groq rate slot")
	}
}

func (s *GroqService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate prepends the support system prompt and asks the model for the next
// assistant turn.
func (s *GroqService) Generate(ctx context.Context, messages []models.ChatMessage, userID string) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("messages list cannot be empty")
	}

	formatted := make([]message, 0, len(messages)+1)
	formatted = append(formatted, message{Role: "system", Content: prompts.SystemPrompt})
	for _, m := range messages {
		formatted = append(formatted, message{Role: m.Role, Content: m.Content})
	}

	log := logging.GetLogger()
	log.WithField("user_id", userID).Debugf("Calling Groq with %d messages", len(formatted))

	return s.complete(ctx, formatted, s.temperature, s.maxTokens)
}

// Summarize flattens the supplied turns and asks the model for a short
// conversation summary. Uses a lower fixed temperature so summaries stay
// consistent.
func (s *GroqService) Summarize(ctx context.Context, messages []models.ChatMessage, threadID string) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("messages list cannot be empty")
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(m.Role), m.Content))
	}

	userPrompt := fmt.Sprintf(
		"Please summarize the following conversation thread.\n\nConversation:\n%s\n\n%s",
		strings.Join(lines, "\n"), prompts.SummaryPrompt,
	)

	formatted := []message{
		{Role: "system", Content: prompts.SummaryPrompt},
		{Role: "user", Content: userPrompt},
	}

	log := logging.GetLogger()
	log.WithField("thread_id", threadID).Debugf("Summarizing %d messages", len(messages))

	return s.complete(ctx, formatted, 0.3, 300)
}

// --- chat completions wire types ---

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// complete performs one chat completions call and returns the first choice.
func (s *GroqService) complete(ctx context.Context, messages []message, temperature float64, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	reqBody := chatCompletionsRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", s.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("groq http %d: %v", resp.StatusCode, errMap)
	}

	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("groq response decode failed: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("empty response from Groq API")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("empty response from Groq API")
	}
	return content, nil
}
