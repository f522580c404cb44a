package models

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// GenerateRequest is the payload sent to POST /api/generate.
type GenerateRequest struct {
	Messages []ChatMessage `json:"messages"`
	UserID   string        `json:"user_id"`
}

// GenerateResponse is the reply from POST /api/generate.
type GenerateResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// SummaryRequest is the payload sent to POST /api/summarize. The caller
// supplies the turns to summarize; the service stores nothing.
type SummaryRequest struct {
	ThreadID string        `json:"thread_id"`
	Messages []ChatMessage `json:"messages"`
	UserID   string        `json:"user_id"`
}

// SummaryResponse is the reply from POST /api/summarize.
type SummaryResponse struct {
	Summary  string `json:"summary"`
	ThreadID string `json:"thread_id"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// HealthResponse is the reply from GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Model   string `json:"model,omitempty"`
	Message string `json:"message,omitempty"`
}
