package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"niko-backend/internal/logging"
	"niko-backend/internal/models"
	"niko-backend/internal/services"
)

// maxSummaryMessages caps how many turns one summary request may carry.
const maxSummaryMessages = 10

// summarizer is the slice of the Groq service the summary handler needs.
type summarizer interface {
	Summarize(ctx context.Context, messages []models.ChatMessage, threadID string) (string, error)
}

type SummaryHandler struct {
	groqService summarizer
}

func NewSummaryHandler(groqService summarizer) *SummaryHandler {
	return &SummaryHandler{
		groqService: groqService,
	}
}

// Summarize condenses the caller-supplied turns into a short summary. The
// caller owns the history; nothing is stored here.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	fields := validateChatRequest(req.Messages, req.UserID)
	if strings.TrimSpace(req.ThreadID) == "" {
		fields["thread_id"] = "thread_id cannot be empty"
	}
	if len(req.Messages) > maxSummaryMessages {
		fields["messages"] = fmt.Sprintf("messages list cannot exceed %d messages", maxSummaryMessages)
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	log := logging.GetLogger()
	log.WithField("thread_id", req.ThreadID).WithField("user_id", req.UserID).Info("Generating summary")

	summary, err := h.groqService.Summarize(r.Context(), req.Messages, req.ThreadID)
	if err != nil {
		if errors.Is(err, services.ErrAPIKeyMissing) {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "API key is not configured", r))
			return
		}
		log.WithField("thread_id", req.ThreadID).Errorf("Error generating summary: %v", err)
		writeJSON(w, http.StatusOK, models.SummaryResponse{
			Summary:  "",
			ThreadID: req.ThreadID,
			Success:  false,
			Error:    fmt.Sprintf("Error: %s", err.Error()),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.SummaryResponse{
		Summary:  summary,
		ThreadID: req.ThreadID,
		Success:  true,
	})
}
