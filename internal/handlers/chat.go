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

// generator is the slice of the Groq service the chat handler needs.
type generator interface {
	Generate(ctx context.Context, messages []models.ChatMessage, userID string) (string, error)
}

type ChatHandler struct {
	groqService generator
}

func NewChatHandler(groqService generator) *ChatHandler {
	return &ChatHandler{
		groqService: groqService,
	}
}

// Generate forwards a conversation to the model and returns the next
// assistant turn.
func (h *ChatHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	fields := validateChatRequest(req.Messages, req.UserID)
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	log := logging.GetLogger()
	log.WithField("user_id", req.UserID).Info("Generating response")

	reply, err := h.groqService.Generate(r.Context(), req.Messages, req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrAPIKeyMissing) {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "API key is not configured", r))
			return
		}
		log.WithField("user_id", req.UserID).Errorf("Error generating response: %v", err)
		writeJSON(w, http.StatusOK, models.GenerateResponse{
			Response: "",
			Success:  false,
			Error:    fmt.Sprintf("Error: %s", err.Error()),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		Response: reply,
		Success:  true,
	})
}

// validateChatRequest checks the message list and user id, returning a map of
// field name to problem for the error envelope.
func validateChatRequest(messages []models.ChatMessage, userID string) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(userID) == "" {
		fields["user_id"] = "user_id cannot be empty"
	}
	if len(messages) == 0 {
		fields["messages"] = "messages list cannot be empty"
		return fields
	}
	for i, m := range messages {
		if m.Role != "user" && m.Role != "assistant" {
			fields[fmt.Sprintf("messages[%d].role", i)] = `role must be "user" or "assistant"`
		}
		if strings.TrimSpace(m.Content) == "" {
			fields[fmt.Sprintf("messages[%d].content", i)] = "content cannot be empty"
		}
	}

	return fields
}
