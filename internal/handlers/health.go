package handlers

import (
	"net/http"

	"niko-backend/internal/models"
)

type HealthHandler struct {
	apiKey string
	model  string
}

func NewHealthHandler(apiKey, model string) *HealthHandler {
	return &HealthHandler{
		apiKey: apiKey,
		model:  model,
	}
}

// Check reports service status and the configured model. A missing API key is
// reported in the body, not via the status code.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.apiKey == "" {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:  "error",
			Message: "API key not configured",
		})
		return
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Model:  h.model,
	})
}
