package handlers

import (
	"net/http"

	"campusai-backend/internal/models"
)

// Health never touches the model gateway.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Message: "Server is running"})
}
