package handlers

import (
	"context"
	"net/http"

	"campusai-backend/internal/models"
)

type assistantRunner interface {
	Run(ctx context.Context, task models.Task) (string, error)
}

// AIHandler exposes one endpoint per task kind.
type AIHandler struct {
	assistant assistantRunner
}

func NewAIHandler(assistant assistantRunner) *AIHandler {
	return &AIHandler{assistant: assistant}
}

func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	runTask[models.GenerateRequest](h, w, r)
}

func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	runTask[models.SummarizeRequest](h, w, r)
}

func (h *AIHandler) Viva(w http.ResponseWriter, r *http.Request) {
	runTask[models.VivaRequest](h, w, r)
}

func (h *AIHandler) Grade(w http.ResponseWriter, r *http.Request) {
	runTask[models.GradeRequest](h, w, r)
}

func (h *AIHandler) Simplify(w http.ResponseWriter, r *http.Request) {
	runTask[models.SimplifyRequest](h, w, r)
}

func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	runTask[models.ChatRequest](h, w, r)
}

func runTask[T models.Task](h *AIHandler, w http.ResponseWriter, r *http.Request) {
	var req T
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", r))
		return
	}

	text, err := h.assistant.Run(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Data: text})
}
