package services

import (
	"context"
	"errors"
	"time"

	"campusai-backend/internal/logging"
	"campusai-backend/internal/metrics"
	"campusai-backend/internal/models"
)

// ContentGenerator turns a prompt into model text. *GeminiService is the
// production implementation.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type AssistantService struct {
	gateway ContentGenerator
}

func NewAssistantService(gateway ContentGenerator) *AssistantService {
	return &AssistantService{gateway: gateway}
}

// Run validates the task, renders its prompt and makes exactly one gateway
// call. Invalid tasks never reach the gateway.
func (s *AssistantService) Run(ctx context.Context, task models.Task) (string, error) {
	kind := string(task.Kind())
	logger := logging.FromContext(ctx).WithField("task", kind)

	if err := ValidateTask(task); err != nil {
		metrics.AIRequestsTotal.WithLabelValues(kind, "invalid").Inc()
		logger.WithError(err).Debug("rejected invalid task")
		return "", err
	}

	prompt, err := BuildPrompt(task)
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues(kind, "invalid").Inc()
		return "", &ValidationError{Message: "Unsupported task"}
	}

	// The provider call outlives a disconnecting caller; its result is simply dropped.
	start := time.Now()
	text, err := s.gateway.GenerateContent(context.WithoutCancel(ctx), prompt)
	elapsed := time.Since(start)
	metrics.AIGenerationDurationSeconds.WithLabelValues(kind).Observe(elapsed.Seconds())

	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues(kind, "failed").Inc()
		logger.WithError(err).WithField("duration", elapsed).Error("AI task failed")

		var gerr *GenerationError
		if errors.As(err, &gerr) {
			return "", gerr
		}
		return "", &GenerationError{Reason: ReasonProvider, Err: err}
	}

	metrics.AIRequestsTotal.WithLabelValues(kind, "ok").Inc()
	logger.WithField("duration", elapsed).Info("AI task completed")
	return text, nil
}
