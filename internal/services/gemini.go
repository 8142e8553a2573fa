package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"campusai-backend/internal/metrics"
)

var (
	errMissingAPIKey = errors.New("Gemini API key is missing")
	errClosed        = errors.New("Gemini service is closed")
)

// GeminiService is the only holder of the Gemini client. The client is built
// on first use and is read-only afterwards, so one instance is shared by all
// requests.
type GeminiService struct {
	apiKey      string
	modelName   string
	temperature float32

	once    sync.Once
	client  *genai.Client
	model   *genai.GenerativeModel
	initErr error
}

func NewGeminiService(apiKey, modelName string, temperature float32) *GeminiService {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY is not set; AI endpoints will fail until it is configured")
	}

	return &GeminiService{
		apiKey:      apiKey,
		modelName:   modelName,
		temperature: temperature,
	}
}

// Enabled reports whether a credential is configured.
func (s *GeminiService) Enabled() bool {
	return s != nil && s.apiKey != ""
}

// Close releases the client. It waits for an in-progress initialization, and
// a service closed before first use never builds a client.
func (s *GeminiService) Close() {
	s.once.Do(func() {
		s.initErr = &GenerationError{Reason: ReasonClient, Err: errClosed}
	})
	if s.client != nil {
		s.client.Close()
	}
}

func (s *GeminiService) init() {
	if s.apiKey == "" {
		s.initErr = &GenerationError{Reason: ReasonMissingCredential, Err: errMissingAPIKey}
		return
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKey))
	if err != nil {
		s.initErr = &GenerationError{Reason: ReasonClient, Err: fmt.Errorf("failed to create Gemini client: %w", err)}
		return
	}

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	model.SetTopP(0.95)

	s.client = client
	s.model = model
	log.WithField("model", s.modelName).Info("✓ Gemini client initialized")
}

// GenerateContent sends one prompt and returns the text of the reply. Every
// failure is reported as a *GenerationError.
func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.once.Do(s.init)
	if s.initErr != nil {
		return "", s.fail(s.initErr)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", s.fail(&GenerationError{Reason: ReasonProvider, Err: fmt.Errorf("Gemini API error: %w", err)})
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Warnf("Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", s.fail(&GenerationError{Reason: ReasonEmptyResponse, Err: errors.New("Gemini returned empty text")})
	}

	return text, nil
}

func (s *GeminiService) fail(err error) error {
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		metrics.GatewayErrorsTotal.WithLabelValues(string(gerr.Reason)).Inc()
		log.WithError(gerr.Err).WithField("reason", gerr.Reason).Error("Error generating content")
		return gerr
	}
	return err
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
