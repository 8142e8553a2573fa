package services

import (
	"context"
	"sync"
)

type stubGateway struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	reply   string
	echo    bool
	err     error
}

func (s *stubGateway) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	if s.echo {
		return prompt, nil
	}
	return s.reply, nil
}

func (s *stubGateway) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
