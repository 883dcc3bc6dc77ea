package chat

import (
	"context"
	"log"
	"time"
)

const (
	// FallbackResponse is returned whenever no model produces text. The
	// chat widget always gets a plain answer, never an error.
	FallbackResponse = "Sorry, our kitchen assistant is taking a break right now. Please try again in a moment."

	emptyMessageResponse = "Please send a message."

	attemptTimeout = 10 * time.Second
)

// DefaultModels is the fallback chain, tried in order until one answers.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-1.5-flash",
	"gemini-1.0-pro",
	"gemini-pro",
}

type Service struct {
	client Generator
	models []string
}

func NewService(client Generator, models []string) *Service {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Service{client: client, models: models}
}

// Chat relays the user message to the model chain and returns whatever
// text comes back. It never fails: model errors are logged server-side
// and the caller gets the fallback string.
func (s *Service) Chat(ctx context.Context, message string) string {
	if message == "" {
		return emptyMessageResponse
	}

	prompt := BuildMenuPrompt(message)

	for _, model := range s.models {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		text, err := s.client.Generate(attemptCtx, model, prompt)
		cancel()

		if err != nil {
			log.Printf("gemini error with model %s: %v", model, err)
			continue
		}
		if text != "" {
			return text
		}
	}

	return FallbackResponse
}
