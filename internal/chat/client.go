package chat

import "context"

// Generator produces a completion from a single named model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}
