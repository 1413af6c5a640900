package infrastructure

import (
	"context"
)

// Message represents a message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionRequest is a single, non-streaming chat completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
	// JSONMode forces the model to answer with a syntactically valid JSON object.
	JSONMode bool
}

// AIClient defines the completion API used by the recommendation services.
type AIClient interface {
	// Complete sends the request and returns the content of the first choice.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
