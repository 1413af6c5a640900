package infrastructure

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"iri-guide/backend/internal/config"
)

// ErrEmptyCompletion is returned when the API answers without any choice content.
var ErrEmptyCompletion = errors.New("completion has no content")

// openAIClient is the go-openai implementation of AIClient.
type openAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a client for the chat completion API.
// An empty API key is accepted; calls then fail upstream and callers fall back.
func NewOpenAIClient(cfg config.OpenAIConfig, httpClient *http.Client) AIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}
	return &openAIClient{client: openai.NewClientWithConfig(clientConfig)}
}

// Complete runs one chat completion and returns the first choice's content.
func (c *openAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", errors.Wrapf(err, "create chat completion with model %s", req.Model)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
