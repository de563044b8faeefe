package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/Glen4687/Resume-Scorer/internal/ai"
)

const (
	providerName = "openai"
	defaultModel = goopenai.GPT4o
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Option customizes the underlying go-openai client.
type Option func(*goopenai.ClientConfig)

// WithBaseURL points the client at a different API root, e.g. a proxy or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *goopenai.ClientConfig) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			cfg.BaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *goopenai.ClientConfig) {
		if client != nil {
			cfg.HTTPClient = client
		}
	}
}

// Client answers ai.Request values with the chat completions endpoint.
type Client struct {
	chat      chatCompleter
	modelName string
}

// New creates a chat completions client. An empty model selects gpt-4o.
func New(apiKey, model string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	cfg := goopenai.DefaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{chat: goopenai.NewClientWithConfig(cfg), modelName: model}, nil
}

// Complete sends the system and user messages and returns the first choice verbatim.
func (c *Client) Complete(ctx context.Context, req ai.Request) (string, error) {
	if c == nil || c.chat == nil {
		return "", errors.New("openai client is not initialized")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model:    c.modelName,
		Messages: messages(req),
	}
	if req.JSON {
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.chat.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", apiError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai api returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errors.New("openai api returned empty response")
	}

	return content, nil
}

func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func messages(req ai.Request) []goopenai.ChatCompletionMessage {
	msgs := make([]goopenai.ChatCompletionMessage, 0, 2)
	if system := strings.TrimSpace(req.System); system != "" {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: system})
	}
	return append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt})
}

func apiError(err error) error {
	callErr := &ai.APICallError{Provider: providerName, Cause: err}

	var apiErr *goopenai.APIError
	var reqErr *goopenai.RequestError
	switch {
	case errors.As(err, &apiErr):
		callErr.StatusCode = apiErr.HTTPStatusCode
		callErr.Message = apiErr.Message
	case errors.As(err, &reqErr):
		callErr.StatusCode = reqErr.HTTPStatusCode
		if reqErr.Err != nil {
			callErr.Message = reqErr.Err.Error()
		}
	default:
		callErr.Message = fmt.Sprintf("create chat completion: %v", err)
	}

	return callErr
}
