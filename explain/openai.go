package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = "You are a patient computer science tutor. Explain graph algorithms " +
	"for a student who is about to watch a step-by-step animation of one. Use short " +
	"markdown sections: idea, how each step works, complexity, and a common pitfall."

// Config configures OpenAI.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAI explains topics through a chat completion endpoint.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAI builds a client. BaseURL, when set, points at any
// OpenAI-compatible server.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoAPIKey
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAI{client: openai.NewClientWithConfig(oc), model: model, timeout: cfg.Timeout}, nil
}

// Model reports the configured model name.
func (o *OpenAI) Model() string { return o.model }

// Explain implements Explainer.
func (o *OpenAI) Explain(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Explain %s.", topic)},
		},
	})
	if err != nil {
		return "", &ServiceError{Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &ServiceError{Op: "chat completion", Err: errors.New("empty response")}
	}

	return resp.Choices[0].Message.Content, nil
}
