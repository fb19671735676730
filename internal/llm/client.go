package llm

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client is a client for an OpenAI-compatible chat completions API.
type Client struct {
	BaseURL string
	Model   string
	client  openai.Client
}

// NewClient creates a new LLM client. The API key is sent as a bearer token on
// every request. Extra SDK options (retries, timeouts, HTTP client) are applied last.
func NewClient(baseURL, apiKey, model string, opts ...option.RequestOption) *Client {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &Client{
		BaseURL: baseURL,
		Model:   model,
		client:  openai.NewClient(reqOpts...),
	}
}

// Complete sends prompt as a single user message using the client's default
// model and the provider's default generation options.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
}

// CompleteWithOptions sends prompt with explicit model, temperature, token limit
// and message role. Options are validated before any request is made.
func (c *Client) CompleteWithOptions(ctx context.Context, prompt string, opts ChatOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	return c.complete(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(opts.Model),
		Messages:    []openai.ChatCompletionMessageParamUnion{promptMessage(opts.Role, prompt)},
		Temperature: openai.Float(opts.Temperature),
		MaxTokens:   openai.Int(int64(opts.MaxTokens)),
	})
}

func promptMessage(role, prompt string) openai.ChatCompletionMessageParamUnion {
	if role == RoleSystem {
		return openai.SystemMessage(prompt)
	}
	return openai.UserMessage(prompt)
}

func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Message.Content, nil
}

// StreamComplete sends prompt as a streaming chat completion and calls callback
// for every non-empty content delta, in order.
func (c *Client) StreamComplete(ctx context.Context, prompt string, callback func(chunk string) error) error {
	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	defer func() {
		_ = stream.Close()
	}()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}

		content := chunk.Choices[0].Delta.Content
		if content != "" {
			if err := callback(content); err != nil {
				return fmt.Errorf("callback error: %w", err)
			}
		}

		if chunk.Choices[0].FinishReason != "" {
			break
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}

	return nil
}

// Ping checks that the API is reachable and the default model is known to it.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Models.Get(ctx, c.Model); err != nil {
		return fmt.Errorf("failed to retrieve model %s: %w", c.Model, err)
	}
	return nil
}
