package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks genai-prompt/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService genai-prompt/internal/service ChatService

import (
	"context"

	"genai-prompt/internal/contextutil"
	"genai-prompt/internal/llm"
)

// LLMClient is an interface for interacting with a chat-completion API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Complete sends a prompt with the client's default generation options.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteWithOptions sends a prompt with explicit generation options.
	CompleteWithOptions(ctx context.Context, prompt string, opts llm.ChatOptions) (string, error)
	// StreamComplete sends a prompt and streams the reply via callback.
	StreamComplete(ctx context.Context, prompt string, callback func(chunk string) error) error
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Reply string
}

// ChatService forwards free-text messages to the model.
type ChatService interface {
	// ProcessChat sends the message verbatim and returns the reply unmodified.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	// StreamChat sends the message verbatim and streams the reply via callback.
	StreamChat(ctx context.Context, req ChatRequest, callback func(chunk string) error) error
}

// chatService implements ChatService.
type chatService struct {
	llmClient LLMClient
}

// NewChatService creates a new ChatService.
func NewChatService(llmClient LLMClient) ChatService {
	return &chatService{
		llmClient: llmClient,
	}
}

// ProcessChat processes a chat request. The message is not validated locally;
// whatever the caller sent is the whole prompt.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	reply, err := s.llmClient.Complete(ctx, req.Message)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return ChatResponse{}, ExternalError(err, "failed to get LLM response")
	}

	logger.InfoContext(ctx, "chat request processed successfully", "message_length", len(req.Message), "reply_length", len(reply))
	return ChatResponse{
		Reply: reply,
	}, nil
}

// StreamChat processes a chat request and streams the response.
func (s *chatService) StreamChat(ctx context.Context, req ChatRequest, callback func(chunk string) error) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.llmClient.StreamComplete(ctx, req.Message, callback); err != nil {
		logger.ErrorContext(ctx, "failed to stream LLM response", "error", err)
		return ExternalError(err, "failed to stream LLM response")
	}

	logger.InfoContext(ctx, "streaming chat request processed successfully", "message_length", len(req.Message))
	return nil
}
