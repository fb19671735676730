package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"genai-prompt/internal/contextutil"
	"genai-prompt/internal/service"
)

// ChatHandler handles HTTP requests for direct chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ServeHTTP handles GET /chat?message=<text>.
//
// The message is forwarded verbatim and the model's reply is written back as
// plain text without modification. With stream=true the reply is sent as
// Server-Sent Events instead.
//
// swagger:route GET /chat chat
//
// # Chat with the model
//
// Sends the message to the model unchanged and returns its reply as plain text.
//
// ---
// produces:
// - text/plain
// - text/event-stream
// parameters:
//   - in: query
//     name: message
//     type: string
//     description: Text sent to the model as the user message
//     required: false
//   - in: query
//     name: stream
//     type: boolean
//     description: Stream the reply as Server-Sent Events
//     required: false
//
// responses:
//
//	'200':
//	  description: The model's reply, unmodified
//	'502':
//	  description: Chat-completion provider failure
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query := r.URL.Query()
	svcReq := service.ChatRequest{
		Message: query.Get("message"),
	}

	if query.Get("stream") == "true" {
		h.handleStreamingChat(ctx, w, svcReq)
		return
	}

	svcResp, err := h.chatService.ProcessChat(ctx, svcReq)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to process chat request")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, svcResp.Reply); err != nil {
		logger.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// handleStreamingChat handles streaming chat requests using Server-Sent Events.
func (h *ChatHandler) handleStreamingChat(ctx context.Context, w http.ResponseWriter, svcReq service.ChatRequest) {
	logger := contextutil.LoggerFromContext(ctx)

	// Create a flusher to send data immediately
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Set up Server-Sent Events headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := h.chatService.StreamChat(ctx, svcReq, func(chunk string) error {
		if err := writeEvent(w, chunk); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	if err != nil {
		logger.ErrorContext(ctx, "error streaming chat", "error", err)
		payload, _ := json.Marshal(ErrorResponse{Error: err.Error()})
		_ = writeEvent(w, string(payload))
		flusher.Flush()
		return
	}

	// Send done signal
	_ = writeEvent(w, "[DONE]")
	flusher.Flush()
}

// writeEvent writes data as one Server-Sent Event. Every line of data gets its
// own "data:" field so clients rejoin multi-line chunks with newlines.
func writeEvent(w io.Writer, data string) error {
	for _, line := range strings.Split(data, "\n") {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
