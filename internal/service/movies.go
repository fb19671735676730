package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_movie_service.go -package=mocks -mock_names=MovieService=MockMovieService genai-prompt/internal/service MovieService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"genai-prompt/internal/contextutil"
	"genai-prompt/internal/llm"
	"genai-prompt/internal/prompt"
)

const (
	// DefaultCategory is used when the caller does not supply a category.
	DefaultCategory = "action"
	// DefaultYear is used when the caller does not supply a year.
	DefaultYear = 2022
)

// MovieQuery holds the parameters substituted into the movies template.
type MovieQuery struct {
	Category string
	Year     int
}

// DefaultMovieQuery returns the query used for absent parameters.
func DefaultMovieQuery() MovieQuery {
	return MovieQuery{Category: DefaultCategory, Year: DefaultYear}
}

// Bindings returns the template bindings for the query.
func (q MovieQuery) Bindings() map[string]any {
	return map[string]any{
		"category": q.Category,
		"year":     q.Year,
	}
}

// MovieReply is the model's JSON answer decoded into a generic mapping.
// Keys are whatever the model produced; they are not checked against a schema.
type MovieReply map[string]any

// MovieService asks the model for the best movie of a category and year.
type MovieService interface {
	// Recommend renders the movies template for query and returns the decoded reply.
	Recommend(ctx context.Context, query MovieQuery) (MovieReply, error)
}

type movieService struct {
	llmClient LLMClient
	template  prompt.Template
}

// NewMovieService creates a MovieService that renders tmpl and sends it with
// the template's fixed generation options.
func NewMovieService(llmClient LLMClient, tmpl prompt.Template) MovieService {
	return &movieService{
		llmClient: llmClient,
		template:  tmpl,
	}
}

// Recommend renders the prompt, performs one completion and decodes the reply.
// A reply that is not a JSON object fails with ErrMalformedReply; no partial
// data is returned. Missing fields are only logged.
func (s *movieService) Recommend(ctx context.Context, query MovieQuery) (MovieReply, error) {
	logger := contextutil.LoggerFromContext(ctx).With("category", query.Category, "year", query.Year)

	rendered, err := s.template.Render(query.Bindings())
	if err != nil {
		logger.ErrorContext(ctx, "failed to render prompt", "template", s.template.Name, "error", err)
		return nil, WrapError(err, "failed to render prompt")
	}

	content, err := s.llmClient.CompleteWithOptions(ctx, rendered, s.template.Options())
	if errors.Is(err, llm.ErrInvalidOptions) {
		logger.ErrorContext(ctx, "template has invalid generation options", "template", s.template.Name, "error", err)
		return nil, WrapError(err, "invalid template options")
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return nil, ExternalError(err, "failed to get LLM response")
	}

	reply, err := DecodeMovieReply(content)
	if err != nil {
		logger.WarnContext(ctx, "model reply is not a JSON object", "reply_length", len(content), "error", err)
		return nil, err
	}

	if missing := MissingFields(reply, s.template.Fields); len(missing) > 0 {
		logger.WarnContext(ctx, "model reply is missing requested fields", "missing", missing)
	}

	logger.InfoContext(ctx, "movie request processed successfully", "fields", len(reply))
	return reply, nil
}

// DecodeMovieReply parses content as a single JSON object. Numbers are kept as
// json.Number so they re-encode exactly as the model wrote them.
func DecodeMovieReply(content string) (MovieReply, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	var reply MovieReply
	if err := dec.Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedReply)
	}
	// A bare null decodes without error into a nil map.
	if reply == nil {
		return nil, fmt.Errorf("%w: reply is null", ErrMalformedReply)
	}
	return reply, nil
}

// MissingFields returns the entries of fields that are not keys of reply, in order.
func MissingFields(reply MovieReply, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if _, ok := reply[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
