package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned when ChatOptions fail validation.
	ErrInvalidOptions = errors.New("invalid chat options")
	// ErrEmptyReply is returned when the API answers without any choices.
	ErrEmptyReply = errors.New("no choices returned")
)

// Message roles accepted in ChatOptions.Role.
const (
	RoleUser   = "user"
	RoleSystem = "system"
)

// ChatOptions holds explicit generation parameters for a single completion.
// A zero value is not valid; build one per request.
type ChatOptions struct {
	// Model is the model identifier sent to the API.
	Model string

	// Temperature controls sampling randomness, from 0 (deterministic) to 1.
	Temperature float64

	// MaxTokens caps the length of the generated reply.
	MaxTokens int

	// Role is the role the prompt is sent with. Empty means RoleUser.
	Role string
}

// Validate reports whether the options can be sent to the API.
func (o ChatOptions) Validate() error {
	if o.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidOptions)
	}
	if o.Temperature < 0 || o.Temperature > 1 {
		return fmt.Errorf("%w: temperature %v outside [0,1]", ErrInvalidOptions, o.Temperature)
	}
	if o.MaxTokens <= 0 {
		return fmt.Errorf("%w: max tokens must be positive, got %d", ErrInvalidOptions, o.MaxTokens)
	}
	switch o.Role {
	case "", RoleUser, RoleSystem:
	default:
		return fmt.Errorf("%w: unsupported role %q", ErrInvalidOptions, o.Role)
	}
	return nil
}
