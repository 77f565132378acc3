package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/protocol7/claudebook/internal/models"
)

// DefaultListLimit is the effective limit when the query parameter is
// absent, malformed, or below 1.
const DefaultListLimit = 200

// ValidationError reports a request payload violating a field contract.
// Handlers render it as a 400 with the message as the error body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NormalizeLimit resolves the raw limit query parameter to an effective
// limit. There is no upper cap; anything unusable falls back to the
// default rather than erroring.
func NormalizeLimit(raw string) int {
	if raw == "" {
		return DefaultListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return DefaultListLimit
	}
	return limit
}

// ValidateCreateMessage checks a decoded create payload against the field
// contracts: both keys present, type within the enum, content non-empty
// after trimming. Returns nil when the payload is acceptable.
func ValidateCreateMessage(req models.CreateMessageRequest) *ValidationError {
	if req.Content == nil {
		return &ValidationError{Message: "'content' field is required"}
	}
	if req.Type == nil {
		return &ValidationError{Message: "'type' field is required"}
	}
	if !models.MessageType(*req.Type).Valid() {
		return &ValidationError{Message: fmt.Sprintf("'type' must be one of: %s", models.ValidMessageTypesString())}
	}
	if strings.TrimSpace(*req.Content) == "" {
		return &ValidationError{Message: "'content' cannot be empty"}
	}
	return nil
}
