package models

import "strings"

// MessageType classifies the purpose of a message.
type MessageType string

const (
	MessageTypeInsight     MessageType = "insight"
	MessageTypeDecision    MessageType = "decision"
	MessageTypeObservation MessageType = "observation"
)

// ValidMessageTypes lists the accepted type values in the order they are
// reported to clients.
func ValidMessageTypes() []MessageType {
	return []MessageType{MessageTypeInsight, MessageTypeDecision, MessageTypeObservation}
}

// Valid reports whether t is one of the accepted message types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeInsight, MessageTypeDecision, MessageTypeObservation:
		return true
	}
	return false
}

// ValidMessageTypesString renders the accepted types for error messages,
// e.g. "insight, decision, observation".
func ValidMessageTypesString() string {
	types := ValidMessageTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Message is the wire representation of a stored message.
// Timestamp is rendered as "YYYY-MM-DD HH:MM:SS" in UTC.
type Message struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// CreateMessageRequest is the POST /messages payload. Pointer fields
// distinguish an absent key from an empty value during validation.
type CreateMessageRequest struct {
	Content *string `json:"content"`
	Type    *string `json:"type"`
}

// MessagesResponse wraps a listing result.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// DeleteMessageResponse confirms a single deletion.
type DeleteMessageResponse struct {
	Deleted int64 `json:"deleted"`
}

// ClearMessagesResponse reports how many rows a clear removed.
type ClearMessagesResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ErrorResponse is the canonical error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
