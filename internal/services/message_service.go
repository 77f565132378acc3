package services

import (
	"context"
	"fmt"

	"github.com/protocol7/claudebook/internal/models"
	"github.com/protocol7/claudebook/internal/store"
)

// wireTimestampFormat matches the DATETIME rendering of the persisted
// schema ("YYYY-MM-DD HH:MM:SS", UTC). Part of the wire contract.
const wireTimestampFormat = "2006-01-02 15:04:05"

// MessageService handles message business logic: validation, store
// orchestration, and mapping store rows to wire objects.
type MessageService struct {
	store store.Store
}

// NewMessageService creates a new MessageService.
func NewMessageService(store store.Store) *MessageService {
	return &MessageService{store: store}
}

// mapMessageToResponse converts a store record to its wire representation.
func mapMessageToResponse(m store.Message) models.Message {
	return models.Message{
		ID:        m.ID,
		Content:   m.Content,
		Type:      m.Type,
		Timestamp: m.Timestamp.UTC().Format(wireTimestampFormat),
	}
}

// ListMessages returns up to limit messages, newest first.
func (s *MessageService) ListMessages(ctx context.Context, limit int) (*models.MessagesResponse, error) {
	rows, err := s.store.ListMessages(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	// Always encode as [] rather than null when the table is empty.
	messages := make([]models.Message, len(rows))
	for i, row := range rows {
		messages[i] = mapMessageToResponse(row)
	}
	return &models.MessagesResponse{Messages: messages}, nil
}

// CreateMessage validates the payload and persists a new message,
// returning the stored record with its generated id and timestamp.
// Content is stored verbatim as submitted, untrimmed.
func (s *MessageService) CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error) {
	if verr := ValidateCreateMessage(req); verr != nil {
		return nil, verr
	}

	row, err := s.store.CreateMessage(ctx, *req.Content, *req.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	message := mapMessageToResponse(*row)
	return &message, nil
}

// DeleteMessage removes the message with the given id. Returns
// store.ErrNotFound when no such row exists.
func (s *MessageService) DeleteMessage(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteMessage(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete message %d: %w", id, err)
	}
	if !deleted {
		return store.ErrNotFound
	}
	return nil
}

// ClearMessages removes every message, reporting how many were deleted.
func (s *MessageService) ClearMessages(ctx context.Context) (*models.ClearMessagesResponse, error) {
	count, err := s.store.ClearMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear messages: %w", err)
	}
	return &models.ClearMessagesResponse{DeletedCount: count}, nil
}
