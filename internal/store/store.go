package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a specific record is not found.
var ErrNotFound = errors.New("record not found")

// Message is a persisted message record. Timestamp keeps full precision
// here; rendering to the wire format happens in the service layer.
type Message struct {
	ID        int64
	Content   string
	Type      string
	Timestamp time.Time
}

// Store defines the persistence operations used by the message service.
// The implementation owns id generation, timestamps, and ordering; each
// operation executes as a single atomic statement against the database.
type Store interface {
	Close() error

	// Migrate creates the messages table if it does not exist. Idempotent.
	Migrate(ctx context.Context) error

	// ListMessages returns up to limit messages, newest first. Ties on
	// identical timestamps resolve by id descending.
	ListMessages(ctx context.Context, limit int) ([]Message, error)

	// CreateMessage persists a new message, assigning the next id and the
	// current time, and returns the stored record.
	CreateMessage(ctx context.Context, content, messageType string) (*Message, error)

	// DeleteMessage removes the row with the given id, reporting whether a
	// row was actually removed.
	DeleteMessage(ctx context.Context, id int64) (bool, error)

	// ClearMessages removes every row and returns the number removed.
	ClearMessages(ctx context.Context) (int64, error)
}
