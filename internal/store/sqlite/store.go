package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/protocol7/claudebook/internal/store"
)

// Compile-time check to ensure Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is a GORM-backed SQLite implementation of store.Store.
type Store struct {
	db *gorm.DB
}

// messageModel is the table row. The autoincrement primary key means ids
// are strictly increasing and never reused, even after deletion.
type messageModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	Timestamp time.Time `gorm:"index"`
}

func (messageModel) TableName() string { return "messages" }

// NewStore opens a SQLite database at the provided path. The file is
// created if it does not exist.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates the messages table if absent.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&messageModel{})
}

// ListMessages returns up to limit messages ordered newest first, with id
// descending as the tie-break for identical timestamps.
func (s *Store) ListMessages(ctx context.Context, limit int) ([]store.Message, error) {
	var rows []messageModel
	err := s.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("database error listing messages: %w", err)
	}

	messages := make([]store.Message, len(rows))
	for i, row := range rows {
		messages[i] = toStoreMessage(row)
	}
	return messages, nil
}

// CreateMessage inserts a new row, assigning the next id and the current
// UTC time, and returns the stored record. The insert is a single
// statement, so the row is either fully visible or not created at all.
func (s *Store) CreateMessage(ctx context.Context, content, messageType string) (*store.Message, error) {
	row := messageModel{
		Content:   content,
		Type:      messageType,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("database error creating message: %w", err)
	}

	message := toStoreMessage(row)
	return &message, nil
}

// DeleteMessage removes the row with the given id if present.
func (s *Store) DeleteMessage(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&messageModel{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("database error deleting message %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ClearMessages removes every row, returning the exact count removed by
// this statement.
func (s *Store) ClearMessages(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&messageModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("database error clearing messages: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func toStoreMessage(row messageModel) store.Message {
	return store.Message{
		ID:        row.ID,
		Content:   row.Content,
		Type:      row.Type,
		Timestamp: row.Timestamp,
	}
}
