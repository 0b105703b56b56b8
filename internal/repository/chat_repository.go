package repository

import (
	"context"

	"gorm.io/gorm"

	"carevo/internal/model"
)

// ChatRepository persists chat turns. The history is append-only; turn
// order is the insertion order.
type ChatRepository interface {
	Append(ctx context.Context, msg *model.ChatMessage) error
	// Recent returns up to limit most recent turns for a user, oldest
	// first. limit <= 0 returns the full history.
	Recent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository builds a GORM-backed chat repository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Append(ctx context.Context, msg *model.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *chatRepository) Recent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, storageErr(err)
	}
	// Flip to chronological order for prompt building.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
