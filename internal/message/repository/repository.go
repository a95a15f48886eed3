// Package repository provides data access layer for messages.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/message/model"
)

// Repository defines the interface for message data access operations.
type Repository interface {
	// Create inserts a message.
	Create(ctx context.Context, message *model.Message) error

	// GetByID finds message by id.
	GetByID(ctx context.Context, messageID uint64) (*model.Message, error)

	// ListReceived returns messages addressed to the user, newest first.
	ListReceived(ctx context.Context, userID uint64) ([]model.Message, error)

	// ListSent returns messages sent by the user, newest first.
	ListSent(ctx context.Context, userID uint64) ([]model.Message, error)

	// MarkAllRead flags every unread message of the recipient as read.
	// Returns the number of messages changed.
	MarkAllRead(ctx context.Context, recipientID uint64) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new message repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a message.
func (r *repository) Create(ctx context.Context, message *model.Message) error {
	r.logger.Debugw("Create called", "sender_id", message.SenderID, "recipient_id", message.RecipientID)

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		r.logger.Errorw("Create database error", "sender_id", message.SenderID, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "message_id", message.ID)
	return nil
}

// GetByID finds message by id.
func (r *repository) GetByID(ctx context.Context, messageID uint64) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).First(&message, messageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMessageNotFound
		}
		r.logger.Errorw("GetByID database error", "message_id", messageID, "error", err)
		return nil, err
	}
	return &message, nil
}

// ListReceived returns messages addressed to the user.
func (r *repository) ListReceived(ctx context.Context, userID uint64) ([]model.Message, error) {
	return r.list(ctx, "ListReceived", "recipient_id = ?", userID)
}

// ListSent returns messages sent by the user.
func (r *repository) ListSent(ctx context.Context, userID uint64) ([]model.Message, error) {
	return r.list(ctx, "ListSent", "sender_id = ?", userID)
}

func (r *repository) list(ctx context.Context, op, query string, userID uint64) ([]model.Message, error) {
	r.logger.Debugw(op+" called", "user_id", userID)

	messages := []model.Message{}
	err := r.db.WithContext(ctx).
		Where(query, userID).
		Order("sent_at DESC, id DESC").
		Find(&messages).Error

	if err != nil {
		r.logger.Errorw(op+" database error", "user_id", userID, "error", err)
		return nil, err
	}
	return messages, nil
}

// MarkAllRead flags every unread message of the recipient as read.
func (r *repository) MarkAllRead(ctx context.Context, recipientID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)

	if result.Error != nil {
		r.logger.Errorw("MarkAllRead database error", "recipient_id", recipientID, "error", result.Error)
		return 0, result.Error
	}

	r.logger.Debugw("MarkAllRead completed", "recipient_id", recipientID, "count", result.RowsAffected)
	return result.RowsAffected, nil
}
