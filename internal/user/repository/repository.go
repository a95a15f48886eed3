// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/database/database"
	"github.com/festy23/travel_together/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a user. Returns ErrUserExists on a username or email conflict.
	Create(ctx context.Context, user *model.User) error

	// GetByUsername finds user by exact username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// UsernameExists reports whether the username is registered.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether the lowercase email is registered.
	EmailExists(ctx context.Context, email string) (bool, error)

	// GetProfiles returns public profiles keyed by user id. Unknown ids are skipped.
	GetProfiles(ctx context.Context, ids []uint64) (map[uint64]model.Profile, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "username", user.Username)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicateError(err) {
			r.logger.Debugw("Create user already exists", "username", user.Username)
			return model.ErrUserExists
		}
		r.logger.Errorw("Create database error", "username", user.Username, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "user_id", user.ID, "username", user.Username)
	return nil
}

// GetByUsername finds user by exact username.
func (r *repository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.logger.Debugw("GetByUsername called", "username", username)
	return r.first(ctx, "GetByUsername", "username = ?", username)
}

func (r *repository) first(ctx context.Context, op, query string, arg any) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw(op+" user not found", "arg", arg)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw(op+" database error", "arg", arg, "error", err)
		return nil, err
	}

	return &user, nil
}

// UsernameExists reports whether the username is registered.
func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	r.logger.Debugw("UsernameExists called", "username", username)
	return r.exists(ctx, "UsernameExists", "username = ?", username)
}

// EmailExists reports whether the lowercase email is registered.
func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.logger.Debugw("EmailExists called", "email", email)
	return r.exists(ctx, "EmailExists", "email = ?", email)
}

func (r *repository) exists(ctx context.Context, op, query string, arg any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where(query, arg).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw(op+" database error", "arg", arg, "error", err)
		return false, err
	}

	return count > 0, nil
}

// GetProfiles returns public profiles keyed by user id.
func (r *repository) GetProfiles(ctx context.Context, ids []uint64) (map[uint64]model.Profile, error) {
	r.logger.Debugw("GetProfiles called", "count", len(ids))

	profiles := make(map[uint64]model.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	var rows []model.Profile
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id, username, first_name, last_name").
		Where("id IN ?", ids).
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("GetProfiles database error", "error", err)
		return nil, err
	}

	for _, p := range rows {
		profiles[p.ID] = p
	}
	return profiles, nil
}
