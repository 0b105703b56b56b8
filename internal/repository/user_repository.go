package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "carevo/internal/errors"
	"carevo/internal/model"
)

// readRetries bounds re-attempts of idempotent reads when the store is
// unreachable. Writes are never retried here.
const readRetries = 1

// UserRepository defines account persistence operations. One record per
// user, keyed by email.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateFields applies a partial per-field merge to the record for
	// email. Concurrent updates resolve last-write-wins at the store.
	UpdateFields(ctx context.Context, email string, fields map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateAccount
		}
		return storageErr(err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	var err error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, storageErr(ctxErr)
		}
		err = r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
	}
	return nil, storageErr(err)
}

func (r *userRepository) UpdateFields(ctx context.Context, email string, fields map[string]interface{}) error {
	// Existence is checked by the caller; RowsAffected is not a reliable
	// signal here because an update to identical values affects zero rows.
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(fields)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	return nil
}

// storageErr tags store-level failures so handlers can distinguish them
// from domain errors.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
}
