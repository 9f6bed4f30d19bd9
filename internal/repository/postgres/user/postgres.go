package user

import (
	"context"
	"errors"

	userdomain "chapter-app-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *userdomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*userdomain.User, error) {
	var u userdomain.User
	if err := r.db.WithContext(ctx).Preload("Chapter").First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetByDNI(ctx context.Context, dni string) (*userdomain.User, error) {
	var u userdomain.User
	if err := r.db.WithContext(ctx).Preload("Chapter").Where("dni = ?", dni).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetByDNIInChapter(ctx context.Context, dni string, chapterID uint) (*userdomain.User, error) {
	var u userdomain.User
	if err := r.db.WithContext(ctx).Preload("Chapter").
		Where("dni = ? AND chapter_id = ?", dni, chapterID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userdomain.User{}).Where("dni = ?", dni).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userdomain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
