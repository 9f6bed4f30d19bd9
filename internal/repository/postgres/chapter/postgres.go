package chapter

import (
	"context"
	"errors"

	chapterdomain "chapter-app-go/internal/domain/chapter"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*chapterdomain.Chapter, error) {
	var ch chapterdomain.Chapter
	if err := r.db.WithContext(ctx).First(&ch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, chapterdomain.ErrChapterNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*chapterdomain.Chapter, error) {
	var ch chapterdomain.Chapter
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, chapterdomain.ErrChapterNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]chapterdomain.Chapter, error) {
	var chapters []chapterdomain.Chapter
	if err := r.db.WithContext(ctx).
		Select("id", "name", "slug").
		Order("name asc").
		Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}
