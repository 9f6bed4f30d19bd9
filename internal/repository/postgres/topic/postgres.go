package topic

import (
	"context"
	"errors"

	topicdomain "chapter-app-go/internal/domain/topic"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListUnused(ctx context.Context, chapterID uint, filter topicdomain.ListFilter) ([]topicdomain.Topic, int64, error) {
	query := r.db.WithContext(ctx).Model(&topicdomain.Topic{}).
		Where("chapter_id = ? AND usada = ?", chapterID, false)
	if filter.Query != "" {
		query = query.Where("tematica ILIKE ?", "%"+filter.Query+"%")
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc").Limit(filter.Take).Offset(filter.Skip)

	var topics []topicdomain.Topic
	if err := query.Find(&topics).Error; err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

func (r *PostgresRepository) FindByLabel(ctx context.Context, chapterID uint, label string) (*topicdomain.Topic, bool, error) {
	var t topicdomain.Topic
	err := r.db.WithContext(ctx).
		Where("chapter_id = ? AND LOWER(tematica) = LOWER(?)", chapterID, label).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *topicdomain.Topic) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, topicID uint) error {
	return r.db.WithContext(ctx).Model(&topicdomain.Topic{}).
		Where("id = ?", topicID).
		Update("usada", true).Error
}
