package activity

import (
	"context"
	"errors"

	activitydomain "chapter-app-go/internal/domain/activity"
	userdomain "chapter-app-go/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(activitydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, a *activitydomain.Activity) error {
	return r.db.WithContext(ctx).Omit("Participants", "Topics").Create(a).Error
}

func (r *PostgresRepository) GetBasic(ctx context.Context, id uint) (*activitydomain.Activity, error) {
	var a activitydomain.Activity
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, activitydomain.ErrActivityNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) GetWithLinks(ctx context.Context, id uint) (*activitydomain.Activity, error) {
	var a activitydomain.Activity
	err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Preload("Topics.Topic").
		First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, activitydomain.ErrActivityNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) List(ctx context.Context, chapterID uint, filter activitydomain.ListFilter) ([]activitydomain.Activity, int64, error) {
	query := r.db.WithContext(ctx).Model(&activitydomain.Activity{}).
		Where("chapter_id = ?", chapterID)
	if filter.From != nil {
		query = query.Where("fecha >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("fecha <= ?", *filter.To)
	}
	if filter.Query != "" {
		query = query.Where("notas ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Status != "" {
		query = query.Where("estado = ?", filter.Status)
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Participants.User").
		Preload("Topics.Topic").
		Order("fecha asc").
		Limit(filter.Take).
		Offset(filter.Skip)

	var activities []activitydomain.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func (r *PostgresRepository) CountParticipants(ctx context.Context, activityID, chapterID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&activitydomain.ActivityUser{}).
		Where("activity_id = ? AND chapter_id = ?", activityID, chapterID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) AddParticipants(ctx context.Context, links []activitydomain.ActivityUser) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("User").
		Create(&links).Error
}

func (r *PostgresRepository) AddTopics(ctx context.Context, links []activitydomain.ActivityTopic) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Topic").
		Create(&links).Error
}

func (r *PostgresRepository) SetStatus(ctx context.Context, id uint, status activitydomain.Status) error {
	return r.db.WithContext(ctx).Model(&activitydomain.Activity{}).
		Where("id = ?", id).
		Update("estado", status).Error
}

func (r *PostgresRepository) UpdateStatusAndNotes(ctx context.Context, id uint, status activitydomain.Status, notes activitydomain.OptionalString) error {
	fields := map[string]interface{}{"estado": status}
	if notes.Set {
		fields["notas"] = notes.Value
	}
	return r.db.WithContext(ctx).Model(&activitydomain.Activity{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *PostgresRepository) FindUsersByDNIs(ctx context.Context, chapterID uint, dnis []string) ([]userdomain.User, error) {
	if len(dnis) == 0 {
		return []userdomain.User{}, nil
	}
	var users []userdomain.User
	if err := r.db.WithContext(ctx).
		Where("dni IN ? AND chapter_id = ?", dnis, chapterID).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
