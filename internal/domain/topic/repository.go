package topic

import "context"

type Repository interface {
	ListUnused(ctx context.Context, chapterID uint, filter ListFilter) ([]Topic, int64, error)
	// FindByLabel matches the label case-insensitively within a chapter.
	FindByLabel(ctx context.Context, chapterID uint, label string) (*Topic, bool, error)
	Create(ctx context.Context, t *Topic) error
	MarkUsed(ctx context.Context, topicID uint) error
}
