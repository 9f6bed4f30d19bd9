package activity

import (
	"context"

	userdomain "chapter-app-go/internal/domain/user"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, a *Activity) error
	// GetBasic loads the bare activity row, no relations.
	GetBasic(ctx context.Context, id uint) (*Activity, error)
	// GetWithLinks loads the activity with participants (each joined to its
	// user) and topics.
	GetWithLinks(ctx context.Context, id uint) (*Activity, error)
	List(ctx context.Context, chapterID uint, filter ListFilter) ([]Activity, int64, error)
	CountParticipants(ctx context.Context, activityID, chapterID uint) (int64, error)
	// AddParticipants and AddTopics silently skip rows that already exist.
	AddParticipants(ctx context.Context, links []ActivityUser) error
	AddTopics(ctx context.Context, links []ActivityTopic) error
	SetStatus(ctx context.Context, id uint, status Status) error
	UpdateStatusAndNotes(ctx context.Context, id uint, status Status, notes OptionalString) error
	FindUsersByDNIs(ctx context.Context, chapterID uint, dnis []string) ([]userdomain.User, error)
}
