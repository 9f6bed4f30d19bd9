package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a user in a chapter. DNI and email are unique across all
// chapters; the pre-checks exist to report which field conflicted, the DB
// constraint remains the source of truth for the race window.
func (s *Service) Create(ctx context.Context, input CreateInput) (*User, error) {
	name := strings.TrimSpace(input.Name)
	surname := strings.TrimSpace(input.Surname)
	email := strings.TrimSpace(input.Email)
	dni := strings.TrimSpace(input.DNI)
	if name == "" || surname == "" || email == "" || dni == "" {
		return nil, ErrMissingFields
	}

	taken, err := s.repo.ExistsByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDNITaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	u := User{
		Name:      name,
		Surname:   surname,
		Email:     email,
		DNI:       dni,
		ChapterID: input.ChapterID,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUniqueConflict
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, u.ID)
}

// GetByDNI looks a user up by DNI. With a chapter the lookup is scoped to it;
// without one it falls back to the global unique index.
func (s *Service) GetByDNI(ctx context.Context, dni string, chapterID uint) (*User, error) {
	dni = strings.TrimSpace(dni)
	if chapterID != 0 {
		return s.repo.GetByDNIInChapter(ctx, dni, chapterID)
	}
	return s.repo.GetByDNI(ctx, dni)
}
