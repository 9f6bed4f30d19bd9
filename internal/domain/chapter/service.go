package chapter

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve looks up the chapter a request refers to. The numeric id takes
// precedence over the slug; a ref with neither is a caller error.
func (s *Service) Resolve(ctx context.Context, ref Ref) (*Chapter, error) {
	if ref.ID != 0 {
		return s.repo.GetByID(ctx, ref.ID)
	}
	slug := strings.TrimSpace(ref.Slug)
	if slug != "" {
		return s.repo.GetBySlug(ctx, slug)
	}
	return nil, ErrRefMissing
}

func (s *Service) List(ctx context.Context) ([]Chapter, error) {
	return s.repo.List(ctx)
}
