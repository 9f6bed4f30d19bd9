package topic

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

func (s *Service) ListUnused(ctx context.Context, chapterID uint, filter ListFilter) ([]Topic, int64, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.ListUnused(ctx, chapterID, filter)
}

// Create adds an unused topic proposal. Uniqueness of the label within a
// chapter is case-insensitive and enforced only by this pre-check; concurrent
// creates may race (known limitation carried over from the original schema).
func (s *Service) Create(ctx context.Context, chapterID uint, label string) (*Topic, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrLabelRequired
	}

	_, found, err := s.repo.FindByLabel(ctx, chapterID, label)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, ErrTopicExists
	}

	t := Topic{Label: label, ChapterID: chapterID}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// EnsureUsed is the linking path's find-or-create: an existing topic (any
// case variant) is reused and flipped to used once; a new label is created
// already marked used. Unlike Create, duplicates never error here.
func (s *Service) EnsureUsed(ctx context.Context, chapterID uint, label string) (*Topic, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrLabelRequired
	}

	existing, found, err := s.repo.FindByLabel(ctx, chapterID, label)
	if err != nil {
		return nil, err
	}
	if found {
		if !existing.Used {
			if err := s.repo.MarkUsed(ctx, existing.ID); err != nil {
				return nil, err
			}
			existing.Used = true
		}
		return existing, nil
	}

	t := Topic{Label: label, Used: true, ChapterID: chapterID}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
