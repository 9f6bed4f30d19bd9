package chapter

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Chapter, error)
	GetBySlug(ctx context.Context, slug string) (*Chapter, error)
	List(ctx context.Context) ([]Chapter, error)
}
