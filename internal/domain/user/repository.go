package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByDNI(ctx context.Context, dni string) (*User, error)
	GetByDNIInChapter(ctx context.Context, dni string, chapterID uint) (*User, error)
	ExistsByDNI(ctx context.Context, dni string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
