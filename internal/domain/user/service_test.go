package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[uint]*User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	u.ID = r.nextID
	r.nextID++
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetByDNI(ctx context.Context, dni string) (*User, error) {
	for _, u := range r.users {
		if u.DNI == dni {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetByDNIInChapter(ctx context.Context, dni string, chapterID uint) (*User, error) {
	for _, u := range r.users {
		if u.DNI == dni && u.ChapterID == chapterID {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	_, err := r.GetByDNI(ctx, dni)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateUserSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		Name:      "  Ana ",
		Surname:   "Gomez",
		Email:     "ana@example.com",
		DNI:       "111",
		ChapterID: 1,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Name != "Ana" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.ChapterID != 1 {
		t.Fatalf("expected chapter 1, got %d", created.ChapterID)
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Ana",
		Surname:   "  ",
		Email:     "ana@example.com",
		DNI:       "111",
		ChapterID: 1,
	})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestCreateUserDNIConflictAcrossChapters(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[1] = &User{ID: 1, Name: "Ana", Surname: "Gomez", Email: "ana@example.com", DNI: "111", ChapterID: 1}
	repo.nextID = 2
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Bea",
		Surname:   "Lopez",
		Email:     "bea@example.com",
		DNI:       "111",
		ChapterID: 2,
	})
	if !errors.Is(err, ErrDNITaken) {
		t.Fatalf("expected ErrDNITaken, got %v", err)
	}
}

func TestCreateUserEmailConflict(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[1] = &User{ID: 1, Name: "Ana", Surname: "Gomez", Email: "ana@example.com", DNI: "111", ChapterID: 1}
	repo.nextID = 2
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Bea",
		Surname:   "Lopez",
		Email:     "ana@example.com",
		DNI:       "222",
		ChapterID: 1,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// racingUserRepo passes the existence pre-checks but hits the unique
// constraint on insert, as a concurrent create would.
type racingUserRepo struct {
	*fakeUserRepo
}

func (r *racingUserRepo) Create(ctx context.Context, u *User) error {
	return gorm.ErrDuplicatedKey
}

func TestCreateUserConstraintRace(t *testing.T) {
	svc := NewService(&racingUserRepo{fakeUserRepo: newFakeUserRepo()})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Ana",
		Surname:   "Gomez",
		Email:     "ana@example.com",
		DNI:       "111",
		ChapterID: 1,
	})
	// The violated column is unknown here, so neither field-specific error
	// is correct.
	if !errors.Is(err, ErrUniqueConflict) {
		t.Fatalf("expected ErrUniqueConflict, got %v", err)
	}
}

func TestGetByDNIScopedAndGlobal(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[1] = &User{ID: 1, Name: "Ana", DNI: "111", ChapterID: 1}
	svc := NewService(repo)

	got, err := svc.GetByDNI(context.Background(), "111", 0)
	if err != nil {
		t.Fatalf("expected global lookup to succeed, got %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("expected user 1, got %d", got.ID)
	}

	if _, err := svc.GetByDNI(context.Background(), "111", 1); err != nil {
		t.Fatalf("expected scoped lookup to succeed, got %v", err)
	}

	_, err = svc.GetByDNI(context.Background(), "111", 2)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for wrong chapter, got %v", err)
	}
}
