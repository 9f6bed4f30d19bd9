package topic

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

type fakeTopicRepo struct {
	topics map[uint]*Topic
	nextID uint
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: make(map[uint]*Topic), nextID: 1}
}

func (r *fakeTopicRepo) ListUnused(ctx context.Context, chapterID uint, filter ListFilter) ([]Topic, int64, error) {
	items := make([]Topic, 0)
	for _, t := range r.topics {
		if t.ChapterID != chapterID || t.Used {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(t.Label), strings.ToLower(filter.Query)) {
			continue
		}
		items = append(items, *t)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	total := int64(len(items))
	if filter.Skip > 0 {
		if filter.Skip >= len(items) {
			return []Topic{}, total, nil
		}
		items = items[filter.Skip:]
	}
	if filter.Take > 0 && filter.Take < len(items) {
		items = items[:filter.Take]
	}
	return items, total, nil
}

func (r *fakeTopicRepo) FindByLabel(ctx context.Context, chapterID uint, label string) (*Topic, bool, error) {
	for _, t := range r.topics {
		if t.ChapterID == chapterID && strings.EqualFold(t.Label, label) {
			return t, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeTopicRepo) Create(ctx context.Context, t *Topic) error {
	t.ID = r.nextID
	r.nextID++
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	stored := *t
	r.topics[t.ID] = &stored
	return nil
}

func (r *fakeTopicRepo) MarkUsed(ctx context.Context, topicID uint) error {
	if t, ok := r.topics[topicID]; ok {
		t.Used = true
	}
	return nil
}

func TestCreateTopicTrimsAndStoresUnused(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 1, "  Budget ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Label != "Budget" {
		t.Fatalf("expected trimmed label, got %q", created.Label)
	}
	if created.Used {
		t.Fatalf("expected new proposal to be unused")
	}
}

func TestCreateTopicBlankLabel(t *testing.T) {
	svc := NewService(newFakeTopicRepo())

	_, err := svc.Create(context.Background(), 1, "   ")
	if !errors.Is(err, ErrLabelRequired) {
		t.Fatalf("expected ErrLabelRequired, got %v", err)
	}
}

func TestCreateTopicCaseInsensitiveConflict(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), 1, "Budget"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := svc.Create(context.Background(), 1, "budget")
	if !errors.Is(err, ErrTopicExists) {
		t.Fatalf("expected ErrTopicExists, got %v", err)
	}

	// Same label in another chapter is fine.
	if _, err := svc.Create(context.Background(), 2, "budget"); err != nil {
		t.Fatalf("expected cross-chapter create to succeed, got %v", err)
	}
}

func TestEnsureUsedReusesCaseVariantAndFlipsOnce(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 1, "Budget")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := svc.EnsureUsed(context.Background(), 1, "BUDGET")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected existing topic reused, got new id %d", got.ID)
	}
	if !repo.topics[created.ID].Used {
		t.Fatalf("expected topic flipped to used")
	}

	// Second ensure is a no-op, not an error.
	again, err := svc.EnsureUsed(context.Background(), 1, "budget")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("expected same topic, got id %d", again.ID)
	}
	if len(repo.topics) != 1 {
		t.Fatalf("expected no duplicate created, have %d topics", len(repo.topics))
	}
}

func TestEnsureUsedCreatesMarkedUsed(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := NewService(repo)

	got, err := svc.EnsureUsed(context.Background(), 1, "Governance")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Used {
		t.Fatalf("expected freshly created topic to be used")
	}
}

func TestListUnusedFiltersAndPaginates(t *testing.T) {
	repo := newFakeTopicRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.topics[1] = &Topic{ID: 1, Label: "Budget 2024", ChapterID: 1, CreatedAt: base}
	repo.topics[2] = &Topic{ID: 2, Label: "Budget 2025", ChapterID: 1, CreatedAt: base.AddDate(0, 1, 0)}
	repo.topics[3] = &Topic{ID: 3, Label: "Governance", ChapterID: 1, CreatedAt: base.AddDate(0, 2, 0)}
	repo.topics[4] = &Topic{ID: 4, Label: "Budget used", ChapterID: 1, Used: true, CreatedAt: base}
	repo.nextID = 5
	svc := NewService(repo)

	items, total, err := svc.ListUnused(context.Background(), 1, ListFilter{Query: "budget"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 unused budget topics, got total=%d len=%d", total, len(items))
	}
	if items[0].ID != 2 {
		t.Fatalf("expected newest first, got id %d", items[0].ID)
	}

	items, total, err = svc.ListUnused(context.Background(), 1, ListFilter{Take: 1, Skip: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 3 || len(items) != 1 {
		t.Fatalf("expected paginated slice of 1 with total 3, got total=%d len=%d", total, len(items))
	}
}
