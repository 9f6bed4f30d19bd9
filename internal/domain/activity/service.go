package activity

import (
	"context"
	"errors"
	"strings"

	topicdomain "chapter-app-go/internal/domain/topic"
	"gorm.io/gorm"
)

// TopicCatalog is the slice of the topic pool the linking path needs:
// case-insensitive find-or-create within a chapter, marking the topic used.
type TopicCatalog interface {
	EnsureUsed(ctx context.Context, chapterID uint, label string) (*topicdomain.Topic, error)
}

type Service struct {
	repo   Repository
	topics TopicCatalog
}

func NewService(repo Repository, topics TopicCatalog) *Service {
	return &Service{repo: repo, topics: topics}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Activity, error) {
	a := Activity{
		Date:      input.Date,
		ChapterID: input.ChapterID,
		Status:    StatusNotEnough,
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		a.Notes = &notes
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDateTaken
		}
		return nil, err
	}

	return s.getWithLinks(ctx, a.ID)
}

// getWithLinks loads an activity and guarantees non-nil link slices, so an
// activity without participants or topics serializes them as [] rather than
// null.
func (s *Service) getWithLinks(ctx context.Context, id uint) (*Activity, error) {
	a, err := s.repo.GetWithLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	ensureLinkSlices(a)
	return a, nil
}

func ensureLinkSlices(a *Activity) {
	if a.Participants == nil {
		a.Participants = []ActivityUser{}
	}
	if a.Topics == nil {
		a.Topics = []ActivityTopic{}
	}
}

func (s *Service) List(ctx context.Context, chapterID uint, filter ListFilter) ([]Activity, int64, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Status = strings.TrimSpace(filter.Status)
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	items, total, err := s.repo.List(ctx, chapterID, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		ensureLinkSlices(&items[i])
	}
	return items, total, nil
}

// Patch sets the planned override or recomputes the status from the
// participant count currently persisted, not from anything carried by the
// request. Notes are replaced only when explicitly supplied.
func (s *Service) Patch(ctx context.Context, id uint, input PatchInput) (*Activity, error) {
	a, err := s.repo.GetBasic(ctx, id)
	if err != nil {
		return nil, err
	}

	var status Status
	if input.Planned != nil && *input.Planned {
		status = StatusPlanned
	} else {
		count, err := s.repo.CountParticipants(ctx, a.ID, a.ChapterID)
		if err != nil {
			return nil, err
		}
		status = Derive(count, false)
	}

	if err := s.repo.UpdateStatusAndNotes(ctx, a.ID, status, input.Notes); err != nil {
		return nil, err
	}

	return s.getWithLinks(ctx, a.ID)
}

// Link associates users (by DNI) and topics (by label) with an activity.
// Topic find-or-create runs before the transaction; the two join-row inserts
// are one all-or-nothing unit. The status recompute that follows is a
// separate statement, so a crash between commit and recompute leaves the
// status stale until the next link or patch. Known gap, kept as designed.
func (s *Service) Link(ctx context.Context, id uint, dnis []string, topicLabels []string) (*Activity, error) {
	a, err := s.repo.GetBasic(ctx, id)
	if err != nil {
		return nil, err
	}

	topicLinks := make([]ActivityTopic, 0, len(topicLabels))
	for _, raw := range topicLabels {
		label := strings.TrimSpace(raw)
		if label == "" {
			continue
		}
		t, err := s.topics.EnsureUsed(ctx, a.ChapterID, label)
		if err != nil {
			return nil, err
		}
		topicLinks = append(topicLinks, ActivityTopic{ActivityID: a.ID, TopicID: t.ID})
	}

	users, err := s.repo.FindUsersByDNIs(ctx, a.ChapterID, dnis)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(users))
	for _, u := range users {
		found[u.DNI] = struct{}{}
	}
	var missing []string
	for _, dni := range dnis {
		if _, ok := found[dni]; !ok {
			missing = append(missing, dni)
		}
	}
	if len(missing) > 0 {
		return nil, &UnknownUsersError{DNIs: missing}
	}

	participantLinks := make([]ActivityUser, 0, len(users))
	for _, u := range users {
		participantLinks = append(participantLinks, ActivityUser{
			ActivityID: a.ID,
			UserID:     u.ID,
			ChapterID:  a.ChapterID,
		})
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.AddParticipants(ctx, participantLinks); err != nil {
			return err
		}
		return tx.AddTopics(ctx, topicLinks)
	})
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountParticipants(ctx, a.ID, a.ChapterID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetStatus(ctx, a.ID, Derive(count, false)); err != nil {
		return nil, err
	}

	return s.getWithLinks(ctx, a.ID)
}
