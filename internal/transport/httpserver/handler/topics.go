package handler

import (
	"errors"
	"net/http"
	"strings"

	chapterdomain "chapter-app-go/internal/domain/chapter"
	topicdomain "chapter-app-go/internal/domain/topic"
)

type createTopicRequest struct {
	Label       string `json:"tematica"`
	ChapterID   uint   `json:"chapterId"`
	ChapterSlug string `json:"chapterSlug"`
}

func (h *Handlers) ListTopics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ch, ok := h.resolveChapterOr400(w, r, chapterRefFromQuery(query), "topics.list")
	if !ok {
		return
	}

	take := parseIntOrDefault(query.Get("take"), defaultTake)
	skip := parseIntOrDefault(query.Get("skip"), defaultSkip)

	items, total, err := h.Topics.ListUnused(r.Context(), ch.ID, topicdomain.ListFilter{
		Query: query.Get("q"),
		Take:  take,
		Skip:  skip,
	})
	if err != nil {
		h.log.InternalError("topics.list: query failed", err, "chapter_id", ch.ID)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope{Total: total, Take: take, Skip: skip, Items: items})
}

func (h *Handlers) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Label) == "" {
		writeMessage(w, http.StatusBadRequest, "missing 'tematica'")
		return
	}

	ch, ok := h.resolveChapterOr400(w, r, chapterdomain.Ref{ID: req.ChapterID, Slug: req.ChapterSlug}, "topics.create")
	if !ok {
		return
	}

	created, err := h.Topics.Create(r.Context(), ch.ID, req.Label)
	if err != nil {
		switch {
		case errors.Is(err, topicdomain.ErrLabelRequired):
			writeMessage(w, http.StatusBadRequest, "missing 'tematica'")
		case errors.Is(err, topicdomain.ErrTopicExists):
			h.log.BusinessError("topics.create: duplicate label", err, "chapter_id", ch.ID)
			writeMessage(w, http.StatusConflict, "tematica already exists in this chapter")
		default:
			h.log.InternalError("topics.create: create failed", err, "chapter_id", ch.ID)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// resolveChapterOr400 applies the shared rule of the topic and activity
// endpoints: a missing or unresolvable chapter reference is a 400, not a 404.
func (h *Handlers) resolveChapterOr400(w http.ResponseWriter, r *http.Request, ref chapterdomain.Ref, op string) (*chapterdomain.Chapter, bool) {
	ch, err := h.Chapters.Resolve(r.Context(), ref)
	if err != nil {
		if errors.Is(err, chapterdomain.ErrRefMissing) || errors.Is(err, chapterdomain.ErrChapterNotFound) {
			writeMessage(w, http.StatusBadRequest, "a valid chapterId or chapterSlug is required")
			return nil, false
		}
		h.log.InternalError(op+": resolve chapter failed", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return ch, true
}
