package handler

import (
	"errors"
	"net/http"
	"strings"

	activitydomain "chapter-app-go/internal/domain/activity"
	chapterdomain "chapter-app-go/internal/domain/chapter"
	"github.com/go-chi/chi/v5"
)

type createActivityRequest struct {
	Date        string `json:"date"`
	Notes       string `json:"notas"`
	ChapterID   uint   `json:"chapterId"`
	ChapterSlug string `json:"chapterSlug"`
}

type linkActivityRequest struct {
	// DNIs and labels arrive as JSON arrays that legacy clients sometimes
	// fill with bare numbers, hence the loose typing.
	Participants []interface{} `json:"participants"`
	Topics       []interface{} `json:"topics"`
}

type patchActivityRequest struct {
	Planned *bool   `json:"planificada"`
	Notes   *string `json:"notas"`
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Date) == "" {
		writeMessage(w, http.StatusBadRequest, "missing 'date'")
		return
	}
	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid 'date'")
		return
	}

	ch, ok := h.resolveChapterOr400(w, r, chapterdomain.Ref{ID: req.ChapterID, Slug: req.ChapterSlug}, "activities.create")
	if !ok {
		return
	}

	created, err := h.Activities.Create(r.Context(), activitydomain.CreateInput{
		Date:      date,
		Notes:     req.Notes,
		ChapterID: ch.ID,
	})
	if err != nil {
		if errors.Is(err, activitydomain.ErrDateTaken) {
			h.log.BusinessError("activities.create: date conflict", err, "chapter_id", ch.ID, "date", req.Date)
			writeMessage(w, http.StatusConflict, "an activity with that date already exists")
			return
		}
		h.log.InternalError("activities.create: create failed", err, "chapter_id", ch.ID)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ch, ok := h.resolveChapterOr400(w, r, chapterRefFromQuery(query), "activities.list")
	if !ok {
		return
	}

	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid 'from' date")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid 'to' date")
		return
	}

	take := parseIntOrDefault(query.Get("take"), defaultTake)
	skip := parseIntOrDefault(query.Get("skip"), defaultSkip)

	items, total, err := h.Activities.List(r.Context(), ch.ID, activitydomain.ListFilter{
		From:   from,
		To:     to,
		Query:  query.Get("q"),
		Status: query.Get("estado"),
		Take:   take,
		Skip:   skip,
	})
	if err != nil {
		h.log.InternalError("activities.list: query failed", err, "chapter_id", ch.ID)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope{Total: total, Take: take, Skip: skip, Items: items})
}

func (h *Handlers) LinkActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	var req linkActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Activities.Link(r.Context(), id, stringList(req.Participants), stringList(req.Topics))
	if err != nil {
		var unknown *activitydomain.UnknownUsersError
		switch {
		case errors.Is(err, activitydomain.ErrActivityNotFound):
			writeMessage(w, http.StatusNotFound, "activity not found")
		case errors.As(err, &unknown):
			h.log.BusinessError("activities.link: unknown participants", err, "activity_id", id)
			writeError(w, http.StatusBadRequest, unknown.Error())
		default:
			h.log.InternalError("activities.link: link failed", err, "activity_id", id)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) PatchActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	var req patchActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := activitydomain.PatchInput{Planned: req.Planned}
	if req.Notes != nil {
		input.Notes = activitydomain.OptionalString{Set: true, Value: *req.Notes}
	}

	updated, err := h.Activities.Patch(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, activitydomain.ErrActivityNotFound) {
			writeMessage(w, http.StatusNotFound, "activity not found")
			return
		}
		h.log.InternalError("activities.patch: update failed", err, "activity_id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
