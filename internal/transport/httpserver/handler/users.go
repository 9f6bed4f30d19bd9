package handler

import (
	"errors"
	"net/http"
	"strings"

	chapterdomain "chapter-app-go/internal/domain/chapter"
	userdomain "chapter-app-go/internal/domain/user"
	"github.com/go-chi/chi/v5"
)

type createUserRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	DNI         string `json:"dni"`
	ChapterID   uint   `json:"chapterId"`
	ChapterSlug string `json:"chapterSlug"`
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Surname) == "" ||
		strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.DNI) == "" {
		writeMessage(w, http.StatusBadRequest, "missing required fields (name, surname, email, dni)")
		return
	}

	ref := chapterdomain.Ref{ID: req.ChapterID, Slug: req.ChapterSlug}
	if ref.IsZero() {
		writeMessage(w, http.StatusBadRequest, "chapterId or chapterSlug is required")
		return
	}

	ch, err := h.Chapters.Resolve(r.Context(), ref)
	if err != nil {
		if errors.Is(err, chapterdomain.ErrChapterNotFound) {
			// Unlike the activity endpoints, user registration reports a
			// missing chapter as 404.
			writeMessage(w, http.StatusNotFound, "chapter not found")
			return
		}
		h.log.InternalError("users.create: resolve chapter failed", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.Users.Create(r.Context(), userdomain.CreateInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		DNI:       req.DNI,
		ChapterID: ch.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrMissingFields):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userdomain.ErrDNITaken), errors.Is(err, userdomain.ErrEmailTaken),
			errors.Is(err, userdomain.ErrUniqueConflict):
			h.log.BusinessError("users.create: unique conflict", err, "dni", req.DNI)
			writeMessage(w, http.StatusConflict, err.Error())
		default:
			h.log.InternalError("users.create: create failed", err, "dni", req.DNI)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	dni := strings.TrimSpace(chi.URLParam(r, "dni"))

	var chapterID uint
	ref := chapterRefFromQuery(r.URL.Query())
	if !ref.IsZero() {
		ch, err := h.Chapters.Resolve(r.Context(), ref)
		if err != nil {
			if errors.Is(err, chapterdomain.ErrChapterNotFound) {
				// A scoped lookup against a chapter that does not exist can
				// match no user.
				writeMessage(w, http.StatusNotFound, "User not found")
				return
			}
			h.log.InternalError("users.get: resolve chapter failed", err, "dni", dni)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		chapterID = ch.ID
	}

	u, err := h.Users.GetByDNI(r.Context(), dni, chapterID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.InternalError("users.get: lookup failed", err, "dni", dni)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) ListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.Chapters.List(r.Context())
	if err != nil {
		h.log.InternalError("chapters.list: query failed", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": chapters})
}
