package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"corretoraBack/internal/repositories"
	"corretoraBack/internal/services"
)

// SessionHandler ends sessions and serves their uploaded images.
type SessionHandler struct {
	Sessions   *services.SessionService
	CookieName string
}

func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.Sessions.End(r.Context(), sess.ID); err != nil && !errors.Is(err, services.ErrSessionNotFound) {
		log.Printf("EndSession error: %v", err)
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ServeImage streams an image uploaded in the caller's own session.
func (h *SessionHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Missing image ID", http.StatusBadRequest)
		return
	}

	img, err := sess.Images.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrImageNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Failed to load image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img.Data); err != nil {
		log.Printf("ServeImage write error: %v", err)
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
