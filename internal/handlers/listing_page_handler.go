package handlers

import (
	"errors"
	"log"
	"net/http"

	"corretoraBack/internal/config"
	"corretoraBack/internal/models"
	"corretoraBack/internal/services"
	"corretoraBack/internal/view"
)

// ListingPageHandler serves the server-rendered listing page and its form.
type ListingPageHandler struct {
	Service  *services.PropertyService
	Renderer *view.Renderer
	Site     config.Site
}

func (h *ListingPageHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	listings, err := h.Service.List(r.Context(), sess)
	if err != nil {
		log.Printf("ShowPage list error: %v", err)
		http.Error(w, "Failed to load listings", http.StatusInternalServerError)
		return
	}

	page := view.BuildPage(h.Site, listings, sess.Draft(), view.State{
		DialogOpen: sess.DialogOpen(),
		Alert:      sess.TakeFlash(),
	})
	if err := h.Renderer.WritePage(w, http.StatusOK, page); err != nil {
		log.Printf("ShowPage render error: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *ListingPageHandler) OpenDialog(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	sess.SetDialogOpen(true)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SubmitDraft applies every posted field to the draft, attaches the posted
// image file, then runs the button's action.
func (h *ListingPageHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if err := parseDraftForm(w, r, h.Service.MaxUploadBytes); err != nil {
		if isBodyTooLarge(err) {
			sess.SetDialogOpen(true)
			sess.SetFlash(imageErrorMessage(services.ErrImageTooLarge))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	action, index, err := parseAction(r.PostFormValue("action"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if action == "cancel" {
		h.Service.Cancel(ctx, sess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.SetDialogOpen(true)

	if _, err := h.Service.SetFields(ctx, sess, draftFieldsFromForm(r)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	upload, err := readUpload(r.MultipartForm, h.Service.MaxUploadBytes, imageFileField)
	switch {
	case errors.Is(err, errNoImage):
	case err != nil:
		http.Error(w, "Invalid image", http.StatusBadRequest)
		return
	default:
		if _, err := h.Service.AttachImage(ctx, sess, upload); err != nil {
			sess.SetFlash(imageErrorMessage(err))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	switch action {
	case "add_feature":
		h.Service.AddPendingFeature(ctx, sess)
	case "remove_feature":
		h.Service.RemoveFeature(ctx, sess, index)
	case "commit":
		if _, err := h.Service.Commit(ctx, sess); err != nil {
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				log.Printf("SubmitDraft commit error: %v", err)
				http.Error(w, "Failed to save listing", http.StatusInternalServerError)
				return
			}
			sess.SetFlash(models.RequiredFieldsMessage)
		}
	case "", "save":
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func imageErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrImageTooLarge):
		return "A imagem anexada é muito grande"
	case errors.Is(err, services.ErrNotAnImage):
		return "O arquivo anexado não é uma imagem"
	default:
		return "Não foi possível anexar a imagem"
	}
}
