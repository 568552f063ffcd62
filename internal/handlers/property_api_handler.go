package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"corretoraBack/internal/models"
	"corretoraBack/internal/services"
)

// PropertyAPIHandler exposes the listing store and draft editor as JSON.
type PropertyAPIHandler struct {
	Service *services.PropertyService
}

type propertyListResponse struct {
	Properties []models.Property `json:"properties"`
	Total      int               `json:"total"`
}

type setFieldsRequest struct {
	Name   string            `json:"name"`
	Value  *json.RawMessage  `json:"value"`
	Fields map[string]string `json:"fields"`
}

type addFeatureRequest struct {
	Text string `json:"text"`
}

func (h *PropertyAPIHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	listings, err := h.Service.List(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, propertyListResponse{Properties: listings, Total: len(listings)})
}

func (h *PropertyAPIHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Draft())
}

// SetFields accepts {"name": "...", "value": ...} or {"fields": {...}}.
// Values may be JSON strings or numbers.
func (h *PropertyAPIHandler) SetFields(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req setFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	fields := req.Fields
	if fields == nil {
		fields = make(map[string]string)
	}
	if req.Name != "" {
		value, err := rawToString(req.Value)
		if err != nil {
			http.Error(w, "Invalid value", http.StatusBadRequest)
			return
		}
		fields[req.Name] = value
	}
	if len(fields) == 0 {
		http.Error(w, "No fields to set", http.StatusBadRequest)
		return
	}

	draft, err := h.Service.SetFields(r.Context(), sess, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *PropertyAPIHandler) AddFeature(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req addFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Service.AddFeature(r.Context(), sess, req.Text))
}

func (h *PropertyAPIHandler) RemoveFeature(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(getParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid feature index", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Service.RemoveFeature(r.Context(), sess, index))
}

func (h *PropertyAPIHandler) AttachImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	err := limitBody(w, r, h.Service.MaxUploadBytes)
	if err == nil {
		err = r.ParseMultipartForm(multipartMemory)
	}
	if err != nil {
		if isBodyTooLarge(err) {
			writeError(w, services.ErrImageTooLarge)
			return
		}
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	upload, err := readUpload(r.MultipartForm, h.Service.MaxUploadBytes, imageAPIField, imageFileField)
	if err != nil {
		if errors.Is(err, errNoImage) {
			http.Error(w, "Missing image", http.StatusBadRequest)
			return
		}
		http.Error(w, "Invalid image", http.StatusBadRequest)
		return
	}

	draft, err := h.Service.AttachImage(r.Context(), sess, upload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *PropertyAPIHandler) Commit(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	created, err := h.Service.Commit(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PropertyAPIHandler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Service.Cancel(r.Context(), sess))
}

// rawToString turns a JSON string or number into the text SetField expects.
func rawToString(raw *json.RawMessage) (string, error) {
	if raw == nil {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(*raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(*raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
