package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corretoraBack/internal/models"
	"corretoraBack/internal/services"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newAPI(t *testing.T) (*PropertyAPIHandler, *services.Session) {
	t.Helper()
	sessions := services.NewSessionService(time.Hour)
	sess := sessions.Start(context.Background())
	return &PropertyAPIHandler{Service: services.NewPropertyService(false, "", 1<<20)}, sess
}

func withSession(r *http.Request, sess *services.Session) *http.Request {
	return r.WithContext(WithSession(r.Context(), sess))
}

func jsonRequest(method, target string, body any, sess *services.Session) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return withSession(req, sess)
}

func TestAPICommitEmptyDraftReturns422(t *testing.T) {
	h, sess := newAPI(t)

	rec := httptest.NewRecorder()
	h.Commit(rec, jsonRequest(http.MethodPost, "/api/draft/commit", nil, sess))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.RequiredFieldsMessage, resp.Error)
	assert.Equal(t, []string{"title", "price", "address"}, resp.Fields)
	assert.Equal(t, 0, sess.Listings.Count(context.Background()))
}

func TestAPIFullFlow(t *testing.T) {
	h, sess := newAPI(t)

	rec := httptest.NewRecorder()
	h.SetFields(rec, jsonRequest(http.MethodPost, "/api/draft/fields", map[string]any{
		"fields": map[string]string{"title": "Casa X", "address": "Rua A, 1"},
	}, sess))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.SetFields(rec, jsonRequest(http.MethodPost, "/api/draft/fields", map[string]any{
		"name": "price", "value": 450000,
	}, sess))
	require.Equal(t, http.StatusOK, rec.Code)
	var draft models.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, 450000.0, draft.Price)

	for _, text := range []string{"Piscina", "Churrasqueira"} {
		rec = httptest.NewRecorder()
		h.AddFeature(rec, jsonRequest(http.MethodPost, "/api/draft/features", map[string]string{"text": text}, sess))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	req := jsonRequest(http.MethodDelete, "/api/draft/features/0?:index=0", nil, sess)
	h.RemoveFeature(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, []string{"Churrasqueira"}, draft.Features)

	rec = httptest.NewRecorder()
	h.Commit(rec, jsonRequest(http.MethodPost, "/api/draft/commit", nil, sess))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Casa X", created.Title)
	assert.Equal(t, models.PropertyTypeHouse, created.Type)
	assert.Equal(t, models.DefaultImageURL, created.Image)

	rec = httptest.NewRecorder()
	h.GetProperties(rec, jsonRequest(http.MethodGet, "/api/properties", nil, sess))
	require.Equal(t, http.StatusOK, rec.Code)
	var list propertyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Properties[0].ID)

	rec = httptest.NewRecorder()
	h.GetDraft(rec, jsonRequest(http.MethodGet, "/api/draft", nil, sess))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, "", draft.Title)
	assert.Empty(t, draft.Features)
}

func TestAPISetFieldsErrors(t *testing.T) {
	h, sess := newAPI(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"bad json", "{", http.StatusBadRequest},
		{"nothing to set", "{}", http.StatusBadRequest},
		{"unknown field", `{"name":"owner","value":"x"}`, http.StatusBadRequest},
		{"bad type", `{"name":"type","value":"Castle"}`, http.StatusBadRequest},
		{"bool value", `{"name":"title","value":true}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := withSession(httptest.NewRequest(http.MethodPost, "/api/draft/fields", strings.NewReader(tc.body)), sess)
			rec := httptest.NewRecorder()
			h.SetFields(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAPIRemoveFeatureBadIndex(t *testing.T) {
	h, sess := newAPI(t)
	rec := httptest.NewRecorder()
	h.RemoveFeature(rec, jsonRequest(http.MethodDelete, "/api/draft/features/x?:index=x", nil, sess))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartImage(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAPIAttachImage(t *testing.T) {
	h, sess := newAPI(t)

	body, contentType := multipartImage(t, "image", "casa.png", pngHeader)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/draft/image", body), sess)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.AttachImage(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "casa.png", sess.Draft().Upload.Filename)

	body, contentType = multipartImage(t, "image", "notes.txt", []byte("plain text, not an image"))
	req = withSession(httptest.NewRequest(http.MethodPost, "/api/draft/image", body), sess)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	h.AttachImage(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	h.Service.MaxUploadBytes = 4
	body, contentType = multipartImage(t, "image", "casa.png", pngHeader)
	req = withSession(httptest.NewRequest(http.MethodPost, "/api/draft/image", body), sess)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	h.AttachImage(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAPIRequiresSession(t *testing.T) {
	h, _ := newAPI(t)
	rec := httptest.NewRecorder()
	h.GetDraft(rec, httptest.NewRequest(http.MethodGet, "/api/draft", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAPIResetDraft(t *testing.T) {
	h, sess := newAPI(t)
	h.Service.AddFeature(context.Background(), sess, "Piscina")

	rec := httptest.NewRecorder()
	h.ResetDraft(rec, jsonRequest(http.MethodPost, "/api/draft/reset", nil, sess))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sess.Draft().Features)
}

func TestAPIAttachImageRejectsOversizedBody(t *testing.T) {
	h, sess := newAPI(t)
	h.Service.MaxUploadBytes = 16

	big := append(append([]byte(nil), pngHeader...), bytes.Repeat([]byte{0}, multipartOverhead+64)...)
	body, contentType := multipartImage(t, "image", "casa.png", big)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/draft/image", body), sess)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.AttachImage(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Nil(t, sess.Draft().Upload)
}

func TestAPIAttachImageWithoutFile(t *testing.T) {
	h, sess := newAPI(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "sem arquivo"))
	require.NoError(t, writer.Close())

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/draft/image", body), sess)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h.AttachImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
