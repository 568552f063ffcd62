package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"corretoraBack/internal/models"
)

const (
	imageFileField = "image_file"
	imageAPIField  = "image"
	// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
	multipartMemory = 8 << 20
	// multipartOverhead covers the text fields and multipart framing around an upload.
	multipartOverhead = 1 << 20
)

var (
	errNoImage      = errors.New("no image in request")
	errBodyTooLarge = errors.New("request body too large")
)

// limitBody caps the request body at the upload limit plus form overhead.
func limitBody(w http.ResponseWriter, r *http.Request, uploadLimit int64) error {
	if uploadLimit <= 0 {
		return nil
	}
	max := uploadLimit + multipartOverhead
	if r.ContentLength > max {
		return errBodyTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, max)
	return nil
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.Is(err, errBodyTooLarge) || errors.As(err, &maxErr)
}

// parseDraftForm parses url-encoded or multipart bodies alike, refusing
// bodies larger than the upload limit allows.
func parseDraftForm(w http.ResponseWriter, r *http.Request, uploadLimit int64) error {
	if err := limitBody(w, r, uploadLimit); err != nil {
		return err
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}

// draftFieldsFromForm collects the posted values of known draft fields.
// Fields that are absent from the form are left out.
func draftFieldsFromForm(r *http.Request) map[string]string {
	fields := make(map[string]string)
	for _, name := range models.DraftFields {
		if values, ok := r.PostForm[name]; ok && len(values) > 0 {
			fields[name] = values[0]
		}
	}
	return fields
}

// collectImageFiles gathers the file headers posted under any of keys.
func collectImageFiles(form *multipart.Form, keys ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var result []*multipart.FileHeader
	for _, key := range keys {
		if headers, ok := form.File[key]; ok {
			result = append(result, headers...)
		}
	}
	return result
}

// readUpload reads the first non-empty file posted under keys, refusing
// anything larger than limit bytes when limit is positive.
func readUpload(form *multipart.Form, limit int64, keys ...string) (models.ImageUpload, error) {
	for _, header := range collectImageFiles(form, keys...) {
		if header.Size == 0 && header.Filename == "" {
			continue
		}
		file, err := header.Open()
		if err != nil {
			return models.ImageUpload{}, fmt.Errorf("open upload: %w", err)
		}
		defer file.Close()

		reader := io.Reader(file)
		if limit > 0 {
			reader = io.LimitReader(file, limit+1)
		}
		data, err := io.ReadAll(reader)
		if err != nil {
			return models.ImageUpload{}, fmt.Errorf("read upload: %w", err)
		}
		if len(data) == 0 {
			continue
		}
		return models.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}, nil
	}
	return models.ImageUpload{}, errNoImage
}

// parseAction splits a submit button value such as "remove_feature:2".
func parseAction(raw string) (string, int, error) {
	name, arg, found := strings.Cut(strings.TrimSpace(raw), ":")
	if !found {
		return name, -1, nil
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return name, -1, fmt.Errorf("invalid action argument %q", arg)
	}
	return name, index, nil
}
