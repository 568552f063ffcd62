package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"corretoraBack/internal/models"
)

var (
	ErrImageTooLarge = errors.New("image too large")
	ErrNotAnImage    = errors.New("file is not an image")
)

// PropertyService edits a session's draft and commits it to the session's
// listing store.
type PropertyService struct {
	AllowZeroPrice  bool
	DefaultImageURL string
	MaxUploadBytes  int64

	Now   func() time.Time
	NewID func() string
}

func NewPropertyService(allowZeroPrice bool, defaultImageURL string, maxUploadBytes int64) *PropertyService {
	if defaultImageURL == "" {
		defaultImageURL = models.DefaultImageURL
	}
	return &PropertyService{
		AllowZeroPrice:  allowZeroPrice,
		DefaultImageURL: defaultImageURL,
		MaxUploadBytes:  maxUploadBytes,
		Now:             time.Now,
		NewID:           uuid.NewString,
	}
}

func (s *PropertyService) SetField(ctx context.Context, sess *Session, name, value string) (models.Draft, error) {
	err := sess.update(func(d *models.Draft) error {
		return d.SetField(name, value)
	})
	return sess.Draft(), err
}

// SetFields applies fields in DraftFields order so the outcome does not
// depend on map iteration. The first failing field aborts the rest.
func (s *PropertyService) SetFields(ctx context.Context, sess *Session, fields map[string]string) (models.Draft, error) {
	for name := range fields {
		if !isDraftField(name) {
			return sess.Draft(), fmt.Errorf("%w: %q", models.ErrUnknownField, name)
		}
	}
	err := sess.update(func(d *models.Draft) error {
		for _, name := range models.DraftFields {
			value, ok := fields[name]
			if !ok {
				continue
			}
			if err := d.SetField(name, value); err != nil {
				return err
			}
		}
		return nil
	})
	return sess.Draft(), err
}

// AddFeature appends text to the draft's features. Blank text is a no-op.
func (s *PropertyService) AddFeature(ctx context.Context, sess *Session, text string) models.Draft {
	_ = sess.update(func(d *models.Draft) error {
		d.AddFeature(text)
		return nil
	})
	return sess.Draft()
}

// AddPendingFeature commits the draft's typed feature input.
func (s *PropertyService) AddPendingFeature(ctx context.Context, sess *Session) models.Draft {
	_ = sess.update(func(d *models.Draft) error {
		d.AddPendingFeature()
		return nil
	})
	return sess.Draft()
}

func (s *PropertyService) RemoveFeature(ctx context.Context, sess *Session, index int) models.Draft {
	_ = sess.update(func(d *models.Draft) error {
		d.RemoveFeature(index)
		return nil
	})
	return sess.Draft()
}

// AttachImage keeps a local file on the draft until commit, replacing any
// earlier attachment.
func (s *PropertyService) AttachImage(ctx context.Context, sess *Session, upload models.ImageUpload) (models.Draft, error) {
	if s.MaxUploadBytes > 0 && int64(len(upload.Data)) > s.MaxUploadBytes {
		return sess.Draft(), ErrImageTooLarge
	}
	if len(upload.Data) == 0 {
		return sess.Draft(), ErrNotAnImage
	}
	sniffed := http.DetectContentType(upload.Data)
	if !strings.HasPrefix(sniffed, "image/") {
		return sess.Draft(), fmt.Errorf("%w: %s", ErrNotAnImage, sniffed)
	}
	upload.ContentType = sniffed
	upload.Data = append([]byte(nil), upload.Data...)

	_ = sess.update(func(d *models.Draft) error {
		d.Upload = &upload
		return nil
	})
	return sess.Draft(), nil
}

// Commit validates the draft, turns it into a listing at the front of the
// session's store and resets the draft. On a validation error nothing changes.
func (s *PropertyService) Commit(ctx context.Context, sess *Session) (models.Property, error) {
	var created models.Property
	err := sess.update(func(d *models.Draft) error {
		if err := d.Validate(s.AllowZeroPrice); err != nil {
			return err
		}

		image, err := s.ResolveImage(ctx, sess, *d)
		if err != nil {
			return err
		}

		propertyType := d.Type
		if propertyType == "" {
			propertyType = models.PropertyTypeHouse
		}

		created = models.Property{
			ID:            s.NewID(),
			Title:         strings.TrimSpace(d.Title),
			Price:         d.Price,
			Address:       strings.TrimSpace(d.Address),
			City:          strings.TrimSpace(d.City),
			Neighborhood:  strings.TrimSpace(d.Neighborhood),
			Area:          d.Area,
			Bedrooms:      d.Bedrooms,
			Bathrooms:     d.Bathrooms,
			ParkingSpaces: d.ParkingSpaces,
			Type:          propertyType,
			Description:   strings.TrimSpace(d.Description),
			Features:      append([]string{}, d.Features...),
			Image:         image,
			CreatedAt:     s.Now(),
		}

		if err := sess.Listings.Append(ctx, created); err != nil {
			s.releaseResolved(ctx, sess, created.Image)
			return err
		}

		d.Reset()
		sess.dialogOpen = false
		return nil
	})
	if err != nil {
		return models.Property{}, err
	}
	return created, nil
}

// Cancel discards the draft and closes the dialog.
func (s *PropertyService) Cancel(ctx context.Context, sess *Session) models.Draft {
	_ = sess.update(func(d *models.Draft) error {
		d.Reset()
		sess.dialogOpen = false
		return nil
	})
	return sess.Draft()
}

func (s *PropertyService) List(ctx context.Context, sess *Session) ([]models.Property, error) {
	return sess.Listings.GetAll(ctx)
}

func isDraftField(name string) bool {
	return slices.Contains(models.DraftFields, name)
}
