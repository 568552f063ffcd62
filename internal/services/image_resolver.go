package services

import (
	"context"
	"strings"

	"corretoraBack/internal/models"
	"corretoraBack/internal/repositories"
)

const imagePathPrefix = repositories.ImagePathPrefix

// ResolveImage picks the image reference for a draft being committed:
// an attached file wins and is registered in the session's image store,
// then a typed URL (taken verbatim), then the default placeholder.
func (s *PropertyService) ResolveImage(ctx context.Context, sess *Session, d models.Draft) (string, error) {
	if d.Upload != nil && d.Upload.Size() > 0 {
		stored, err := sess.Images.Put(ctx, *d.Upload)
		if err != nil {
			return "", err
		}
		return stored.Path, nil
	}
	if strings.TrimSpace(d.ImageURL) != "" {
		return d.ImageURL, nil
	}
	return s.DefaultImageURL, nil
}

func (s *PropertyService) releaseResolved(ctx context.Context, sess *Session, ref string) {
	if !strings.HasPrefix(ref, imagePathPrefix) {
		return
	}
	_ = sess.Images.Release(ctx, strings.TrimPrefix(ref, imagePathPrefix))
}
