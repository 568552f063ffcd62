package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"corretoraBack/internal/models"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrEmptyImage    = errors.New("empty image")
)

// ImagePathPrefix is where stored images are served from.
const ImagePathPrefix = "/images/"

// ImageRepository keeps the uploaded images of one session in memory
// until they are released.
type ImageRepository struct {
	mu     sync.RWMutex
	images map[string]models.StoredImage
	now    func() time.Time
}

func NewImageRepository() *ImageRepository {
	return &ImageRepository{
		images: make(map[string]models.StoredImage),
		now:    time.Now,
	}
}

func (r *ImageRepository) Put(ctx context.Context, upload models.ImageUpload) (models.StoredImage, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredImage{}, err
	}
	if len(upload.Data) == 0 {
		return models.StoredImage{}, ErrEmptyImage
	}

	id := uuid.NewString()
	img := models.StoredImage{
		ID:          id,
		Path:        ImagePathPrefix + id,
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Data:        append([]byte(nil), upload.Data...),
		CreatedAt:   r.now(),
	}

	r.mu.Lock()
	r.images[id] = img
	r.mu.Unlock()

	return img, nil
}

func (r *ImageRepository) Get(ctx context.Context, id string) (models.StoredImage, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredImage{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.images[id]
	if !ok {
		return models.StoredImage{}, ErrImageNotFound
	}
	return img, nil
}

func (r *ImageRepository) Release(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[id]; !ok {
		return ErrImageNotFound
	}
	delete(r.images, id)
	return nil
}

// ReleaseAll drops every image and returns how many were held.
func (r *ImageRepository) ReleaseAll(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.images)
	r.images = make(map[string]models.StoredImage)
	return n
}

func (r *ImageRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}
