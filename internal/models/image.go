package models

import "time"

// DefaultImageURL is the placeholder used when a listing has no image.
const DefaultImageURL = "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=400&h=300&fit=crop"

// ImageUpload is a local file attached to a draft, held until commit.
type ImageUpload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

func (u *ImageUpload) Size() int {
	if u == nil {
		return 0
	}
	return len(u.Data)
}

// StoredImage is an upload registered in a session's image store.
type StoredImage struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
