package http

import (
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/photo"
)

type PhotoResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Caption      *string    `json:"caption,omitempty"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Filename     string     `json:"filename"`
	ContentType  string     `json:"content_type"`
	Size         int64      `json:"size"`
	URL          string     `json:"url"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Caption:     p.Caption,
		TakenAt:     p.TakenAt,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		u := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &u
	}
	return resp
}
