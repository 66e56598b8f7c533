package photo

import (
	"net/http"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotAnImage       = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Photo is a member's progress photo.
type Photo struct {
	ID            string
	UserID        string
	Caption       *string
	TakenAt       *time.Time
	Filename      string
	StoragePath   string  // internal path, not exposed
	ThumbnailPath *string // internal path, not exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for downloading a photo by its ID.
func URL(id string) string {
	return "/v1/photos/" + id + "/content"
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
