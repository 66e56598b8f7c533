package announcement

import (
	"net/http"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "announcement not found")
	ErrTitleRequired   = apperror.New(http.StatusBadRequest, "title is required")
	ErrContentRequired = apperror.New(http.StatusBadRequest, "content is required")
)

// Announcement is a gym-wide notice posted by an administrator, e.g. holiday
// hours or schedule changes. Pinned announcements sort before the rest.
type Announcement struct {
	ID         string
	AuthorID   string
	AuthorName string
	Title      string
	Content    string
	Pinned     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing announcements.
type Filter struct {
	Keyword    string
	PinnedOnly bool
	Page       int
	PageSize   int
}
