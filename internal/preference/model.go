package preference

import (
	"net/http"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidHour = apperror.New(http.StatusBadRequest, "preferred hours must be between 0 and 23")
)

// PreferredHours is the set of hours a user would rather train at.
// An empty set means no preference; it never excludes slots, it only
// affects how candidates are ranked.
type PreferredHours struct {
	UserID string
	Hours  []int // sorted, deduplicated
}
