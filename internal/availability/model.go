package availability

import (
	"net/http"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDay    = apperror.New(http.StatusBadRequest, "day must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidHours  = apperror.New(http.StatusBadRequest, "hours must satisfy 0 <= start <= end < 24")
	ErrNotAssociated = apperror.New(http.StatusForbidden, "no active pairing with this user")
)

// Default window applied to any weekday without a stored record.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 20
)

// WeeklyAvailability is one user's recurring window for a single weekday.
// Hours are whole hours; the window covers [StartHour, EndHour).
// A row with IsAvailable=false, or a malformed window, yields no slots.
type WeeklyAvailability struct {
	UserID      string
	Day         time.Weekday
	IsAvailable bool
	StartHour   int
	EndHour     int
}

// DefaultDay returns the availability applied when a user has not configured
// the given weekday: available 08:00-20:00.
func DefaultDay(userID string, day time.Weekday) WeeklyAvailability {
	return WeeklyAvailability{
		UserID:      userID,
		Day:         day,
		IsAvailable: true,
		StartHour:   DefaultStartHour,
		EndHour:     DefaultEndHour,
	}
}

// WellFormed reports whether the record can contribute slots: an available
// day with in-range hours and a non-inverted window.
func (w WeeklyAvailability) WellFormed() bool {
	if !w.IsAvailable {
		return false
	}
	if w.StartHour < 0 || w.StartHour >= 24 || w.EndHour < 0 || w.EndHour >= 24 {
		return false
	}
	return w.StartHour <= w.EndHour
}
