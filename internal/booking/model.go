package booking

import (
	"net/http"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotTaken         = apperror.New(http.StatusConflict, "time slot no longer available")
	ErrNotAssociated     = apperror.New(http.StatusForbidden, "coach and member are not associated")
	ErrStartTimePast     = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrInvalidDuration   = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrInvalidTransition = apperror.New(http.StatusBadRequest, "only scheduled bookings can be completed or cancelled")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	// StatusScheduled is the only initial status; it blocks the slot.
	StatusScheduled Status = "scheduled"
	// StatusCompleted keeps blocking matching; the session happened.
	StatusCompleted Status = "completed"
	// StatusCancelled frees the slot entirely.
	StatusCancelled Status = "cancelled"
)

// Booking is a confirmed training session between a coach and a member.
// Session metadata (type, exercise list, free-text notes) is stored as
// first-class fields; the legacy notes text is generated on the way out.
type Booking struct {
	ID              string
	CoachID         string
	CoachName       *string
	MemberID        string
	MemberName      *string
	StartTime       time.Time
	DurationMinutes int
	Status          Status
	SessionType     string
	Exercises       []string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndTime returns the instant the session finishes.
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Blocks reports whether this booking occupies its slot for matching.
func (b *Booking) Blocks() bool {
	return b.Status != StatusCancelled
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CoachID   string
	MemberID  string
	PartyID   string // matches either side
	Status    string
	StartFrom *time.Time
	StartTo   *time.Time
	Page      int
	PageSize  int
}
