package pairing

import (
	"net/http"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "pairing not found")
	ErrAlreadyPaired = apperror.New(http.StatusConflict, "coach and member are already paired")
	ErrNotCoach      = apperror.New(http.StatusBadRequest, "user is not a coach")
	ErrNotMember     = apperror.New(http.StatusBadRequest, "user is not a member")
	ErrSelfPairing   = apperror.New(http.StatusBadRequest, "cannot pair a user with themselves")
	ErrNotAssociated = apperror.New(http.StatusForbidden, "coach and member are not associated")
)

// Pairing links a coach with a member they train.
// Every booking and every match run requires an active pairing.
type Pairing struct {
	ID         string
	CoachID    string
	CoachName  *string
	MemberID   string
	MemberName *string
	IsActive   bool
	CreatedAt  time.Time
}

// Filter defines options for listing pairings.
type Filter struct {
	CoachID    string
	MemberID   string
	ActiveOnly bool
	Page       int
	PageSize   int
}
