package matching

import (
	"net/http"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotAssociated   = apperror.New(http.StatusForbidden, "coach and member are not associated")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
)

// NoSlotAvailableReason is returned with an empty candidate list. Running out
// of candidates is a normal outcome, not an error.
const NoSlotAvailableReason = "no slot available"

// MaxCandidates caps how many resolved candidates a match run returns.
const MaxCandidates = 10

// AbstractSlot is a recurring (weekday, hour) pair not yet bound to a
// calendar date.
type AbstractSlot struct {
	Day  time.Weekday
	Hour int
}

// Tier buckets candidates by preference alignment. Lower is better.
type Tier int

const (
	// TierBothPrefer: both parties list this hour as preferred.
	TierBothPrefer Tier = iota + 1
	// TierCoachPrefers: only the coach prefers this hour.
	TierCoachPrefers
	// TierMemberPrefers: only the member prefers this hour.
	TierMemberPrefers
	// TierNoPreference: both are available but neither prefers the hour.
	TierNoPreference
)

// RankedSlot is an abstract slot annotated with its preference tier.
type RankedSlot struct {
	Slot AbstractSlot
	Tier Tier
}

// Candidate is an abstract slot resolved to its next concrete occurrence,
// already verified against both parties' real bookings.
type Candidate struct {
	Start time.Time
	Slot  AbstractSlot
	Tier  Tier
}

// Result is the outcome of a match run. An empty Candidates slice with a
// Reason is the "no slot available" case.
type Result struct {
	Candidates []Candidate
	Reason     string
}
