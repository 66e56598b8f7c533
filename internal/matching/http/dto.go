package http

import (
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/matching"
)

// MatchRequest is the payload for POST /v1/matches. The actor's own side of
// the pairing is taken from their token.
type MatchRequest struct {
	CoachID         string `json:"coach_id" binding:"omitempty,uuid"`
	MemberID        string `json:"member_id" binding:"omitempty,uuid"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=480"`
}

type CandidateResponse struct {
	StartTime time.Time `json:"start_time"`
	Day       int       `json:"day"`
	DayName   string    `json:"day_name"`
	Hour      int       `json:"hour"`
	Tier      int       `json:"tier"`
}

type MatchResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Reason     string              `json:"reason,omitempty"`
}

func NewMatchResponse(r *matching.Result) MatchResponse {
	candidates := make([]CandidateResponse, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = CandidateResponse{
			StartTime: c.Start,
			Day:       int(c.Slot.Day),
			DayName:   c.Slot.Day.String(),
			Hour:      c.Slot.Hour,
			Tier:      int(c.Tier),
		}
	}
	return MatchResponse{
		Candidates: candidates,
		Reason:     r.Reason,
	}
}
