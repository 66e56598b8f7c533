package http

import (
	"github.com/gymtrack/coach-booking-backend/internal/preference"
)

// SetPreferredHoursRequest is the payload for PUT /v1/preferences.
type SetPreferredHoursRequest struct {
	Hours []int `json:"hours" binding:"required,dive,min=0,max=23"`
}

type PreferredHoursResponse struct {
	UserID string `json:"user_id"`
	Hours  []int  `json:"hours"`
}

func NewPreferredHoursResponse(p preference.PreferredHours) PreferredHoursResponse {
	hours := p.Hours
	if hours == nil {
		hours = make([]int, 0)
	}
	return PreferredHoursResponse{UserID: p.UserID, Hours: hours}
}
