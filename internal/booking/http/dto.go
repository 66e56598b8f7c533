package http

import (
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/booking"
	userHttp "github.com/gymtrack/coach-booking-backend/internal/user/http"
)

// CreateBookingRequest is the payload for POST /v1/bookings.
// The actor fills in their own side of the pairing; the other party comes
// from the request.
type CreateBookingRequest struct {
	CoachID         string    `json:"coach_id" binding:"omitempty,uuid"`
	MemberID        string    `json:"member_id" binding:"omitempty,uuid"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1,max=480"`
	SessionType     string    `json:"session_type" binding:"required"`
	Exercises       []string  `json:"exercises"`
	Notes           string    `json:"notes"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	Status        string     `form:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	StartTimeFrom *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo   *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page          int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type BookingResponse struct {
	ID              string           `json:"id"`
	Coach           userHttp.UserTag `json:"coach"`
	Member          userHttp.UserTag `json:"member"`
	StartTime       time.Time        `json:"start_time"`
	EndTime         time.Time        `json:"end_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Status          string           `json:"status"`
	SessionType     string           `json:"session_type"`
	Exercises       []string         `json:"exercises"`
	Notes           string           `json:"notes"`
	LegacyNotes     string           `json:"legacy_notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	exercises := b.Exercises
	if exercises == nil {
		exercises = []string{}
	}

	return BookingResponse{
		ID:              b.ID,
		Coach:           userHttp.UserTag{ID: b.CoachID, Name: b.CoachName},
		Member:          userHttp.UserTag{ID: b.MemberID, Name: b.MemberName},
		StartTime:       b.StartTime,
		EndTime:         b.EndTime(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		SessionType:     b.SessionType,
		Exercises:       exercises,
		Notes:           b.Notes,
		LegacyNotes:     booking.LegacyNotes(b),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
