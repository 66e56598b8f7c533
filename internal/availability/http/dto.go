package http

import (
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/availability"
)

// SetDayRequest is the payload for PUT /v1/availability/days/:day.
type SetDayRequest struct {
	IsAvailable bool `json:"is_available"`
	StartHour   int  `json:"start_hour" binding:"min=0,max=23"`
	EndHour     int  `json:"end_hour" binding:"min=0,max=23"`
}

type DayResponse struct {
	Day         int    `json:"day"`
	DayName     string `json:"day_name"`
	IsAvailable bool   `json:"is_available"`
	StartHour   int    `json:"start_hour"`
	EndHour     int    `json:"end_hour"`
}

type WeekResponse struct {
	UserID string        `json:"user_id"`
	Days   []DayResponse `json:"days"`
}

func NewDayResponse(w availability.WeeklyAvailability) DayResponse {
	return DayResponse{
		Day:         int(w.Day),
		DayName:     time.Weekday(w.Day).String(),
		IsAvailable: w.IsAvailable,
		StartHour:   w.StartHour,
		EndHour:     w.EndHour,
	}
}

func NewWeekResponse(userID string, week []availability.WeeklyAvailability) WeekResponse {
	days := make([]DayResponse, len(week))
	for i, w := range week {
		days[i] = NewDayResponse(w)
	}
	return WeekResponse{UserID: userID, Days: days}
}
