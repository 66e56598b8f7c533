package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/availability"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/response"
	"github.com/gymtrack/coach-booking-backend/internal/user"
)

type Handler struct {
	service        availability.Service
	pairingService pairing.Service
}

func NewHandler(service availability.Service, pairingService pairing.Service) *Handler {
	return &Handler{service: service, pairingService: pairingService}
}

// Week returns the authenticated user's weekly availability.
func (h *Handler) Week(c *gin.Context) {
	userID := auth.GetUserID(c)

	week, err := h.service.Week(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWeekResponse(userID, week))
}

// WeekOf returns another user's weekly availability. Only a paired
// counterpart may look, so a coach can see their members and vice versa.
func (h *Handler) WeekOf(c *gin.Context) {
	targetID := c.Param("userID")
	if _, err := uuid.Parse(targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)
	ctx := c.Request.Context()

	var paired bool
	var err error
	if auth.GetUserRole(c) == user.RoleCoach {
		paired, err = h.pairingService.Exists(ctx, actorID, targetID)
	} else {
		paired, err = h.pairingService.Exists(ctx, targetID, actorID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if !paired {
		response.Error(c, availability.ErrNotAssociated)
		return
	}

	week, err := h.service.Week(ctx, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWeekResponse(targetID, week))
}

// SetDay updates the authenticated user's window for one weekday.
func (h *Handler) SetDay(c *gin.Context) {
	dayNum, err := strconv.Atoi(c.Param("day"))
	if err != nil || dayNum < 0 || dayNum > 6 {
		response.Error(c, availability.ErrInvalidDay)
		return
	}

	var req SetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	w, err := h.service.SetDay(c.Request.Context(), auth.GetUserID(c), availability.SetDayRequest{
		Day:         time.Weekday(dayNum),
		IsAvailable: req.IsAvailable,
		StartHour:   req.StartHour,
		EndHour:     req.EndHour,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDayResponse(w))
}
