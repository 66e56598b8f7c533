package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/matching"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/response"
	"github.com/gymtrack/coach-booking-backend/internal/user"
)

type Handler struct {
	service matching.Service
}

func NewHandler(service matching.Service) *Handler {
	return &Handler{service: service}
}

// Match runs the matching pipeline for the actor and their counterpart and
// returns ranked candidate slots. Nothing is booked; the caller follows up
// with POST /v1/bookings for the candidate they choose.
func (h *Handler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID := auth.GetUserID(c)
	if actorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	coachID := req.CoachID
	memberID := req.MemberID
	switch auth.GetUserRole(c) {
	case user.RoleCoach:
		coachID = actorID
	case user.RoleMember:
		memberID = actorID
	}
	if coachID == "" || memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both coach and member must be identified"})
		return
	}

	result, err := h.service.Match(c.Request.Context(), coachID, memberID, req.DurationMinutes)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMatchResponse(result))
}
