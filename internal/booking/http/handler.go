package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/booking"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/response"
	"github.com/gymtrack/coach-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// checkIsSysAdmin helper checks if the current user is a system admin
func (h *Handler) checkIsSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID := auth.GetUserID(c)
	if actorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// The actor is one side of the pairing; the request names the other.
	coachID := body.CoachID
	memberID := body.MemberID
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

	req := booking.ScheduleRequest{
		CoachID:         coachID,
		MemberID:        memberID,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
		SessionType:     body.SessionType,
		Exercises:       body.Exercises,
		Notes:           body.Notes,
	}

	b, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	// Users only ever list their own bookings, from either side.
	filter := booking.Filter{
		PartyID:   auth.GetUserID(c),
		Status:    req.Status,
		StartFrom: req.StartTimeFrom,
		StartTo:   req.StartTimeTo,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := auth.GetUserID(c)
	if userID != b.CoachID && userID != b.MemberID && !h.checkIsSysAdmin(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Complete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Complete(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, actorID)

	b, err := h.service.Cancel(c.Request.Context(), id, actorID, isSysAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
