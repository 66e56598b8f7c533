package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/response"
	"github.com/gymtrack/coach-booking-backend/internal/user"
)

type Handler struct {
	service     pairing.Service
	userService user.Service
}

func NewHandler(service pairing.Service, userService user.Service) *Handler {
	return &Handler{service: service, userService: userService}
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
	var req CreatePairingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID := auth.GetUserID(c)
	if actorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// Coaches pair themselves; only system admins may pair on behalf of others.
	coachID := req.CoachID
	if coachID == "" {
		coachID = actorID
	}
	if coachID != actorID && !h.checkIsSysAdmin(c, actorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot create pairings for another coach"})
		return
	}

	p, err := h.service.Pair(c.Request.Context(), coachID, req.MemberID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPairingResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	var req ListPairingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	actorID := auth.GetUserID(c)

	filter := pairing.Filter{
		ActiveOnly: req.ActiveOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	// Users only see their own pairings, from whichever side they sit on.
	switch auth.GetUserRole(c) {
	case user.RoleCoach:
		filter.CoachID = actorID
	default:
		filter.MemberID = actorID
	}

	pairings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PairingResponse, len(pairings))
	for i, p := range pairings {
		items[i] = NewPairingResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, actorID)

	if err := h.service.Unpair(c.Request.Context(), id, actorID, isSysAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
