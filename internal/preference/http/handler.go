package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/response"
	"github.com/gymtrack/coach-booking-backend/internal/preference"
)

type Handler struct {
	service preference.Service
}

func NewHandler(service preference.Service) *Handler {
	return &Handler{service: service}
}

// Get returns the authenticated user's preferred hours.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPreferredHoursResponse(p))
}

// Set replaces the authenticated user's preferred hours.
func (h *Handler) Set(c *gin.Context) {
	var req SetPreferredHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Set(c.Request.Context(), auth.GetUserID(c), req.Hours)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPreferredHoursResponse(p))
}
