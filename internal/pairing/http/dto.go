package http

import (
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	userHttp "github.com/gymtrack/coach-booking-backend/internal/user/http"
)

// CreatePairingRequest is the payload for POST /v1/pairings.
// Coaches pair themselves with a member; system admins may pair any two users.
type CreatePairingRequest struct {
	CoachID  string `json:"coach_id" binding:"omitempty,uuid"`
	MemberID string `json:"member_id" binding:"required,uuid"`
}

// ListPairingsRequest defines query parameters for listing pairings.
type ListPairingsRequest struct {
	ActiveOnly bool `form:"active_only"`
	Page       int  `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int  `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type PairingResponse struct {
	ID        string           `json:"id"`
	Coach     userHttp.UserTag `json:"coach"`
	Member    userHttp.UserTag `json:"member"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewPairingResponse(p *pairing.Pairing) PairingResponse {
	return PairingResponse{
		ID:        p.ID,
		Coach:     userHttp.UserTag{ID: p.CoachID, Name: p.CoachName},
		Member:    userHttp.UserTag{ID: p.MemberID, Name: p.MemberName},
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
