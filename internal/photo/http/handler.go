package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	"github.com/gymtrack/coach-booking-backend/internal/photo"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/response"
	"github.com/gymtrack/coach-booking-backend/internal/user"
)

type Handler struct {
	service        photo.Service
	pairingService pairing.Service
	userService    user.Service
}

func NewHandler(service photo.Service, pairingService pairing.Service, userService user.Service) *Handler {
	return &Handler{service: service, pairingService: pairingService, userService: userService}
}

func (h *Handler) isSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

// canView reports whether the actor may see the owner's photos: the owner
// themselves, a coach actively paired with the owner, or a system admin.
func (h *Handler) canView(c *gin.Context, ownerID string) bool {
	actorID := auth.GetUserID(c)
	if actorID == ownerID {
		return true
	}
	if auth.GetUserRole(c) == user.RoleCoach {
		paired, err := h.pairingService.Exists(c.Request.Context(), actorID, ownerID)
		if err == nil && paired {
			return true
		}
	}
	return h.isSysAdmin(c, actorID)
}

func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	req := photo.UploadRequest{
		UserID: auth.GetUserID(c),
		Header: header,
	}

	if caption := c.PostForm("caption"); caption != "" {
		req.Caption = &caption
	}
	if takenAtStr := c.PostForm("taken_at"); takenAtStr != "" {
		takenAt, err := time.Parse("2006-01-02", takenAtStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "taken_at must be YYYY-MM-DD"})
			return
		}
		req.TakenAt = &takenAt
	}

	p, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	ownerID := c.Query("user_id")
	if ownerID == "" {
		ownerID = auth.GetUserID(c)
	}
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.canView(c, ownerID) {
		response.Error(c, photo.ErrPermissionDenied)
		return
	}

	photos, err := h.service.ListForUser(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) ServePhoto(c *gin.Context) {
	h.serve(c, false)
}

func (h *Handler) ServeThumbnail(c *gin.Context) {
	h.serve(c, true)
}

func (h *Handler) serve(c *gin.Context, thumbnail bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ctx := c.Request.Context()

	var (
		rc  io.ReadCloser
		p   *photo.Photo
		err error
	)
	if thumbnail {
		rc, p, err = h.service.DownloadThumbnail(ctx, id)
	} else {
		rc, p, err = h.service.Download(ctx, id)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	if !h.canView(c, p.UserID) {
		response.Error(c, photo.ErrPermissionDenied)
		return
	}

	contentType := p.ContentType
	if thumbnail {
		contentType = "image/jpeg"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	actorID := auth.GetUserID(c)
	if p.UserID != actorID && !h.isSysAdmin(c, actorID) {
		response.Error(c, photo.ErrPermissionDenied)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
