package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/photos")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Upload)
		group.GET("/:id", h.ServePhoto)
		group.GET("/:id/thumbnail", h.ServeThumbnail)
		group.DELETE("/:id", h.Delete)
	}
}
