package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/showcase", h.showcase)
	rg.GET("/:id", h.get)
	rg.GET("/:id/media", h.media)
}
