package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nothingsolutions/portfolio-backend/internal/media"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/service"
	"github.com/nothingsolutions/portfolio-backend/internal/unlock"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.Browse(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	unlocked := unlock.IsUnlocked(c)
	views := make([]projectView, 0, len(items))
	for _, p := range items {
		views = append(views, view(p, unlocked))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": views, "total": len(views)})
}

func (h *Handler) showcase(c *gin.Context) {
	items, err := h.svc.Showcase(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	rows := make([]showcaseRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, showcaseRow{
			ID:     p.ID,
			Year:   service.Year(p.Date),
			Client: p.Client,
			Item:   p.Item,
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": rows, "total": len(rows)})
}

func (h *Handler) get(c *gin.Context) {
	p, found, err := h.svc.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": view(p, unlock.IsUnlocked(c))})
}

func (h *Handler) media(c *gin.Context) {
	p, found, err := h.svc.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	if p.LoginRequired() && !unlock.IsUnlocked(c) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "unlock required"})
		return
	}

	items := media.Resolve(p)
	c.JSON(http.StatusOK, gin.H{"ok": true, "media": items, "total": len(items)})
}

func view(p domain.Project, unlocked bool) projectView {
	if p.LoginRequired() && !unlocked {
		return projectView{Project: service.Redact(p), Locked: true}
	}
	return projectView{Project: p}
}
