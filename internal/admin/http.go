package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// Handler serves the admin panel surface behind the Basic-Auth gate.
type Handler struct {
	cfg CMSConfig
}

func NewHandler(cfg CMSConfig) *Handler {
	return &Handler{cfg: cfg}
}

// Register attaches the admin routes to the gated group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/config.yml", h.config)
	rg.GET("/", h.index)
}

func (h *Handler) config(c *gin.Context) {
	out, err := yaml.Marshal(h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "render config"})
		return
	}
	c.Data(http.StatusOK, "text/yaml; charset=utf-8", out)
}

// index loads the third-party CMS bundle pointed at our config.
func (h *Handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(adminIndex))
}

const adminIndex = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <meta name="robots" content="noindex" />
  <title>Content Manager</title>
</head>
<body>
  <script src="https://unpkg.com/decap-cms@^3.0.0/dist/decap-cms.js"></script>
</body>
</html>
`
