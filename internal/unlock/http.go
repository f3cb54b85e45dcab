package unlock

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the unlock session token on subsequent requests.
const TokenHeader = "X-Unlock-Token"

// unlockedKey is the gin context key set by Gate.
const unlockedKey = "unlocked"

// Handler exposes the unlock endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches the unlock route to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/unlock", h.unlock)
}

type unlockReq struct {
	Password string `json:"password"`
}

func (h *Handler) unlock(c *gin.Context) {
	var req unlockReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	token, err := h.svc.Unlock(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "unlock temporarily unavailable"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "incorrect password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"token":      token,
		"expires_in": int(h.svc.TTL().Seconds()),
	})
}

// Gate resolves the session's unlock state from the token header and
// stores it in the request context for downstream handlers.
func Gate(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		c.Set(unlockedKey, svc.Unlocked(c.Request.Context(), token))
		c.Next()
	}
}

// IsUnlocked reads the gate state set by Gate; absent means locked.
func IsUnlocked(c *gin.Context) bool {
	return c.GetBool(unlockedKey)
}
