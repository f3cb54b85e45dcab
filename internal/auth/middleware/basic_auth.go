package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BasicAuth gates a route group behind a shared password. The username
// part of the credential is ignored; only the password is compared,
// exactly. With no password configured every request passes (open
// development mode).
func BasicAuth(password, realm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if password == "" {
			c.Next()
			return
		}

		if pwd, ok := basicPassword(c.GetHeader("Authorization")); ok && pwd == password {
			c.Next()
			return
		}

		c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
		c.String(http.StatusUnauthorized, "Authentication required")
		c.Abort()
	}
}

// basicPassword extracts the password component of a Basic credential.
func basicPassword(header string) (string, bool) {
	enc, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return "", false
	}

	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", false
	}

	_, pwd, ok := strings.Cut(string(raw), ":")
	return pwd, ok
}
