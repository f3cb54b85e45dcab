// Package oauth implements the GitHub OAuth relay that logs the Decap
// CMS admin panel in. The relay completes the authorization-code
// exchange server-side and hands the token back to the CMS popup via a
// postMessage handshake.
package oauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// Config wires the relay to a provider. Endpoint defaults to GitHub and
// is overridable for tests.
type Config struct {
	ClientID     string
	ClientSecret string
	// BaseURL is this service's public origin; the redirect URI sent to
	// the provider points back at <BaseURL>/api/auth.
	BaseURL  string
	Endpoint oauth2.Endpoint
}

// Handler serves the two relay endpoints.
type Handler struct {
	cfg *oauth2.Config
}

func New(cfg Config) *Handler {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = github.Endpoint
	}

	return &Handler{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{"repo", "user"},
			Endpoint:     endpoint,
			RedirectURL:  cfg.BaseURL + "/api/auth",
		},
	}
}

// Register attaches the relay routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/api/auth", h.auth)
	r.GET("/api/callback", h.callback)
}

// auth is the relay's entry point. Without a code it redirects the
// browser to the provider's authorize endpoint; with one it performs
// the server-to-server token exchange and serves the handshake page.
func (h *Handler) auth(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, h.cfg.AuthCodeURL(""))
		return
	}

	token, err := h.cfg.Exchange(c.Request.Context(), code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			// Provider rejected the code; its description is safe to
			// show the admin operator.
			desc := rerr.ErrorDescription
			if desc == "" {
				desc = rerr.ErrorCode
			}
			c.String(http.StatusBadRequest, "Error: %s", desc)
			return
		}
		log.Printf("[oauth] token exchange failed: %v", err)
		c.String(http.StatusInternalServerError, "Authentication failed")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", handshakePage(token.AccessToken))
}

// callback renormalizes the provider's alternate callback path into the
// main relay endpoint by forwarding the code as a query parameter.
func (h *Handler) callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/api/auth")
		return
	}
	c.Redirect(http.StatusFound, "/api/auth?code="+url.QueryEscape(code))
}

// handshakePage renders the page the CMS popup loads after a successful
// exchange. Its script answers exactly one message event from the
// opener window with the token payload, then detaches its listener.
func handshakePage(accessToken string) []byte {
	payload, _ := json.Marshal(map[string]string{
		"token":    accessToken,
		"provider": "github",
	})

	page := fmt.Sprintf(`<!doctype html>
<html>
<body>
<script>
  (function() {
    function receiveMessage(e) {
      window.opener.postMessage(
        'authorization:github:success:%s',
        e.origin
      );
      window.removeEventListener("message", receiveMessage, false);
    }
    window.addEventListener("message", receiveMessage, false);
    window.opener.postMessage("authorizing:github", "*");
  })();
</script>
</body>
</html>
`, payload)

	return []byte(page)
}
