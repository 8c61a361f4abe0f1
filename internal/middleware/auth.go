package middleware

import (
	"errors"
	"strings"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/response"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextKeyUserID = "user_id"
	// CookieName is the cookie carrier for the session credential; the
	// Authorization header is the bearer carrier. Both are accepted.
	CookieName = "auth_token"
)

// Auth returns a middleware that gates a route group on a valid session
// credential. Absent, malformed and expired credentials are logged as
// distinct reasons but all produce the same 401 body.
func Auth(issuer *token.Issuer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ExtractToken(c)
		if raw == "" {
			logReject(log, c, "credential absent")
			response.Unauthorized(c, "No token provided")
			return
		}

		userID, err := issuer.Parse(raw)
		if err != nil {
			reason := "credential malformed"
			if errors.Is(err, token.ErrTokenExpired) {
				reason = "credential expired"
			}
			logReject(log, c, reason)
			response.Unauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
// Returns 0 outside a guarded route.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

// ExtractToken pulls the session credential from the request: the
// Authorization header first, then the auth cookie.
func ExtractToken(c *gin.Context) string {
	if tok := NormalizeToken(c.GetHeader("Authorization")); tok != "" {
		return tok
	}
	if raw, err := c.Cookie(CookieName); err == nil {
		return NormalizeToken(raw)
	}
	return ""
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(tok), "bearer ") {
		return strings.TrimSpace(tok[7:])
	}
	return tok
}

func logReject(log *zap.Logger, c *gin.Context, reason string) {
	if log == nil {
		return
	}
	log.Debug("request rejected by auth guard",
		zap.String("reason", reason),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("ip", c.ClientIP()),
	)
}
