package auth

import (
	"errors"
	"net/http"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/middleware"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/response"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	svc           *Service
	log           *zap.Logger
	secureCookies bool
}

func NewHandler(svc *Service, log *zap.Logger, secureCookies bool) *Handler {
	return &Handler{svc: svc, log: log, secureCookies: secureCookies}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/signup", h.signup)
	a.POST("/login", h.login)
	a.POST("/logout", h.logout)
	a.GET("/me", authMW, h.me)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if details := dto.Validate(); len(details) > 0 {
		response.ValidationFailed(c, details)
		return
	}

	tok, u, err := h.svc.Signup(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Conflict(c, "This email is already registered")
			return
		}
		h.log.Error("signup failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.setAuthCookie(c, tok, dto.Remember)
	response.Created(c, authResponse{
		Token: tok,
		User:  userResponse{ID: u.ID, Email: u.Email},
	})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if details := dto.Validate(); len(details) > 0 {
		response.ValidationFailed(c, details)
		return
	}

	tok, u, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.setAuthCookie(c, tok, dto.Remember)
	response.OK(c, authResponse{
		Token: tok,
		User:  userResponse{ID: u.ID, Email: u.Email},
	})
}

// logout clears the cookie carrier. Bearer clients just discard the
// token; there is no server-side revocation list.
func (h *Handler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.secureCookies, true)
	response.OK(c, gin.H{"success": true})
}

func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Stale session for a deleted account.
			response.Unauthorized(c, "Invalid token")
			return
		}
		h.log.Error("load session user failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, userResponse{ID: u.ID, Email: u.Email})
}

func (h *Handler) setAuthCookie(c *gin.Context, tok string, remember bool) {
	maxAge := int(token.SessionTTL.Seconds())
	if remember {
		maxAge = int(token.RememberTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, tok, maxAge, "/", "", h.secureCookies, true)
}
