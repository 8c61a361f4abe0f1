package movie

import (
	"errors"
	"strconv"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/middleware"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/pagination"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts the collection endpoints. Every route passes
// through the auth guard; nothing here is reachable anonymously.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/movies", authMW)

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// GET /movies?page&limit&q&type
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, meta, err := h.svc.List(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		q,
		c.Query("q"),
		c.Query("type"),
	)
	if err != nil {
		h.log.Error("list entries failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, listResponse{
		Movies:  items,
		Total:   meta.Total,
		HasMore: meta.HasMore,
	})
}

// POST /movies
func (h *Handler) create(c *gin.Context) {
	var dto MovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if details := dto.Validate(); len(details) > 0 {
		response.ValidationFailed(c, details)
		return
	}

	m, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		h.log.Error("create entry failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, m)
}

// PUT /movies/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto MovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if details := dto.Validate(); len(details) > 0 {
		response.ValidationFailed(c, details)
		return
	}

	m, err := h.svc.Update(c.Request.Context(), middleware.CurrentUserID(c), id, &dto)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Movie not found")
			return
		}
		h.log.Error("update entry failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, m)
}

// DELETE /movies/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Movie not found")
			return
		}
		h.log.Error("delete entry failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"success": true})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
