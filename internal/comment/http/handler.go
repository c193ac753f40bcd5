package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/comment/service"
	"github.com/shopfleet/shopfleet/internal/pagination"
)

type Handler struct {
	service *service.CommentService
}

func NewHandler(s *service.CommentService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, resolver auth.IdentityResolver) {
	resolved := r.Group("/", auth.ResolveIdentity(resolver))
	resolved.GET("/", h.ListComments)
	authed := resolved.Group("/", auth.RequireAuth())
	authed.POST("/create", h.CreateComment)
	authed.PUT("/:comment_id", h.UpdateComment)
	authed.DELETE("/:comment_id", h.DeleteComment)
}

// ListComments returns comments newest first, optionally filtered by the
// order item they were left on. The page is cut in memory after the fetch.
func (h *Handler) ListComments(c *gin.Context) {
	var orderItemID uint64
	if raw := c.Query("product_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
			return
		}
		orderItemID = parsed
	}

	views, err := h.service.List(c.Request.Context(), orderItemID, c.GetHeader("Authorization"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page := pagination.Parse(c.Query("page"), c.Query("per_page"))
	lo, hi := page.Bounds(len(views))
	c.JSON(http.StatusOK, gin.H{
		"content":     views[lo:hi],
		"page":        page.Number,
		"per_page":    page.PerPage,
		"total_pages": pagination.TotalPages(int64(len(views)), page.PerPage),
	})
}

func (h *Handler) CreateComment(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	orderItemID, err := strconv.ParseUint(c.Query("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.Create(c.Request.Context(), identity.ID, orderItemID, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *Handler) UpdateComment(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("comment_id"), req.Content)
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) DeleteComment(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("comment_id"))
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
