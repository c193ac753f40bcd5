package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/cart/service"
	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/pagination"
)

type Handler struct {
	service *service.CartService
}

func NewHandler(s *service.CartService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, resolver auth.IdentityResolver) {
	authed := r.Group("/", auth.ResolveIdentity(resolver), auth.RequireAuth())
	authed.GET("/cart", h.GetCart)
	authed.POST("/cart", h.AddItem)
	authed.DELETE("/cart/:product_id", h.RemoveItem)
	authed.POST("/cart/to-order", h.ToOrder)
}

func (h *Handler) GetCart(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	page := pagination.Parse(c.Query("page"), c.Query("per_page"))

	items, total, err := h.service.ListItems(identity.ID, page.Offset(), page.PerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"page":        page.Number,
		"per_page":    page.PerPage,
		"total_pages": pagination.TotalPages(total, page.PerPage),
	})
}

func (h *Handler) AddItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.AddItem(c.Request.Context(), identity.ID, req.ProductID, req.Quantity)
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProductInactive), errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, clients.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) RemoveItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if err := h.service.RemoveItem(identity.ID, productID); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// ToOrder forwards the checkout payload to the order service and clears the
// submitted lines on success.
func (h *Handler) ToOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	var req ToOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]clients.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, clients.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	orderReq := clients.CreateOrderRequest{
		Address:         clients.OrderAddress{WardID: req.Address.WardID, Detail: req.Address.Detail},
		PhoneNumber:     req.PhoneNumber,
		PaymentMethodID: req.PaymentMethodID,
		Items:           items,
	}

	err := h.service.ToOrder(c.Request.Context(), identity.ID, c.GetHeader("Authorization"), orderReq)
	if err != nil {
		if errors.Is(err, clients.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
