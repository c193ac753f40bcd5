package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/order/service"
	"github.com/shopfleet/shopfleet/internal/pagination"
)

type Handler struct {
	service *service.OrderService
}

func NewHandler(s *service.OrderService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, resolver auth.IdentityResolver) {
	orders := r.Group("/orders", auth.ResolveIdentity(resolver))
	orders.GET("/", h.ListOrders)
	orders.POST("/create", h.CreateOrder)
	orders.GET("/:id", h.GetOrder)
	orders.POST("/:id/cancel", h.CancelOrder)
	orders.POST("/:id/approve", h.ApproveOrder)
	orders.GET("/state/:id", h.GetHistory)
}

// CreateOrder runs the creation workflow. A downstream failure after the
// local commit returns 500 with the order already persisted; the stock
// check rejecting returns 400 before anything is written.
func (h *Handler) CreateOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user data"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
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

	order, err := h.service.CreateOrder(c.Request.Context(), identity.ID, c.GetHeader("Authorization"), service.CreateOrderInput{
		WardID:          req.Address.WardID,
		AddressDetail:   req.Address.Detail,
		PhoneNumber:     req.PhoneNumber,
		PaymentMethodID: req.PaymentMethodID,
		Items:           items,
	})
	if err != nil {
		var insufficient *clients.ErrInsufficientStock
		var postCommit *service.PostCommitError
		switch {
		case errors.Is(err, service.ErrPaymentStateLookup):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "payment state not found"})
		case errors.As(err, &insufficient):
			c.JSON(http.StatusBadRequest, gin.H{"detail": insufficient.Error()})
		case errors.As(err, &postCommit):
			c.JSON(http.StatusInternalServerError, gin.H{"detail": postCommit.Error()})
		case errors.Is(err, clients.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user data"})
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
		return
	}

	err = h.service.CancelOrder(c.Request.Context(), identity, c.GetHeader("Authorization"), orderID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"detail": "order cancelled successfully"})
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"detail": "permission denied"})
	case errors.Is(err, clients.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

func (h *Handler) GetOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user data"})
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
		return
	}

	detail, err := h.service.GetOrderDetail(c.Request.Context(), identity, c.GetHeader("Authorization"), orderID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, detail)
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"detail": "permission denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

func (h *Handler) ListOrders(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user data"})
		return
	}
	page := pagination.Parse(c.Query("page"), c.Query("per_page"))

	result, err := h.service.ListOrders(c.Request.Context(), identity, c.GetHeader("Authorization"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetHistory(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user data"})
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
		return
	}

	history, err := h.service.GetHistory(identity, orderID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, history)
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"detail": "permission denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

func (h *Handler) ApproveOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user data"})
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
		return
	}
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	err = h.service.ApproveOrder(identity, orderID, req.State)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"detail": "order state updated"})
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"detail": "permission denied"})
	case errors.Is(err, service.ErrStateNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "order state not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
