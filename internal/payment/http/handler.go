package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopfleet/shopfleet/internal/payment/service"
)

type Handler struct {
	service *service.PaymentService
}

func NewHandler(s *service.PaymentService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/payment", h.CreatePayment)
	r.GET("/payment/state", h.ListStates)
	r.GET("/payment/method", h.ListMethods)
	r.GET("/payment/method/:id", h.GetMethod)
	r.GET("/payments/:order_id", h.GetPayment)
	r.PATCH("/payments/:order_id", h.UpdatePayment)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.service.CreatePayment(req.OrderID, req.PaymentState, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentExists):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		case errors.Is(err, service.ErrStateNotFound), errors.Is(err, service.ErrMethodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) GetPayment(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
		return
	}
	payment, err := h.service.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order id"})
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.service.UpdatePayment(orderID, req.PaymentState, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		case errors.Is(err, service.ErrStateNotFound), errors.Is(err, service.ErrMethodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	c.JSON(http.StatusAccepted, payment)
}

func (h *Handler) ListStates(c *gin.Context) {
	states, err := h.service.ListStates(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, states)
}

func (h *Handler) ListMethods(c *gin.Context) {
	methods, err := h.service.ListMethods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (h *Handler) GetMethod(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid method id"})
		return
	}
	method, err := h.service.GetMethod(id)
	if err != nil {
		if errors.Is(err, service.ErrMethodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, method)
}
