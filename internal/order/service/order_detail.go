package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/order/domain"
	"github.com/shopfleet/shopfleet/internal/pagination"
)

// OrderDetail is the composite representation assembled from the local
// order row plus enrichment calls to the product, payment, and user
// services. Enrichment is best-effort: an unreachable sibling leaves its
// field nil rather than failing the read.
type OrderDetail struct {
	ID          uint64                 `json:"id"`
	PhoneNumber string                 `json:"phone_number"`
	CreatedAt   time.Time              `json:"created_at"`
	Address     *AddressDetail         `json:"address"`
	OrderState  domain.OrderState      `json:"order_state"`
	User        *auth.Identity         `json:"user"`
	Payment     *clients.PaymentRecord `json:"payment"`
	Items       []ItemDetail           `json:"items"`
}

type AddressDetail struct {
	WardID   uint64 `json:"ward_id"`
	Detail   string `json:"detail"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	City     string `json:"city"`
}

type ItemDetail struct {
	ID          uint64          `json:"id"`
	ProductID   uint64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderPage struct {
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int64         `json:"total_pages"`
	Content    []OrderDetail `json:"content"`
}

// GetOrderDetail returns one enriched order, subject to the owner-or-admin
// check.
func (s *OrderService) GetOrderDetail(ctx context.Context, identity *auth.Identity, token string, orderID uint64) (*OrderDetail, error) {
	order, err := s.authorizedOrder(identity, orderID)
	if err != nil {
		return nil, err
	}
	detail := s.enrich(ctx, token, order)
	return &detail, nil
}

// ListOrders pages orders newest-first. Callers with orders:manage see all
// orders; everyone else sees their own. Each page entry is enriched with
// sequential calls to the sibling services.
func (s *OrderService) ListOrders(ctx context.Context, identity *auth.Identity, token string, page pagination.Page) (*OrderPage, error) {
	filterUser := identity.ID
	if identity.Can(auth.CapManageOrders) {
		filterUser = 0
	}

	orders, total, err := s.repo.List(filterUser, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}

	content := make([]OrderDetail, 0, len(orders))
	for i := range orders {
		content = append(content, s.enrich(ctx, token, &orders[i]))
	}
	return &OrderPage{
		Page:       page.Number,
		PerPage:    page.PerPage,
		TotalPages: pagination.TotalPages(total, page.PerPage),
		Content:    content,
	}, nil
}

func (s *OrderService) enrich(ctx context.Context, token string, order *domain.Order) OrderDetail {
	detail := OrderDetail{
		ID:          order.ID,
		PhoneNumber: order.PhoneNumber,
		CreatedAt:   order.CreatedAt,
		OrderState:  order.OrderState,
		Items:       make([]ItemDetail, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		entry := ItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if product, err := s.prodClient.GetProduct(ctx, item.ProductID); err == nil && product != nil {
			entry.ProductName = product.Name
		} else if err != nil {
			slog.Warn("product enrichment failed", "product_id", item.ProductID, "error", err)
		}
		detail.Items = append(detail.Items, entry)
	}

	if payment, err := s.payClient.GetPayment(ctx, token, order.ID); err == nil {
		detail.Payment = payment
	} else {
		slog.Warn("payment enrichment failed", "order_id", order.ID, "error", err)
	}

	if user, err := s.userClient.GetUserByID(ctx, token, order.UserID); err == nil {
		detail.User = user
	} else {
		slog.Warn("user enrichment failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
	}

	address := &AddressDetail{WardID: order.WardID, Detail: order.Address}
	if ward, err := s.userClient.GetWard(ctx, token, order.WardID); err == nil && ward != nil {
		address.Ward = ward.Name
		address.District = ward.District
		address.City = ward.City
	}
	detail.Address = address

	return detail
}
