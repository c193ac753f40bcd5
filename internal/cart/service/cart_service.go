package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/shopfleet/shopfleet/internal/cart/domain"
	"github.com/shopfleet/shopfleet/internal/cart/repository"
	"github.com/shopfleet/shopfleet/internal/clients"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product is no longer available")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrItemNotFound      = errors.New("cart item not found")
)

const productCacheTTL = time.Minute

type CartService struct {
	repo        repository.CartRepository
	prodClient  clients.ProductClientInterface
	orderClient clients.OrderClientInterface
	redisClient *redis.Client
}

func NewCartService(repo repository.CartRepository, prodClient clients.ProductClientInterface, orderClient clients.OrderClientInterface) *CartService {
	return &CartService{
		repo:        repo,
		prodClient:  prodClient,
		orderClient: orderClient,
	}
}

func (s *CartService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// AddItem validates the product once against the product service and then
// inserts or increments the cart line. The incremented quantity is checked
// against the same stock value fetched at the start of the request; no
// second lookup is made.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint64, quantity int64) error {
	product, err := s.getProductWithCache(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.IsActive {
		return ErrProductInactive
	}
	if product.Stock < quantity {
		return ErrInsufficientStock
	}

	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	item, err := s.repo.FindItem(cart.ID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		item = &domain.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
	} else {
		item.Quantity += quantity
		if product.Stock < item.Quantity {
			return ErrInsufficientStock
		}
	}
	return s.repo.SaveItem(item)
}

func (s *CartService) RemoveItem(userID, productID uint64) error {
	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteItem(cart.ID, productID); err != nil {
		return ErrItemNotFound
	}
	return nil
}

func (s *CartService) ListItems(userID uint64, offset, limit int) ([]domain.CartItem, int64, error) {
	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.ListItems(cart.ID, offset, limit)
}

// ToOrder forwards the checkout payload to the order service and, only on
// success, removes the cart lines whose product ids were submitted. Lines
// added after the payload was assembled survive.
func (s *CartService) ToOrder(ctx context.Context, userID uint64, token string, req clients.CreateOrderRequest) error {
	if err := s.orderClient.CreateOrder(ctx, token, req); err != nil {
		return fmt.Errorf("order creation failed: %w", err)
	}

	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	productIDs := make([]uint64, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	return s.repo.DeleteItemsByProductIDs(cart.ID, productIDs)
}

func (s *CartService) getProductWithCache(ctx context.Context, productID uint64) (*clients.ProductInfo, error) {
	cacheKey := fmt.Sprintf("product:%d", productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var product clients.ProductInfo
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.prodClient.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && product != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return product, nil
}
