package repository

import (
	"github.com/shopfleet/shopfleet/internal/product/domain"
)

// StockDelta mirrors the bulk stock endpoint's entries: signed quantity per
// product.
type StockDelta struct {
	ProductID uint64
	Quantity  int64
}

type ProductRepository interface {
	Create(product *domain.Product) error
	FindByID(id uint64) (*domain.Product, error)
	Update(product *domain.Product) error
	List(query string, categoryID uint64, offset, limit int) ([]domain.Product, int64, error)
	// ApplyStockDeltas adjusts stock for the whole batch in one transaction.
	// Any missing product or resulting negative stock rolls the batch back.
	ApplyStockDeltas(deltas []StockDelta) error
	FindImages(productID uint64) ([]domain.ProductImage, error)
}

type CategoryRepository interface {
	Create(category *domain.Category) error
	FindByID(id uint64) (*domain.Category, error)
	Update(category *domain.Category) error
	Delete(id uint64) error
	ListActive() ([]domain.Category, error)
}
