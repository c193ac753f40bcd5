package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopfleet/shopfleet/internal/product/domain"
	"github.com/shopfleet/shopfleet/internal/product/repository"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAlreadyDeleted   = errors.New("product already deleted")
)

// InsufficientStockError names the first product whose requested quantity
// exceeds the available stock.
type InsufficientStockError struct {
	ProductID uint64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) GetProduct(id uint64) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *ProductService) GetProductImages(productID uint64) ([]domain.ProductImage, error) {
	return s.products.FindImages(productID)
}

type ProductInput struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	CategoryID  *uint64
	Stock       *int64
	IsActive    *bool
}

func (s *ProductService) CreateProduct(input ProductInput) (*domain.Product, error) {
	p := &domain.Product{IsActive: true}
	applyInput(p, input)
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) UpdateProduct(id uint64, input ProductInput) (*domain.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	applyInput(p, input)
	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func applyInput(p *domain.Product, input ProductInput) {
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.CategoryID != nil {
		p.CategoryID = *input.CategoryID
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
}

func (s *ProductService) ListProducts(query string, categoryID uint64, offset, limit int) ([]domain.Product, int64, error) {
	return s.products.List(query, categoryID, offset, limit)
}

// DeactivateProducts soft-deletes each id independently, reporting per-id
// success or failure instead of failing the batch.
func (s *ProductService) DeactivateProducts(ids []uint64) (success []uint64, failure []BatchFailure) {
	success = []uint64{}
	failure = []BatchFailure{}
	for _, id := range ids {
		p, err := s.products.FindByID(id)
		if err != nil {
			failure = append(failure, BatchFailure{ID: id, Error: err.Error()})
			continue
		}
		if p == nil {
			failure = append(failure, BatchFailure{ID: id, Error: ErrProductNotFound.Error()})
			continue
		}
		if !p.IsActive {
			failure = append(failure, BatchFailure{ID: id, Error: ErrAlreadyDeleted.Error()})
			continue
		}
		p.IsActive = false
		if err := s.products.Update(p); err != nil {
			failure = append(failure, BatchFailure{ID: id, Error: err.Error()})
			continue
		}
		success = append(success, id)
	}
	return success, failure
}

type BatchFailure struct {
	ID    uint64 `json:"id"`
	Error string `json:"error"`
}

// CheckStock verifies that every requested quantity is available on an
// active product right now. Read-only; a passing check holds no reservation.
func (s *ProductService) CheckStock(items []repository.StockDelta) error {
	for _, item := range items {
		p, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return err
		}
		if p == nil || !p.IsActive {
			return &InsufficientStockError{ProductID: item.ProductID, Requested: item.Quantity}
		}
		if item.Quantity > p.Stock {
			return &InsufficientStockError{ProductID: item.ProductID, Requested: item.Quantity, Available: p.Stock}
		}
	}
	return nil
}

// AdjustStock applies one signed delta to a single product.
func (s *ProductService) AdjustStock(id uint64, change int64) error {
	return s.products.ApplyStockDeltas([]repository.StockDelta{{ProductID: id, Quantity: change}})
}

// ApplyStockDeltas applies a bulk signed adjustment atomically.
func (s *ProductService) ApplyStockDeltas(deltas []repository.StockDelta) error {
	return s.products.ApplyStockDeltas(deltas)
}

func (s *ProductService) CreateCategory(name string) (*domain.Category, error) {
	c := &domain.Category{Name: name, IsActive: true}
	if err := s.categories.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProductService) RenameCategory(id uint64, name string) (*domain.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	c.Name = name
	if err := s.categories.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProductService) DeleteCategory(id uint64) error {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(id)
}

// DeactivateCategories mirrors the bulk product soft-delete.
func (s *ProductService) DeactivateCategories(ids []uint64) (success []uint64, failure []BatchFailure) {
	success = []uint64{}
	failure = []BatchFailure{}
	for _, id := range ids {
		c, err := s.categories.FindByID(id)
		if err != nil {
			failure = append(failure, BatchFailure{ID: id, Error: err.Error()})
			continue
		}
		if c == nil {
			failure = append(failure, BatchFailure{ID: id, Error: ErrCategoryNotFound.Error()})
			continue
		}
		if !c.IsActive {
			failure = append(failure, BatchFailure{ID: id, Error: "category already deleted"})
			continue
		}
		c.IsActive = false
		if err := s.categories.Update(c); err != nil {
			failure = append(failure, BatchFailure{ID: id, Error: err.Error()})
			continue
		}
		success = append(success, id)
	}
	return success, failure
}

func (s *ProductService) ListCategories() ([]domain.Category, error) {
	return s.categories.ListActive()
}
