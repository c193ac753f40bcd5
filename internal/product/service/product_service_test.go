package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopfleet/shopfleet/internal/product/domain"
	"github.com/shopfleet/shopfleet/internal/product/repository"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(id uint64) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) List(query string, categoryID uint64, offset, limit int) ([]domain.Product, int64, error) {
	args := m.Called(query, categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ApplyStockDeltas(deltas []repository.StockDelta) error {
	args := m.Called(deltas)
	return args.Error(0)
}

func (m *MockProductRepository) FindImages(productID uint64) ([]domain.ProductImage, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductImage), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(id uint64) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) ListActive() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func TestProductService_CheckStock(t *testing.T) {
	tests := []struct {
		name       string
		items      []repository.StockDelta
		setupMocks func(*MockProductRepository)
		wantShort  uint64
	}{
		{
			name:  "all quantities available",
			items: []repository.StockDelta{{ProductID: 1, Quantity: 2}, {ProductID: 3, Quantity: 1}},
			setupMocks: func(repo *MockProductRepository) {
				repo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, Stock: 5, IsActive: true}, nil)
				repo.On("FindByID", uint64(3)).Return(&domain.Product{ID: 3, Stock: 1, IsActive: true}, nil)
			},
		},
		{
			name:  "quantity exceeds stock",
			items: []repository.StockDelta{{ProductID: 1, Quantity: 2}},
			setupMocks: func(repo *MockProductRepository) {
				repo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, Stock: 1, IsActive: true}, nil)
			},
			wantShort: 1,
		},
		{
			name:  "inactive product counts as unavailable",
			items: []repository.StockDelta{{ProductID: 1, Quantity: 1}},
			setupMocks: func(repo *MockProductRepository) {
				repo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, Stock: 10, IsActive: false}, nil)
			},
			wantShort: 1,
		},
		{
			name:  "missing product counts as unavailable",
			items: []repository.StockDelta{{ProductID: 9, Quantity: 1}},
			setupMocks: func(repo *MockProductRepository) {
				repo.On("FindByID", uint64(9)).Return(nil, nil)
			},
			wantShort: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			tt.setupMocks(repo)

			svc := NewProductService(repo, new(MockCategoryRepository))
			err := svc.CheckStock(tt.items)

			if tt.wantShort != 0 {
				var short *InsufficientStockError
				assert.ErrorAs(t, err, &short)
				assert.Equal(t, tt.wantShort, short.ProductID)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_DeactivateProducts(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, IsActive: true}, nil)
	repo.On("Update", mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == 1 && !p.IsActive
	})).Return(nil)
	repo.On("FindByID", uint64(2)).Return(&domain.Product{ID: 2, IsActive: false}, nil)
	repo.On("FindByID", uint64(3)).Return(nil, nil)

	svc := NewProductService(repo, new(MockCategoryRepository))
	success, failure := svc.DeactivateProducts([]uint64{1, 2, 3})

	assert.Equal(t, []uint64{1}, success)
	assert.Len(t, failure, 2)
	assert.Equal(t, uint64(2), failure[0].ID)
	assert.Equal(t, ErrAlreadyDeleted.Error(), failure[0].Error)
	assert.Equal(t, uint64(3), failure[1].ID)
	repo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		repo := new(MockProductRepository)
		existing := &domain.Product{ID: 1, Name: "Old", Stock: 5, IsActive: true}
		repo.On("FindByID", uint64(1)).Return(existing, nil)
		repo.On("Update", existing).Return(nil)

		name := "New"
		svc := NewProductService(repo, new(MockCategoryRepository))
		p, err := svc.UpdateProduct(1, ProductInput{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "New", p.Name)
		assert.Equal(t, int64(5), p.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", uint64(404)).Return(nil, nil)

		svc := NewProductService(repo, new(MockCategoryRepository))
		_, err := svc.UpdateProduct(404, ProductInput{})

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductService_ApplyStockDeltas(t *testing.T) {
	repo := new(MockProductRepository)
	deltas := []repository.StockDelta{{ProductID: 1, Quantity: -2}, {ProductID: 3, Quantity: 1}}
	repo.On("ApplyStockDeltas", deltas).Return(errors.New("insufficient stock for product 1"))

	svc := NewProductService(repo, new(MockCategoryRepository))
	err := svc.ApplyStockDeltas(deltas)

	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestProductService_DeactivateCategories(t *testing.T) {
	categories := new(MockCategoryRepository)
	categories.On("FindByID", uint64(1)).Return(&domain.Category{ID: 1, IsActive: true}, nil)
	categories.On("Update", mock.MatchedBy(func(c *domain.Category) bool {
		return c.ID == 1 && !c.IsActive
	})).Return(nil)
	categories.On("FindByID", uint64(2)).Return(nil, nil)

	svc := NewProductService(new(MockProductRepository), categories)
	success, failure := svc.DeactivateCategories([]uint64{1, 2})

	assert.Equal(t, []uint64{1}, success)
	assert.Len(t, failure, 1)
	assert.Equal(t, uint64(2), failure[0].ID)
	categories.AssertExpectations(t)
}
