package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfleet/shopfleet/internal/product/domain"
	"github.com/shopfleet/shopfleet/internal/product/repository"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) List(query string, categoryID uint64, offset, limit int) ([]domain.Product, int64, error) {
	q := r.db.Model(&domain.Product{}).Where("is_active = ?", true)
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []domain.Product
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ApplyStockDeltas applies the batch inside one transaction with row locks,
// so concurrent batches for the same products serialize instead of
// over-selling.
func (r *productRepo) ApplyStockDeltas(deltas []repository.StockDelta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range deltas {
			var p domain.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, d.ProductID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d not found", d.ProductID)
				}
				return err
			}
			newStock := p.Stock + d.Quantity
			if newStock < 0 {
				return fmt.Errorf("insufficient stock for product %d", d.ProductID)
			}
			if err := tx.Model(&p).Update("stock", newStock).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepo) FindImages(productID uint64) ([]domain.ProductImage, error) {
	var images []domain.ProductImage
	if err := r.db.Where("product_id = ?", productID).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
