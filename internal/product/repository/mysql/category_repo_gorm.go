package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/product/domain"
	"github.com/shopfleet/shopfleet/internal/product/repository"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindByID(id uint64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Category{}, id).Error
}

func (r *categoryRepo) ListActive() ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.Where("is_active = ?", true).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
