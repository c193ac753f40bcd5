package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/user/domain"
	"github.com/shopfleet/shopfleet/internal/user/repository"
)

type addressRepo struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepo{db: db}
}

func (r *addressRepo) FindWardByID(id uint64) (*domain.Ward, error) {
	var w domain.Ward
	err := r.db.Preload("District").Preload("District.City").First(&w, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *addressRepo) ListWards(districtID uint64, offset, limit int) ([]domain.Ward, int64, error) {
	q := r.db.Model(&domain.Ward{})
	if districtID != 0 {
		q = q.Where("district_id = ?", districtID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var wards []domain.Ward
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&wards).Error; err != nil {
		return nil, 0, err
	}
	return wards, total, nil
}

func (r *addressRepo) ListDistricts(cityID uint64, offset, limit int) ([]domain.District, int64, error) {
	q := r.db.Model(&domain.District{})
	if cityID != 0 {
		q = q.Where("city_id = ?", cityID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var districts []domain.District
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&districts).Error; err != nil {
		return nil, 0, err
	}
	return districts, total, nil
}

func (r *addressRepo) ListCities(offset, limit int) ([]domain.City, int64, error) {
	var total int64
	if err := r.db.Model(&domain.City{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cities []domain.City
	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&cities).Error; err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}
