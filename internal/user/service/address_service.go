package service

import (
	"errors"

	"github.com/shopfleet/shopfleet/internal/user/domain"
	"github.com/shopfleet/shopfleet/internal/user/repository"
)

var ErrWardNotFound = errors.New("ward not found")

// AddressService serves the city/district/ward hierarchy that orders
// reference by ward id.
type AddressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

func (s *AddressService) GetWard(id uint64) (*domain.Ward, error) {
	ward, err := s.repo.FindWardByID(id)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, ErrWardNotFound
	}
	return ward, nil
}

func (s *AddressService) ListWards(districtID uint64, offset, limit int) ([]domain.Ward, int64, error) {
	return s.repo.ListWards(districtID, offset, limit)
}

func (s *AddressService) ListDistricts(cityID uint64, offset, limit int) ([]domain.District, int64, error) {
	return s.repo.ListDistricts(cityID, offset, limit)
}

func (s *AddressService) ListCities(offset, limit int) ([]domain.City, int64, error) {
	return s.repo.ListCities(offset, limit)
}
