package repository

import (
	"github.com/shopfleet/shopfleet/internal/user/domain"
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint64) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	Update(user *domain.User) error
	CreateName(name *domain.Name) error
	GetOrCreateRole(name string) (*domain.Role, error)
	CreateAddress(address *domain.Address) error
}

type AddressRepository interface {
	FindWardByID(id uint64) (*domain.Ward, error)
	ListWards(districtID uint64, offset, limit int) ([]domain.Ward, int64, error)
	ListDistricts(cityID uint64, offset, limit int) ([]domain.District, int64, error)
	ListCities(offset, limit int) ([]domain.City, int64, error)
}
