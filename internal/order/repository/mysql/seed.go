package mysql

import (
	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/order/domain"
)

// SeedStates ensures the fixed order state rows exist. Safe to run on every
// startup.
func SeedStates(db *gorm.DB) error {
	names := []string{
		domain.StatePending,
		domain.StateApproved,
		domain.StateShipping,
		domain.StateCancelled,
		domain.StateDisapproved,
		domain.StateDone,
	}
	for _, name := range names {
		state := domain.OrderState{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&state).Error; err != nil {
			return err
		}
	}
	return nil
}
