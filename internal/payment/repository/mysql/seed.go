package mysql

import (
	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/payment/domain"
)

// SeedLookups ensures the fixed payment state and method rows exist. Safe to
// run on every startup.
func SeedLookups(db *gorm.DB) error {
	states := []string{domain.StatePending, domain.StatePaid, domain.StateCancelled, domain.StateFail}
	for _, name := range states {
		state := domain.PaymentState{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&state).Error; err != nil {
			return err
		}
	}
	methods := []string{domain.MethodCash, domain.MethodOnline}
	for _, name := range methods {
		method := domain.PaymentMethod{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&method).Error; err != nil {
			return err
		}
	}
	return nil
}
