package models

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
			return OrderStatus(fl.Field().String()).Valid()
		})
		// stores can hold Infinity and NaN in float columns
		_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			v := fl.Field().Float()
			return !math.IsNaN(v) && !math.IsInf(v, 0)
		})
	})
	return validate
}

// NormalizeOrder canonicalises the status of a freshly read order and validates it.
// Records that fail here are skipped by the readers, never aggregated.
func NormalizeOrder(o *Order) error {
	status, err := ParseOrderStatus(string(o.Status))
	if err != nil {
		return err
	}
	o.Status = status
	return ValidateOrder(*o)
}

// ValidateOrder checks an order against its struct tags
func ValidateOrder(o Order) error {
	if err := getValidator().Struct(o); err != nil {
		return fmt.Errorf("invalid order %q: %w", o.ID, err)
	}
	return nil
}

// ValidateActivityEvent checks a storefront event before it is applied
func ValidateActivityEvent(e ActivityEvent) error {
	if err := getValidator().Struct(e); err != nil {
		return fmt.Errorf("invalid %q event: %w", e.Type, err)
	}
	return nil
}
