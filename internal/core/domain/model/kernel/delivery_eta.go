package kernel

import (
	"fmt"
	"math/rand/v2"

	"tastyfood/internal/pkg/errs"
)

// Bounds for the delivery ETA quoted to the customer at checkout, in minutes.
const (
	DeliveryETAMinMinutes = 20
	DeliveryETAMaxMinutes = 50
)

// NewRandomDeliveryETA generates a delivery ETA in whole minutes within
// [DeliveryETAMinMinutes..DeliveryETAMaxMinutes]. The estimate is quoted once
// at order creation and snapshotted on the order.
func NewRandomDeliveryETA() int {
	return rand.IntN(DeliveryETAMaxMinutes-DeliveryETAMinMinutes+1) + DeliveryETAMinMinutes //nolint:gosec // not security sensitive
}

// ValidateDeliveryETA checks that a persisted or supplied ETA is positive.
func ValidateDeliveryETA(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery ETA",
			fmt.Errorf("%d is not greater than 0", minutes),
		)
	}
	return nil
}
