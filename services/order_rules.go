// services/order_rules.go
package services

import (
	"fmt"

	"restaurent-app-backend/models"
)

// The status machine is enforced here rather than trusted to button
// disablement in the client. Transitions move one step forward only:
// pending -> prepared (chef), prepared -> served (waiter).

var orderStatusRank = map[string]int{
	models.StatusPending:  0,
	models.StatusPrepared: 1,
	models.StatusServed:   2,
}

// ValidateTransition checks that moving an order from the current status
// to the requested one is legal for the acting role.
func ValidateTransition(role, current, requested string) error {
	currentRank, ok := orderStatusRank[current]
	if !ok {
		return fmt.Errorf("unknown order status %q", current)
	}
	requestedRank, ok := orderStatusRank[requested]
	if !ok {
		return fmt.Errorf("unknown order status %q", requested)
	}

	if requestedRank <= currentRank {
		return fmt.Errorf("order is already %s", current)
	}
	if requestedRank-currentRank > 1 {
		return fmt.Errorf("order must be prepared before it can be served")
	}

	switch requested {
	case models.StatusPrepared:
		if role != models.RoleChef {
			return fmt.Errorf("only a chef can mark an order prepared")
		}
	case models.StatusServed:
		if role != models.RoleWaiter {
			return fmt.Errorf("only a waiter can mark an order served")
		}
	}
	return nil
}

// NormalizeOrderItems drops zero-quantity rows from an order submission.
// At least one row must survive; quantities below zero are rejected.
func NormalizeOrderItems(items []models.OrderItem) ([]models.OrderItem, error) {
	kept := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, fmt.Errorf("item %q has a negative quantity", item.ItemName)
		}
		if item.Quantity == 0 {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("select at least one item")
	}
	return kept, nil
}
