package services_test

import (
	"testing"

	"restaurent-app-backend/models"
	"restaurent-app-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		role      string
		current   string
		requested string
		errFn     require.ErrorAssertionFunc
	}{
		{"chef prepares a pending order", "chef", "pending", "prepared", require.NoError},
		{"waiter serves a prepared order", "waiter", "prepared", "served", require.NoError},
		{"waiter cannot serve a pending order", "waiter", "pending", "served", require.Error},
		{"waiter cannot prepare", "waiter", "pending", "prepared", require.Error},
		{"chef cannot serve", "chef", "prepared", "served", require.Error},
		{"manager cannot transition", "manager", "pending", "prepared", require.Error},
		{"no transition out of served", "waiter", "served", "served", require.Error},
		{"no reversal", "chef", "prepared", "pending", require.Error},
		{"no repeat", "chef", "prepared", "prepared", require.Error},
		{"unknown current status", "chef", "cooking", "prepared", require.Error},
		{"unknown requested status", "chef", "pending", "cooked", require.Error},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := services.ValidateTransition(tt.role, tt.current, tt.requested)
			tt.errFn(t, err)
		})
	}
}

func TestNormalizeOrderItems(t *testing.T) {
	t.Parallel()

	t.Run("strips zero-quantity rows and keeps order", func(t *testing.T) {
		t.Parallel()

		items, err := services.NormalizeOrderItems([]models.OrderItem{
			{ItemName: "Margherita Pizza", Quantity: 0},
			{ItemName: "Classic Cheeseburger", Quantity: 2},
			{ItemName: "Fresh Lemonade", Quantity: 0},
			{ItemName: "Fish and Chips", Quantity: 1},
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Classic Cheeseburger", items[0].ItemName)
		assert.Equal(t, "Fish and Chips", items[1].ItemName)
	})

	t.Run("rejects a submission with nothing ordered", func(t *testing.T) {
		t.Parallel()

		_, err := services.NormalizeOrderItems([]models.OrderItem{
			{ItemName: "Margherita Pizza", Quantity: 0},
			{ItemName: "Fresh Lemonade", Quantity: 0},
		})
		require.Error(t, err)
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		t.Parallel()

		_, err := services.NormalizeOrderItems([]models.OrderItem{
			{ItemName: "Margherita Pizza", Quantity: -1},
			{ItemName: "Fresh Lemonade", Quantity: 2},
		})
		require.Error(t, err)
	})

	t.Run("rejects an empty submission", func(t *testing.T) {
		t.Parallel()

		_, err := services.NormalizeOrderItems(nil)
		require.Error(t, err)
	})
}
