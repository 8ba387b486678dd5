package storefront_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/storefront"
)

func TestAddMergesByName(t *testing.T) {
	cart := storefront.NewCart()

	require.NoError(t, cart.Add("Cake", 500, 1))
	require.NoError(t, cart.Add("Cake", 500, 2))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddRejectsIncrementPastMax(t *testing.T) {
	cart := storefront.NewCart()

	require.NoError(t, cart.Add("Cake", 500, 3))
	err := cart.Add("Cake", 500, 1)
	assert.ErrorIs(t, err, storefront.ErrMaxQuantity)

	// The rejected increment must not be partially applied.
	assert.Equal(t, 3, cart.Items()[0].Quantity)
}

func TestNewLineClampsQuantity(t *testing.T) {
	cart := storefront.NewCart()

	require.NoError(t, cart.Add("Cookies", 180, 9))
	assert.Equal(t, 3, cart.Items()[0].Quantity)

	require.NoError(t, cart.Add("Croissant", 90, 0))
	assert.Equal(t, 1, cart.Items()[1].Quantity)
}

func TestUpdateQuantityClamps(t *testing.T) {
	cart := storefront.NewCart()
	require.NoError(t, cart.Add("Cake", 500, 2))

	cart.UpdateQuantity("Cake", 5)
	assert.Equal(t, 3, cart.Items()[0].Quantity)

	cart.UpdateQuantity("Cake", -10)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	// Decrementing at the floor keeps the line.
	cart.UpdateQuantity("Cake", -1)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestTotalIsPureProjection(t *testing.T) {
	cart := storefront.NewCart()
	require.NoError(t, cart.Add("Cake", 500, 2))
	require.NoError(t, cart.Add("Croissant", 90, 3))

	assert.Equal(t, 1270.0, cart.Total())

	cart.UpdateQuantity("Croissant", -1)
	assert.Equal(t, 1180.0, cart.Total())

	cart.Remove("Cake")
	assert.Equal(t, 180.0, cart.Total())

	cart.Clear()
	assert.Equal(t, 0.0, cart.Total())
	assert.True(t, cart.IsEmpty())
}
