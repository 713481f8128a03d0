package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFulfillment(t *testing.T) {
	f, err := ParseFulfillment("")
	require.NoError(t, err)
	assert.Equal(t, FulfillmentPickup, f)

	f, err = ParseFulfillment("delivery")
	require.NoError(t, err)
	assert.Equal(t, FulfillmentDelivery, f)

	_, err = ParseFulfillment("teleport")
	assert.ErrorIs(t, err, ErrInvalidFulfillment)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusNew.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusNew.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusNew.CanTransitionTo(StatusDelivered))

	assert.True(t, StatusConfirmed.CanTransitionTo(StatusPacked))
	assert.True(t, StatusPacked.CanTransitionTo(StatusOutForDelivery))
	assert.True(t, StatusPacked.CanTransitionTo(StatusDelivered))
	assert.True(t, StatusOutForDelivery.CanTransitionTo(StatusDelivered))

	// Terminal states go nowhere.
	for _, next := range []Status{StatusNew, StatusConfirmed, StatusPacked, StatusOutForDelivery, StatusDelivered, StatusCancelled} {
		assert.False(t, StatusDelivered.CanTransitionTo(next))
		assert.False(t, StatusCancelled.CanTransitionTo(next))
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Out for Delivery")
	require.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, s)

	_, err = ParseStatus("Lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
