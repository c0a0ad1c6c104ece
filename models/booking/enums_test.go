package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range GetAllBookingStatuses() {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("Done").IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}

func TestBookingStatus_IsCompleted(t *testing.T) {
	assert.False(t, BookingStatusPending.IsCompleted())
	assert.False(t, BookingStatusInProgress.IsCompleted())
	assert.True(t, BookingStatusCompleted.IsCompleted())
	assert.True(t, BookingStatusCancelled.IsCompleted())
}

func TestBookingStatus_CanBeUpdated(t *testing.T) {
	assert.True(t, BookingStatusPending.CanBeUpdated())
	assert.True(t, BookingStatusInProgress.CanBeUpdated())
	assert.False(t, BookingStatusCompleted.CanBeUpdated())
	assert.False(t, BookingStatusCancelled.CanBeUpdated())
}
