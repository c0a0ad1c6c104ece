package booking

// BookingStatus is the lifecycle state of a service booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusInProgress BookingStatus = "In Progress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the booking is in a terminal state
func (bs BookingStatus) IsCompleted() bool {
	return bs == BookingStatusCompleted || bs == BookingStatusCancelled
}

// CanBeUpdated returns true if the booking status can still be updated
func (bs BookingStatus) CanBeUpdated() bool {
	return !bs.IsCompleted()
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}
