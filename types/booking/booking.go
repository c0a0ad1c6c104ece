package booking

import (
	"fmt"

	bookingModel "vehicle-service/models/booking"
)

// BookingCreateRequest is the payload for booking a service. The customer is
// taken from the session and the status always starts at Pending, so neither
// is part of the payload.
type BookingCreateRequest struct {
	VehicleID       uint   `json:"vehicle_id"`
	ServiceCenterID uint   `json:"service_center_id"`
	ScheduledDate   string `json:"scheduled_date"` // YYYY-MM-DD
	Description     string `json:"description"`
}

func (b BookingCreateRequest) Validate() error {
	if b.VehicleID == 0 {
		return fmt.Errorf("vehicle_id is required")
	}
	if b.ServiceCenterID == 0 {
		return fmt.Errorf("service_center_id is required")
	}
	if b.ScheduledDate == "" {
		return fmt.Errorf("scheduled_date is required")
	}
	if b.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// StatusUpdateRequest appends one status entry to a booking.
type StatusUpdateRequest struct {
	CurrentStatus string `json:"current_status"`
	Remarks       string `json:"remarks"`
}

func (s StatusUpdateRequest) Validate() error {
	if s.CurrentStatus == "" {
		return fmt.Errorf("current_status is required")
	}
	if !bookingModel.BookingStatus(s.CurrentStatus).IsValid() {
		return fmt.Errorf("current_status must be one of %v", bookingModel.GetAllBookingStatuses())
	}
	return nil
}

// AssignJobRequest assigns a staff member to a booking.
type AssignJobRequest struct {
	StaffID uint   `json:"staff_id"`
	Notes   string `json:"notes"`
}

func (a AssignJobRequest) Validate() error {
	if a.StaffID == 0 {
		return fmt.Errorf("staff_id is required")
	}
	return nil
}
