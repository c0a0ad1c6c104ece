package history

import (
	"fmt"
)

// RecordHistoryRequest is the payload for recording service history. The
// customer/service-center side is filled from the session; booking_id may
// also arrive as a route parameter, which takes precedence.
type RecordHistoryRequest struct {
	VehicleID   uint    `json:"vehicle_id"`
	BookingID   uint    `json:"booking_id"`
	ServiceDate string  `json:"service_date"` // YYYY-MM-DD
	Details     string  `json:"details"`
	Cost        float64 `json:"cost"`
}

func (r RecordHistoryRequest) Validate() error {
	if r.VehicleID == 0 {
		return fmt.Errorf("vehicle_id is required")
	}
	if r.ServiceDate == "" {
		return fmt.Errorf("service_date is required")
	}
	if r.Details == "" {
		return fmt.Errorf("details is required")
	}
	if r.Cost < 0 {
		return fmt.Errorf("cost cannot be negative")
	}
	return nil
}
