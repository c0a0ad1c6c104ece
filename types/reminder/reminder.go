package reminder

import (
	"fmt"
)

// ReminderOfferRequest is the payload for sending a reminder or offer to a
// customer. The sending service center comes from the session.
type ReminderOfferRequest struct {
	CustomerID uint   `json:"customer_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

func (r ReminderOfferRequest) Validate() error {
	if r.CustomerID == 0 {
		return fmt.Errorf("customer_id is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
