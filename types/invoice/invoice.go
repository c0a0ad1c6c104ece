package invoice

import (
	"fmt"

	invoiceModel "vehicle-service/models/invoice"
)

// InvoiceGenerateRequest is the payload for billing a booking.
type InvoiceGenerateRequest struct {
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
}

func (i InvoiceGenerateRequest) Validate() error {
	if i.TotalAmount <= 0 {
		return fmt.Errorf("total_amount must be greater than zero")
	}
	if i.PaymentStatus != "" && !invoiceModel.PaymentStatus(i.PaymentStatus).IsValid() {
		return fmt.Errorf("payment_status must be either 'Paid' or 'Unpaid'")
	}
	return nil
}
