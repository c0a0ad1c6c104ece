package invoice

import (
	"time"

	"vehicle-service/models/booking"
	"vehicle-service/models/servicecenter"
)

// PaymentStatus is the payment state of an invoice.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	return ps == PaymentStatusPaid || ps == PaymentStatusUnpaid
}

// Invoice is the one bill issued for a completed booking. The unique
// booking_id enforces the one-to-one billing guarantee at storage level.
type Invoice struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint                   `gorm:"not null;unique" json:"booking_id"`
	Booking   booking.ServiceBooking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"booking"`

	ServiceCenterID uint                        `gorm:"not null;index" json:"service_center_id"`
	ServiceCenter   servicecenter.ServiceCenter `gorm:"foreignKey:ServiceCenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"service_center"`

	TotalAmount   float64       `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	IssueDate     time.Time     `gorm:"autoCreateTime" json:"issue_date"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:Unpaid" json:"payment_status"`
}
